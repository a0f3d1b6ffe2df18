package nav

// Section은 사이드바에서 선택 가능한 네비게이션 대상입니다.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionUsers     Section = "users"
	SectionProducts  Section = "products"
	SectionOrders    Section = "orders"
)

func (s Section) String() string { return string(s) }

// Label은 사이드바/헤더에 표시할 섹션 이름입니다.
func (s Section) Label() string {
	switch s {
	case SectionUsers:
		return "Users"
	case SectionProducts:
		return "Products"
	case SectionOrders:
		return "Orders"
	default:
		return "Dashboard"
	}
}

// Path는 섹션의 라우트 경로입니다.
func (s Section) Path() string { return "/" + string(s) }

// ParseSection은 네비게이션 선택 값을 섹션으로 변환합니다.
// 어떤 값이든 가드 없이 그대로 전환하며, 알 수 없는 값은 Dashboard입니다.
func ParseSection(v string) Section {
	switch Section(v) {
	case SectionUsers, SectionProducts, SectionOrders:
		return Section(v)
	default:
		return SectionDashboard
	}
}

// Item은 사이드바 한 줄입니다.
type Item struct {
	Section Section
	Label   string
	Path    string
}

// Items는 사이드바 표시 순서 그대로의 네비게이션 목록입니다.
func Items() []Item {
	sections := []Section{SectionDashboard, SectionUsers, SectionProducts, SectionOrders}
	items := make([]Item, 0, len(sections))
	for _, s := range sections {
		items = append(items, Item{Section: s, Label: s.Label(), Path: s.Path()})
	}
	return items
}
