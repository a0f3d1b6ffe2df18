package auth

// Credentials는 단일 관리자 크리덴셜 고정 쌍입니다.
// (설정의 기본값이 원본 그대로의 플레이스홀더입니다 — config 패키지 참고)
type Credentials struct {
	AdminName string
	Password  string
}

// Service는 로그인 검증의 비즈니스 로직을 담당합니다.
type Service struct {
	creds Credentials
}

// NewService는 크리덴셜 쌍을 받아 새 Service를 생성합니다.
func NewService(creds Credentials) *Service {
	return &Service{creds: creds}
}

// 로그인 폼 메시지 (관리자에게 그대로 노출되는 문구)
const (
	msgAdminNameRequired  = "Admin Name is required"
	msgPasswordRequired   = "Password is required"
	msgInvalidCredentials = "Invalid Admin Name or Password"
)

// ValidateLogin은 폼을 검증하고 세션 전환 가능 여부를 반환합니다.
// 1. 빈 필드가 있으면 필드별 메시지만 채우고 크리덴셜 검사는 하지 않습니다.
// 2. 두 필드가 모두 있으면 고정 쌍과 정확히 일치해야 합니다.
func (s *Service) ValidateLogin(form LoginForm) (bool, LoginErrors) {
	var errs LoginErrors

	if form.AdminName == "" {
		errs.AdminName = msgAdminNameRequired
	}
	if form.Password == "" {
		errs.Password = msgPasswordRequired
	}
	if errs.HasErrors() {
		return false, errs
	}

	if form.AdminName != s.creds.AdminName || form.Password != s.creds.Password {
		errs.Credentials = msgInvalidCredentials
		return false, errs
	}

	return true, LoginErrors{}
}
