package auth

// LoginForm은 로그인 폼 입력값입니다.
type LoginForm struct {
	AdminName string `form:"admin_name"`
	Password  string `form:"password"`
}

// LoginErrors는 로그인 실패 시 폼에 표시할 메시지 모음입니다.
// (필드별 메시지와 크리덴셜 불일치 메시지는 서로 독립입니다)
type LoginErrors struct {
	AdminName   string
	Password    string
	Credentials string
}

// HasErrors는 메시지가 하나라도 있으면 true입니다.
func (e LoginErrors) HasErrors() bool {
	return e.AdminName != "" || e.Password != "" || e.Credentials != ""
}
