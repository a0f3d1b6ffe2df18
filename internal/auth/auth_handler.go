package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"
)

// SessionKeyAdminName은 로그인 상태를 나타내는 세션 키입니다.
// (이 키가 있으면 LoggedIn, 없으면 LoggedOut)
const SessionKeyAdminName = "admin_name"

// AuthHandler는 로그인/로그아웃 핸들러입니다.
type AuthHandler struct {
	service *Service
	store   *session.Store
}

// NewAuthHandler는 새 핸들러를 생성합니다.
func NewAuthHandler(service *Service, store *session.Store) *AuthHandler {
	return &AuthHandler{
		service: service,
		store:   store,
	}
}

// HandleShowLoginPage는 'GET /auth/login' — 빈 로그인 폼을 렌더링합니다.
// (로그아웃 직후에도 이 빈 폼으로 돌아옵니다)
func (h *AuthHandler) HandleShowLoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Hekto | Admin Login",
		"Form":  LoginForm{},
	})
}

// HandleLogin은 'POST /auth/login' 요청을 처리합니다.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	form := new(LoginForm)
	if err := c.BodyParser(form); err != nil {
		log.Warnf("로그인 폼 파싱 실패: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("invalid form submission")
	}

	// 1. 검증 (빈 필드 → 필드별 메시지, 불일치 → credentials 메시지)
	ok, errs := h.service.ValidateLogin(*form)
	if !ok {
		log.Infof("로그인 거부 (admin_name: %q)", form.AdminName)
		return c.Render("login", fiber.Map{
			"Title":  "Hekto | Admin Login",
			"Form":   form,
			"Errors": errs,
		})
	}

	// 2. 세션 전환 (LoggedOut → LoggedIn)
	sess, err := h.store.Get(c)
	if err != nil {
		log.Errorf("세션 가져오기 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("session error")
	}
	sess.Set(SessionKeyAdminName, form.AdminName)
	if err := sess.Save(); err != nil {
		log.Errorf("세션 저장 실패: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("session error")
	}

	log.Infof("관리자 로그인 성공 (%s)", form.AdminName)
	return c.Redirect("/dashboard")
}

// HandleLogout은 'GET /auth/logout' 요청을 처리합니다.
// 세션을 파기하고(LoggedIn → LoggedOut) 빈 로그인 폼으로 돌아갑니다.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		log.Errorf("세션 가져오기 실패 (logout): %v", err)
		return c.Redirect("/auth/login")
	}

	if err := sess.Destroy(); err != nil {
		log.Errorf("세션 파기 실패: %v", err)
	}

	log.Info("관리자 로그아웃")
	return c.Redirect("/auth/login")
}
