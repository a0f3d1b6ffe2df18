package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"

	"hekto/internal/auth"
)

// AuthMiddleware는 보호 구간 진입 전에 로그인 세션을 확인합니다.
func AuthMiddleware(store *session.Store) fiber.Handler {

	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Errorf("미들웨어: 세션 가져오기 실패: %v", err)
			return c.Redirect("/auth/login")
		}

		nameInterface := sess.Get(auth.SessionKeyAdminName)
		if nameInterface == nil {
			log.Warnf("미들웨어: 로그인되지 않은 접근 (%s)", c.Path())
			return c.Redirect("/auth/login")
		}

		// 뷰에서 관리자 이름을 쓸 수 있도록 Locals에 저장
		c.Locals("admin_name", nameInterface.(string))
		return c.Next()
	}
}
