package main

import (
	"fmt"
	"os"
	"os/signal" // (우아한 종료)
	"syscall"   // (우아한 종료)

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	log "github.com/sirupsen/logrus" // Logrus 사용

	// Hekto Admin의 내부 패키지 임포트
	"hekto/internal/auth"
	"hekto/internal/config"
	"hekto/internal/customer"
	"hekto/internal/dashboard"
	"hekto/internal/middleware"
	"hekto/internal/sanity"
)

func main() {
	// 1. 설정 로드 (환경 변수)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 문서 스토어 쿼리 클라이언트
	client := sanity.NewClient(
		cfg.Sanity.ProjectID,
		cfg.Sanity.Dataset,
		cfg.Sanity.APIVersion,
		cfg.Sanity.Token,
	)
	log.Infof("문서 스토어 클라이언트 준비 완료 (project: %s, dataset: %s)",
		cfg.Sanity.ProjectID, cfg.Sanity.Dataset)

	// 3. 세션 스토어 (인메모리: 프로세스가 재시작되면 전부 로그아웃됩니다)
	sessionStore := session.New(session.Config{
		CookieName:     "hekto_admin_session",
		CookieHTTPOnly: true,
	})

	// 4. 의존성 조립 (Dependency Injection)

	// Auth
	authService := auth.NewService(auth.Credentials{
		AdminName: cfg.Admin.Name,
		Password:  cfg.Admin.Password,
	})
	authHandler := auth.NewAuthHandler(authService, sessionStore)

	// Customer
	customerStore := customer.NewStore(client)
	customerService := customer.NewService(customerStore)
	customerHandler := customer.NewCustomerHandler(customerService)

	// Dashboard
	dashboardService := dashboard.NewService(customerService)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)

	// 5. Fiber 앱 생성 및 템플릿 설정
	engine := html.New("./web/views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// 6. 정적 파일(CSS) 라우팅
	app.Static("/public", "./web/public")

	// 7. 라우트(URL) 설정

	// 인증이 필요 *없는* 그룹
	authGroup := app.Group("/auth")
	{
		authGroup.Get("/login", authHandler.HandleShowLoginPage)
		authGroup.Post("/login", authHandler.HandleLogin)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// 인증이 *필요한* 그룹 (네 개 섹션 + 로그아웃)
	appGroup := app.Group("/", middleware.AuthMiddleware(sessionStore))
	{
		appGroup.Get("/dashboard", dashboardHandler.HandleShowDashboard)
		appGroup.Get("/users", customerHandler.HandleShowUsersPage)
		appGroup.Get("/products", customerHandler.HandleShowProductsPage)
		appGroup.Get("/orders", customerHandler.HandleShowOrdersPage)
		appGroup.Get("/auth/logout", authHandler.HandleLogout)
	}

	// 8. 서버 시작 (우아한 종료 로직)
	go func() {
		log.Infof("Hekto Admin 서버(HTTP)가 [::]:%s 포트에서 시작됩니다.", cfg.ServerPort)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
			log.Panicf("HTTP 서버 Listen 실패: %v", err)
		}
	}()

	// (종료 신호 대기)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("Hekto Admin 서버 종료 신호 수신...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("HTTP 서버 Shutdown 실패: %v", err)
	}

	log.Info("Hekto Admin 서버가 정상적으로 종료되었습니다.")
}
