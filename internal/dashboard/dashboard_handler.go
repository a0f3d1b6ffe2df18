package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"hekto/internal/nav"
)

// DashboardHandler는 대시보드 관련 핸들러입니다.
type DashboardHandler struct {
	service *Service
}

// NewDashboardHandler는 새 핸들러를 생성합니다.
func NewDashboardHandler(service *Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// ChartBar는 막대 차트 한 줄입니다. (Percent는 0~100)
type ChartBar struct {
	Label   string
	Value   int
	Percent int
}

// HandleShowDashboard는 'GET /dashboard' 요청을 처리합니다.
func (h *DashboardHandler) HandleShowDashboard(c *fiber.Ctx) error {
	m := h.service.GetMetrics()

	return c.Render("dashboard", fiber.Map{
		"Title":       "Hekto | Dashboard",
		"Active":      nav.SectionDashboard.String(),
		"ActiveLabel": nav.SectionDashboard.Label(),
		"Sections":    nav.Items(),
		"Metrics":     m,
		"Chart":       usersVsProductsChart(m),
		"AdminName":   c.Locals("admin_name"),
	}, "layout")
}

// usersVsProductsChart는 Total Users 대 Total Products 막대 차트 데이터를 만듭니다.
func usersVsProductsChart(m Metrics) []ChartBar {
	max := m.TotalUsers
	if m.TotalProducts > max {
		max = m.TotalProducts
	}

	bars := []ChartBar{
		{Label: "Total Users", Value: m.TotalUsers},
		{Label: "Total Products", Value: m.TotalProducts},
	}
	for i := range bars {
		if max > 0 {
			bars[i].Percent = bars[i].Value * 100 / max
		}
	}
	return bars
}
