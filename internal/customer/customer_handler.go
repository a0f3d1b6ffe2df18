package customer

import (
	"github.com/gofiber/fiber/v2"

	"hekto/internal/nav"
)

// CustomerHandler는 Users / Products / Orders 페이지 핸들러입니다.
// (세 페이지 모두 요청마다 독립적으로 customer 프로젝션을 다시 조회합니다)
type CustomerHandler struct {
	service *Service
}

// NewCustomerHandler는 새 핸들러를 생성합니다.
func NewCustomerHandler(service *Service) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// HandleShowUsersPage는 'GET /users' — 고객 카드 목록을 렌더링합니다.
func (h *CustomerHandler) HandleShowUsersPage(c *fiber.Ctx) error {
	return h.renderList(c, nav.SectionUsers, "Customer List")
}

// HandleShowProductsPage는 'GET /products' 요청을 처리합니다.
// 별도의 상품 쿼리가 정의될 때까지 Users와 동일한 프로젝션을 렌더링합니다.
func (h *CustomerHandler) HandleShowProductsPage(c *fiber.Ctx) error {
	return h.renderList(c, nav.SectionProducts, "Product List")
}

// renderList는 Users/Products 공용 카드 목록 렌더링입니다.
func (h *CustomerHandler) renderList(c *fiber.Ctx, section nav.Section, heading string) error {
	customers := h.service.FetchCustomers()

	return c.Render("customers", fiber.Map{
		"Title":       "Hekto | " + section.Label(),
		"Active":      section.String(),
		"ActiveLabel": section.Label(),
		"Sections":    nav.Items(),
		"Heading":     heading,
		"Customers":   customers,
		"AdminName":   c.Locals("admin_name"),
	}, "layout")
}

// HandleShowOrdersPage는 'GET /orders' — 주문 카드와 품목 목록을 렌더링합니다.
func (h *CustomerHandler) HandleShowOrdersPage(c *fiber.Ctx) error {
	customers := h.service.FetchCustomers()

	return c.Render("orders", fiber.Map{
		"Title":       "Hekto | Orders",
		"Active":      nav.SectionOrders.String(),
		"ActiveLabel": nav.SectionOrders.Label(),
		"Sections":    nav.Items(),
		"Heading":     "Orders List",
		"Customers":   customers,
		"AdminName":   c.Locals("admin_name"),
	}, "layout")
}
