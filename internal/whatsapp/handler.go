package whatsapp

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/devanbrand/storefront-backend/internal/analytics"
	"github.com/devanbrand/storefront-backend/internal/order"
)

// Handler hands out share links; the client opens them, the server never
// talks to WhatsApp itself.
type Handler struct {
	orders    *order.Service
	analytics *analytics.Service
	number    string
}

func NewHandler(orders *order.Service, analyticsService *analytics.Service, number string) *Handler {
	return &Handler{orders: orders, analytics: analyticsService, number: number}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/order/:id/whatsapp", h.getOrderLink)
	app.Get("/api/v1/admin/report/whatsapp", h.getReportLink)
}

func (h *Handler) getOrderLink(c *fiber.Ctx) error {
	ord, err := h.orders.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	lang := c.Query("lang", "ku")
	return c.JSON(fiber.Map{"url": OrderLink(h.number, ord, lang)})
}

func (h *Handler) getReportLink(c *fiber.Ctx) error {
	lang := c.Query("lang", "ku")
	date := time.Now().Format(analytics.VisitDateLayout)
	return c.JSON(fiber.Map{"url": SummaryLink(h.number, h.analytics.Summary(), date, lang)})
}
