package invoice

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devanbrand/storefront-backend/internal/order"
)

// Handler serves receipt renderings of ledger orders. Registered behind the
// admin gate alongside the order history views.
type Handler struct {
	orders *order.Service
}

func NewHandler(orders *order.Service) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/order/:id/invoice", h.getInvoice)
}

func (h *Handler) getInvoice(c *fiber.Ctx) error {
	ord, err := h.orders.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	lang := c.Query("lang", "ku")
	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(Render(ord, lang))
}
