package order

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes read-only ledger views. The ledger offers no update or
// delete, even to the admin.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/order/:id", h.getOrder)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.All())
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(ord)
}
