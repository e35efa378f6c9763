package analytics

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devanbrand/storefront-backend/internal/cart"
)

type Handler struct {
	service  *Service
	sessions *cart.Sessions
}

func NewHandler(service *Service, sessions *cart.Sessions) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/visit", h.recordVisit)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/summary", h.getSummary)
}

// recordVisit counts the calling session once per day. The session id travels
// in the same header the cart uses and is issued here when absent.
func (h *Handler) recordVisit(c *fiber.Ctx) error {
	sessionID := c.Get(cart.SessionHeader)
	if sessionID == "" {
		sessionID = h.sessions.NewSession()
	}
	a := h.service.RecordVisit(sessionID)
	return c.JSON(fiber.Map{
		"sessionId": sessionID,
		"analytics": a,
	})
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Summary())
}
