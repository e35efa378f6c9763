package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/devanbrand/storefront-backend/internal/catalog"
)

// CatalogService is the subset of the catalog service the cart needs to
// admit items and enforce the stock ceiling.
type CatalogService interface {
	GetByID(id int) (catalog.Product, error)
}

// Handler exposes the session cart over HTTP. The session id travels in the
// X-Session-ID header; a missing id starts a new session and the response
// always echoes the id so the client can keep it.
type Handler struct {
	sessions *Sessions
	catalog  CatalogService
}

func NewHandler(sessions *Sessions, catalogService CatalogService) *Handler {
	return &Handler{sessions: sessions, catalog: catalogService}
}

// SessionHeader is the request header carrying the cart session id.
const SessionHeader = "X-Session-ID"

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:id", h.updateItem)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

func (h *Handler) session(c *fiber.Ctx) string {
	if id := c.Get(SessionHeader); id != "" {
		return id
	}
	return h.sessions.NewSession()
}

func (h *Handler) cartResponse(c *fiber.Ctx, sessionID string, ct *Cart) error {
	return c.JSON(fiber.Map{
		"sessionId": sessionID,
		"items":     ct.Items(),
		"total":     ct.Total(),
	})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID := h.session(c)
	return h.cartResponse(c, sessionID, h.sessions.Cart(sessionID))
}

type addItemRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	p, err := h.catalog.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	sessionID := h.session(c)
	ct := h.sessions.Cart(sessionID)
	// out-of-stock and over-stock adds fall through silently, mirroring the
	// storefront behaviour; the response simply shows the unchanged cart
	ct.Add(p)
	return h.cartResponse(c, sessionID, ct)
}

type updateItemRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "delta must be non-zero"})
	}

	sessionID := h.session(c)
	ct := h.sessions.Cart(sessionID)

	// positive deltas must respect the current stock ceiling; the cart itself
	// does not clamp, so the check lives here with the catalog at hand
	if payload.Delta > 0 {
		it, ok := ct.Get(id)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not in cart"})
		}
		p, err := h.catalog.GetByID(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		if it.Quantity+payload.Delta > p.Stock {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "quantity exceeds stock"})
		}
	}

	ct.UpdateQuantity(id, payload.Delta)
	return h.cartResponse(c, sessionID, ct)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sessionID := h.session(c)
	ct := h.sessions.Cart(sessionID)
	ct.Remove(id)
	return h.cartResponse(c, sessionID, ct)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID := h.session(c)
	h.sessions.Cart(sessionID).Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
