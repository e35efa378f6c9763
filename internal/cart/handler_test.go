package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/devanbrand/storefront-backend/internal/catalog"
)

type stubCatalog struct {
	products map[int]catalog.Product
}

func (s *stubCatalog) GetByID(id int) (catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func newCartApp(products ...catalog.Product) (*fiber.App, *Sessions) {
	m := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	sessions := NewSessions()
	h := NewHandler(sessions, &stubCatalog{products: m})
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app, sessions
}

type cartBody struct {
	SessionID string     `json:"sessionId"`
	Items     []CartItem `json:"items"`
	Total     int        `json:"total"`
}

func TestGetCartIssuesSession(t *testing.T) {
	app, _ := newCartApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body cartBody
	json.NewDecoder(res.Body).Decode(&body)
	if body.SessionID == "" {
		t.Fatalf("expected a session id to be issued")
	}
	if len(body.Items) != 0 || body.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", body)
	}
}

func TestAddItemFlow(t *testing.T) {
	app, _ := newCartApp(catalog.Product{ID: 1, Price: 1000, Stock: 2})

	add := func(sessionID string) cartBody {
		req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":1}`))
		req.Header.Set("Content-Type", "application/json")
		if sessionID != "" {
			req.Header.Set(SessionHeader, sessionID)
		}
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}
		var body cartBody
		json.NewDecoder(res.Body).Decode(&body)
		return body
	}

	first := add("")
	if len(first.Items) != 1 || first.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart after first add: %+v", first)
	}

	second := add(first.SessionID)
	if second.Items[0].Quantity != 2 || second.Total != 2000 {
		t.Fatalf("unexpected cart after second add: %+v", second)
	}

	// stock is 2, so a third add is a silent no-op
	third := add(first.SessionID)
	if third.Items[0].Quantity != 2 {
		t.Fatalf("expected over-stock add to be a no-op, got %+v", third)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	app, _ := newCartApp()
	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":42}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestUpdateItemStockCeiling(t *testing.T) {
	app, sessions := newCartApp(catalog.Product{ID: 1, Price: 1000, Stock: 3})

	sessionID := sessions.NewSession()
	sessions.Cart(sessionID).Add(catalog.Product{ID: 1, Price: 1000, Stock: 3})

	// +5 would exceed stock 3
	req := httptest.NewRequest("PATCH", "/api/v1/cart/items/1", strings.NewReader(`{"delta":5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SessionHeader, sessionID)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for over-stock delta, got %d", res.StatusCode)
	}

	// -1 removes the only unit and the entry with it
	req2 := httptest.NewRequest("PATCH", "/api/v1/cart/items/1", strings.NewReader(`{"delta":-1}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set(SessionHeader, sessionID)
	res2, _ := app.Test(req2)
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	b, _ := io.ReadAll(res2.Body)
	if strings.Contains(string(b), `"quantity"`) {
		t.Fatalf("expected entry removed, got %s", b)
	}
}

func TestClearCart(t *testing.T) {
	app, sessions := newCartApp()
	sessionID := sessions.NewSession()
	sessions.Cart(sessionID).Add(catalog.Product{ID: 9, Price: 100, Stock: 1})

	req := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req.Header.Set(SessionHeader, sessionID)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	if sessions.Cart(sessionID).Len() != 0 {
		t.Fatalf("expected cart cleared")
	}
}
