package catalog

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(seed []Product) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	h := NewHandler(NewService(repo, nil))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, repo
}

func TestGetProductsAndSearch(t *testing.T) {
	app, _ := newTestApp([]Product{
		{ID: 1, Name: LocalizedText{Ku: "کراس", En: "Black Shirt"}, Price: 25000, Stock: 12},
		{ID: 2, Name: LocalizedText{Ku: "پانتۆڵ", En: "Denim Jeans"}, Price: 35000, Stock: 8},
	})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Black Shirt") || !strings.Contains(string(body), "Denim Jeans") {
		t.Fatalf("unexpected body: %s", body)
	}

	// search filters by name in the requested language
	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?q=shirt&lang=en", nil))
	body2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body2), "Black Shirt") || strings.Contains(string(body2), "Denim Jeans") {
		t.Fatalf("search leaked unmatched product: %s", body2)
	}
}

func TestGetProductByID(t *testing.T) {
	app, _ := newTestApp([]Product{{ID: 7, Name: LocalizedText{En: "Beanie"}, Price: 8000, Stock: 20}})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/7", nil))
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/99", nil))
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", res2.StatusCode)
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/abc", nil))
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", res3.StatusCode)
	}
}

func TestUpsertProductValidation(t *testing.T) {
	app, repo := newTestApp(nil)

	// missing name and non-positive id are both reported
	req := httptest.NewRequest("PUT", "/api/v1/products", strings.NewReader(`{"id":0,"price":-5}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	for _, field := range []string{"id", "name", "price"} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("expected validation error for %q in %s", field, body)
		}
	}

	// valid upsert inserts
	req2 := httptest.NewRequest("PUT", "/api/v1/products",
		strings.NewReader(`{"id":5,"name":{"ku":"","ar":"","en":"Jacket"},"price":85000,"stock":3}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	if _, err := repo.GetByID(5); err != nil {
		t.Fatalf("product not stored: %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	app, repo := newTestApp([]Product{{ID: 3, Name: LocalizedText{En: "Jacket"}, Stock: 1}})

	res, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/product/3", nil))
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if _, err := repo.GetByID(3); err != ErrNotFound {
		t.Fatalf("expected product removed, got %v", err)
	}

	res2, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/product/3", nil))
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing product, got %d", res2.StatusCode)
	}
}

func TestResetProductsGated(t *testing.T) {
	app, _ := newTestApp(nil)

	res, _ := app.Test(httptest.NewRequest("POST", "/dev/reset-products", nil))
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 without ALLOW_RESET_PRODUCTS, got %d", res.StatusCode)
	}

	t.Setenv("ALLOW_RESET_PRODUCTS", "1")
	res2, _ := app.Test(httptest.NewRequest("POST", "/dev/reset-products", nil))
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	body, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body), "Black Shirt") {
		t.Fatalf("expected sample catalog in response, got %s", body)
	}
}
