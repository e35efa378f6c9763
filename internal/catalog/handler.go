package catalog

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:id", h.getProduct)

	// dev-only endpoint to reset products — enabled when ALLOW_RESET_PRODUCTS=1
	app.Post("/dev/reset-products", h.resetProducts)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Put("/api/v1/products", h.upsertProduct)
	app.Delete("/api/v1/product/:id", h.deleteProduct)
}

// getProducts lists the catalog. An optional ?q= filter matches the product
// name in the language given by ?lang= (default ku), the same contains-match
// the storefront search box applies.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	products := h.service.List()

	q := strings.ToLower(c.Query("q"))
	if q == "" {
		return c.JSON(products)
	}
	lang := c.Query("lang", "ku")
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name.Get(lang)), q) {
			filtered = append(filtered, p)
		}
	}
	return c.JSON(filtered)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.ID <= 0 {
		errs["id"] = "id must be positive"
	}
	if p.Name.Ku == "" && p.Name.Ar == "" && p.Name.En == "" {
		errs["name"] = "name is required in at least one language"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	return errs
}

func (h *Handler) upsertProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// validate payload and return all validation errors together
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	saved, err := h.service.Upsert(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(saved)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Remove(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.SendString("Product deleted")
}

// resetProducts clears the catalog and inserts the provided list (or the
// default sample list when the body is not a product array).
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_PRODUCTS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var products []Product
	// If body parsing fails, fall back to the sample catalog. An explicit
	// empty array clears the catalog without re-seeding.
	if err := c.BodyParser(&products); err != nil {
		products = SampleProducts()
	}

	if err := h.service.ResetProducts(products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

// SampleProducts returns the small demo catalog used when no snapshot exists
// yet and by the dev reset endpoint.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        LocalizedText{Ku: "کراسی ڕەش", Ar: "قميص أسود", En: "Black Shirt"},
			Description: LocalizedText{Ku: "کراسی کلاسیکی ڕەش", Ar: "قميص كلاسيكي أسود", En: "Classic black shirt"},
			Price:       25000,
			Category:    "Clothing",
			Image:       "/products/black-shirt.jpg",
			Stock:       12,
		},
		{
			ID:          2,
			Name:        LocalizedText{Ku: "پانتۆڵی جینز", Ar: "بنطال جينز", En: "Denim Jeans"},
			Description: LocalizedText{Ku: "پانتۆڵی جینزی ئاسمانی", Ar: "بنطال جينز أزرق", En: "Blue denim jeans"},
			Price:       35000,
			Category:    "Clothing",
			Image:       "/products/denim-jeans.jpg",
			Stock:       8,
		},
		{
			ID:          3,
			Name:        LocalizedText{Ku: "چاکەتی چەرم", Ar: "سترة جلدية", En: "Leather Jacket"},
			Description: LocalizedText{Ku: "چاکەتی چەرمی ڕەسەن", Ar: "سترة جلد أصلي", En: "Genuine leather jacket"},
			Price:       85000,
			Category:    "Clothing",
			Image:       "/products/leather-jacket.jpg",
			Stock:       3,
		},
		{
			ID:          4,
			Name:        LocalizedText{Ku: "کڵاوی زستانە", Ar: "قبعة شتوية", En: "Winter Beanie"},
			Description: LocalizedText{Ku: "کڵاوی گەرمی زستانە", Ar: "قبعة شتوية دافئة", En: "Warm knitted beanie"},
			Price:       8000,
			Category:    "Accessories",
			Image:       "/products/winter-beanie.jpg",
			Stock:       20,
		},
	}
}
