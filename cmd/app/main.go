package main

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devanbrand/storefront-backend/internal/analytics"
	"github.com/devanbrand/storefront-backend/internal/auth"
	"github.com/devanbrand/storefront-backend/internal/cart"
	"github.com/devanbrand/storefront-backend/internal/catalog"
	"github.com/devanbrand/storefront-backend/internal/checkout"
	"github.com/devanbrand/storefront-backend/internal/config"
	"github.com/devanbrand/storefront-backend/internal/invoice"
	"github.com/devanbrand/storefront-backend/internal/obs"
	"github.com/devanbrand/storefront-backend/internal/order"
	"github.com/devanbrand/storefront-backend/internal/snapshot"
	"github.com/devanbrand/storefront-backend/internal/whatsapp"
)

func main() {
	_ = godotenv.Load()
	obs.InitLogger()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(obs.RequestLogger())

	sessions := cart.NewSessions()

	var (
		catalogRepo    catalog.Repository
		orderRepo      order.Repository
		analyticsRepo  analytics.Repository
		persistCatalog catalog.PersistFunc
		persistOrders  order.PersistFunc
		persistStats   analytics.PersistFunc
	)

	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		if err := bootstrapSchema(db); err != nil {
			obs.Logger.Error("schema bootstrap failed", "error", err)
			panic(err)
		}
		catalogRepo = catalog.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
		analyticsRepo = analytics.NewPostgresRepository(db)
		obs.Logger.Info("using postgres persistence")
	} else {
		store, err := snapshot.NewStore(cfg.DataDir)
		if err != nil {
			panic(err)
		}

		products := loadProducts(store)
		orders := loadOrders(store)
		stats := loadAnalytics(store)

		memCatalog := catalog.NewInMemoryRepository(products)
		memOrders := order.NewInMemoryRepository(orders)
		memStats := analytics.NewInMemoryRepository(stats)
		catalogRepo, orderRepo, analyticsRepo = memCatalog, memOrders, memStats

		persistCatalog = func() { saveSnapshot(store, snapshot.ProductsKey, memCatalog.List()) }
		persistOrders = func() { saveSnapshot(store, snapshot.OrdersKey, memOrders.All()) }
		persistStats = func() { saveSnapshot(store, snapshot.AnalyticsKey, memStats.Get()) }
		obs.Logger.Info("using snapshot persistence", "dir", cfg.DataDir)
	}

	catalogService := catalog.NewService(catalogRepo, persistCatalog)
	orderService := order.NewService(orderRepo, persistOrders)
	analyticsService := analytics.NewService(analyticsRepo, sessions, catalogService, orderService, cfg.LowStockThreshold, persistStats)
	checkoutService := checkout.NewService(catalogService, orderService, sessions)

	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(sessions, catalogService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	orderHandler := order.NewHandler(orderService)
	invoiceHandler := invoice.NewHandler(orderService)
	whatsappHandler := whatsapp.NewHandler(orderService, analyticsService, cfg.WhatsAppNumber)
	analyticsHandler := analytics.NewHandler(analyticsService, sessions)
	authHandler := auth.NewHandler(auth.Credentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Hash:     cfg.AdminPasswordHash,
	}, cfg.JWTSecret)

	authHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)
	analyticsHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter:     isPublicRoute,
	}))

	catalogHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	invoiceHandler.RegisterProtectedRoutes(app)
	whatsappHandler.RegisterProtectedRoutes(app)
	analyticsHandler.RegisterProtectedRoutes(app)

	obs.Logger.Info("listening", "addr", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		obs.Logger.Error("server stopped", "error", err)
	}
}

// isPublicRoute reports whether the request may skip the JWT check. The
// storefront surface (catalog reads, cart, checkout, visit counting) is open;
// everything under the admin surface stays behind the token.
func isPublicRoute(c *fiber.Ctx) bool {
	p := c.Path()
	switch {
	case strings.HasPrefix(p, "/dev/"):
		return true
	case p == "/api/v1/sign-in", p == "/api/v1/checkout", p == "/api/v1/visit":
		return true
	case strings.HasPrefix(p, "/api/v1/cart"):
		return true
	case p == "/api/v1/products":
		// the catalog listing is public to read, protected to replace
		return c.Method() == fiber.MethodGet
	case strings.HasPrefix(p, "/api/v1/product/"):
		// GET /api/v1/product/:id only; delete stays admin-only
		return c.Method() == fiber.MethodGet
	}
	return false
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + cart.SessionHeader,
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

// bootstrapSchema creates the three tables on first run. Statements are
// idempotent so restarts against an existing database are harmless.
func bootstrapSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS product (
			product_id INT PRIMARY KEY,
			name JSONB NOT NULL,
			description JSONB NOT NULL DEFAULT '{}',
			price INT NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			stock INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			seq SERIAL PRIMARY KEY,
			order_id TEXT UNIQUE NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			total INT NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL,
			order_date TEXT NOT NULL,
			customer_name TEXT NOT NULL DEFAULT '',
			customer_address TEXT NOT NULL DEFAULT '',
			customer_phone TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS analytics (
			id INT PRIMARY KEY,
			daily_visitors INT NOT NULL DEFAULT 0,
			total_visitors INT NOT NULL DEFAULT 0,
			last_visit_date TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func loadProducts(store *snapshot.Store) []catalog.Product {
	var products []catalog.Product
	err := store.Load(snapshot.ProductsKey, &products)
	if errors.Is(err, snapshot.ErrNoSnapshot) {
		obs.Logger.Info("no product snapshot, seeding demo catalog")
		return catalog.SampleProducts()
	}
	if err != nil {
		obs.Logger.Error("product snapshot unreadable, seeding demo catalog", "error", err)
		return catalog.SampleProducts()
	}
	return products
}

func loadOrders(store *snapshot.Store) []order.Order {
	var orders []order.Order
	err := store.Load(snapshot.OrdersKey, &orders)
	if err != nil && !errors.Is(err, snapshot.ErrNoSnapshot) {
		obs.Logger.Error("order snapshot unreadable, starting empty", "error", err)
	}
	return orders
}

func loadAnalytics(store *snapshot.Store) analytics.Analytics {
	var stats analytics.Analytics
	err := store.Load(snapshot.AnalyticsKey, &stats)
	if err != nil && !errors.Is(err, snapshot.ErrNoSnapshot) {
		obs.Logger.Error("analytics snapshot unreadable, starting empty", "error", err)
	}
	return stats
}

func saveSnapshot(store *snapshot.Store, key string, v any) {
	if err := store.Save(key, v); err != nil {
		obs.Logger.Error("snapshot write failed", "key", key, "error", err)
	}
}
