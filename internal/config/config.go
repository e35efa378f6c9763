// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
)

// Config holds the knobs main needs to wire the application together.
type Config struct {
	Addr        string
	DatabaseURL string
	DataDir     string
	JWTSecret   string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	WhatsAppNumber    string
	LowStockThreshold int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from environment with defaults.
//
// The default admin credential pair mirrors the seeded store account and is
// only a placeholder; set ADMIN_USERNAME and ADMIN_PASSWORD_HASH (bcrypt) for
// anything beyond local use.
func Load() Config {
	return Config{
		Addr:              getenv("STOREFRONT_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DataDir:           getenv("STOREFRONT_DATA_DIR", "./data"),
		JWTSecret:         getenv("JWT_SECRET", "devan-dev-secret"),
		AdminUsername:     getenv("ADMIN_USERNAME", "DEVAN23"),
		AdminPassword:     getenv("ADMIN_PASSWORD", "sardam1234@"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		WhatsAppNumber:    getenv("WHATSAPP_NUMBER", "9647507276624"),
		LowStockThreshold: atoienv("LOW_STOCK_THRESHOLD", 5),
	}
}
