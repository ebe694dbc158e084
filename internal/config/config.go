// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting. All fields have defaults so
// a bare environment still yields a runnable configuration.
type Config struct {
	Addr   string `env:"HTTP_ADDR,default=:8080"`
	Region string `env:"AWS_REGION,default=ap-south-1"`

	OrdersTable   string `env:"ORDERS_TABLE,default=Orders"`
	AccountsTable string `env:"ACCOUNTS_TABLE,default=Accounts"`
	AgentsTable   string `env:"AGENTS_TABLE,default=Agent"`
	PartyTable    string `env:"PARTY_TABLE,default=Party"`
	ProductsTable string `env:"PRODUCTS_TABLE,default=Product"`

	// CORSOrigins is a comma-separated list of allowed origins.
	CORSOrigins string `env:"CORS_ORIGINS,default=http://localhost:3000"`
}

// Load reads .env (if present) and decodes the configuration from the
// environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Origins returns the allowed CORS origins as a slice.
func (c Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
