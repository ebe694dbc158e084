package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Region != "ap-south-1" {
		t.Errorf("region = %q, want ap-south-1", cfg.Region)
	}
	if cfg.AgentsTable != "Agent" {
		t.Errorf("agents table = %q, want Agent", cfg.AgentsTable)
	}
	if cfg.OrdersTable != "Orders" {
		t.Errorf("orders table = %q, want Orders", cfg.OrdersTable)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("PRODUCTS_TABLE", "ProductStaging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Errorf("region = %q, want eu-west-1", cfg.Region)
	}
	if cfg.ProductsTable != "ProductStaging" {
		t.Errorf("products table = %q, want ProductStaging", cfg.ProductsTable)
	}
}

func TestOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://app.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	origins := cfg.Origins()
	if len(origins) != 2 {
		t.Fatalf("origins = %v, want 2 entries", origins)
	}
	if origins[1] != "https://app.example.com" {
		t.Errorf("origins[1] = %q", origins[1])
	}
}
