package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("API base URL default: got %q", cfg.API.BaseURL)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("output dir default: got %q", cfg.Output.Dir)
	}
	if cfg.Company.Name != "" {
		t.Errorf("company name should default to empty, got %q", cfg.Company.Name)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.kingcart.example")
	t.Setenv("COMPANY_NAME", "KING CART LTD")
	t.Setenv("OUTPUT_DIR", "/tmp/reports")

	cfg := Load()

	if cfg.API.BaseURL != "https://api.kingcart.example" {
		t.Errorf("API base URL: got %q", cfg.API.BaseURL)
	}
	if cfg.Company.Name != "KING CART LTD" {
		t.Errorf("company name: got %q", cfg.Company.Name)
	}
	if cfg.Output.Dir != "/tmp/reports" {
		t.Errorf("output dir: got %q", cfg.Output.Dir)
	}
}
