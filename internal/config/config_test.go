package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TaxRate != defaultTaxRate {
		t.Fatalf("TaxRate = %v, want %v", cfg.TaxRate, defaultTaxRate)
	}
	if cfg.MaxPrice != defaultMaxPrice {
		t.Fatalf("MaxPrice = %v, want %v", cfg.MaxPrice, defaultMaxPrice)
	}
	if cfg.SuggestionLimit != defaultSuggestionLimit {
		t.Fatalf("SuggestionLimit = %d, want %d", cfg.SuggestionLimit, defaultSuggestionLimit)
	}
	if cfg.CatalogPath != "" {
		t.Fatalf("CatalogPath = %q, want empty", cfg.CatalogPath)
	}
	if len(cfg.Trending) != len(defaultTrending) {
		t.Fatalf("Trending = %v, want defaults", cfg.Trending)
	}
}

func TestLoad_ReadsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
catalog_path = "/srv/catalog.toml"
tax_rate = 0.2
max_price = 5000.0
suggestion_limit = 8
trending = ["Speakers", "Monitors"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogPath != "/srv/catalog.toml" {
		t.Fatalf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.TaxRate != 0.2 || cfg.MaxPrice != 5000 || cfg.SuggestionLimit != 8 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Trending) != 2 || cfg.Trending[0] != "Speakers" {
		t.Fatalf("Trending = %v", cfg.Trending)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tax_rate = 0.0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TaxRate != 0 {
		t.Fatalf("TaxRate = %v, want explicit 0", cfg.TaxRate)
	}
	if cfg.MaxPrice != defaultMaxPrice || cfg.SuggestionLimit != defaultSuggestionLimit {
		t.Fatalf("unset fields must keep defaults: %+v", cfg)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad_toml", "not toml {{{"},
		{"tax_rate_negative", "tax_rate = -0.1\n"},
		{"tax_rate_too_high", "tax_rate = 1.5\n"},
		{"max_price_zero", "max_price = 0.0\n"},
		{"suggestion_limit_zero", "suggestion_limit = 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("Load should fail")
			}
		})
	}
}

func TestLoad_ExpandsCatalogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("catalog_path = \"~/catalog.toml\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, "catalog.toml")
	if cfg.CatalogPath != want {
		t.Fatalf("CatalogPath = %q, want %q", cfg.CatalogPath, want)
	}
}
