package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the storefront settings an operator can tune.
type Config struct {
	CatalogPath     string   // optional external catalog TOML; empty uses the built-in fixture
	TaxRate         float64  // applied to the cart subtotal in the order summary
	MaxPrice        float64  // ceiling the browse price bands are derived from
	SuggestionLimit int      // cap on search type-ahead results
	Trending        []string // search terms offered while the search box is empty
}

const (
	defaultConfigPath      = "~/.config/techstore/config.toml"
	defaultTaxRate         = 0.08
	defaultMaxPrice        = 2000
	defaultSuggestionLimit = 5
)

var defaultTrending = []string{"Headphones", "Gaming", "Smartphone", "Laptop", "Smart Watch"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TaxRate:         defaultTaxRate,
		MaxPrice:        defaultMaxPrice,
		SuggestionLimit: defaultSuggestionLimit,
		Trending:        append([]string(nil), defaultTrending...),
	}
}

// Load locates and parses the storefront config, falling back to
// defaults when the file is missing. Fields left unset in the file keep
// their defaults; an unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath     string   `toml:"catalog_path"`
		TaxRate         *float64 `toml:"tax_rate"`
		MaxPrice        *float64 `toml:"max_price"`
		SuggestionLimit *int     `toml:"suggestion_limit"`
		Trending        []string `toml:"trending"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.CatalogPath); p != "" {
		cfg.CatalogPath = mustExpand(p)
	}
	if raw.TaxRate != nil {
		if *raw.TaxRate < 0 || *raw.TaxRate >= 1 {
			return Config{}, fmt.Errorf("tax_rate %v out of range [0, 1)", *raw.TaxRate)
		}
		cfg.TaxRate = *raw.TaxRate
	}
	if raw.MaxPrice != nil {
		if *raw.MaxPrice <= 0 {
			return Config{}, fmt.Errorf("max_price must be positive, got %v", *raw.MaxPrice)
		}
		cfg.MaxPrice = *raw.MaxPrice
	}
	if raw.SuggestionLimit != nil {
		if *raw.SuggestionLimit < 1 {
			return Config{}, fmt.Errorf("suggestion_limit must be at least 1, got %d", *raw.SuggestionLimit)
		}
		cfg.SuggestionLimit = *raw.SuggestionLimit
	}
	if len(raw.Trending) > 0 {
		cfg.Trending = raw.Trending
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
