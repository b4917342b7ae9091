package catalog

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a catalog from a TOML file. The file holds a list of
// [[products]] tables mirroring the Product fields. Unlike config and
// prefs loading there is no graceful fallback: a configured catalog
// that cannot be read or fails validation is an operator error.
func Load(path string) (*Catalog, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw struct {
		Products []struct {
			ID            string   `toml:"id"`
			Name          string   `toml:"name"`
			Price         float64  `toml:"price"`
			OriginalPrice float64  `toml:"original_price"`
			Image         string   `toml:"image"`
			Category      string   `toml:"category"`
			Rating        float64  `toml:"rating"`
			Reviews       int      `toml:"reviews"`
			Description   string   `toml:"description"`
			Features      []string `toml:"features"`
			IsNew         bool     `toml:"is_new"`
			IsFeatured    bool     `toml:"is_featured"`
		} `toml:"products"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(raw.Products) == 0 {
		return nil, fmt.Errorf("catalog %s contains no products", path)
	}

	seen := make(map[string]struct{}, len(raw.Products))
	products := make([]Product, 0, len(raw.Products))
	for i, rp := range raw.Products {
		if rp.ID == "" {
			return nil, fmt.Errorf("product %d: missing id", i)
		}
		if _, dup := seen[rp.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %q", i, rp.ID)
		}
		seen[rp.ID] = struct{}{}
		if rp.Name == "" {
			return nil, fmt.Errorf("product %q: missing name", rp.ID)
		}
		if rp.Price < 0 {
			return nil, fmt.Errorf("product %q: negative price", rp.ID)
		}
		if rp.Rating < 0 || rp.Rating > 5 {
			return nil, fmt.Errorf("product %q: rating %v out of range", rp.ID, rp.Rating)
		}
		if rp.Reviews < 0 {
			return nil, fmt.Errorf("product %q: negative review count", rp.ID)
		}
		products = append(products, Product{
			ID:            rp.ID,
			Name:          rp.Name,
			Price:         rp.Price,
			OriginalPrice: rp.OriginalPrice,
			Image:         rp.Image,
			Category:      rp.Category,
			Rating:        rp.Rating,
			Reviews:       rp.Reviews,
			Description:   rp.Description,
			Features:      rp.Features,
			IsNew:         rp.IsNew,
			IsFeatured:    rp.IsFeatured,
		})
	}

	return New(products), nil
}
