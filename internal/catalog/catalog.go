package catalog

import "math"

// Product is a single purchasable record. Products are immutable once
// loaded; every other package works with copies.
type Product struct {
	ID            string
	Name          string
	Price         float64
	OriginalPrice float64 // zero when the product was never discounted
	Image         string
	Category      string
	Rating        float64 // 0-5
	Reviews       int
	Description   string
	Features      []string
	IsNew         bool
	IsFeatured    bool
}

// Catalog holds the full product list in fixture order.
type Catalog struct {
	products []Product
}

// New wraps a product slice in a Catalog. The slice is copied so later
// mutation by the caller cannot leak into the catalog.
func New(products []Product) *Catalog {
	dup := make([]Product, len(products))
	copy(dup, products)
	return &Catalog{products: dup}
}

// Products returns a copy of every product in fixture order.
func (c *Catalog) Products() []Product {
	dup := make([]Product, len(c.products))
	copy(dup, c.products)
	return dup
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID returns the product with the given identifier.
func (c *Catalog) ByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the unique category names in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.products))
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// CountByCategory returns how many products carry the given category.
func (c *Catalog) CountByCategory(category string) int {
	n := 0
	for _, p := range c.products {
		if p.Category == category {
			n++
		}
	}
	return n
}

// Featured returns the products flagged as featured, in fixture order.
func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// NewArrivals returns the products flagged as new, in fixture order.
func (c *Catalog) NewArrivals() []Product {
	var out []Product
	for _, p := range c.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit products sharing a category with p,
// excluding p itself.
func (c *Catalog) Related(p Product, limit int) []Product {
	if limit <= 0 {
		return nil
	}
	var out []Product
	for _, other := range c.products {
		if other.ID == p.ID || other.Category != p.Category {
			continue
		}
		out = append(out, other)
		if len(out) == limit {
			break
		}
	}
	return out
}

// DiscountPercent returns the rounded percentage off the original
// price, or 0 when the product is not discounted.
func DiscountPercent(p Product) int {
	if p.OriginalPrice <= p.Price || p.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}
