package catalog

import (
	"sort"
	"strings"
)

// AllCategories selects every category when used as Query.Category.
const AllCategories = "All"

// Sort selects the ordering applied after filtering.
type Sort int

const (
	SortName Sort = iota
	SortPriceLow
	SortPriceHigh
	SortRating
	SortNewest
	SortFeatured
)

// Label returns the display label for the sort key.
func (s Sort) Label() string {
	switch s {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortRating:
		return "Highest Rated"
	case SortNewest:
		return "Newest First"
	case SortFeatured:
		return "Featured First"
	default:
		return "Name"
	}
}

// Next returns the following sort key in the cycle.
func (s Sort) Next() Sort {
	if s >= SortFeatured {
		return SortName
	}
	return s + 1
}

// Query captures every browse input that shapes the visible product
// list. The zero value selects everything sorted by name.
type Query struct {
	Category  string // AllCategories or empty keeps every category
	Search    string
	MinPrice  float64
	MaxPrice  float64 // <= 0 disables the upper bound
	MinRating float64
	Sort      Sort
}

// Filter applies a query to a product list and returns the matching
// products in sorted order. It is a pure function: the input slice is
// never modified and the result is deterministic for a given input.
// Ties under every sort key keep their prior relative order.
func Filter(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, p := range products {
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		case SortNewest:
			return a.IsNew && !b.IsNew
		case SortFeatured:
			return a.IsFeatured && !b.IsFeatured
		default:
			return a.Name < b.Name
		}
	})

	return out
}

// Suggest returns up to limit products whose name or category contains
// the term as a case-insensitive substring. An empty term yields no
// suggestions; callers fall back to their trending list instead.
func Suggest(products []Product, term string, limit int) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || limit <= 0 {
		return nil
	}
	var out []Product
	for _, p := range products {
		if !matchesTerm(p, term) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func matchesTerm(p Product, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Category), lowerTerm)
}
