// Package wishlist holds the saved-products list. It mirrors the cart
// package's command/reducer shape without quantities: membership is
// unique by product identifier and adds are idempotent.
package wishlist

import (
	"techstore/internal/catalog"
)

// Item is one saved product with the denormalized fields the wishlist
// view renders.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Category  string
}

// State is the ordered wishlist contents.
type State struct {
	Items []Item
}

// Command is one wishlist mutation.
type Command interface {
	isWishlistCommand()
}

// Add appends the product unless it is already present.
type Add struct {
	Product catalog.Product
}

// Remove deletes the matching entry; absent identifiers are no-ops.
type Remove struct {
	ID string
}

// Clear empties the wishlist.
type Clear struct{}

func (Add) isWishlistCommand()    {}
func (Remove) isWishlistCommand() {}
func (Clear) isWishlistCommand()  {}

// Apply returns the state that results from running cmd against s
// without modifying the input.
func Apply(s State, cmd Command) State {
	switch c := cmd.(type) {
	case Add:
		for _, item := range s.Items {
			if item.ProductID == c.Product.ID {
				return State{Items: cloneItems(s.Items)}
			}
		}
		items := cloneItems(s.Items)
		items = append(items, Item{
			ProductID: c.Product.ID,
			Name:      c.Product.Name,
			Price:     c.Product.Price,
			Image:     c.Product.Image,
			Category:  c.Product.Category,
		})
		return State{Items: items}

	case Remove:
		var items []Item
		for _, item := range s.Items {
			if item.ProductID != c.ID {
				items = append(items, item)
			}
		}
		return State{Items: items}

	case Clear:
		return State{}
	}

	return State{Items: cloneItems(s.Items)}
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
