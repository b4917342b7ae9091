// Package cart holds the shopping cart state and its mutation commands.
//
// Mutations are expressed as a tagged command type consumed by Apply, a
// pure transition function from (State, Command) to State. The Store
// wraps the current State behind a mutex and is the only handle the
// rest of the application sees. Commands referencing unknown product
// identifiers are silent no-ops; no cart operation can fail.
package cart

import (
	"techstore/internal/catalog"
)

// Item is one cart line: a product reference plus the denormalized
// fields the cart view renders, and a quantity of at least 1.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Category  string
	Quantity  int
}

// Subtotal returns price times quantity for this line.
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// State is the complete cart contents: ordered line items plus the
// running total, recomputed on every transition.
type State struct {
	Items []Item
	Total float64
}

// Command is one cart mutation.
type Command interface {
	isCartCommand()
}

// Add appends a quantity-1 line for the product. Adding a product that
// already has a line is a no-op; the existing quantity is kept as is.
type Add struct {
	Product catalog.Product
}

// SetQuantity replaces the quantity of the matching line. Values below
// 1 clamp to 1; a line never drops out of the cart through its
// quantity, only through Remove.
type SetQuantity struct {
	ID       string
	Quantity int
}

// Remove deletes the matching line.
type Remove struct {
	ID string
}

// Clear empties the cart.
type Clear struct{}

func (Add) isCartCommand()         {}
func (SetQuantity) isCartCommand() {}
func (Remove) isCartCommand()      {}
func (Clear) isCartCommand()       {}

// Apply returns the state that results from running cmd against s. The
// input state is never modified.
func Apply(s State, cmd Command) State {
	var items []Item

	switch c := cmd.(type) {
	case Add:
		items = cloneItems(s.Items)
		if indexOf(items, c.Product.ID) < 0 {
			items = append(items, Item{
				ProductID: c.Product.ID,
				Name:      c.Product.Name,
				Price:     c.Product.Price,
				Image:     c.Product.Image,
				Category:  c.Product.Category,
				Quantity:  1,
			})
		}

	case SetQuantity:
		items = cloneItems(s.Items)
		if i := indexOf(items, c.ID); i >= 0 {
			items[i].Quantity = max(c.Quantity, 1)
		}

	case Remove:
		for _, item := range s.Items {
			if item.ProductID != c.ID {
				items = append(items, item)
			}
		}

	case Clear:
		items = nil

	default:
		items = cloneItems(s.Items)
	}

	return State{Items: items, Total: sumItems(items)}
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

func indexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ProductID == id {
			return i
		}
	}
	return -1
}

func sumItems(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
