package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"techstore/internal/auth"
	"techstore/internal/cart"
	"techstore/internal/catalog"
	"techstore/internal/config"
	"techstore/internal/wishlist"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	return New(Options{
		Catalog:  catalog.Builtin(),
		Cart:     cart.NewStore(),
		Wishlist: wishlist.NewStore(),
		Session:  auth.NewSession(),
		Config:   &cfg,
	})
}

func signIn(t *testing.T, m Model) Model {
	t.Helper()
	if _, err := m.session.Login("shopper@example.com", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return m
}

func TestNewShowsFullCatalog(t *testing.T) {
	m := newTestModel(t)

	if len(m.visible) != len(m.products) {
		t.Fatalf("visible = %d products, want %d", len(m.visible), len(m.products))
	}
	if m.category != catalog.AllCategories {
		t.Fatalf("category = %q, want %q", m.category, catalog.AllCategories)
	}
	if m.sortMode != catalog.SortName {
		t.Fatalf("sortMode = %v, want SortName", m.sortMode)
	}
	for i := 1; i < len(m.visible); i++ {
		if m.visible[i-1].Name > m.visible[i].Name {
			t.Fatalf("products not in name order: %q before %q",
				m.visible[i-1].Name, m.visible[i].Name)
		}
	}
	if m.quantity != 1 {
		t.Fatalf("quantity = %d, want 1", m.quantity)
	}
}

func TestApplyFiltersCategory(t *testing.T) {
	m := newTestModel(t)

	m.category = "Audio"
	m.applyFilters()

	if len(m.visible) == 0 {
		t.Fatal("no Audio products visible")
	}
	for _, p := range m.visible {
		if p.Category != "Audio" {
			t.Fatalf("product %s has category %q, want Audio", p.ID, p.Category)
		}
	}
}

func TestApplyFiltersPricePreset(t *testing.T) {
	m := newTestModel(t)

	m.priceIdx = 1 // Under $100
	m.applyFilters()

	if len(m.visible) == 0 {
		t.Fatal("no products under $100")
	}
	for _, p := range m.visible {
		if p.Price > 100 {
			t.Fatalf("product %s priced %v leaked through Under $100", p.ID, p.Price)
		}
	}
}

func TestApplyFiltersPreservesSelectionByID(t *testing.T) {
	m := newTestModel(t)

	m.selectedRow = 5
	id := m.visible[5].ID

	m.sortMode = catalog.SortPriceLow
	m.applyFilters()

	if got := m.visible[m.selectedRow].ID; got != id {
		t.Fatalf("selection moved to product %s, want %s", got, id)
	}
}

func TestCycleCategoryWrapsToAll(t *testing.T) {
	m := newTestModel(t)

	choices := m.categoryChoices()
	for range choices {
		m.cycleCategory()
	}
	if m.category != catalog.AllCategories {
		t.Fatalf("category after full cycle = %q, want %q", m.category, catalog.AllCategories)
	}
}

func TestClearFilters(t *testing.T) {
	m := newTestModel(t)

	m.category = "Gaming"
	m.searchTerm = "pro"
	m.priceIdx = 2
	m.ratingIdx = 1
	m.sortMode = catalog.SortPriceHigh
	m.applyFilters()

	m.clearFilters()

	if m.category != catalog.AllCategories || m.searchTerm != "" || m.priceIdx != 0 || m.ratingIdx != 0 {
		t.Fatalf("filters not reset: %q %q %d %d", m.category, m.searchTerm, m.priceIdx, m.ratingIdx)
	}
	if m.sortMode != catalog.SortName {
		t.Fatalf("sortMode = %v, want SortName", m.sortMode)
	}
	if len(m.visible) != len(m.products) {
		t.Fatalf("visible = %d, want %d", len(m.visible), len(m.products))
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	m := newTestModel(t)

	m.moveSelection(-10)
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow = %d, want 0", m.selectedRow)
	}

	m.moveSelection(len(m.visible) + 10)
	if m.selectedRow != len(m.visible)-1 {
		t.Fatalf("selectedRow = %d, want %d", m.selectedRow, len(m.visible)-1)
	}
}

func TestAddToCartRequiresSignIn(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.addSelectedToCart()
	m = updated.(Model)

	if m.modalMsg != authGateNotice {
		t.Fatalf("modalMsg = %q, want gate notice", m.modalMsg)
	}
	if cmd != nil {
		t.Fatal("expected no command for gated add")
	}
	if m.cart.Len() != 0 {
		t.Fatalf("cart has %d items, want 0", m.cart.Len())
	}
}

func TestAddToCartStartsPendingAdd(t *testing.T) {
	m := signIn(t, newTestModel(t))

	updated, cmd := m.addSelectedToCart()
	m = updated.(Model)

	if !m.adding {
		t.Fatal("adding not set")
	}
	if m.addingID != m.visible[m.selectedRow].ID {
		t.Fatalf("addingID = %q, want %q", m.addingID, m.visible[m.selectedRow].ID)
	}
	if cmd == nil {
		t.Fatal("expected a delayed add command")
	}
	// Nothing lands in the cart until the delay elapses
	if m.cart.Len() != 0 {
		t.Fatalf("cart has %d items before delay, want 0", m.cart.Len())
	}
}

func TestHandleCartAddedCommits(t *testing.T) {
	m := signIn(t, newTestModel(t))
	p := m.visible[0]

	updated, _ := m.handleCartAdded(cartAddedMsg{product: p, quantity: 2})
	m = updated.(Model)

	if m.adding {
		t.Fatal("adding still set after commit")
	}
	items := m.cart.Items()
	if len(items) != 1 || items[0].ProductID != p.ID || items[0].Quantity != 2 {
		t.Fatalf("cart items = %+v, want one line of %s x2", items, p.ID)
	}
}

func TestHandleCartAddedIncrementsExisting(t *testing.T) {
	m := signIn(t, newTestModel(t))
	p := m.visible[0]
	m.cart.Add(p)
	m.cart.SetQuantity(p.ID, 3)

	updated, _ := m.handleCartAdded(cartAddedMsg{product: p, quantity: 2})
	m = updated.(Model)

	items := m.cart.Items()
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("cart items = %+v, want one line x5", items)
	}
}

func TestWishlistToggleRequiresSignIn(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.toggleSelectedWishlist()
	m = updated.(Model)

	if m.modalMsg != authGateNotice {
		t.Fatalf("modalMsg = %q, want gate notice", m.modalMsg)
	}
	if m.wishlist.Len() != 0 {
		t.Fatalf("wishlist has %d items, want 0", m.wishlist.Len())
	}
}

func TestWishlistToggleAddsAndRemoves(t *testing.T) {
	m := signIn(t, newTestModel(t))
	p := m.visible[m.selectedRow]

	updated, _ := m.toggleSelectedWishlist()
	m = updated.(Model)
	if !m.wishlist.Contains(p.ID) {
		t.Fatal("product not added to wishlist")
	}

	updated, _ = m.toggleSelectedWishlist()
	m = updated.(Model)
	if m.wishlist.Contains(p.ID) {
		t.Fatal("product not removed from wishlist")
	}
}

func TestMoveToCartCommitsAndClearsWishlist(t *testing.T) {
	m := signIn(t, newTestModel(t))
	p := m.visible[0]
	m.wishlist.Add(p)

	moveKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}
	updated, cmd := m.handleWishlistKey(moveKey)
	m = updated.(Model)

	if cmd == nil || !m.adding || m.addingID != p.ID {
		t.Fatalf("move did not start a pending add for %s", p.ID)
	}
	if m.wishlist.Contains(p.ID) {
		t.Fatal("moved product still in wishlist")
	}

	updated, _ = m.handleCartAdded(cartAddedMsg{product: p, quantity: 1})
	m = updated.(Model)
	items := m.cart.Items()
	if len(items) != 1 || items[0].ProductID != p.ID || items[0].Quantity != 1 {
		t.Fatalf("cart items = %+v, want one line of %s x1", items, p.ID)
	}
}

func TestMoveToCartWaitsForPendingAdd(t *testing.T) {
	m := signIn(t, newTestModel(t))
	first := m.visible[0]
	second := m.visible[1]
	m.wishlist.Add(first)
	m.wishlist.Add(second)

	moveKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}
	updated, _ := m.handleWishlistKey(moveKey)
	m = updated.(Model)

	// A second move while the first add is still pending is ignored and
	// must leave the remaining wishlist entry in place.
	updated, cmd := m.handleWishlistKey(moveKey)
	m = updated.(Model)
	if cmd != nil {
		t.Fatal("second move scheduled a command during a pending add")
	}
	if !m.wishlist.Contains(second.ID) {
		t.Fatalf("product %s dropped from wishlist during pending add", second.ID)
	}

	updated, _ = m.handleCartAdded(cartAddedMsg{product: first, quantity: 1})
	m = updated.(Model)

	updated, _ = m.handleWishlistKey(moveKey)
	m = updated.(Model)
	updated, _ = m.handleCartAdded(cartAddedMsg{product: second, quantity: 1})
	m = updated.(Model)

	if m.cart.Len() != 2 {
		t.Fatalf("cart has %d lines, want 2", m.cart.Len())
	}
	if m.wishlist.Len() != 0 {
		t.Fatalf("wishlist has %d items after both moves, want 0", m.wishlist.Len())
	}
}

func TestPricePresetsDeriveFromConfigCeiling(t *testing.T) {
	m := newTestModel(t)

	def := m.pricePresets()
	if def[1].max != 100 || def[2].max != 500 || def[3].max != 1000 {
		t.Fatalf("default band edges = %+v, want 100/500/1000", def)
	}

	m.config.MaxPrice = 5000
	got := m.pricePresets()
	if got[1].max != 250 || got[2].max != 1250 || got[3].max != 2500 {
		t.Fatalf("band edges for ceiling 5000 = %+v, want 250/1250/2500", got)
	}
	if got[1].label != "Under $250" || got[4].label != "$2500 and up" {
		t.Fatalf("band labels = %q, %q", got[1].label, got[4].label)
	}

	m.priceIdx = 1
	m.applyFilters()
	for _, p := range m.visible {
		if p.Price > 250 {
			t.Fatalf("product %s priced %v leaked through %s", p.ID, p.Price, got[1].label)
		}
	}
}

func TestViewCycle(t *testing.T) {
	order := []View{ViewBrowse, ViewCart, ViewWishlist, ViewAccount}
	for i, v := range order {
		if got := nextView(v); got != order[(i+1)%len(order)] {
			t.Fatalf("nextView(%v) = %v, want %v", v, got, order[(i+1)%len(order)])
		}
		if got := prevView(order[(i+1)%len(order)]); got != v {
			t.Fatalf("prevView(%v) = %v, want %v", order[(i+1)%len(order)], got, v)
		}
	}
}
