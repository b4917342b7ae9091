package ui

import (
	"fmt"
	"strings"

	"techstore/internal/catalog"
)

// renderHeader renders the status bar: logo, account, cart and wishlist
// counts, and any transient status message.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("techstore", styles.Logo))

	// Account
	if user, ok := m.session.User(); ok {
		parts = append(parts, bg.Render("● "+user.Name, styles.SuccessText))
	} else {
		parts = append(parts, bg.Render("● guest", styles.MutedText))
	}

	// Cart count and total
	cartLabel := "Cart:"
	if compact {
		cartLabel = "C:"
	}
	cartStr := fmt.Sprintf("%d", m.cart.Len())
	if m.cart.Len() > 0 && !compact {
		cartStr += " (" + formatMoney(m.cart.Total()) + ")"
	}
	parts = append(parts,
		bg.Render(cartLabel, styles.MutedText)+bg.Space()+
			bg.Render(cartStr, styles.Text))

	// Wishlist count
	wishLabel := "Wishlist:"
	if compact {
		wishLabel = "W:"
	}
	parts = append(parts,
		bg.Render(wishLabel, styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.wishlist.Len()), styles.Text))

	// Active filter summary
	if summary := m.filterSummary(compact); summary != "" {
		parts = append(parts, bg.Render(summary, styles.InfoText))
	}

	// Transient status
	if m.statusMsg != "" {
		maxLen := 60
		if compact {
			maxLen = 30
		}
		parts = append(parts, bg.Render(truncate(m.statusMsg, maxLen), styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// filterSummary describes the non-default browse filters, or "" when none
// are active.
func (m Model) filterSummary(compact bool) string {
	var active []string
	if m.category != catalog.AllCategories {
		active = append(active, m.category)
	}
	if m.searchTerm != "" {
		active = append(active, "\""+truncate(m.searchTerm, 16)+"\"")
	}
	if m.priceIdx != 0 {
		active = append(active, m.pricePresets()[m.priceIdx].label)
	}
	if m.ratingIdx != 0 {
		active = append(active, ratingPresets[m.ratingIdx].label)
	}
	if len(active) == 0 {
		// Default storefront summary when nothing is filtered
		if m.catalog != nil && !compact {
			return fmt.Sprintf("%d featured, %d new",
				len(m.catalog.Featured()), len(m.catalog.NewArrivals()))
		}
		return ""
	}
	summary := strings.Join(active, ", ")
	maxLen := 50
	if compact {
		maxLen = 24
	}
	return truncate(summary, maxLen)
}

// categoryLabel returns the active category with its product count.
func (m Model) categoryLabel() string {
	if m.category == catalog.AllCategories || m.catalog == nil {
		return m.category
	}
	return fmt.Sprintf("%s (%d)", m.category, m.catalog.CountByCategory(m.category))
}

// renderCommandBar renders the key hints bar for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewCart:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"+/-", "Quantity"},
			{"d", "Remove"},
			{"X", "Clear"},
			{"b", "Browse"},
			{"?", "More"},
		}
	case ViewWishlist:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"m", "To cart"},
			{"d", "Remove"},
			{"X", "Clear"},
			{"b", "Browse"},
			{"?", "More"},
		}
	case ViewAccount:
		if m.session.SignedIn() {
			commands = []cmd{
				{"o", "Sign out"},
				{"b", "Browse"},
				{"?", "More"},
			}
		} else {
			commands = []cmd{
				{"tab", "Next field"},
				{"enter", "Submit"},
				{"ctrl+r", "Login/Register"},
				{"esc", "Back"},
			}
		}
	default: // ViewBrowse
		commands = []cmd{
			{"c", m.categoryLabel()},
			{"s", m.sortMode.Label()},
			{"/", "Search"},
			{"f", "Price"},
			{"r", "Rating"},
			{"x", "Reset"},
			{"a", "Add"},
			{"w", "Wishlist"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
