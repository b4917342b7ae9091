package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techstore/internal/wishlist"
)

// handleWishlistKey processes keyboard input for the wishlist view.
func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.wishlist.Items()
	count := len(items)

	switch msg.String() {
	case "j", "down":
		if m.wishRow < count-1 {
			m.wishRow++
		}
		return m, nil

	case "k", "up":
		if m.wishRow > 0 {
			m.wishRow--
		}
		return m, nil

	case "d":
		if it, ok := m.selectedWishItem(); ok {
			m.wishlist.Remove(it.ProductID)
			if m.wishRow >= m.wishlist.Len() && m.wishRow > 0 {
				m.wishRow--
			}
			return m, m.setStatus("Removed " + it.Name + " from wishlist")
		}
		return m, nil

	case "m":
		// Move the highlighted item to the cart
		if m.adding {
			return m, nil
		}
		it, ok := m.selectedWishItem()
		if !ok {
			return m, nil
		}
		p, found := m.catalog.ByID(it.ProductID)
		if !found {
			return m, nil
		}
		m.wishlist.Remove(it.ProductID)
		if m.wishRow >= m.wishlist.Len() && m.wishRow > 0 {
			m.wishRow--
		}
		m.adding = true
		m.addingID = p.ID
		return m, tea.Batch(m.spin.Tick, addToCartCmd(p, 1))

	case "X":
		if count > 0 {
			m.wishlist.Clear()
			m.wishRow = 0
			return m, m.setStatus("Wishlist cleared")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selectedWishItem() (wishlist.Item, bool) {
	items := m.wishlist.Items()
	if m.wishRow < 0 || m.wishRow >= len(items) {
		return wishlist.Item{}, false
	}
	return items[m.wishRow], true
}

// renderWishlist renders the wishlist view.
func (m Model) renderWishlist() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2
	items := m.wishlist.Items()

	if len(items) == 0 {
		emptyMsg := styles.MutedText.Render("Your wishlist is empty") + "\n\n" +
			styles.FaintText.Render("Press w on a product to save it for later")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	bgColor := m.theme.SurfaceAlt
	rowWidth := m.width - 2

	var lines []string
	for i, it := range items {
		if i == m.wishRow {
			content := m.formatWishRow(it, rowWidth, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(rowWidth).
				Render(content))
		} else {
			content := m.formatWishRow(it, rowWidth, bgColor, false)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Width(rowWidth).
				Render(content))
		}
	}

	title := fmt.Sprintf("Wishlist (%d)", len(items))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, contentHeight, true)
}

// formatWishRow formats one wishlist line: "Name · Category  $price".
func (m Model) formatWishRow(it wishlist.Item, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	price := formatMoney(it.Price)
	nameWidth := max(width-len(it.Category)-len(price)-8, 10)

	var nameStyle, catStyle, priceStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle = selText
		catStyle = selText
		priceStyle = selText
	} else {
		styles := m.theme.Styles()
		nameStyle = styles.Text
		catStyle = styles.FaintText
		priceStyle = styles.AccentText
	}

	return bg.Render(truncate(it.Name, nameWidth), nameStyle) +
		bg.Render(" · ", catStyle) +
		bg.Render(it.Category, catStyle) +
		bg.Spaces(2) + bg.Render(price, priceStyle)
}
