package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techstore/internal/cart"
)

// handleCartKey processes keyboard input for the cart view.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cart.Items()
	count := len(items)

	switch msg.String() {
	case "j", "down":
		if m.cartRow < count-1 {
			m.cartRow++
		}
		return m, nil

	case "k", "up":
		if m.cartRow > 0 {
			m.cartRow--
		}
		return m, nil

	case "+", "=":
		if it, ok := m.selectedCartItem(); ok {
			m.cart.SetQuantity(it.ProductID, it.Quantity+1)
		}
		return m, nil

	case "-":
		if it, ok := m.selectedCartItem(); ok && it.Quantity > 1 {
			m.cart.SetQuantity(it.ProductID, it.Quantity-1)
		}
		return m, nil

	case "d":
		if it, ok := m.selectedCartItem(); ok {
			m.cart.Remove(it.ProductID)
			if m.cartRow >= m.cart.Len() && m.cartRow > 0 {
				m.cartRow--
			}
			return m, m.setStatus("Removed " + it.Name + " from cart")
		}
		return m, nil

	case "X":
		if count > 0 {
			m.cart.Clear()
			m.cartRow = 0
			return m, m.setStatus("Cart cleared")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selectedCartItem() (cart.Item, bool) {
	items := m.cart.Items()
	if m.cartRow < 0 || m.cartRow >= len(items) {
		return cart.Item{}, false
	}
	return items[m.cartRow], true
}

// renderCart renders the cart view with an order summary pane.
func (m Model) renderCart() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2
	items := m.cart.Items()

	if len(items) == 0 {
		emptyMsg := styles.MutedText.Render("Your cart is empty") + "\n\n" +
			styles.FaintText.Render("b: browse products")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	summaryWidth := min(m.width*35/100, 44)
	listWidth := m.width - summaryWidth

	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	paneStyles := m.theme.Styles().WithBackground(bgColor)

	// Item rows
	var lines []string
	rowWidth := listWidth - 2
	for i, it := range items {
		if i == m.cartRow {
			content := m.formatCartRow(it.Name, it.Price, it.Quantity, rowWidth, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(rowWidth).
				Render(content))
		} else {
			content := m.formatCartRow(it.Name, it.Price, it.Quantity, rowWidth, bgColor, false)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Width(rowWidth).
				Render(content))
		}
	}
	listTitle := fmt.Sprintf("Cart (%d)", len(items))
	listPane := m.renderTitledBox(listTitle, strings.Join(lines, "\n"), listWidth, contentHeight, true)

	// Order summary
	subtotal := m.cart.Total()
	tax := m.cart.Tax(m.config.TaxRate)
	grand := m.cart.GrandTotal(m.config.TaxRate)

	var sb strings.Builder
	sb.WriteString(summaryLine(bg, paneStyles, "Subtotal", formatMoney(subtotal)))
	sb.WriteString("\n")
	sb.WriteString(bg.Render("Shipping", paneStyles.MutedText) + bg.Spaces(2) +
		bg.Render("Free", paneStyles.SuccessText))
	sb.WriteString("\n")
	sb.WriteString(summaryLine(bg, paneStyles, fmt.Sprintf("Tax (%.0f%%)", m.config.TaxRate*100), formatMoney(tax)))
	sb.WriteString("\n\n")
	sb.WriteString(bg.Render("Total", paneStyles.Text.Bold(true)) + bg.Spaces(2) +
		bg.Render(formatMoney(grand), paneStyles.AccentText.Bold(true)))
	summaryPane := m.renderTitledBox("Order Summary", sb.String(), summaryWidth, contentHeight, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, summaryPane)
}

func summaryLine(bg BgStyle, styles Styles, label, value string) string {
	return bg.Render(label, styles.MutedText) + bg.Spaces(2) + bg.Render(value, styles.Text)
}

// formatCartRow formats one cart line: "Name  xQty  $line-total".
func (m Model) formatCartRow(name string, price float64, quantity int, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	qty := fmt.Sprintf("x%d", quantity)
	total := formatMoney(price * float64(quantity))

	nameWidth := max(width-len(qty)-len(total)-6, 10)

	var nameStyle, qtyStyle, totalStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle = selText
		qtyStyle = selText
		totalStyle = selText
	} else {
		styles := m.theme.Styles()
		nameStyle = styles.Text
		qtyStyle = styles.MutedText
		totalStyle = styles.AccentText
	}

	return bg.Render(truncate(name, nameWidth), nameStyle) +
		bg.Spaces(2) + bg.Render(qty, qtyStyle) +
		bg.Spaces(2) + bg.Render(total, totalStyle)
}
