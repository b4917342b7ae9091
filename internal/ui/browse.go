package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techstore/internal/catalog"
)

// pricePreset is one selectable price band. Min/Max of 0 mean unbounded.
type pricePreset struct {
	label string
	min   float64
	max   float64
}

// pricePresets returns the selectable price bands, derived from the
// configured filter ceiling. The default ceiling of 2000 yields band
// edges at 100, 500 and 1000.
func (m *Model) pricePresets() []pricePreset {
	ceiling := 2000.0
	if m.config != nil && m.config.MaxPrice > 0 {
		ceiling = m.config.MaxPrice
	}
	low := ceiling / 20
	mid := ceiling / 4
	high := ceiling / 2
	return []pricePreset{
		{"All prices", 0, 0},
		{fmt.Sprintf("Under $%.0f", low), 0, low},
		{fmt.Sprintf("$%.0f - $%.0f", low, mid), low, mid},
		{fmt.Sprintf("$%.0f - $%.0f", mid, high), mid, high},
		{fmt.Sprintf("$%.0f and up", high), high, 0},
	}
}

// ratingPresets are the selectable minimum-rating thresholds.
var ratingPresets = []struct {
	label string
	min   float64
}{
	{"Any rating", 0},
	{"3.0 and up", 3.0},
	{"4.0 and up", 4.0},
	{"4.5 and up", 4.5},
}

// applyFilters recomputes the visible product list from the current
// filter state, preserving the selection by product ID when possible.
func (m *Model) applyFilters() {
	var selectedID string
	if p, ok := m.selectedProduct(); ok {
		selectedID = p.ID
	}

	band := m.pricePresets()[m.priceIdx]
	q := catalog.Query{
		Category:  m.category,
		Search:    m.searchTerm,
		MinPrice:  band.min,
		MaxPrice:  band.max,
		MinRating: ratingPresets[m.ratingIdx].min,
		Sort:      m.sortMode,
	}
	m.visible = catalog.Filter(m.products, q)

	if len(m.visible) == 0 {
		m.selectedRow = 0
		return
	}

	if selectedID != "" {
		for i, p := range m.visible {
			if p.ID == selectedID {
				m.selectedRow = i
				return
			}
		}
	}

	if m.selectedRow >= len(m.visible) {
		m.selectedRow = len(m.visible) - 1
	}
	m.quantity = 1
	m.updateDetailViewport()
}

// selectedProduct returns the currently highlighted product.
func (m *Model) selectedProduct() (catalog.Product, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.visible) {
		return catalog.Product{}, false
	}
	return m.visible[m.selectedRow], true
}

// categoryChoices returns All plus every catalog category.
func (m *Model) categoryChoices() []string {
	choices := []string{catalog.AllCategories}
	if m.catalog != nil {
		choices = append(choices, m.catalog.Categories()...)
	}
	return choices
}

// cycleCategory advances to the next category choice.
func (m *Model) cycleCategory() {
	choices := m.categoryChoices()
	for i, c := range choices {
		if c == m.category {
			m.category = choices[(i+1)%len(choices)]
			m.applyFilters()
			return
		}
	}
	m.category = choices[0]
	m.applyFilters()
}

// clearFilters resets every filter to its default.
func (m *Model) clearFilters() {
	m.category = catalog.AllCategories
	m.searchTerm = ""
	m.priceIdx = 0
	m.ratingIdx = 0
	m.sortMode = catalog.SortName
	m.applyFilters()
}

// moveSelection moves the highlighted row by delta, clamped to bounds.
func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	row := m.selectedRow + delta
	row = max(row, 0)
	row = min(row, len(m.visible)-1)
	if row != m.selectedRow {
		m.selectedRow = row
		m.quantity = 1
		m.updateDetailViewport()
	}
}

// handleBrowseKey processes keyboard input for the browse view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.focusedPane == 1 {
			m.detailViewport.ScrollDown(1)
			return m, nil
		}
		m.moveSelection(1)
		return m, nil

	case "k", "up":
		if m.focusedPane == 1 {
			m.detailViewport.ScrollUp(1)
			return m, nil
		}
		m.moveSelection(-1)
		return m, nil

	case "g", "home":
		m.moveSelection(-len(m.visible))
		return m, nil

	case "G", "end":
		m.moveSelection(len(m.visible))
		return m, nil

	case "enter":
		m.focusedPane = 1 - m.focusedPane
		return m, nil

	case "c":
		m.cycleCategory()
		return m, nil

	case "s":
		m.sortMode = m.sortMode.Next()
		m.applyFilters()
		return m, nil

	case "f":
		m.priceIdx = (m.priceIdx + 1) % len(m.pricePresets())
		m.applyFilters()
		return m, nil

	case "r":
		m.ratingIdx = (m.ratingIdx + 1) % len(ratingPresets)
		m.applyFilters()
		return m, nil

	case "x":
		m.clearFilters()
		return m, nil

	case "/":
		m.startSearch()
		return m, nil

	case "+", "=":
		m.quantity = min(m.quantity+1, MaxQuantity)
		m.updateDetailViewport()
		return m, nil

	case "-":
		// Decrement stops at one, mirroring the disabled stepper button
		m.quantity = max(m.quantity-1, 1)
		m.updateDetailViewport()
		return m, nil

	case "a":
		return m.addSelectedToCart()

	case "w":
		return m.toggleSelectedWishlist()
	}

	return m, nil
}

// addSelectedToCart starts the delayed add for the highlighted product.
func (m Model) addSelectedToCart() (tea.Model, tea.Cmd) {
	p, ok := m.selectedProduct()
	if !ok {
		return m, nil
	}
	if !m.session.SignedIn() {
		m.modalMsg = authGateNotice
		return m, nil
	}
	if m.adding {
		return m, nil
	}

	m.adding = true
	m.addingID = p.ID
	return m, tea.Batch(m.spin.Tick, addToCartCmd(p, m.quantity))
}

// toggleSelectedWishlist adds or removes the highlighted product from the
// wishlist.
func (m Model) toggleSelectedWishlist() (tea.Model, tea.Cmd) {
	p, ok := m.selectedProduct()
	if !ok {
		return m, nil
	}
	if !m.session.SignedIn() {
		m.modalMsg = authGateNotice
		return m, nil
	}

	if m.wishlist.Contains(p.ID) {
		m.wishlist.Remove(p.ID)
		return m, m.setStatus("Removed " + p.Name + " from wishlist")
	}

	m.wishlist.Add(p)
	return m, m.setStatus("Saved " + p.Name + " to wishlist")
}

// renderBrowse renders the browse view with split layout (table + detail).
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // header + command bar
	if m.searching {
		contentHeight -= m.searchBarHeight()
	}

	if len(m.visible) == 0 {
		emptyMsg := styles.MutedText.Render("No products match the current filters")
		empty := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
		if m.searching {
			return m.renderSearchBar() + "\n" + empty
		}
		return empty
	}

	// Extra wide terminals give the detail pane more room
	var tableWidth int
	if m.width >= LayoutExtraWideWidth {
		tableWidth = m.width * 35 / 100
	} else {
		tableWidth = m.width * 45 / 100
	}
	detailWidth := m.width - tableWidth

	tableTitle := fmt.Sprintf("Products %d/%d", len(m.visible), len(m.products))
	tableFocused := m.focusedPane == 0
	tableBg := m.theme.SurfaceAlt
	if tableFocused {
		tableBg = m.theme.FocusBg
	}
	tableContent := m.renderProductTable(tableWidth-2, contentHeight-2, tableBg)
	tablePane := m.renderTitledBox(tableTitle, tableContent, tableWidth, contentHeight, tableFocused)

	detailTitle := "Details"
	detailFocused := m.focusedPane == 1
	detailPane := m.renderTitledBox(detailTitle, m.detailViewport.View(), detailWidth, contentHeight, detailFocused)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, tablePane, detailPane)
	if m.searching {
		return m.renderSearchBar() + "\n" + panes
	}
	return panes
}

// renderProductTable renders the visible products as styled rows, scrolled
// so the selection stays in view.
func (m Model) renderProductTable(width, height int, bgColor string) string {
	if len(m.visible) == 0 || height <= 0 {
		return ""
	}

	// Scroll window around the selection
	start := 0
	if m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}
	end := min(start+height, len(m.visible))

	var lines []string
	for i := start; i < end; i++ {
		p := m.visible[i]
		if i == m.selectedRow {
			content := m.formatProductRow(p, width, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content))
		} else {
			content := m.formatProductRow(p, width, bgColor, false)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Width(width).
				Render(content))
		}
	}

	return strings.Join(lines, "\n")
}

// formatProductRow formats one product row with inline colors.
// Format: "Name · $Price ★4.5 [badges]"
func (m Model) formatProductRow(p catalog.Product, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	price := formatMoney(p.Price)
	rating := fmt.Sprintf("★%.1f", p.Rating)

	var flags []string
	if m.adding && m.addingID == p.ID {
		flags = append(flags, m.spin.View())
	}
	if p.IsNew {
		flags = append(flags, "N")
	}
	if p.IsFeatured {
		flags = append(flags, "F")
	}
	if d := catalog.DiscountPercent(p); d > 0 {
		flags = append(flags, fmt.Sprintf("-%d%%", d))
	}
	if m.wishlist != nil && m.wishlist.Contains(p.ID) {
		flags = append(flags, "♥")
	}
	flagStr := strings.Join(flags, " ")

	sepLen := 3 // " · "
	nameWidth := max(width-len(price)-len(rating)-len(flagStr)-sepLen-4, 10)

	var nameStyle, priceStyle, sepStyle, ratingStyle, flagStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle = selText
		priceStyle = selText
		sepStyle = selText
		ratingStyle = selText
		flagStyle = selText
	} else {
		styles := m.theme.Styles()
		nameStyle = styles.Text
		priceStyle = styles.AccentText
		sepStyle = styles.FaintText
		ratingStyle = styles.WarningText
		flagStyle = styles.SuccessText
	}

	row := bg.Render(truncate(p.Name, nameWidth), nameStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(price, priceStyle) +
		bg.Space() +
		bg.Render(rating, ratingStyle)
	if flagStr != "" {
		row += bg.Space() + bg.Render(flagStr, flagStyle)
	}
	return row
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := len(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
