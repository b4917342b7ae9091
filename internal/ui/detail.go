package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"techstore/internal/catalog"
)

func (m *Model) initDetailViewport() {
	vp := viewport.New(m.detailWidth()-4, m.height-4)
	m.detailViewport = vp
}

func (m *Model) detailWidth() int {
	if m.width >= LayoutExtraWideWidth {
		return m.width - m.width*35/100
	}
	return m.width - m.width*45/100
}

// updateDetailViewport refreshes the detail pane content for the current
// selection.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}

	width := m.detailWidth() - 4
	m.detailViewport.Width = width
	m.detailViewport.Height = m.height - 4

	p, ok := m.selectedProduct()
	if !ok {
		m.detailViewport.SetContent(m.theme.Styles().MutedText.Render("Select a product"))
		return
	}

	m.detailViewport.SetContent(m.renderDetailContent(p, width))
	m.detailViewport.GotoTop()
}

// renderDetailContent renders the full product detail body.
func (m Model) renderDetailContent(p catalog.Product, width int) string {
	bgColor := m.theme.SurfaceAlt
	if m.focusedPane == 1 {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	var b strings.Builder

	// Name and category
	b.WriteString(bg.Render(p.Name, styles.Text.Bold(true)))
	b.WriteString("\n")
	b.WriteString(bg.Render(p.Category, styles.MutedText))
	b.WriteString("\n\n")

	// Badges
	if line := m.renderBadges(p, bg); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	// Price with strikethrough original and discount
	priceLine := bg.Render(formatMoney(p.Price), styles.AccentText.Bold(true))
	if d := catalog.DiscountPercent(p); d > 0 {
		orig := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Faint)).
			Strikethrough(true)
		priceLine += bg.Space() + bg.Render(formatMoney(p.OriginalPrice), orig) +
			bg.Space() + bg.Render(fmt.Sprintf("Save %d%%", d), styles.DangerText)
	}
	b.WriteString(priceLine)
	b.WriteString("\n")

	// Rating
	b.WriteString(bg.Render(renderStars(p.Rating), styles.WarningText) +
		bg.Space() +
		bg.Render(fmt.Sprintf("%.1f (%d reviews)", p.Rating, p.Reviews), styles.MutedText))
	b.WriteString("\n\n")

	// Description
	for _, line := range wrapText(p.Description, width) {
		b.WriteString(bg.Render(line, styles.Text))
		b.WriteString("\n")
	}

	// Features
	if len(p.Features) > 0 {
		b.WriteString("\n")
		b.WriteString(bg.Render("Features", styles.AccentText.Bold(true)))
		b.WriteString("\n")
		for _, f := range p.Features {
			b.WriteString(bg.Render("• "+f, styles.Text))
			b.WriteString("\n")
		}
	}

	// Quantity picker and actions
	b.WriteString("\n")
	b.WriteString(bg.Render(fmt.Sprintf("Quantity: %d", m.quantity), styles.Text) +
		bg.Spaces(2) +
		bg.Render("+/- adjust", styles.FaintText))
	b.WriteString("\n")
	if m.adding && m.addingID == p.ID {
		b.WriteString(bg.Render(m.spin.View()+" Adding to cart...", styles.InfoText))
	} else {
		actions := "a: add to cart"
		if m.wishlist != nil && m.wishlist.Contains(p.ID) {
			actions += "   w: remove from wishlist"
		} else {
			actions += "   w: save to wishlist"
		}
		b.WriteString(bg.Render(actions, styles.MutedText))
	}
	b.WriteString("\n")

	// Related products
	if m.catalog != nil {
		related := m.catalog.Related(p, RelatedLimit)
		if len(related) > 0 {
			b.WriteString("\n")
			b.WriteString(bg.Render("Related", styles.AccentText.Bold(true)))
			b.WriteString("\n")
			for _, r := range related {
				line := truncate(r.Name, max(width-12, 10))
				b.WriteString(bg.Render(line, styles.Text) +
					bg.Space() +
					bg.Render(formatMoney(r.Price), styles.MutedText))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// renderBadges renders the badge strip for a product.
func (m Model) renderBadges(p catalog.Product, bg BgStyle) string {
	styles := m.theme.Styles()

	var badges []string
	if p.IsNew {
		badges = append(badges, styles.BadgeStyle("new").Render("NEW"))
	}
	if p.IsFeatured {
		badges = append(badges, styles.BadgeStyle("featured").Render("FEATURED"))
	}
	if d := catalog.DiscountPercent(p); d > 0 {
		badges = append(badges, styles.BadgeStyle("discount").Render(fmt.Sprintf("-%d%%", d)))
	}
	if len(badges) == 0 {
		return ""
	}
	return strings.Join(badges, bg.Space())
}
