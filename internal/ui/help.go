package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab", "Cycle views"},
				{"b/C/W/A", "Browse/Cart/Wishlist/Account"},
				{"esc", "Return to browse"},
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
				{"enter", "Focus detail pane"},
			},
		},
		{
			title: "Browse",
			items: []helpItem{
				{"c", "Cycle category"},
				{"s", "Cycle sort"},
				{"/", "Search"},
				{"f", "Cycle price range"},
				{"r", "Cycle min rating"},
				{"x", "Clear filters"},
				{"+/-", "Adjust quantity"},
				{"a", "Add to cart"},
				{"w", "Toggle wishlist"},
			},
		},
		{
			title: "Cart & Wishlist",
			items: []helpItem{
				{"+/-", "Change quantity"},
				{"d", "Remove item"},
				{"m", "Move to cart"},
				{"X", "Clear all"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
