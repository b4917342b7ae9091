package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"techstore/internal/catalog"
)

func (m *Model) initSearchInput() {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search products"
	ti.CharLimit = 64
	m.searchInput = ti
}

// startSearch opens the search bar, remembering the prior term so escape
// can restore it.
func (m *Model) startSearch() {
	m.searching = true
	m.searchPrior = m.searchTerm
	m.searchInput.SetValue(m.searchTerm)
	m.searchInput.CursorEnd()
	m.searchInput.Focus()
	m.refreshSuggestions()
}

// refreshSuggestions recomputes the suggestion list for the current input.
func (m *Model) refreshSuggestions() {
	term := strings.TrimSpace(m.searchInput.Value())
	m.suggestions = nil
	if term == "" {
		return
	}
	for _, p := range catalog.Suggest(m.products, term, m.config.SuggestionLimit) {
		m.suggestions = append(m.suggestions, p.Name)
	}
}

// handleSearchKey processes keyboard input while the search bar is open.
// Filtering applies live as the visitor types.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchTerm = m.searchPrior
		m.applyFilters()
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.searchTerm = strings.TrimSpace(m.searchInput.Value())
		m.applyFilters()
		return m, nil

	case "tab":
		// Complete to the first suggestion
		if len(m.suggestions) > 0 {
			m.searchInput.SetValue(m.suggestions[0])
			m.searchInput.CursorEnd()
			m.searchTerm = m.suggestions[0]
			m.refreshSuggestions()
			m.applyFilters()
		}
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchTerm = strings.TrimSpace(m.searchInput.Value())
	m.refreshSuggestions()
	m.applyFilters()
	return m, cmd
}

// searchBarHeight returns the number of lines the open search bar occupies.
func (m Model) searchBarHeight() int {
	return 2
}

// renderSearchBar renders the input line plus a suggestion or trending hint.
func (m Model) renderSearchBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	input := styles.Header.Width(m.width).Render(m.searchInput.View())

	var hint string
	if strings.TrimSpace(m.searchInput.Value()) == "" {
		if len(m.config.Trending) > 0 {
			hint = bg.Render("Trending:", styles.FaintText) + bg.Space() +
				bg.Render(strings.Join(m.config.Trending, ", "), styles.MutedText)
		}
	} else if len(m.suggestions) > 0 {
		hint = bg.Render("Suggestions:", styles.FaintText) + bg.Space() +
			bg.Render(strings.Join(m.suggestions, ", "), styles.MutedText) +
			bg.Spaces(2) + bg.Render("tab completes", styles.FaintText)
	} else {
		hint = bg.Render("No suggestions", styles.FaintText)
	}

	hintLine := styles.Header.Width(m.width).Render(hint)
	return input + "\n" + hintLine
}
