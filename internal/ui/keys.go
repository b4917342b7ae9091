package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global keyboard bindings for the application.
// View-local actions are matched on the key string directly, the same
// way each view's handler reads navigation keys.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	ViewBrowse   key.Binding
	ViewCart     key.Binding
	ViewWishlist key.Binding
	ViewAccount  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle views (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Return to browse"),
		),

		ViewBrowse: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Browse view"),
		),
		ViewCart: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Cart view"),
		),
		ViewWishlist: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "Wishlist view"),
		),
		ViewAccount: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "Account view"),
		),
	}
}
