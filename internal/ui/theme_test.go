package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Slate" || names[1] != "Dracula" || names[2] != "Nord" {
		t.Fatalf("ThemeNames() = %v, want [Slate Dracula Nord]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Dracula"); got != "Nord" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nord", got)
	}
	if got := NextTheme("Nord"); got != "Slate" {
		t.Fatalf("NextTheme(Nord) = %q, want Slate", got)
	}
	if got := NextTheme("Unknown"); got != "Slate" {
		t.Fatalf("NextTheme(Unknown) = %q, want Slate", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got.Name, name)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Slate" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Slate (fallback)", unknown.Name)
	}
}

func TestThemesDefineBadgeColors(t *testing.T) {
	kinds := []string{"new", "featured", "discount"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, kind := range kinds {
			if th.BadgeColors[kind] == "" {
				t.Fatalf("theme %s missing badge color for %q", name, kind)
			}
		}
	}
}
