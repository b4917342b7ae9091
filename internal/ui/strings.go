package ui

import (
	"fmt"
	"strings"
)

// formatMoney formats a price for display.
func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// renderStars renders a five-slot star gauge for a rating.
func renderStars(rating float64) string {
	full := int(rating)
	if full > 5 {
		full = 5
	}
	half := rating-float64(full) >= 0.5 && full < 5

	var b strings.Builder
	slots := full
	for i := 0; i < full; i++ {
		b.WriteString("★")
	}
	if half {
		b.WriteString("⯪")
		slots++
	}
	for ; slots < 5; slots++ {
		b.WriteString("☆")
	}
	return b.String()
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// wrapText wraps text to the given width on word boundaries.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return lines
}
