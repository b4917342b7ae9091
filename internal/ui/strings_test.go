package ui

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(299.99); got != "$299.99" {
		t.Fatalf("formatMoney(299.99) = %q, want $299.99", got)
	}
	if got := formatMoney(0); got != "$0.00" {
		t.Fatalf("formatMoney(0) = %q, want $0.00", got)
	}
	if got := formatMoney(1299.9); got != "$1299.90" {
		t.Fatalf("formatMoney(1299.9) = %q, want $1299.90", got)
	}
}

func TestRenderStars(t *testing.T) {
	cases := []struct {
		name   string
		rating float64
		want   string
	}{
		{"full", 5.0, "★★★★★"},
		{"half", 4.5, "★★★★⯪"},
		{"round_down", 4.4, "★★★★☆"},
		{"three", 3.0, "★★★☆☆"},
		{"zero", 0, "☆☆☆☆☆"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderStars(tc.rating); got != tc.want {
				t.Fatalf("renderStars(%v) = %q, want %q", tc.rating, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short = %q, want short", got)
	}
	if got := truncate("a very long product name", 10); got != "a very ..." {
		t.Fatalf("truncate = %q, want %q", got, "a very ...")
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate max<=3 = %q, want ab", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate max 0 = %q, want empty", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("premium wireless headphones with noise cancellation", 20)
	if len(lines) == 0 {
		t.Fatal("wrapText returned no lines")
	}
	for _, line := range lines {
		if len(line) > 20 && !strings.Contains(line, " ") {
			continue // single word longer than width stays intact
		}
		if len(line) > 20 {
			t.Fatalf("line %q exceeds width 20", line)
		}
	}
	if got := strings.Join(lines, " "); got != "premium wireless headphones with noise cancellation" {
		t.Fatalf("wrapText lost content: %q", got)
	}

	if got := wrapText("", 20); got != nil {
		t.Fatalf("wrapText empty = %v, want nil", got)
	}
	if got := wrapText("text", 0); got != nil {
		t.Fatalf("wrapText width 0 = %v, want nil", got)
	}
}
