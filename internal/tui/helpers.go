package tui

import "fmt"

// ────────────────────────────────────────────────────────────
// Grid sizing
// ────────────────────────────────────────────────────────────

const (
	wideWidth   = 180
	mediumWidth = 120
	cardGap     = 1
)

// columnsFor returns how many cards fit side by side.
func columnsFor(width int) int {
	switch {
	case width >= wideWidth:
		return 3
	case width >= mediumWidth:
		return 2
	default:
		return 1
	}
}

// cardWidth returns the outer width of one card in a grid of cols.
func cardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - (cols-1)*cardGap) / cols
	return maxInt(w, 12)
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// plural formats a count with a naively pluralized noun.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
