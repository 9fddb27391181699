// Package timeutil provides time formatting utilities for Glossa.
//
// Lookup and playback timings are measured as time.Duration and shown
// in the TUI status line and in debug logs.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration to a human-readable string.
// Examples: "450ms", "1.2s", "2m 15.3s"
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	remaining := seconds - float64(minutes*60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}

// Since returns the formatted time elapsed since start.
func Since(start time.Time) string {
	return FormatDuration(time.Since(start))
}
