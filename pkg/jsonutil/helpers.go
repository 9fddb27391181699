// Package jsonutil provides JSON helpers for Glossa.
//
// They are used when API bodies end up in log lines and when lookups are
// printed as JSON by the command line front end.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"
)

// Compact minifies a JSON document by removing whitespace.
// Returns the original string if it's not valid JSON.
func Compact(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// Snippet returns a compacted, length-limited form of a body for logging.
func Snippet(body string, maxLen int) string {
	return Truncate(Compact(body), maxLen)
}

// Truncate cuts s to maxLen runes, adding "..." if truncation occurred.
func Truncate(s string, maxLen int) string {
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

// WriteIndented encodes v as indented JSON without HTML escaping, so
// example sentences containing quotes or ampersands stay readable.
func WriteIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
