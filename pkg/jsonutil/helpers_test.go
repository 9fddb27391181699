package jsonutil

import (
	"bytes"
	"testing"
)

func TestCompact(t *testing.T) {
	if got := Compact("[ {\"word\": \"hello\"} ]"); got != `[{"word":"hello"}]` {
		t.Errorf("Compact = %q", got)
	}
	if got := Compact("not json"); got != "not json" {
		t.Errorf("Compact should return invalid input unchanged, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"héllo", 2, "hé"},
		{"hello", 0, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestSnippet(t *testing.T) {
	got := Snippet("{\n  \"title\": \"No Definitions Found\"\n}", 12)
	if got != `{"title":...` {
		t.Errorf("Snippet = %q", got)
	}
}

func TestWriteIndented(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteIndented(&buf, map[string]string{"example": "rock & roll"}); err != nil {
		t.Fatalf("WriteIndented failed: %v", err)
	}
	want := "{\n  \"example\": \"rock & roll\"\n}\n"
	if buf.String() != want {
		t.Errorf("WriteIndented = %q, want %q", buf.String(), want)
	}
}
