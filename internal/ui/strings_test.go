package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{in: "short", limit: 10, want: "short"},
		{in: "  padded  ", limit: 10, want: "padded"},
		{in: "abcdefghij", limit: 7, want: "abcd..."},
		{in: "abcdef", limit: 2, want: "ab"},
		{in: "anything", limit: 0, want: "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestClean_StripsTerminalControl(t *testing.T) {
	in := "admin\x1b[2J\x1b]0;pwned\x07\r\bname"
	got := clean(in)
	if strings.ContainsAny(got, "\x1b\x07\r\b") {
		t.Fatalf("clean left control bytes in %q", got)
	}
	if strings.Contains(got, "pwned") {
		t.Fatalf("clean kept the OSC payload: %q", got)
	}
	if got != "adminname" {
		t.Fatalf("clean = %q, want adminname", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight long = %q", got)
	}
}

func TestHyperlinkWrapsText(t *testing.T) {
	got := hyperlink("https://docs.n8n.io", "n8n")
	if !strings.Contains(got, "\x1b]8;") || !strings.Contains(got, "https://docs.n8n.io") || !strings.Contains(got, "n8n") {
		t.Fatalf("hyperlink = %q", got)
	}
}
