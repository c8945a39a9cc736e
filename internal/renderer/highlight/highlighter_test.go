package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/dshills/dial/internal/renderer/core"
)

func joinLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, "\n")
}

func TestHighlightPreservesText(t *testing.T) {
	h := New(DefaultTheme)

	tests := []struct {
		name     string
		text     string
		language string
	}{
		{"go", "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}", "go"},
		{"extension", "fn main() {}\n", "rs"},
		{"plain", "Dial is a code snippet manager built with go and tcell.", "txt"},
		{"unknown", "just words\nmore words", "no-such-language"},
		{"empty", "", "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := h.Highlight(tt.text, tt.language)

			if want := strings.Count(tt.text, "\n") + 1; len(lines) != want {
				t.Fatalf("lines = %d, want %d", len(lines), want)
			}
			if got := joinLines(lines); got != tt.text {
				t.Errorf("text = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestHighlightStylesKeywords(t *testing.T) {
	h := New(DefaultTheme)
	lines := h.Highlight("func main() {}", "go")

	if len(lines) != 1 || len(lines[0]) < 2 {
		t.Fatalf("expected several segments, got %+v", lines)
	}

	first := lines[0][0]
	if first.Text != "func" {
		t.Fatalf("first segment = %q, want %q", first.Text, "func")
	}
	want := h.Theme().StyleForToken(chroma.KeywordDeclaration)
	if !first.Style.Equals(want) {
		t.Errorf("keyword style = %+v, want %+v", first.Style, want)
	}
}

func TestLexerSelection(t *testing.T) {
	h := New(DefaultTheme)

	tests := []struct {
		language string
		want     string
	}{
		{"go", "Go"},
		{"Go", "Go"},
		{"py", "Python"},
		{"rs", "Rust"},
		{"no-such-language", "fallback"},
		{"", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			if got := h.Lexer(tt.language).Config().Name; got != tt.want {
				t.Errorf("Lexer(%q) = %q, want %q", tt.language, got, tt.want)
			}
		})
	}
}

func TestThemeFallback(t *testing.T) {
	th := NewTheme("not-a-theme")
	if th.Name() != DefaultTheme {
		t.Errorf("Name() = %q, want %q", th.Name(), DefaultTheme)
	}
	if !KnownTheme("dracula") {
		t.Error("dracula should be a known theme")
	}
	if KnownTheme("not-a-theme") {
		t.Error("not-a-theme should be unknown")
	}
}

func TestSetTheme(t *testing.T) {
	h := New(DefaultTheme)
	h.SetTheme("github")

	if h.Theme().Name() != "github" {
		t.Errorf("Theme().Name() = %q, want github", h.Theme().Name())
	}
}

func TestConvertEntry(t *testing.T) {
	e := chroma.StyleEntry{
		Colour: chroma.NewColour(0x12, 0x34, 0x56),
		Bold:   chroma.Yes,
		Italic: chroma.No,
	}
	s := convertEntry(e)

	if !s.Foreground.Equals(core.ColorFromRGB(0x12, 0x34, 0x56)) {
		t.Errorf("Foreground = %v", s.Foreground)
	}
	if !s.Attributes.Has(core.AttrBold) || s.Attributes.Has(core.AttrItalic) {
		t.Errorf("Attributes = %b, want bold only", s.Attributes)
	}
	if !s.Background.IsDefault() {
		t.Errorf("Background = %v, want default", s.Background)
	}
}
