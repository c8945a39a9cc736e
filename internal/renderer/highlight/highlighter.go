package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/dial/internal/renderer/core"
)

// Segment is a run of text drawn in one style.
type Segment struct {
	Text  string
	Style core.Style
}

// Line is one line of highlighted text, without its newline.
type Line []Segment

// Text returns the unstyled text of the line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, seg := range l {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Highlighter styles text by language tag.
// Not safe for concurrent use; it is owned by the run loop.
type Highlighter struct {
	theme  *Theme
	lexers map[string]chroma.Lexer
}

// New creates a highlighter using the named theme.
func New(theme string) *Highlighter {
	return &Highlighter{
		theme:  NewTheme(theme),
		lexers: make(map[string]chroma.Lexer),
	}
}

// SetTheme switches to the named theme. Unknown names select DefaultTheme.
func (h *Highlighter) SetTheme(name string) {
	h.theme = NewTheme(name)
}

// Theme returns the active theme.
func (h *Highlighter) Theme() *Theme {
	return h.theme
}

// Lexer returns the lexer used for language. It never returns nil.
func (h *Highlighter) Lexer(language string) chroma.Lexer {
	tag := strings.ToLower(strings.TrimSpace(language))
	if l, ok := h.lexers[tag]; ok {
		return l
	}

	// Get tries names and aliases, then the tag as a file extension.
	var l chroma.Lexer
	if tag != "" {
		l = lexers.Get(tag)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	h.lexers[tag] = l
	return l
}

// Highlight splits text into lines of styled segments. The result always
// has one Line per line of text, even when lexing fails.
func (h *Highlighter) Highlight(text, language string) []Line {
	want := strings.Count(text, "\n") + 1

	it, err := h.Lexer(language).Tokenise(nil, text)
	if err != nil {
		return h.plain(text)
	}

	lines := make([]Line, 1, want)
	for tok := it(); tok != chroma.EOF; tok = it() {
		style := h.theme.StyleForToken(tok.Type)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Segment{Text: part, Style: style})
			}
		}
	}

	// Some lexers append a trailing newline.
	for len(lines) < want {
		lines = append(lines, nil)
	}
	return lines[:want]
}

// plain returns text as unstyled lines.
func (h *Highlighter) plain(text string) []Line {
	style := h.theme.StyleForToken(chroma.Text)
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		if s != "" {
			lines[i] = Line{{Text: s, Style: style}}
		}
	}
	return lines
}
