package highlight

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/dial/internal/renderer/core"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "monokai"

// Theme maps chroma token types to screen styles.
// Backgrounds are ignored so the terminal background shows through.
type Theme struct {
	name   string
	style  *chroma.Style
	styles map[chroma.TokenType]core.Style
}

// NewTheme returns the named chroma style. Unknown names fall back to
// DefaultTheme.
func NewTheme(name string) *Theme {
	if !KnownTheme(name) {
		name = DefaultTheme
	}
	return &Theme{
		name:   name,
		style:  styles.Get(name),
		styles: make(map[chroma.TokenType]core.Style),
	}
}

// Name returns the chroma style name.
func (t *Theme) Name() string {
	return t.name
}

// StyleForToken returns the style for a given token type.
func (t *Theme) StyleForToken(tokenType chroma.TokenType) core.Style {
	if s, ok := t.styles[tokenType]; ok {
		return s
	}
	s := convertEntry(t.style.Get(tokenType))
	t.styles[tokenType] = s
	return s
}

func convertEntry(e chroma.StyleEntry) core.Style {
	s := core.DefaultStyle()
	if e.Colour.IsSet() {
		s.Foreground = core.ColorFromRGB(e.Colour.Red(), e.Colour.Green(), e.Colour.Blue())
	}
	if e.Bold == chroma.Yes {
		s = s.Bold()
	}
	if e.Italic == chroma.Yes {
		s = s.Italic()
	}
	if e.Underline == chroma.Yes {
		s = s.Underline()
	}
	return s
}

// KnownTheme reports whether chroma has a style called name.
func KnownTheme(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// Themes returns the names of all available themes, sorted.
func Themes() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}
