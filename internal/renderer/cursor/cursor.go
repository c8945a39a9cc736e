// Package cursor maps an edit position inside a text surface to the
// terminal cell where the cursor is drawn.
package cursor

import "github.com/dshills/dial/internal/renderer/core"

// Location is a 1-based line and a 0-based column within a text.
// Column counts code points; Width counts the terminal cells those code
// points occupy when drawn.
type Location struct {
	Line   int
	Column int
	Width  int
}

// Locate counts lines and columns over the runes that precede the edit
// position. Line is 1 plus the number of newlines; Column is the number of
// runes after the last newline.
func Locate(before []rune) Location {
	loc := Location{Line: 1}
	lineStart := 0
	for i, r := range before {
		if r == '\n' {
			loc.Line++
			lineStart = i + 1
		}
	}
	loc.Column = len(before) - lineStart
	for _, r := range before[lineStart:] {
		loc.Width += cellWidth(r)
	}
	return loc
}

// cellWidth matches how text surfaces draw r: a tab takes one cell and
// combining marks take none.
func cellWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	return core.RuneWidth(r)
}

// Project returns the screen cell for an edit position whose preceding
// text is before, inside a widget drawn at anchor with a uniform padding.
//
// The column sits one cell right of the last character and the 1-based
// line skips the top border row, so a bordered widget uses padding 0.
// Columns are display cells, so wide characters advance the cursor by two.
func Project(before []rune, anchor core.ScreenRect, padding int) core.ScreenPos {
	loc := Locate(before)
	return core.ScreenPos{
		Col: anchor.Left + padding + loc.Width + 1,
		Row: anchor.Top + padding + loc.Line,
	}
}
