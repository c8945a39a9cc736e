package ui

import (
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
)

// borderSet holds the runes of a box outline.
type borderSet struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var (
	plainBorder = borderSet{'┌', '┐', '└', '┘', '─', '│'}
	roundBorder = borderSet{'╭', '╮', '╰', '╯', '─', '│'}
)

var (
	borderStyle   = core.DefaultStyle()
	focusedBorder = core.NewStyle(core.ColorFromIndex(12))
	titleStyle    = core.DefaultStyle().Bold()
	textStyle     = core.DefaultStyle()
	modeStyle     = core.NewStyle(core.ColorBlack).WithBackground(core.ColorFromIndex(4))
	errorStyle    = core.NewStyle(core.ColorRed).Bold()
	selectedStyle = core.NewStyle(core.ColorFromIndex(12))
)

// drawText writes text from column x on row y, stopping before column
// right. Tabs are drawn as a single space and other zero-width runes are
// skipped. Returns the column after the last cell written.
func drawText(b backend.Backend, x, y, right int, text string, style core.Style) int {
	for _, r := range text {
		w := core.RuneWidth(r)
		if r == '\t' {
			r, w = ' ', 1
		}
		if w == 0 {
			continue
		}
		if x+w > right {
			break
		}
		b.SetCell(x, y, core.NewStyledCell(r, style))
		x += w
	}
	return x
}

// drawBox outlines rect. Rectangles smaller than 2x2 are not drawn.
func drawBox(b backend.Backend, rect core.ScreenRect, set borderSet, style core.Style) {
	if rect.Width() < 2 || rect.Height() < 2 {
		return
	}
	top, bottom := rect.Top, rect.Bottom-1
	left, right := rect.Left, rect.Right-1

	for x := left + 1; x < right; x++ {
		b.SetCell(x, top, core.NewStyledCell(set.horizontal, style))
		b.SetCell(x, bottom, core.NewStyledCell(set.horizontal, style))
	}
	for y := top + 1; y < bottom; y++ {
		b.SetCell(left, y, core.NewStyledCell(set.vertical, style))
		b.SetCell(right, y, core.NewStyledCell(set.vertical, style))
	}
	b.SetCell(left, top, core.NewStyledCell(set.topLeft, style))
	b.SetCell(right, top, core.NewStyledCell(set.topRight, style))
	b.SetCell(left, bottom, core.NewStyledCell(set.bottomLeft, style))
	b.SetCell(right, bottom, core.NewStyledCell(set.bottomRight, style))
}

// drawTitle writes title into the top border of rect, after the corner.
func drawTitle(b backend.Backend, rect core.ScreenRect, title string, style core.Style) {
	if rect.Width() < 3 {
		return
	}
	drawText(b, rect.Left+1, rect.Top, rect.Right-1, title, style)
}

// drawCenteredTitle writes title centered in the top border of rect.
func drawCenteredTitle(b backend.Backend, rect core.ScreenRect, title string, style core.Style) {
	if rect.Width() < 3 {
		return
	}
	x := rect.Left + (rect.Width()-core.StringWidth(title))/2
	if x <= rect.Left {
		x = rect.Left + 1
	}
	drawText(b, x, rect.Top, rect.Right-1, title, style)
}

// panel draws a bordered, titled widget and returns its inner area.
func panel(b backend.Backend, rect core.ScreenRect, title string, focused bool) core.ScreenRect {
	style := borderStyle
	if focused {
		style = focusedBorder
	}
	drawBox(b, rect, plainBorder, style)
	drawTitle(b, rect, title, titleStyle)
	return rect.Inner()
}
