package ui

import (
	"fmt"

	"github.com/dshills/dial/internal/clipboard"
	"github.com/dshills/dial/internal/input/mode"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
	"github.com/dshills/dial/internal/renderer/highlight"
)

// HelpText is shown in the bottom border after the mode.
const HelpText = " [q] Quit │ [s] Select │ [e] Edit │ [/] Search │ [a] Add │ [Esc] Command "

// Options configures the components.
type Options struct {
	// SpareCapacity is the initial gap of editor buffers.
	SpareCapacity int

	// TabWidth is the number of spaces Tab inserts in the editor.
	TabWidth int

	Highlighter *highlight.Highlighter
	Clipboard   clipboard.Clipboard
	Logger      *logging.Logger
}

// Views holds one instance of every component.
type Views struct {
	List   *List
	Search *Search
	Editor *Editor
	Popup  *Popup
}

// NewViews creates the components.
func NewViews(opts Options) *Views {
	if opts.Logger == nil {
		opts.Logger = logging.Null()
	}
	if opts.Highlighter == nil {
		opts.Highlighter = highlight.New(highlight.DefaultTheme)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Default()
	}

	return &Views{
		List:   NewList(opts.Clipboard, opts.Logger.WithComponent("list")),
		Search: NewSearch(opts.Logger.WithComponent("search")),
		Editor: NewEditor(opts.SpareCapacity, opts.TabWidth, opts.Highlighter, opts.Logger.WithComponent("editor")),
		Popup:  NewPopup(opts.Logger.WithComponent("popup")),
	}
}

// For returns the component that receives keys routed by the named mode,
// or nil.
func (v *Views) For(name string) Component {
	switch name {
	case mode.ModeSelect:
		return v.List
	case mode.ModeSearch:
		return v.Search
	case mode.ModeEdit:
		return v.Editor
	case mode.ModePopup:
		return v.Popup
	default:
		return nil
	}
}

// Draw renders a complete frame and presents it.
func (v *Views) Draw(b backend.Backend, st *State) {
	w, h := b.Size()
	st.Areas = ComputeAreas(w, h)
	if area, ok := AreaFor(st.Mode, st.Areas, st.Focus.Field()); ok {
		st.CurrentArea = area
	}
	st.ShowCursor = false

	b.Clear()
	drawFrame(b, st)
	v.Search.Render(b, st.Areas.Search, st)
	v.List.Render(b, st.Areas.List, st)
	v.Editor.Render(b, st.Areas.Editor, st)
	if st.Mode == mode.ModePopup {
		v.Popup.Render(b, st.Areas.Popup, st)
	}

	if st.ShowCursor && st.Focus.Focused() {
		b.ShowCursor(st.Cursor.Col, st.Cursor.Row)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// drawFrame draws the outer box with the title on top and the mode, help
// and status message in the bottom border.
func drawFrame(b backend.Backend, st *State) {
	screen := st.Areas.Screen
	if screen.Width() < 2 || screen.Height() < 2 {
		return
	}
	drawBox(b, screen, roundBorder, borderStyle)
	drawCenteredTitle(b, screen, " Dial ", titleStyle)

	y := screen.Bottom - 1
	right := screen.Right - 1
	x := drawText(b, screen.Left+1, y, right, fmt.Sprintf(" Mode: %s ", st.ModeLabel), modeStyle)
	x = drawText(b, x, y, right, HelpText, borderStyle)

	if st.Status == "" {
		return
	}
	style := textStyle
	if st.StatusError {
		style = errorStyle
	}
	msg := " " + st.Status + " "
	if start := right - core.StringWidth(msg); start > x {
		drawText(b, start, y, right, msg, style)
	}
}
