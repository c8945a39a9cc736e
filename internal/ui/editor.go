package ui

import (
	"strings"

	"github.com/dshills/dial/internal/engine/buffer"
	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
	"github.com/dshills/dial/internal/renderer/cursor"
	"github.com/dshills/dial/internal/renderer/highlight"
)

// Editor edits the content of the selected record.
//
// It keeps one gap buffer bound to a store index and rebuilds it from the
// store whenever the selection points at a different record. Edits stay
// in the buffer until the application syncs them back.
type Editor struct {
	buf      *buffer.GapBuffer
	bound    int
	hasBound bool

	spare    int
	tabWidth int

	highlighter *highlight.Highlighter
	logger      *logging.Logger
}

// NewEditor creates an editor whose buffers start with spare free slots
// and whose Tab inserts tabWidth spaces.
func NewEditor(spare, tabWidth int, h *highlight.Highlighter, logger *logging.Logger) *Editor {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	if logger == nil {
		logger = logging.Null()
	}
	return &Editor{
		spare:       spare,
		tabWidth:    tabWidth,
		highlighter: h,
		logger:      logger,
	}
}

// Bound returns the store index the buffer was built from.
func (e *Editor) Bound() (int, bool) {
	return e.bound, e.hasBound
}

// Text returns the buffer content. It is empty when nothing is bound.
func (e *Editor) Text() string {
	if e.buf == nil {
		return ""
	}
	return e.buf.String()
}

// Buffer returns the bound buffer, or nil.
func (e *Editor) Buffer() *buffer.GapBuffer {
	return e.buf
}

// bind makes sure the buffer holds the selected record.
// Returns false when nothing is selected.
func (e *Editor) bind(st *State) bool {
	idx, ok := st.CurrentIndex()
	if !ok {
		e.buf = nil
		e.hasBound = false
		return false
	}
	if e.hasBound && e.bound == idx && e.buf != nil {
		return true
	}

	rec, _ := st.Store.Get(idx)
	e.buf = buffer.New(rec.Content, e.spare, buffer.WithLogger(e.logger))
	e.bound = idx
	e.hasBound = true
	e.logger.Debug("editor bound to record %d (%q)", idx, rec.Title)
	return true
}

// Render draws the highlighted buffer.
func (e *Editor) Render(b backend.Backend, area core.ScreenRect, st *State) {
	focused := st.Focus.EditorFocused()
	inner := panel(b, area, " Editor ", focused)
	if !e.bind(st) {
		return
	}

	if !inner.IsEmpty() {
		rec, _ := st.Store.Get(e.bound)
		lines := e.highlighter.Highlight(e.buf.String(), rec.Language)
		for i, line := range lines {
			y := inner.Top + i
			if y >= inner.Bottom {
				break
			}
			x := inner.Left
			for _, seg := range line {
				x = drawText(b, x, y, inner.Right, seg.Text, seg.Style)
			}
		}
	}

	if focused {
		e.placeCursor(st)
	}
}

// HandleKey edits the buffer: characters insert, Enter breaks the line,
// Tab inserts spaces, Backspace deletes and Left/Right move.
func (e *Editor) HandleKey(ev key.Event, st *State) {
	if !e.bind(st) {
		return
	}

	switch {
	case ev.IsChar():
		e.buf.Insert(ev.Rune)
	case ev.Key == key.KeyEnter:
		e.buf.Insert('\n')
	case ev.Key == key.KeyTab:
		e.buf.InsertString(strings.Repeat(" ", e.tabWidth))
	case ev.Key == key.KeyBackspace:
		e.buf.Backspace()
	case ev.Key == key.KeyLeft:
		e.buf.MoveLeft()
	case ev.Key == key.KeyRight:
		e.buf.MoveRight()
	default:
		return
	}

	e.placeCursor(st)
}

func (e *Editor) placeCursor(st *State) {
	st.Cursor = cursor.Project(e.buf.BeforeGap(), st.CurrentArea, 0)
	st.ShowCursor = true
}
