package ui

import (
	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
	"github.com/dshills/dial/internal/renderer/cursor"
)

// Search is the query box above the list.
type Search struct {
	field *Field
}

// NewSearch creates an empty search box.
func NewSearch(logger *logging.Logger) *Search {
	if logger == nil {
		logger = logging.Null()
	}
	return &Search{field: NewField(logger)}
}

// Query returns the text typed so far.
func (s *Search) Query() string {
	return s.field.Text()
}

// Render draws the box and its query.
func (s *Search) Render(b backend.Backend, area core.ScreenRect, st *State) {
	focused := st.Focus.SearchFocused()
	inner := panel(b, area, " Search ", focused)
	if !inner.IsEmpty() {
		drawText(b, inner.Left, inner.Top, inner.Right, s.field.Text(), textStyle)
	}
	if focused {
		s.placeCursor(st)
	}
}

// HandleKey edits the query. Every change re-filters the list from the
// first entry.
func (s *Search) HandleKey(ev key.Event, st *State) {
	handled, changed := s.field.Edit(ev)
	if !handled {
		return
	}
	if changed {
		st.Query = s.field.Text()
		st.Selection.Reset()
	}
	s.placeCursor(st)
}

func (s *Search) placeCursor(st *State) {
	st.Cursor = cursor.Project(s.field.Before(), st.CurrentArea, 0)
	st.ShowCursor = true
}
