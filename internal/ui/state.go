package ui

import (
	"github.com/dshills/dial/internal/input/focus"
	"github.com/dshills/dial/internal/renderer/core"
	"github.com/dshills/dial/internal/snippet"
)

// State is the data shared by all components.
// It is owned by the run loop and never accessed concurrently.
type State struct {
	// Store holds every record.
	Store *snippet.Store

	// Selection indexes the filtered view.
	Selection snippet.Selection

	// Query is the current search text.
	Query string

	// Focus names the input that owns the cursor.
	Focus *focus.State

	// Mode is the active mode name and ModeLabel its display name.
	Mode      string
	ModeLabel string

	// Areas are the widget regions computed for the last frame.
	Areas Areas

	// CurrentArea is the region of the widget the active mode works in.
	CurrentArea core.ScreenRect

	// Cursor is where the terminal cursor is drawn when ShowCursor is set.
	Cursor     core.ScreenPos
	ShowCursor bool

	// Status is a one-line message shown in the bottom border.
	Status      string
	StatusError bool
}

// NewState creates a state over store with nothing focused.
func NewState(store *snippet.Store) *State {
	return &State{
		Store: store,
		Focus: &focus.State{},
	}
}

// View returns the records matching the current query.
func (s *State) View() snippet.View {
	return s.Store.Filter(s.Query)
}

// CurrentIndex returns the store index of the selected record.
func (s *State) CurrentIndex() (int, bool) {
	return s.Selection.Current(s.View())
}

// CurrentRecord returns the selected record.
func (s *State) CurrentRecord() (snippet.Record, bool) {
	idx, ok := s.CurrentIndex()
	if !ok {
		return snippet.Record{}, false
	}
	return s.Store.Get(idx)
}

// SetStatus shows an informational message.
func (s *State) SetStatus(msg string) {
	s.Status = msg
	s.StatusError = false
}

// SetError shows an error message.
func (s *State) SetError(msg string) {
	s.Status = msg
	s.StatusError = true
}

// ClearStatus removes the status message.
func (s *State) ClearStatus() {
	s.Status = ""
	s.StatusError = false
}

// HideCursor stops drawing the terminal cursor.
func (s *State) HideCursor() {
	s.ShowCursor = false
}
