// Package backend provides the terminal abstraction the run loop draws
// to and reads events from.
//
// Terminal implements Backend on top of tcell. NullBackend keeps cells in
// memory and serves events from a channel so that application scenarios
// can be tested without a terminal.
package backend

import (
	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/renderer/core"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize

	// EventInterrupt carries a value posted from another goroutine.
	// The value is in Event.Data.
	EventInterrupt

	// EventError reports a failure reading terminal input.
	EventError
)

// String returns the event type name for logging.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data is set for EventInterrupt.
	Data any

	// Err is set for EventError.
	Err error
}

// KeyEvent wraps a key event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// InterruptEvent wraps a value posted from outside the run loop.
func InterruptEvent(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits for and returns the next event.
	// This is the only blocking call of the run loop.
	PollEvent() Event

	// PostEvent queues an event for PollEvent. It is safe to call from
	// any goroutine.
	PostEvent(event Event)
}
