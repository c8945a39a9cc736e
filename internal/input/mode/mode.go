package mode

import (
	"github.com/dshills/dial/internal/input/focus"
	"github.com/dshills/dial/internal/input/key"
)

// Mode defines the interface for interaction modes.
// Each mode decides what a key means while it is active and which cursor
// style is displayed.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "command", "edit").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Enter is called when entering this mode.
	Enter(ctx *Context) error

	// Exit is called when leaving this mode.
	Exit(ctx *Context) error

	// HandleKey interprets a key event. It never returns nil.
	HandleKey(event key.Event, ctx *Context) *Result
}

// Result describes what to do with a key event.
type Result struct {
	// Consumed indicates whether the key was handled.
	Consumed bool

	// SwitchTo names the mode to switch to, if any.
	SwitchTo string

	// Quit requests the end of the run loop after the current frame.
	Quit bool

	// Route asks the caller to forward the key to the mode's component.
	Route bool
}

var (
	ignored = &Result{}
	routed  = &Result{Consumed: true, Route: true}
)

func switchTo(name string) *Result {
	return &Result{Consumed: true, SwitchTo: name}
}

// Context provides information during mode transitions and key handling.
type Context struct {
	// PreviousMode is the mode being transitioned from (for Enter).
	PreviousMode string

	// NextMode is the mode being transitioned to (for Exit).
	NextMode string

	// Focus is the application focus state changed by Enter hooks.
	// It may be nil in tests that do not care about focus.
	Focus *focus.State
}

// NewContext creates a new mode context bound to a focus state.
func NewContext(fs *focus.State) *Context {
	return &Context{Focus: fs}
}

func (c *Context) focus(t focus.Target) {
	if c != nil && c.Focus != nil {
		c.Focus.Focus(t)
	}
}

func (c *Context) blur() {
	if c != nil && c.Focus != nil {
		c.Focus.Blur()
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorHidden hides the cursor.
	CursorHidden CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (text input).
	CursorBar

	// CursorBlock is a full-cell block cursor.
	CursorBlock
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorHidden:
		return "hidden"
	case CursorBar:
		return "bar"
	case CursorBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Standard mode names.
const (
	ModeCommand = "command"
	ModeSelect  = "select"
	ModeSearch  = "search"
	ModeEdit    = "edit"
	ModePopup   = "popup"
)
