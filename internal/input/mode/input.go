package mode

import (
	"github.com/dshills/dial/internal/input/focus"
	"github.com/dshills/dial/internal/input/key"
)

// inputMode is a mode whose keys all belong to one text input.
type inputMode struct {
	name    string
	display string
	target  focus.Target
}

// Name returns the mode identifier.
func (m *inputMode) Name() string {
	return m.name
}

// DisplayName returns the human-readable mode name.
func (m *inputMode) DisplayName() string {
	return m.display
}

// CursorStyle returns the cursor style for text input.
func (m *inputMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter focuses the mode's input.
func (m *inputMode) Enter(ctx *Context) error {
	ctx.focus(m.target)
	return nil
}

// Exit is called when leaving the mode. Focus is cleared by the mode
// being entered.
func (m *inputMode) Exit(ctx *Context) error {
	return nil
}

// HandleKey routes every key to the focused input.
func (m *inputMode) HandleKey(event key.Event, ctx *Context) *Result {
	return routed
}

// SearchMode edits the list query.
type SearchMode struct{ inputMode }

// NewSearchMode creates a new search mode instance.
func NewSearchMode() *SearchMode {
	return &SearchMode{inputMode{name: ModeSearch, display: "Search", target: focus.Search}}
}

// EditMode edits the selected snippet.
type EditMode struct{ inputMode }

// NewEditMode creates a new edit mode instance.
func NewEditMode() *EditMode {
	return &EditMode{inputMode{name: ModeEdit, display: "Edit", target: focus.Editor}}
}

// PopupMode fills in the create form. Entering it focuses the first field.
type PopupMode struct{ inputMode }

// NewPopupMode creates a new popup mode instance.
func NewPopupMode() *PopupMode {
	return &PopupMode{inputMode{name: ModePopup, display: "Popup", target: focus.PopupField}}
}
