package mode

import "github.com/dshills/dial/internal/input/key"

// SelectMode browses the snippet list.
// The create form is opened from here with 'a'; other keys go to the list.
type SelectMode struct{}

// NewSelectMode creates a new select mode instance.
func NewSelectMode() *SelectMode {
	return &SelectMode{}
}

// Name returns the mode identifier.
func (m *SelectMode) Name() string {
	return ModeSelect
}

// DisplayName returns the human-readable mode name.
func (m *SelectMode) DisplayName() string {
	return "Select"
}

// CursorStyle returns the cursor style for select mode.
func (m *SelectMode) CursorStyle() CursorStyle {
	return CursorHidden
}

// Enter is called when entering select mode.
func (m *SelectMode) Enter(ctx *Context) error {
	ctx.blur()
	return nil
}

// Exit is called when leaving select mode.
func (m *SelectMode) Exit(ctx *Context) error {
	return nil
}

// HandleKey opens the create form on 'a' and routes everything else.
func (m *SelectMode) HandleKey(event key.Event, ctx *Context) *Result {
	if event.Is('a') {
		return switchTo(ModePopup)
	}
	return routed
}
