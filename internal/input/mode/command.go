package mode

import "github.com/dshills/dial/internal/input/key"

// CommandMode is the initial mode and the mode every Escape returns to.
// It binds single keys to transitions and ignores everything else.
type CommandMode struct{}

// NewCommandMode creates a new command mode instance.
func NewCommandMode() *CommandMode {
	return &CommandMode{}
}

// Name returns the mode identifier.
func (m *CommandMode) Name() string {
	return ModeCommand
}

// DisplayName returns the human-readable mode name.
func (m *CommandMode) DisplayName() string {
	return "Command"
}

// CursorStyle returns the cursor style for command mode.
func (m *CommandMode) CursorStyle() CursorStyle {
	return CursorHidden
}

// Enter clears focus from every input.
func (m *CommandMode) Enter(ctx *Context) error {
	ctx.blur()
	return nil
}

// Exit is called when leaving command mode.
func (m *CommandMode) Exit(ctx *Context) error {
	return nil
}

// HandleKey maps q, e, s and / to their actions.
func (m *CommandMode) HandleKey(event key.Event, ctx *Context) *Result {
	if !event.IsChar() {
		return ignored
	}

	switch event.Rune {
	case 'q':
		return &Result{Consumed: true, Quit: true}
	case 'e':
		return switchTo(ModeEdit)
	case 's':
		return switchTo(ModeSelect)
	case '/':
		return switchTo(ModeSearch)
	}
	return ignored
}
