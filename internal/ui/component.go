package ui

import (
	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
)

// Component is a widget that draws itself and reacts to routed keys.
type Component interface {
	// Render draws the component inside area.
	Render(b backend.Backend, area core.ScreenRect, st *State)

	// HandleKey applies a key routed by the active mode.
	HandleKey(ev key.Event, st *State)
}
