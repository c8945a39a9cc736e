package ui

import (
	"github.com/dshills/dial/internal/input/mode"
	"github.com/dshills/dial/internal/renderer/core"
)

// Layout proportions.
const (
	leftPercent   = 30
	searchPercent = 10
	searchMinRows = 3

	popupWidth  = 60
	popupHeight = 2 + fieldCount*3
)

// Areas are the regions of one frame.
type Areas struct {
	// Screen is the whole terminal and Inner the area inside the frame.
	Screen core.ScreenRect
	Inner  core.ScreenRect

	// Left is the column holding Search above List.
	Left   core.ScreenRect
	Search core.ScreenRect
	List   core.ScreenRect

	Editor core.ScreenRect

	// Popup is the create form and PopupFields its field boxes.
	Popup       core.ScreenRect
	PopupFields [fieldCount]core.ScreenRect
}

// ComputeAreas lays out a width x height screen.
func ComputeAreas(width, height int) Areas {
	var a Areas
	a.Screen = core.RectFromSize(0, 0, max(height, 0), max(width, 0))
	a.Inner = a.Screen.Inner()
	a.Left, a.Editor = a.Inner.SplitHorizontal(leftPercent)
	a.Search, a.List = a.Left.SplitVertical(searchPercent, searchMinRows)

	a.Popup = a.Screen.Centered(min(popupWidth, max(width-4, 0)), popupHeight)
	body := a.Popup.Inner()
	for i := range a.PopupFields {
		a.PopupFields[i] = core.RectFromSize(body.Top+i*3, body.Left, 3, max(body.Width(), 0))
	}
	return a
}

// AreaFor returns the region the named mode works in. Command mode has
// none and reports false.
func AreaFor(name string, a Areas, field int) (core.ScreenRect, bool) {
	switch name {
	case mode.ModeSelect:
		return a.Left, true
	case mode.ModeEdit:
		return a.Editor, true
	case mode.ModeSearch:
		return a.Search, true
	case mode.ModePopup:
		if field < 0 || field >= fieldCount {
			field = FieldTitle
		}
		return a.PopupFields[field], true
	default:
		return core.ScreenRect{}, false
	}
}
