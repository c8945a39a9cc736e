// Package focus tracks which input surface owns the terminal cursor.
//
// Only one of the search box, the editor or a field of the create form can
// be focused at a time. The state stores a single Target rather than one
// flag per surface, so focusing one input implicitly blurs the others.
package focus

// Target identifies a focusable input.
type Target uint8

const (
	// None means no input owns the cursor.
	None Target = iota

	// Search is the query box above the snippet list.
	Search

	// Editor is the snippet edit surface.
	Editor

	// PopupField is a field of the create form. The field index is
	// tracked separately.
	PopupField
)

// String returns a human-readable target name.
func (t Target) String() string {
	switch t {
	case None:
		return "none"
	case Search:
		return "search"
	case Editor:
		return "editor"
	case PopupField:
		return "popup"
	default:
		return "unknown"
	}
}

// State is the focus state of the application.
// The zero value has nothing focused.
type State struct {
	target Target
	field  int
}

// Focus gives the cursor to target.
// Focusing PopupField selects field 0.
func (s *State) Focus(target Target) {
	s.target = target
	s.field = 0
}

// FocusField gives the cursor to the create form field at index.
func (s *State) FocusField(index int) {
	if index < 0 {
		index = 0
	}
	s.target = PopupField
	s.field = index
}

// Blur removes focus from every input.
func (s *State) Blur() {
	s.target = None
	s.field = 0
}

// Target returns the focused input.
func (s *State) Target() Target {
	return s.target
}

// Field returns the focused form field, or -1 if no form field is focused.
func (s *State) Field() int {
	if s.target != PopupField {
		return -1
	}
	return s.field
}

// Focused returns true if any input owns the cursor.
func (s *State) Focused() bool {
	return s.target != None
}

// SearchFocused returns true if the search box owns the cursor.
func (s *State) SearchFocused() bool {
	return s.target == Search
}

// EditorFocused returns true if the editor owns the cursor.
func (s *State) EditorFocused() bool {
	return s.target == Editor
}

// PopupFocused returns true if a create form field owns the cursor.
func (s *State) PopupFocused() bool {
	return s.target == PopupField
}
