package ui

import (
	"fmt"
	"strings"

	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
	"github.com/dshills/dial/internal/renderer/cursor"
	"github.com/dshills/dial/internal/snippet"
)

// Create form fields.
const (
	FieldTitle = iota
	FieldLanguage
	fieldCount
)

// DefaultLanguage is used when the form's language field is left empty.
const DefaultLanguage = "txt"

var fieldLabels = [fieldCount]string{" Title ", " Language "}

// Popup is the create form.
type Popup struct {
	fields [fieldCount]*Field
	logger *logging.Logger
}

// NewPopup creates an empty form.
func NewPopup(logger *logging.Logger) *Popup {
	if logger == nil {
		logger = logging.Null()
	}
	p := &Popup{logger: logger}
	for i := range p.fields {
		p.fields[i] = NewField(logger)
	}
	return p
}

// Value returns the text of field i.
func (p *Popup) Value(i int) string {
	if i < 0 || i >= fieldCount {
		return ""
	}
	return p.fields[i].Text()
}

// Clear empties every field.
func (p *Popup) Clear() {
	for _, f := range p.fields {
		f.Reset("")
	}
}

// Render draws the form over area, erasing what is beneath it.
func (p *Popup) Render(b backend.Backend, area core.ScreenRect, st *State) {
	b.Fill(area, core.EmptyCell())
	drawBox(b, area, roundBorder, focusedBorder)
	drawCenteredTitle(b, area, " New Snippet ", titleStyle)

	current := p.current(st)
	for i, f := range p.fields {
		rect := st.Areas.PopupFields[i]
		inner := panel(b, rect, fieldLabels[i], i == current)
		if !inner.IsEmpty() {
			drawText(b, inner.Left, inner.Top, inner.Right, f.Text(), textStyle)
		}
	}

	if st.Focus.PopupFocused() {
		p.placeCursor(st)
	}
}

// HandleKey edits the focused field. Tab and Down move to the next field,
// Backtab and Up to the previous one, and Enter creates the record.
func (p *Popup) HandleKey(ev key.Event, st *State) {
	switch ev.Key {
	case key.KeyTab, key.KeyDown:
		p.cycle(st, 1)
	case key.KeyBacktab, key.KeyUp:
		p.cycle(st, -1)
	case key.KeyEnter:
		p.submit(st)
	default:
		if handled, _ := p.fields[p.current(st)].Edit(ev); !handled {
			return
		}
	}
	p.placeCursor(st)
}

// current returns the focused field, defaulting to the title.
func (p *Popup) current(st *State) int {
	i := st.Focus.Field()
	if i < 0 || i >= fieldCount {
		return FieldTitle
	}
	return i
}

func (p *Popup) cycle(st *State, delta int) {
	next := (p.current(st) + delta + fieldCount) % fieldCount
	p.focusField(st, next)
}

func (p *Popup) focusField(st *State, i int) {
	st.Focus.FocusField(i)
	st.CurrentArea = st.Areas.PopupFields[i]
}

// submit adds the record described by the form and selects it.
func (p *Popup) submit(st *State) {
	title := strings.TrimSpace(p.fields[FieldTitle].Text())
	if title == "" {
		st.SetError("Title is required")
		return
	}
	lang := strings.TrimSpace(p.fields[FieldLanguage].Text())
	if lang == "" {
		lang = DefaultLanguage
	}

	idx := st.Store.Add(snippet.Record{Title: title, Language: lang})
	p.logger.Info("created snippet %d %q (%s)", idx, title, lang)

	p.Clear()
	p.focusField(st, FieldTitle)

	for i, entry := range st.View() {
		if entry.Index == idx {
			st.Selection.Select(i)
			st.SetStatus(fmt.Sprintf("Created %q", title))
			return
		}
	}
	st.SetStatus(fmt.Sprintf("Created %q (hidden by search)", title))
}

func (p *Popup) placeCursor(st *State) {
	st.Cursor = cursor.Project(p.fields[p.current(st)].Before(), st.CurrentArea, 0)
	st.ShowCursor = true
}
