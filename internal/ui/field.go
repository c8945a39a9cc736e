package ui

import (
	"github.com/dshills/dial/internal/engine/buffer"
	"github.com/dshills/dial/internal/input/key"
)

// fieldSpare is the initial gap of single-line inputs.
const fieldSpare = 64

// Field is a single-line text input backed by a gap buffer.
type Field struct {
	buf    *buffer.GapBuffer
	logger buffer.Logger
}

// NewField creates an empty field.
func NewField(logger buffer.Logger) *Field {
	f := &Field{logger: logger}
	f.Reset("")
	return f
}

// Reset replaces the content with text and puts the cursor at its end.
func (f *Field) Reset(text string) {
	f.buf = buffer.New(text, fieldSpare, buffer.WithLogger(f.logger))
}

// Text returns the field content.
func (f *Field) Text() string {
	return f.buf.String()
}

// Before returns the runes left of the cursor.
func (f *Field) Before() []rune {
	return f.buf.BeforeGap()
}

// Edit applies a line-editing key: printable characters insert,
// Backspace deletes and Left/Right move. handled reports whether the key
// was used and changed whether the text changed.
func (f *Field) Edit(ev key.Event) (handled, changed bool) {
	switch {
	case ev.IsChar():
		f.buf.Insert(ev.Rune)
		return true, true
	case ev.Key == key.KeyBackspace:
		before := f.buf.Len()
		f.buf.Backspace()
		return true, f.buf.Len() != before
	case ev.Key == key.KeyLeft:
		f.buf.MoveLeft()
		return true, false
	case ev.Key == key.KeyRight:
		f.buf.MoveRight()
		return true, false
	}
	return false, false
}
