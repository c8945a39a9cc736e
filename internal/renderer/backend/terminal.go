package backend

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/renderer/core"
)

// ErrScreenClosed is reported when the terminal stops delivering events.
// The run loop treats it as a request to exit.
var ErrScreenClosed = errors.New("terminal event queue closed")

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventError, Err: ErrScreenClosed}
	}
	return convertEvent(ev)
}

// PostEvent queues event for PollEvent. Key events are re-encoded as tcell
// keys; every other event travels as an interrupt.
func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	if event.Type == EventKey {
		k, r, m := convertToTcellKey(event.Key)
		ev = tcell.NewEventKey(k, r, m)
	} else {
		ev = tcell.NewEventInterrupt(event)
	}
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return KeyEvent(convertKey(e))

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		if posted, ok := e.Data().(Event); ok {
			return posted
		}
		return InterruptEvent(e.Data())

	case *tcell.EventError:
		return Event{Type: EventError, Err: e}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key event to a key.Event.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		return key.Event{Key: key.KeyRune, Rune: e.Rune(), Modifiers: mods}
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape, Modifiers: mods}
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Modifiers: mods}
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab, Modifiers: mods}
	case tcell.KeyBacktab:
		return key.Event{Key: key.KeyBacktab, Modifiers: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Modifiers: mods}
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Modifiers: mods}
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Modifiers: mods}
	case tcell.KeyPgUp:
		return key.Event{Key: key.KeyPageUp, Modifiers: mods}
	case tcell.KeyPgDn:
		return key.Event{Key: key.KeyPageDown, Modifiers: mods}
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp, Modifiers: mods}
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown, Modifiers: mods}
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Modifiers: mods}
	}

	// Remaining control codes are Ctrl+letter.
	if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Event{
			Key:       key.KeyRune,
			Rune:      rune('a' + (k - tcell.KeyCtrlA)),
			Modifiers: mods.With(key.ModCtrl),
		}
	}
	return key.Event{Key: key.KeyNone}
}

// convertToTcellKey converts a key.Event back to tcell key parameters.
func convertToTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mods := convertToTcellMod(ev.Modifiers)

	switch ev.Key {
	case key.KeyRune:
		return tcell.KeyRune, ev.Rune, mods
	case key.KeyEscape:
		return tcell.KeyEscape, 0, mods
	case key.KeyEnter:
		return tcell.KeyEnter, '\r', mods
	case key.KeyTab:
		return tcell.KeyTab, '\t', mods
	case key.KeyBacktab:
		return tcell.KeyBacktab, 0, mods
	case key.KeyBackspace:
		return tcell.KeyBackspace2, 0, mods
	case key.KeyDelete:
		return tcell.KeyDelete, 0, mods
	case key.KeyHome:
		return tcell.KeyHome, 0, mods
	case key.KeyEnd:
		return tcell.KeyEnd, 0, mods
	case key.KeyPageUp:
		return tcell.KeyPgUp, 0, mods
	case key.KeyPageDown:
		return tcell.KeyPgDn, 0, mods
	case key.KeyUp:
		return tcell.KeyUp, 0, mods
	case key.KeyDown:
		return tcell.KeyDown, 0, mods
	case key.KeyLeft:
		return tcell.KeyLeft, 0, mods
	case key.KeyRight:
		return tcell.KeyRight, 0, mods
	default:
		return tcell.KeyNUL, 0, mods
	}
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(key.ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}
