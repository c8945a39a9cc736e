package ui

import (
	"fmt"

	"github.com/dshills/dial/internal/clipboard"
	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/core"
)

const (
	// itemHeight is the number of rows a list entry takes: title,
	// language and a spacer.
	itemHeight = 3

	// marker prefixes the selected entry.
	marker = " > "
)

// List shows the filtered snippets and moves the selection.
type List struct {
	clip   clipboard.Clipboard
	logger *logging.Logger
}

// NewList creates a list that copies snippets to clip.
func NewList(clip clipboard.Clipboard, logger *logging.Logger) *List {
	if logger == nil {
		logger = logging.Null()
	}
	return &List{clip: clip, logger: logger}
}

// Render draws the entries that fit, scrolled so the selection is visible.
func (l *List) Render(b backend.Backend, area core.ScreenRect, st *State) {
	inner := panel(b, area, " Snippets ", false)
	if inner.IsEmpty() {
		return
	}

	view := st.View()
	selected := st.Selection.Index()

	perPage := max(inner.Height()/itemHeight, 1)
	offset := 0
	if selected >= perPage {
		offset = selected - perPage + 1
	}

	textLeft := inner.Left + len(marker)
	for i := offset; i < len(view); i++ {
		y := inner.Top + (i-offset)*itemHeight
		if y >= inner.Bottom {
			break
		}

		title := core.DefaultStyle().Bold()
		lang := core.DefaultStyle().Italic()
		if i == selected {
			title = title.Merge(selectedStyle)
			lang = lang.Merge(selectedStyle)
			drawText(b, inner.Left, y, inner.Right, marker, selectedStyle)
		}

		rec := view[i].Record
		drawText(b, textLeft, y, inner.Right, rec.Title, title)
		if y+1 < inner.Bottom {
			drawText(b, textLeft, y+1, inner.Right, rec.Language, lang)
		}
	}
}

// HandleKey moves the selection with j/k or the arrow keys and copies the
// selected snippet with y.
func (l *List) HandleKey(ev key.Event, st *State) {
	switch {
	case ev.Is('j') || ev.Key == key.KeyDown:
		st.Selection.Next(st.View())
	case ev.Is('k') || ev.Key == key.KeyUp:
		st.Selection.Previous(st.View())
	case ev.Is('y'):
		l.copy(st)
	}
}

func (l *List) copy(st *State) {
	rec, ok := st.CurrentRecord()
	if !ok {
		return
	}
	if err := l.clip.WriteAll(rec.Content); err != nil {
		l.logger.Warn("copy %q to clipboard: %v", rec.Title, err)
		st.SetError(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	st.SetStatus(fmt.Sprintf("Copied %q", rec.Title))
}
