package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/dial/internal/clipboard"
	"github.com/dshills/dial/internal/config"
	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/input/mode"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/snippet"
	"github.com/dshills/dial/internal/storage"
)

// memPersister records saves in memory.
type memPersister struct {
	records []snippet.Record
	saves   int
	loadErr error
	saveErr error
}

func (p *memPersister) Load() ([]snippet.Record, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.records, nil
}

func (p *memPersister) Save(records []snippet.Record) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.records = append([]snippet.Record(nil), records...)
	return nil
}

func sampleRecords() []snippet.Record {
	return []snippet.Record{
		{Title: "print hello", Language: "go", Content: "Hello"},
		{Title: "macro", Language: "rust", Content: "macro_rules! m {}"},
		{Title: "Print list", Language: "python", Content: "print(xs)"},
	}
}

func newTestApp(t *testing.T, p *memPersister) *Application {
	t.Helper()
	app, err := New(Options{Persister: p, Clipboard: &clipboard.Memory{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app
}

func press(t *testing.T, app *Application, keys ...key.Event) {
	t.Helper()
	for _, k := range keys {
		if err := app.HandleEvent(backend.KeyEvent(k)); err != nil {
			t.Fatalf("HandleEvent(%s) error = %v", k, err)
		}
	}
}

func runes(s string) []key.Event {
	out := make([]key.Event, 0, len(s))
	for _, r := range s {
		out = append(out, key.NewRuneEvent(r))
	}
	return out
}

var esc = key.NewSpecialEvent(key.KeyEscape)

func TestNewStartsInCommandMode(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})

	if !app.Modes().IsMode(mode.ModeCommand) {
		t.Errorf("mode = %s, want command", app.Modes().CurrentName())
	}
	st := app.State()
	if st.Mode != mode.ModeCommand || st.ModeLabel != "Command" {
		t.Errorf("state mode = %q/%q", st.Mode, st.ModeLabel)
	}
	if st.Store.Len() != 3 {
		t.Errorf("Store.Len() = %d, want 3", st.Store.Len())
	}
	if st.Focus.Focused() {
		t.Error("nothing should be focused initially")
	}
}

func TestNewLoadFailure(t *testing.T) {
	_, err := New(Options{Persister: &memPersister{loadErr: errors.New("corrupt")}})

	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "storage" {
		t.Fatalf("New() error = %v, want storage InitError", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "load" || opErr.Context != "startup" {
		t.Errorf("error %v should wrap a startup load OperationError", err)
	}
}

func TestNewWithFileStore(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "snippets.json")

	app, err := New(Options{Config: cfg, Clipboard: &clipboard.Memory{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec, ok := app.State().CurrentRecord()
	if !ok || rec != snippet.Welcome() {
		t.Errorf("CurrentRecord() = %+v, want welcome record", rec)
	}
}

func TestEditEscapeSavesOnce(t *testing.T) {
	p := &memPersister{records: sampleRecords()}
	app := newTestApp(t, p)

	press(t, app, key.NewRuneEvent('e'))
	if !app.Modes().IsMode(mode.ModeEdit) {
		t.Fatalf("mode = %s, want edit", app.Modes().CurrentName())
	}
	if !app.State().Focus.EditorFocused() {
		t.Error("editor should be focused in edit mode")
	}

	press(t, app, runes(", world")...)
	if p.saves != 0 {
		t.Fatalf("saves = %d before Escape, want 0", p.saves)
	}

	press(t, app, esc)

	if !app.Modes().IsMode(mode.ModeCommand) {
		t.Errorf("mode = %s, want command", app.Modes().CurrentName())
	}
	if p.saves != 1 {
		t.Errorf("saves = %d, want exactly 1", p.saves)
	}
	if p.records[0].Content != "Hello, world" {
		t.Errorf("saved content = %q, want %q", p.records[0].Content, "Hello, world")
	}
	if app.State().Focus.Focused() {
		t.Error("Escape should clear focus")
	}

	// Escape in command mode does nothing.
	press(t, app, esc)
	if p.saves != 1 {
		t.Errorf("saves = %d after second Escape, want 1", p.saves)
	}
}

func TestCommandKeysInertInOtherModes(t *testing.T) {
	p := &memPersister{records: sampleRecords()}
	app := newTestApp(t, p)

	press(t, app, key.NewRuneEvent('e'))
	press(t, app, runes("qs/")...)

	if app.State().ShouldExit {
		t.Error("q in edit mode should not quit")
	}
	if !app.Modes().IsMode(mode.ModeEdit) {
		t.Errorf("mode = %s, want edit", app.Modes().CurrentName())
	}

	press(t, app, esc)
	if p.records[0].Content != "Helloqs/" {
		t.Errorf("content = %q, want %q", p.records[0].Content, "Helloqs/")
	}
}

func TestSearchAndSelectWraparound(t *testing.T) {
	p := &memPersister{records: sampleRecords()}
	app := newTestApp(t, p)
	st := app.State()

	press(t, app, key.NewRuneEvent('/'))
	if !st.Focus.SearchFocused() {
		t.Fatal("search should be focused in search mode")
	}
	press(t, app, runes("print")...)
	if st.Query != "print" || st.View().Len() != 2 {
		t.Fatalf("Query = %q, view len = %d", st.Query, st.View().Len())
	}

	press(t, app, esc, key.NewRuneEvent('s'))

	steps := []struct {
		ev   key.Event
		want int
	}{
		{key.NewRuneEvent('j'), 2},
		{key.NewRuneEvent('j'), 0},
		{key.NewRuneEvent('k'), 2},
	}
	for i, s := range steps {
		press(t, app, s.ev)
		if idx, _ := st.CurrentIndex(); idx != s.want {
			t.Errorf("step %d: CurrentIndex() = %d, want %d", i, idx, s.want)
		}
	}
}

func TestPopupCreatesRecord(t *testing.T) {
	p := &memPersister{records: sampleRecords()}
	app := newTestApp(t, p)
	b := backend.NewNullBackend(100, 40)
	if err := app.SetBackend(b); err != nil {
		t.Fatal(err)
	}
	app.draw()

	press(t, app, key.NewRuneEvent('s'), key.NewRuneEvent('a'))
	if !app.Modes().IsMode(mode.ModePopup) {
		t.Fatalf("mode = %s, want popup", app.Modes().CurrentName())
	}
	if app.State().Focus.Field() != 0 {
		t.Errorf("Field() = %d, want 0", app.State().Focus.Field())
	}
	app.draw()

	press(t, app, runes("quick sort")...)
	press(t, app, key.NewSpecialEvent(key.KeyTab))
	press(t, app, runes("go")...)
	press(t, app, key.NewSpecialEvent(key.KeyEnter))
	app.draw()
	press(t, app, esc)

	if len(p.records) != 4 {
		t.Fatalf("saved %d records, want 4", len(p.records))
	}
	if got := p.records[3]; got.Title != "quick sort" || got.Language != "go" {
		t.Errorf("new record = %+v", got)
	}
}

func TestSyncSkippedForOtherRecord(t *testing.T) {
	p := &memPersister{records: sampleRecords()}
	app := newTestApp(t, p)

	press(t, app, key.NewRuneEvent('e'), key.NewRuneEvent('X'))
	app.State().Selection.Select(1)
	press(t, app, esc)

	if p.saves != 1 {
		t.Errorf("saves = %d, want 1", p.saves)
	}
	if p.records[0].Content != "Hello" || p.records[1].Content != "macro_rules! m {}" {
		t.Errorf("records changed: %q / %q", p.records[0].Content, p.records[1].Content)
	}
}

func TestSaveFailureKeepsRunning(t *testing.T) {
	p := &memPersister{records: sampleRecords(), saveErr: errors.New("disk full")}
	app := newTestApp(t, p)

	press(t, app, key.NewRuneEvent('e'), esc)

	st := app.State()
	if !st.StatusError || st.Status == "" {
		t.Errorf("status = %q (error=%v), want save error", st.Status, st.StatusError)
	}
	if st.ShouldExit {
		t.Error("save failure should not stop the loop")
	}

	// The edit is still in the store for the next save.
	p.saveErr = nil
	press(t, app, key.NewRuneEvent('e'), esc)
	if p.saves != 1 {
		t.Errorf("saves = %d, want 1", p.saves)
	}
}

func TestQuit(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})

	err := app.HandleEvent(backend.KeyEvent(key.NewRuneEvent('q')))
	if !errors.Is(err, ErrQuit) {
		t.Errorf("HandleEvent(q) error = %v, want ErrQuit", err)
	}
	if !app.State().ShouldExit {
		t.Error("q in command mode should request exit")
	}
}

func TestInputErrors(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})

	if err := app.HandleEvent(backend.Event{Type: backend.EventError, Err: errors.New("bad read")}); err != nil {
		t.Errorf("HandleEvent() error = %v", err)
	}
	if app.State().ShouldExit {
		t.Error("a read error should not stop the loop")
	}

	err := app.HandleEvent(backend.Event{Type: backend.EventError, Err: backend.ErrScreenClosed})
	if !errors.Is(err, ErrQuit) {
		t.Errorf("HandleEvent(closed) error = %v, want ErrQuit", err)
	}
	if !app.State().ShouldExit {
		t.Error("a closed screen should stop the loop")
	}
}

func TestRunRequiresBackend(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})
	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() error = %v, want ErrNoBackend", err)
	}
}

func TestRunUntilQuit(t *testing.T) {
	p := &memPersister{records: sampleRecords()}
	app := newTestApp(t, p)
	b := backend.NewNullBackend(80, 24)
	if err := app.SetBackend(b); err != nil {
		t.Fatal(err)
	}

	b.PostEvent(backend.KeyEvent(key.NewRuneEvent('e')))
	b.PostEvent(backend.KeyEvent(key.NewRuneEvent('!')))
	b.PostEvent(backend.KeyEvent(esc))
	b.PostEvent(backend.KeyEvent(key.NewRuneEvent('q')))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// One frame per event plus the initial frame.
	if b.Shows() != 5 {
		t.Errorf("Shows() = %d, want 5", b.Shows())
	}
	// Escape save plus the final save.
	if p.saves != 2 {
		t.Errorf("saves = %d, want 2", p.saves)
	}
	if p.records[0].Content != "Hello!" {
		t.Errorf("content = %q", p.records[0].Content)
	}
	if app.IsRunning() {
		t.Error("IsRunning() after Run returned")
	}
}

func TestShutdown(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})
	b := backend.NewNullBackend(80, 24)
	_ = app.SetBackend(b)

	if err := app.Shutdown(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Shutdown() before Run = %v, want ErrNotRunning", err)
	}

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	deadline := time.Now().Add(2 * time.Second)
	for !app.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := app.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestSetBackendWhileRunning(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})
	app.running.Store(true)
	defer app.running.Store(false)

	if err := app.SetBackend(backend.NewNullBackend(10, 10)); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestCursorStyleFollowsMode(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})
	b := backend.NewNullBackend(80, 24)
	_ = app.SetBackend(b)

	press(t, app, key.NewRuneEvent('e'))
	if b.CursorStyleValue() != backend.CursorBar {
		t.Errorf("cursor style = %v, want bar", b.CursorStyleValue())
	}
	press(t, app, esc)
	if b.CursorStyleValue() != backend.CursorHidden {
		t.Errorf("cursor style = %v, want hidden", b.CursorStyleValue())
	}
}

func TestReloadConfig(t *testing.T) {
	t.Setenv("DIAL_THEME", "")
	t.Setenv("DIAL_LOG_LEVEL", "")

	app := newTestApp(t, &memPersister{records: sampleRecords()})
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"github\"\n\n[logging]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := app.HandleEvent(backend.InterruptEvent(ReloadRequest{Path: path})); err != nil {
		t.Fatal(err)
	}

	if got := app.Highlighter().Theme().Name(); got != "github" {
		t.Errorf("theme = %q, want github", got)
	}
	if app.Config().Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", app.Config().Logging.Level)
	}
	if app.State().StatusError {
		t.Errorf("status = %q, want success", app.State().Status)
	}
}

func TestReloadConfigInvalid(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_ = app.HandleEvent(backend.InterruptEvent(ReloadRequest{Path: path}))

	if !app.State().StatusError {
		t.Error("invalid config should set an error status")
	}
	if app.Config().Editor.TabWidth != 4 {
		t.Error("invalid config should not be applied")
	}
}

func TestFileStoreEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.yaml")
	fs, err := storage.NewFileStore(path, storage.FormatAuto)
	if err != nil {
		t.Fatal(err)
	}
	app, err := New(Options{Persister: fs, Clipboard: &clipboard.Memory{}})
	if err != nil {
		t.Fatal(err)
	}

	press(t, app, key.NewRuneEvent('e'), key.NewRuneEvent('!'), esc)

	records, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Content != snippet.Welcome().Content+"!" {
		t.Errorf("reloaded %+v", records)
	}
}

func TestRunSavesEditorOnInterrupt(t *testing.T) {
	tests := []struct {
		name string
		last backend.Event
	}{
		{"quit request", backend.InterruptEvent(QuitRequest{})},
		{"terminal closed", backend.Event{Type: backend.EventError, Err: backend.ErrScreenClosed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &memPersister{records: sampleRecords()}
			app := newTestApp(t, p)
			b := backend.NewNullBackend(80, 24)
			if err := app.SetBackend(b); err != nil {
				t.Fatal(err)
			}

			b.PostEvent(backend.KeyEvent(key.NewRuneEvent('e')))
			b.PostEvent(backend.KeyEvent(key.NewRuneEvent('!')))
			b.PostEvent(tt.last)

			if err := app.Run(); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if p.saves != 1 {
				t.Errorf("saves = %d, want 1", p.saves)
			}
			if p.records[0].Content != "Hello!" {
				t.Errorf("content = %q, want %q", p.records[0].Content, "Hello!")
			}
		})
	}
}

func TestRunFinalSaveFailure(t *testing.T) {
	p := &memPersister{records: sampleRecords(), saveErr: errors.New("disk full")}
	app := newTestApp(t, p)
	b := backend.NewNullBackend(80, 24)
	_ = app.SetBackend(b)
	b.PostEvent(backend.KeyEvent(key.NewRuneEvent('q')))

	err := app.Run()

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "save" || opErr.Context != "exit" {
		t.Fatalf("Run() error = %v, want exit save OperationError", err)
	}
	if !errors.Is(err, p.saveErr) {
		t.Errorf("error %v should wrap the persister error", err)
	}
}

func TestPopupClearedOnEscape(t *testing.T) {
	app := newTestApp(t, &memPersister{records: sampleRecords()})
	_ = app.SetBackend(backend.NewNullBackend(100, 40))
	app.draw()

	press(t, app, key.NewRuneEvent('s'), key.NewRuneEvent('a'))
	press(t, app, runes("half")...)
	if got := app.Views().Popup.Value(0); got != "half" {
		t.Fatalf("title = %q, want %q", got, "half")
	}

	press(t, app, esc, key.NewRuneEvent('s'), key.NewRuneEvent('a'))

	if got := app.Views().Popup.Value(0); got != "" {
		t.Errorf("title after reopening = %q, want empty", got)
	}
	if app.State().Store.Len() != 3 {
		t.Errorf("Store.Len() = %d, abandoned form should not add", app.State().Store.Len())
	}
}

func TestWatcherPostsReload(t *testing.T) {
	t.Setenv("DIAL_THEME", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"monokai\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{
		Persister:      &memPersister{records: sampleRecords()},
		Clipboard:      &clipboard.Memory{},
		ConfigPath:     path,
		Watch:          true,
		ReloadDebounce: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	b := backend.NewNullBackend(80, 24)
	_ = app.SetBackend(b)

	app.startWatcher()
	defer app.stopWatcher()
	if app.watcher == nil {
		t.Fatal("watcher not started")
	}

	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"github\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	events := make(chan backend.Event, 1)
	go func() { events <- b.PollEvent() }()

	select {
	case ev := <-events:
		if ev.Type != backend.EventInterrupt {
			t.Fatalf("event type = %v, want interrupt", ev.Type)
		}
		if err := app.HandleEvent(ev); err != nil {
			t.Fatal(err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload request posted")
	}

	if got := app.Highlighter().Theme().Name(); got != "github" {
		t.Errorf("theme = %q, want github", got)
	}
}
