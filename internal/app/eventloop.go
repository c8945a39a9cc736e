package app

import (
	"errors"

	"github.com/dshills/dial/internal/input/key"
	"github.com/dshills/dial/internal/input/mode"
	"github.com/dshills/dial/internal/renderer/backend"
)

// ReloadRequest asks the run loop to re-read the settings file.
type ReloadRequest struct {
	Path string
}

// QuitRequest asks the run loop to exit.
type QuitRequest struct{}

// Run starts the application main loop.
// Each iteration draws a frame and then blocks on the next event. The loop
// ends after the frame in which ShouldExit becomes true.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	b.SetCursorStyle(cursorStyle(app.modes.Current().CursorStyle()))

	app.startWatcher()
	defer app.stopWatcher()

	for {
		app.draw()
		if app.state.ShouldExit {
			break
		}
		if err := app.HandleEvent(b.PollEvent()); err != nil && !errors.Is(err, ErrQuit) {
			app.logger.Error("event: %v", err)
		}
	}

	// The loop can end outside command mode (signal, closed terminal), so
	// pending editor changes are written back before the final save.
	if !app.modes.IsMode(mode.ModeCommand) {
		app.syncEditor()
	}
	return app.save("exit")
}

// Shutdown asks a running loop to exit. Safe to call from any goroutine.
func (app *Application) Shutdown() error {
	if !app.running.Load() {
		return ErrNotRunning
	}
	app.backend.PostEvent(backend.InterruptEvent(QuitRequest{}))
	return nil
}

// draw renders the current state.
func (app *Application) draw() {
	app.views.Draw(app.backend, &app.state.State)
}

// HandleEvent applies one backend event to the state. It returns ErrQuit,
// with ShouldExit set, when the event asks the application to exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev.Key)
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	case backend.EventError:
		return app.handleInputError(ev.Err)
	}
	return nil
}

// handleKey routes a key through the active mode.
func (app *Application) handleKey(ev key.Event) error {
	st := app.state

	if ev.Key == key.KeyEscape {
		if app.modes.IsMode(mode.ModeCommand) {
			return nil
		}
		return app.escape()
	}

	res, err := app.modes.HandleKey(ev)
	if err != nil {
		app.logger.Error("mode transition on %s: %v", ev, err)
		return nil
	}

	switch {
	case res.Quit:
		st.ShouldExit = true
		return ErrQuit
	case res.Route:
		if c := app.views.For(app.modes.CurrentName()); c != nil {
			c.HandleKey(ev, &st.State)
		}
	case res.SwitchTo != "":
		st.ClearStatus()
	}
	return nil
}

// escape returns to command mode, writes the editor buffer back into the
// store and saves. A failed save is reported but does not stop the loop.
func (app *Application) escape() error {
	if err := app.modes.Switch(mode.ModeCommand); err != nil {
		app.logger.Error("switch to command: %v", err)
		return nil
	}
	app.state.HideCursor()

	app.syncEditor()
	if err := app.save("escape"); err == nil {
		app.state.SetStatus("Saved")
	}
	return nil
}

// handleInterrupt handles values posted from other goroutines.
func (app *Application) handleInterrupt(data any) error {
	switch req := data.(type) {
	case QuitRequest:
		app.state.ShouldExit = true
		return ErrQuit
	case ReloadRequest:
		app.reloadConfig(req.Path)
	default:
		app.logger.Debug("ignoring interrupt %T", data)
	}
	return nil
}

// handleInputError logs a failed read. A closed terminal ends the loop.
func (app *Application) handleInputError(err error) error {
	if errors.Is(err, backend.ErrScreenClosed) {
		app.logger.Warn("terminal closed")
		app.state.ShouldExit = true
		return ErrQuit
	}
	app.logger.Error("reading input: %v", err)
	return nil
}
