// Package app provides the main application structure and coordination
// for dial. It wires the snippet store, modes, components and terminal
// together and owns the run loop.
//
// All application state lives in a single State value owned by the run
// loop. Other goroutines (the config watcher, signal handlers) never touch
// it; they post interrupt events into the backend queue and the loop
// handles them between key presses.
package app

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/dial/internal/clipboard"
	"github.com/dshills/dial/internal/config"
	"github.com/dshills/dial/internal/config/watcher"
	"github.com/dshills/dial/internal/input/mode"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/highlight"
	"github.com/dshills/dial/internal/snippet"
	"github.com/dshills/dial/internal/storage"
	"github.com/dshills/dial/internal/ui"
)

// State is the complete application state.
type State struct {
	ui.State

	// ShouldExit ends the run loop after the current frame.
	ShouldExit bool
}

// Application is the central coordinator for all dial components.
type Application struct {
	mu sync.Mutex

	cfg         *config.Config
	state       *State
	modes       *mode.Manager
	views       *ui.Views
	highlighter *highlight.Highlighter
	persister   storage.Persister
	backend     backend.Backend
	watcher     *watcher.Watcher
	logger      *logging.Logger

	running atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// Config is the effective configuration. Nil means defaults.
	Config *config.Config

	// ConfigPath is the settings file. When Watch is set it is watched
	// and reloaded on change.
	ConfigPath string
	Watch      bool

	// ReloadDebounce coalesces bursts of writes to the settings file.
	// Zero uses the watcher default.
	ReloadDebounce time.Duration

	// Persister loads and saves snippets. Nil means a file store at the
	// configured storage path.
	Persister storage.Persister

	// Clipboard receives copied snippets. Nil means the system clipboard.
	Clipboard clipboard.Clipboard

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger
}

// New creates a new Application and loads the snippet collection.
// A load failure is fatal.
func New(opts Options) (*Application, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Null()
	}

	app := &Application{
		cfg:    opts.Config,
		logger: opts.Logger.WithComponent("app"),
		opts:   opts,
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Persistence
	app.persister = app.opts.Persister
	if app.persister == nil {
		fs, err := storage.NewFileStore(app.cfg.StoragePath(), storage.Format(app.cfg.Storage.Format))
		if err != nil {
			return &InitError{Component: "storage", Err: err}
		}
		app.persister = fs
	}

	records, err := app.persister.Load()
	if err != nil {
		return &InitError{Component: "storage", Err: NewOperationError("load", app.storageTarget(), err).WithContext("startup")}
	}
	app.logger.Info("loaded %d snippets from %s", len(records), app.storageTarget())

	// 2. State
	app.state = &State{State: *ui.NewState(snippet.NewStore(records))}

	// 3. Components
	app.highlighter = highlight.New(app.cfg.UI.Theme)
	app.views = ui.NewViews(ui.Options{
		SpareCapacity: app.cfg.Editor.SpareCapacity,
		TabWidth:      app.cfg.Editor.TabWidth,
		Highlighter:   app.highlighter,
		Clipboard:     app.opts.Clipboard,
		Logger:        app.opts.Logger,
	})

	// 4. Modes
	app.modes = mode.NewDefaultManager(app.state.Focus)
	app.modes.OnChange(app.onModeChange)
	app.onModeChange(nil, app.modes.Current())

	return nil
}

// storageTarget names the snippet file for messages.
func (app *Application) storageTarget() string {
	if p, ok := app.persister.(interface{ Path() string }); ok {
		return p.Path()
	}
	return "snippets"
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// IsRunning returns true if the run loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// State returns the application state. Only the run loop and tests may
// use it.
func (app *Application) State() *State {
	return app.state
}

// Modes returns the mode manager.
func (app *Application) Modes() *mode.Manager {
	return app.modes
}

// Views returns the components.
func (app *Application) Views() *ui.Views {
	return app.views
}

// Config returns the effective configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Highlighter returns the syntax highlighter.
func (app *Application) Highlighter() *highlight.Highlighter {
	return app.highlighter
}

// onModeChange mirrors the active mode into the state and the cursor
// shape.
func (app *Application) onModeChange(from, to mode.Mode) {
	if to == nil {
		return
	}
	app.state.Mode = to.Name()
	app.state.ModeLabel = to.DisplayName()

	// An abandoned create form starts empty next time.
	if from != nil && from.Name() == mode.ModePopup {
		app.views.Popup.Clear()
	}

	if from != nil {
		app.logger.Debug("mode %s -> %s", from.Name(), to.Name())
	}
	if app.backend != nil {
		app.backend.SetCursorStyle(cursorStyle(to.CursorStyle()))
	}
}

func cursorStyle(s mode.CursorStyle) backend.CursorStyle {
	switch s {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorBlock:
		return backend.CursorBlock
	default:
		return backend.CursorHidden
	}
}
