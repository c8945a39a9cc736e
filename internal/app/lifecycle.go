package app

import (
	"fmt"

	"github.com/dshills/dial/internal/config"
	"github.com/dshills/dial/internal/config/watcher"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
	"github.com/dshills/dial/internal/renderer/highlight"
)

// syncEditor writes the editor buffer into the store at the selected
// index. Nothing is written when no record is selected or the buffer was
// built from a different record.
func (app *Application) syncEditor() bool {
	idx, ok := app.state.CurrentIndex()
	if !ok {
		app.logger.Debug("sync skipped: no selection")
		return false
	}

	bound, has := app.views.Editor.Bound()
	if !has || bound != idx {
		app.logger.Debug("sync skipped: editor holds record %d, selection is %d", bound, idx)
		return false
	}

	app.state.Store.SetContent(idx, app.views.Editor.Text())
	return true
}

// save persists the whole store. reason names what triggered it and is
// attached to the error.
func (app *Application) save(reason string) error {
	records := app.state.Store.All()
	if err := app.persister.Save(records); err != nil {
		opErr := NewOperationError("save", app.storageTarget(), err).WithContext(reason)
		app.logger.Error("%v", opErr)
		app.state.SetError(fmt.Sprintf("Save failed: %v", err))
		return opErr
	}
	app.logger.Debug("saved %d snippets", len(records))
	return nil
}

// reloadConfig re-reads the settings file and applies the settings that
// can change at runtime: theme and log level.
func (app *Application) reloadConfig(path string) {
	cfg, err := config.Load(path)
	if err == nil {
		err = cfg.ApplyEnv(config.EnvPrefix)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		opErr := NewOperationError("reload", path, err)
		app.logger.Warn("%v", opErr)
		app.state.SetError("Config reload failed")
		return
	}

	if cfg.UI.Theme != app.cfg.UI.Theme {
		if !highlight.KnownTheme(cfg.UI.Theme) {
			app.logger.Warn("unknown theme %q, using %s", cfg.UI.Theme, highlight.DefaultTheme)
		}
		app.highlighter.SetTheme(cfg.UI.Theme)
		app.cfg.UI.Theme = cfg.UI.Theme
	}

	if cfg.Logging.Level != app.cfg.Logging.Level {
		if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
			app.logger.SetLevel(level)
			app.cfg.Logging.Level = cfg.Logging.Level
		}
	}

	app.logger.Info("config reloaded from %s", path)
	app.state.SetStatus("Config reloaded")
}

// startWatcher watches the settings file when enabled. Change events are
// posted to the run loop.
func (app *Application) startWatcher() {
	if !app.opts.Watch || app.opts.ConfigPath == "" {
		return
	}

	opts := []watcher.Option{
		watcher.WithErrorHandler(func(err error) {
			app.logger.Warn("config watcher: %v", err)
		}),
	}
	if app.opts.ReloadDebounce > 0 {
		opts = append(opts, watcher.WithDebounce(app.opts.ReloadDebounce))
	}

	w, err := watcher.New(opts...)
	if err != nil {
		app.logger.Warn("config watcher unavailable: %v", err)
		return
	}
	if err := w.Watch(app.opts.ConfigPath); err != nil {
		app.logger.Warn("cannot watch %s: %v", app.opts.ConfigPath, err)
		_ = w.Stop()
		return
	}

	b := app.backend
	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			return
		}
		b.PostEvent(backend.InterruptEvent(ReloadRequest{Path: ev.Path}))
	})
	w.Start()
	app.watcher = w
	app.logger.Debug("watching %s", app.opts.ConfigPath)
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Stop(); err != nil {
		app.logger.Warn("stopping config watcher: %v", err)
	}
	app.watcher = nil
}
