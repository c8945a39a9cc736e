// Package config provides dial's configuration.
//
// # Architecture
//
// Configuration is built from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by main)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← DIAL_LOG_LEVEL, DIAL_THEME, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/dial/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// A missing settings file is not an error; the defaults are used. Unknown
// keys in the file are rejected so that typos do not pass silently.
//
// Relative storage and log paths are resolved against the XDG data
// directory ($XDG_DATA_HOME/dial).
//
// # Sub-packages
//
//   - watcher: fsnotify-based file watching for live reload
package config
