package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the XDG subdirectories dial uses.
const AppName = "dial"

// Storage formats.
const (
	FormatAuto = ""
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the complete dial configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

// EditorConfig configures the text surfaces.
type EditorConfig struct {
	// SpareCapacity is the initial gap size of an editor buffer.
	SpareCapacity int `toml:"spare_capacity"`

	// TabWidth is the number of spaces Tab inserts.
	TabWidth int `toml:"tab_width"`
}

// StorageConfig configures where snippets are kept.
type StorageConfig struct {
	// Path is the snippet file. Relative paths are resolved against the
	// data directory.
	Path string `toml:"path"`

	// Format is "json", "yaml", or empty to pick by file extension.
	Format string `toml:"format"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `toml:"level"`

	// File is the log file. Relative paths are resolved against the data
	// directory.
	File string `toml:"file"`
}

// UIConfig configures presentation.
type UIConfig struct {
	// Theme is the syntax highlighting style name.
	Theme string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			SpareCapacity: 1024,
			TabWidth:      4,
		},
		Storage: StorageConfig{
			Path:   "snippets.json",
			Format: FormatAuto,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "dial.log",
		},
		UI: UIConfig{
			Theme: "monokai",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/dial/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// DataDir returns $XDG_DATA_HOME/dial.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Load reads the TOML file at path over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays TOML data on c.
func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// StoragePath returns the absolute snippet file path.
func (c *Config) StoragePath() string {
	return resolve(c.Storage.Path)
}

// LogPath returns the absolute log file path.
func (c *Config) LogPath() string {
	return resolve(c.Logging.File)
}

func resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(DataDir(), p)
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.SpareCapacity <= 0 {
		errs = append(errs, &ValidationError{Path: "editor.spare_capacity", Value: c.Editor.SpareCapacity, Message: "must be positive"})
	}
	if c.Editor.TabWidth <= 0 {
		errs = append(errs, &ValidationError{Path: "editor.tab_width", Value: c.Editor.TabWidth, Message: "must be positive"})
	}
	switch c.Storage.Format {
	case FormatAuto, FormatJSON, FormatYAML:
	default:
		errs = append(errs, &ValidationError{Path: "storage.format", Value: c.Storage.Format, Message: `must be "json", "yaml" or empty`})
	}
	if c.Storage.Path == "" {
		errs = append(errs, &ValidationError{Path: "storage.path", Value: c.Storage.Path, Message: "must not be empty"})
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: "must be debug, info, warn or error"})
	}

	return errors.Join(errs...)
}
