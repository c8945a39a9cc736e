package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "DIAL_"

// envSetters maps an environment variable suffix to the setting it
// overrides.
var envSetters = map[string]func(c *Config, value string) error{
	"LOG_LEVEL": func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	},
	"LOG_FILE": func(c *Config, v string) error {
		c.Logging.File = v
		return nil
	},
	"THEME": func(c *Config, v string) error {
		c.UI.Theme = v
		return nil
	},
	"STORAGE_PATH": func(c *Config, v string) error {
		c.Storage.Path = v
		return nil
	},
	"STORAGE_FORMAT": func(c *Config, v string) error {
		c.Storage.Format = v
		return nil
	},
	"SPARE_CAPACITY": func(c *Config, v string) error {
		return setInt(&c.Editor.SpareCapacity, v)
	},
	"TAB_WIDTH": func(c *Config, v string) error {
		return setInt(&c.Editor.TabWidth, v)
	},
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("not an integer: %q", v)
	}
	*dst = n
	return nil
}

// EnvVars returns the names of the supported environment overrides,
// sorted.
func EnvVars(prefix string) []string {
	names := make([]string, 0, len(envSetters))
	for suffix := range envSetters {
		names = append(names, prefix+suffix)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides settings from environment variables named prefix
// plus a known suffix. Set-but-empty variables are ignored.
func (c *Config) ApplyEnv(prefix string) error {
	return c.applyEnv(prefix, os.LookupEnv)
}

func (c *Config) applyEnv(prefix string, lookup func(string) (string, bool)) error {
	for _, name := range EnvVars(prefix) {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		if err := envSetters[name[len(prefix):]](c, v); err != nil {
			return fmt.Errorf("environment %s: %w", name, err)
		}
	}
	return nil
}
