// Package main is the entry point for the Dial snippet manager.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/dial/internal/app"
	"github.com/dshills/dial/internal/clipboard"
	"github.com/dshills/dial/internal/config"
	"github.com/dshills/dial/internal/logging"
	"github.com/dshills/dial/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	theme      string
	logLevel   string
	storage    string
	noWatch    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog.Close()

	// Create application
	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: f.configPath,
		Watch:      !f.noWatch,
		Clipboard:  clipboard.Default(),
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Create terminal backend
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		_ = application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&f.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&f.theme, "theme", "", "Syntax highlighting theme")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.storage, "storage", "", "Snippet file (.json, .yaml or .yml)")
	flag.BoolVar(&f.noWatch, "no-watch", false, "Do not reload the configuration file on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Dial - terminal code snippet manager\n\n")
		fmt.Fprintf(os.Stderr, "Usage: dial [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.EnvVars(config.EnvPrefix) {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dial                          Open the default collection\n")
		fmt.Fprintf(os.Stderr, "  dial -storage work.yaml       Open a YAML collection\n")
		fmt.Fprintf(os.Stderr, "  dial -theme dracula           Use another highlighting theme\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Dial %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return f
}

// loadConfig layers the settings file, the environment and the command
// line, in that order.
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return nil, err
	}

	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.storage != "" {
		cfg.Storage.Path = f.storage
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// openLogger opens the log file. The terminal belongs to the UI, so logs
// never go to stderr while running.
func openLogger(cfg *config.Config) (*logging.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogPath()
	if path == "" {
		return logging.Null(), io.NopCloser(nil), nil
	}

	file, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Output: file,
		Prefix: config.AppName,
	})
	return logger, file, nil
}
