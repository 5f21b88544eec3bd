// Package cli wires the tab registry to its command shell and Bubble Tea front end.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/bnema/tabring/internal/cli/styles"
	"github.com/bnema/tabring/internal/domain/build"
	"github.com/bnema/tabring/internal/domain/registry"
	"github.com/bnema/tabring/internal/infrastructure/config"
	"github.com/bnema/tabring/internal/logging"
)

// AppOptions controls how NewApp loads configuration and logging.
type AppOptions struct {
	// ConfigFile overrides the XDG lookup when set.
	ConfigFile string
	// Flags maps config keys to command-line flags that override them.
	Flags map[string]*pflag.Flag
	// QuietLogs keeps logs off the terminal by sending them to the state
	// log file when no log file is configured.
	QuietLogs bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Registry  *registry.Registry
	Shell     *Shell

	manager *config.Manager

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads configuration and builds a registry with its shell.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	for key, flag := range opts.Flags {
		if err := mgr.BindFlag(key, flag); err != nil {
			return nil, err
		}
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, closer, err := newLogger(cfg, opts.QuietLogs)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	theme := styles.NewTheme(cfg)
	reg := registry.New(cfg.Registry.MaxTabs)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Int("max_tabs", reg.Cap()).
		Msg("tab registry ready")

	return &App{
		Config:    cfg,
		Theme:     theme,
		Registry:  reg,
		Shell:     NewShell(reg, theme),
		manager:   mgr,
		ctx:       ctx,
		logCloser: closer,
	}, nil
}

func newConfigManager(path string) (*config.Manager, error) {
	if path != "" {
		mgr, err := config.NewManagerForFile(path)
		if err != nil {
			return nil, fmt.Errorf("config manager: %w", err)
		}
		return mgr, nil
	}
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	return mgr, nil
}

func newLogger(cfg *config.Config, quiet bool) (zerolog.Logger, io.Closer, error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Logging.Level)
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = "15:04:05"
	lc.File = cfg.Logging.File
	lc.MaxSizeMB = cfg.Logging.MaxSizeMB
	lc.MaxBackups = cfg.Logging.MaxBackups

	if quiet && lc.File == "" {
		path, err := config.GetLogFile()
		if err != nil {
			return logging.Discard(), nopCloser{}, nil
		}
		lc.File = path
	}
	return logging.NewFromConfig(lc)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the config file in use, or "" when running on defaults.
func (a *App) ConfigFile() string {
	return a.manager.GetConfigFile()
}

// WatchConfig reloads the config when its file changes and calls onChange
// with the new values. The theme is rebuilt before onChange runs.
func (a *App) WatchConfig(onChange func(*config.Config, *styles.Theme)) error {
	a.manager.OnConfigChange(func(cfg *config.Config) {
		theme := styles.NewTheme(cfg)
		logging.FromContext(a.ctx).Info().Msg("config reloaded")
		if onChange != nil {
			onChange(cfg, theme)
		}
	})
	if err := a.manager.Watch(a.ctx); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
