// Package cli wires the wui command line: configuration, logging and theme.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/wui/internal/cli/styles"
	"github.com/bnema/wui/internal/domain/build"
	"github.com/bnema/wui/internal/infrastructure/config"
	"github.com/bnema/wui/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp creates the CLI application. configFile overrides the XDG config
// location when non-empty. The config is not read until LoadConfig.
func NewApp(configFile string) (*App, error) {
	logger := logging.NewFromEnv()

	opts := []config.ManagerOption{config.WithLogger(logger)}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	mgr, err := config.NewManager(opts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	return &App{
		Config: mgr,
		Theme:  styles.NewTheme(),
		ctx:    logging.WithContext(context.Background(), logger),
	}, nil
}

// LoadConfig reads the config file, creating it with defaults when missing,
// and rebuilds the logger from the logging section.
func (a *App) LoadConfig() (*config.Config, error) {
	if err := a.Config.Load(); err != nil {
		return nil, err
	}
	cfg := a.Config.Get()

	logger := newLogger(cfg.Logging)
	a.ctx = logging.WithContext(context.Background(), logger)
	logger.Debug().Str("file", a.Config.GetConfigFile()).Msg("config loaded")
	return cfg, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	return logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: time.TimeOnly,
	})
}
