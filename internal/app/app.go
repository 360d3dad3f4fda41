// Package app wires the editing service together: logger, component
// registry, grammar lifecycle and the socket.io server.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
	"github.com/alexwulf/alloy-configurator/internal/registry"
	"github.com/alexwulf/alloy-configurator/internal/server"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	language *syntax.Language
	server   *server.Server
}

// NewApp constructs a fully initialized App with its own isolated logger
// and registry. A failure to load the component manifests is a fatal
// startup error and panics; the entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if cfg.ManifestsPath != "" {
		if err := reg.LoadDir(ctx, cfg.ManifestsPath); err != nil {
			panic(fmt.Errorf("failed to load component manifests: %w", err))
		}
	}
	logger.Debug("Component registry populated.", "kinds", reg.Len())

	lang := syntax.NewLanguage()

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		language: lang,
		server:   server.New(cfg.ListenAddr, lang, reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Server returns the editing server. This is primarily for testing.
func (a *App) Server() *server.Server {
	return a.server
}

// Run loads the grammar in the background and serves editing sessions until
// the context is cancelled. Sessions opened before the grammar finishes
// loading defer their first parse until it is ready.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	go func() {
		if err := a.language.Load(ctx); err != nil {
			a.logger.Error("Grammar load failed.", "error", err)
		}
	}()
	defer a.language.Close()

	return a.server.Run(ctx)
}
