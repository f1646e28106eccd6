// Package app initializes and runs the LabBench native backend. It resolves
// the data directory, opens the store (creating users.db and its schema on
// first run), constructs the services, and registers the command surface on
// the bridge for the GUI host.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/labbench/internal/bridge"
	"github.com/dmitrijs2005/labbench/internal/config"
	"github.com/dmitrijs2005/labbench/internal/filex"
	"github.com/dmitrijs2005/labbench/internal/hashx"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/services"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    *store.Store
	session  *session.Session
	registry *bridge.Registry

	auth         *services.AuthService
	prefs        *services.PreferencesService
	recipes      *services.RecipeService
	measurements *services.MeasurementService
}

// NewApp builds the backend. A store or schema failure is fatal and returned
// to the caller; nothing is registered in that case.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	// Logs go to stderr: stdout carries bridge responses.
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}

	st, err := store.Open(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	sess := session.New()
	hasher := hashx.NewBcryptHasher()

	a := &App{
		config:       cfg,
		logger:       logger,
		store:        st,
		session:      sess,
		registry:     bridge.NewRegistry(logger),
		auth:         services.NewAuthService(st, hasher, sess, logger),
		prefs:        services.NewPreferencesService(st, sess, logger),
		recipes:      services.NewRecipeService(st, sess, logger),
		measurements: services.NewMeasurementService(st, sess, logger),
	}
	a.registerCommands()

	logger.Info(ctx, "backend initialized", "data_dir", dir)
	return a, nil
}

// Registry exposes the command table to the host.
func (a *App) Registry() *bridge.Registry {
	return a.registry
}

// Close releases the store handle. Called once at process exit.
func (a *App) Close() error {
	return a.store.Close()
}
