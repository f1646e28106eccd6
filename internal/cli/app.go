// Package cli implements a small interactive shell over the same credential
// store the GUI backend uses. It exists for maintenance and debugging:
// creating accounts, checking logins, and inspecting who is signed in,
// without the GUI host.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/labbench/internal/config"
	"github.com/dmitrijs2005/labbench/internal/filex"
	"github.com/dmitrijs2005/labbench/internal/hashx"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/services"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

type App struct {
	config  *config.Config
	store   *store.Store
	session *session.Session
	auth    *services.AuthService
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, dir)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	auth := services.NewAuthService(st, hashx.NewBcryptHasher(), sess, logger)

	return &App{
		config:  cfg,
		store:   st,
		session: sess,
		auth:    auth,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Get()
	return ok
}

func (a *App) status() string {
	if u, ok := a.session.Get(); ok {
		return u.Username
	}
	return "(not logged in)"
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
