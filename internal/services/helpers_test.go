package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labbench/internal/hashx"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

type testEnv struct {
	dir     string
	store   *store.Store
	session *session.Session
	auth    *AuthService
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, t.TempDir())
}

// newTestEnvAt opens the store in dir, so tests can simulate a process
// restart by building a second env over the same directory.
func newTestEnvAt(t *testing.T, dir string) *testEnv {
	t.Helper()

	st, err := store.Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	sess := session.New()
	logger := testLogger()

	return &testEnv{
		dir:     dir,
		store:   st,
		session: sess,
		auth:    NewAuthService(st, hashx.NewBcryptHasher(), sess, logger),
	}
}

func (e *testEnv) userCount(t *testing.T) int {
	t.Helper()
	var n int
	err := e.store.WithLock(func(db *sql.DB) error {
		return db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	})
	require.NoError(t, err)
	return n
}

// failingHasher errors on every operation, standing in for an internal
// algorithm failure.
type failingHasher struct{ err error }

func (f *failingHasher) Hash(string) (string, error)         { return "", f.err }
func (f *failingHasher) Verify(string, string) (bool, error) { return false, f.err }
