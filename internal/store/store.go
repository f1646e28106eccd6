// Package store owns the single handle to users.db. It provisions the schema
// on first open and serialises all access behind one exclusive lock.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/labbench/internal/store/migrations"
)

// DBFileName is the name of the database file created inside the
// host-supplied data directory.
const DBFileName = "users.db"

// Store wraps the embedded database. Every SQL statement must run while the
// store's exclusive lock is held; WithLock is the only way to reach the
// handle. The lock is not recursive.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates users.db inside dir and runs the embedded schema
// migrations. The directory must already exist. A migration failure is
// returned to the caller; bootstrap treats it as fatal.
func Open(ctx context.Context, dir string) (*Store, error) {
	path := filepath.Join(dir, DBFileName)

	// foreign_keys is off by default in SQLite; the per-connection pragma in
	// the DSN keeps cascade deletes working even if the pool reconnects.
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// All access serialises behind the store lock anyway; a single connection
	// keeps last_insert_rowid() coherent with the preceding INSERT.
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to provision schema: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// WithLock runs fn while holding the store's exclusive lock. The handle
// passed to fn must not be retained after fn returns. fn must not call
// WithLock again.
func (s *Store) WithLock(fn func(db *sql.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.db)
}

// Close releases the database handle. Called once at process exit.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
