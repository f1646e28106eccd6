// Package users persists identity rows in the users table.
package users

import (
	"context"

	"github.com/dmitrijs2005/labbench/internal/models"
)

// Credential couples the public user record with its stored password hash.
// It never leaves the auth service.
type Credential struct {
	User         models.User
	PasswordHash string
}

type Repository interface {
	// Exists reports whether a row with the given username or email is
	// already present (byte-exact comparison).
	Exists(ctx context.Context, username, email string) (bool, error)

	// Create inserts a new user row and returns its assigned id. created_at
	// is filled in by the engine default.
	Create(ctx context.Context, username, email, passwordHash string) (int64, error)

	// GetByID returns the public record for id, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetCredentialByUsername returns the record plus stored hash for
	// username, or common.ErrNotFound.
	GetCredentialByUsername(ctx context.Context, username string) (*Credential, error)
}
