// Package services contains the backend's business logic. This file
// implements AuthService: registration, login, logout, and the current-user
// query backing the GUI's auth screens.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/dbx"
	"github.com/dmitrijs2005/labbench/internal/hashx"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/models"
	"github.com/dmitrijs2005/labbench/internal/repositories/preferences"
	"github.com/dmitrijs2005/labbench/internal/repositories/users"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

// Fixed user-facing messages. The front-end shows them verbatim, so they are
// part of the interface. Invalid-credential responses are identical for
// unknown username and wrong password so login never discloses whether a
// username exists.
const (
	MsgFieldsRequired     = "Username, email, and password are required"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgDuplicateUser      = "Username or email already exists"
	MsgRegistered         = "Registration successful"
	MsgLoginFields        = "Username and password are required"
	MsgInvalidCredentials = "Invalid username or password"
	MsgLoginOK            = "Login successful"
	MsgLoggedOut          = "Logged out successfully"
)

const minPasswordLen = 6

// RegisterRequest is the payload of the register_user command.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of the login_user command.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the uniform record returned by register, login, and
// logout. Expected authentication outcomes (empty fields, weak password,
// duplicate user, wrong credentials) come back as Success=false values, not
// as errors; errors are reserved for infrastructural failures.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

func failure(msg string) *AuthResponse {
	return &AuthResponse{Success: false, Message: msg}
}

// AuthService orchestrates the store, the password hasher, and the session
// slot.
type AuthService struct {
	store   *store.Store
	hasher  hashx.Hasher
	session *session.Session
	logger  logging.Logger
}

func NewAuthService(st *store.Store, h hashx.Hasher, sess *session.Session, logger logging.Logger) *AuthService {
	return &AuthService{store: st, hasher: h, session: sess, logger: logger}
}

// Register validates the request, hashes the password, creates the user row
// plus its default preferences row, and signs the new user in.
//
// Hashing runs before the store lock is taken; it is the slow part and must
// not serialise concurrent handlers. The duplicate check, the user insert,
// and the preferences insert run in one transaction under the held lock.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return failure(MsgFieldsRequired), nil
	}
	if len(req.Password) < minPasswordLen {
		return failure(MsgPasswordTooShort), nil
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var user *models.User
	var duplicate bool

	err = s.store.WithLock(func(db *sql.DB) error {
		return dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
			repo := users.NewSQLiteRepository(tx)

			exists, err := repo.Exists(ctx, req.Username, req.Email)
			if err != nil {
				return err
			}
			if exists {
				duplicate = true
				return nil
			}

			id, err := repo.Create(ctx, req.Username, req.Email, digest)
			if err != nil {
				return err
			}

			if err := preferences.NewSQLiteRepository(tx).CreateDefaults(ctx, id); err != nil {
				return err
			}

			// re-read to pick up the engine-assigned created_at
			user, err = repo.GetByID(ctx, id)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	if duplicate {
		return failure(MsgDuplicateUser), nil
	}

	s.session.Set(*user)
	s.logger.Info(ctx, "user registered", "username", user.Username, "id", user.ID)

	return &AuthResponse{Success: true, Message: MsgRegistered, User: user}, nil
}

// Login verifies the credentials and, on success, replaces the session
// occupant. The stored digest is read under the store lock; the lock is
// released before the slow bcrypt verification so concurrent logins of
// different users do not serialise behind it.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return failure(MsgLoginFields), nil
	}

	var cred *users.Credential
	err := s.store.WithLock(func(db *sql.DB) error {
		var err error
		cred, err = users.NewSQLiteRepository(db).GetCredentialByUsername(ctx, req.Username)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return failure(MsgInvalidCredentials), nil
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(req.Password, cred.PasswordHash)
	if err != nil {
		// broken stored digest, not a wrong password
		return nil, err
	}
	if !ok {
		return failure(MsgInvalidCredentials), nil
	}

	s.session.Set(cred.User)
	s.logger.Info(ctx, "user logged in", "username", cred.User.Username, "id", cred.User.ID)

	return &AuthResponse{Success: true, Message: MsgLoginOK, User: &cred.User}, nil
}

// Logout unconditionally clears the session slot.
func (s *AuthService) Logout(ctx context.Context) (*AuthResponse, error) {
	s.session.Clear()
	return &AuthResponse{Success: true, Message: MsgLoggedOut}, nil
}

// CurrentUser returns the session occupant, or nil when nobody is signed in.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, nil
	}
	return &u, nil
}
