package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/models"
	"github.com/dmitrijs2005/labbench/internal/repositories/preferences"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

// PreferencesService reads and updates the signed-in user's settings row.
// Without a session occupant every operation fails with
// common.ErrUnauthorized; the GUI gates the settings pane behind login.
type PreferencesService struct {
	store   *store.Store
	session *session.Session
	logger  logging.Logger
}

func NewPreferencesService(st *store.Store, sess *session.Session, logger logging.Logger) *PreferencesService {
	return &PreferencesService{store: st, session: sess, logger: logger}
}

// Get returns the current user's preferences.
func (s *PreferencesService) Get(ctx context.Context) (*models.Preferences, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, common.ErrUnauthorized
	}

	var p *models.Preferences
	err := s.store.WithLock(func(db *sql.DB) error {
		var err error
		p, err = preferences.NewSQLiteRepository(db).GetByUserID(ctx, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the current user's preferences row with p. The user id in
// the payload is ignored; the row addressed is always the session user's.
func (s *PreferencesService) Update(ctx context.Context, p models.Preferences) (*models.Preferences, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, common.ErrUnauthorized
	}

	p.UserID = u.ID

	err := s.store.WithLock(func(db *sql.DB) error {
		return preferences.NewSQLiteRepository(db).Update(ctx, &p)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "preferences updated", "user_id", u.ID)
	return &p, nil
}
