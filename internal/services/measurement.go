package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/models"
	"github.com/dmitrijs2005/labbench/internal/repositories/measurements"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

// MeasurementService manages the signed-in user's protein concentration
// measurements.
type MeasurementService struct {
	store   *store.Store
	session *session.Session
	logger  logging.Logger
}

func NewMeasurementService(st *store.Store, sess *session.Session, logger logging.Logger) *MeasurementService {
	return &MeasurementService{store: st, session: sess, logger: logger}
}

// Save upserts a measurement for the current user. A missing id means a new
// measurement and one is generated.
func (s *MeasurementService) Save(ctx context.Context, m models.Measurement) (*models.Measurement, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, common.ErrUnauthorized
	}

	m.UserID = u.ID
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	err := s.store.WithLock(func(db *sql.DB) error {
		return measurements.NewSQLiteRepository(db).Upsert(ctx, &m)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "measurement saved", "user_id", u.ID, "measurement_id", m.ID)
	return &m, nil
}

// List returns the current user's measurements, newest date first.
func (s *MeasurementService) List(ctx context.Context) ([]models.Measurement, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, common.ErrUnauthorized
	}

	var result []models.Measurement
	err := s.store.WithLock(func(db *sql.DB) error {
		var err error
		result, err = measurements.NewSQLiteRepository(db).ListByUser(ctx, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes one of the current user's measurements by id.
func (s *MeasurementService) Delete(ctx context.Context, id string) error {
	u, ok := s.session.Get()
	if !ok {
		return common.ErrUnauthorized
	}

	return s.store.WithLock(func(db *sql.DB) error {
		return measurements.NewSQLiteRepository(db).Delete(ctx, id, u.ID)
	})
}
