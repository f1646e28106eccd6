// Package measurements persists protein concentration measurements in the
// user_measurements table.
package measurements

import (
	"context"

	"github.com/dmitrijs2005/labbench/internal/models"
)

type Repository interface {
	// Upsert inserts the measurement or replaces an existing row with the
	// same id.
	Upsert(ctx context.Context, m *models.Measurement) error

	// ListByUser returns all measurements of the user, newest date first.
	ListByUser(ctx context.Context, userID int64) ([]models.Measurement, error)

	// Delete removes the measurement with the given id belonging to the
	// user. common.ErrNotFound if no such row exists.
	Delete(ctx context.Context, id string, userID int64) error
}
