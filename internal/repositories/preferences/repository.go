// Package preferences persists the 1:1 per-user settings rows.
package preferences

import (
	"context"

	"github.com/dmitrijs2005/labbench/internal/models"
)

type Repository interface {
	// CreateDefaults inserts the settings row for a freshly registered user,
	// relying on the column defaults for every value.
	CreateDefaults(ctx context.Context, userID int64) error

	// GetByUserID returns the settings row, or common.ErrNotFound.
	GetByUserID(ctx context.Context, userID int64) (*models.Preferences, error)

	// Update replaces the full settings row keyed by p.UserID.
	// common.ErrNotFound if no row exists.
	Update(ctx context.Context, p *models.Preferences) error
}
