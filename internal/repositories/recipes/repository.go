// Package recipes persists saved buffer recipes in the user_recipes table.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/labbench/internal/models"
)

type Repository interface {
	// Upsert inserts the recipe or, when a row with the same id exists,
	// replaces its mutable columns.
	Upsert(ctx context.Context, rec *models.Recipe) error

	// ListByUser returns all recipes of the user, most recently modified first.
	ListByUser(ctx context.Context, userID int64) ([]models.Recipe, error)

	// Delete removes the recipe with the given id belonging to the user.
	// common.ErrNotFound if no such row exists.
	Delete(ctx context.Context, id string, userID int64) error
}
