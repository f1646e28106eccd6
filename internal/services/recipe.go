package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/logging"
	"github.com/dmitrijs2005/labbench/internal/models"
	"github.com/dmitrijs2005/labbench/internal/repositories/recipes"
	"github.com/dmitrijs2005/labbench/internal/session"
	"github.com/dmitrijs2005/labbench/internal/store"
)

// nowFn is a test seam for timestamping saved rows.
var nowFn = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// RecipeService manages the signed-in user's saved buffer recipes.
type RecipeService struct {
	store   *store.Store
	session *session.Session
	logger  logging.Logger
}

func NewRecipeService(st *store.Store, sess *session.Session, logger logging.Logger) *RecipeService {
	return &RecipeService{store: st, session: sess, logger: logger}
}

// Save upserts a recipe for the current user. A missing id means a new
// recipe: one is generated and created_at is stamped. modified_at is
// refreshed on every save.
func (s *RecipeService) Save(ctx context.Context, rec models.Recipe) (*models.Recipe, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, common.ErrUnauthorized
	}

	rec.UserID = u.ID
	now := nowFn()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	}
	rec.ModifiedAt = now

	err := s.store.WithLock(func(db *sql.DB) error {
		return recipes.NewSQLiteRepository(db).Upsert(ctx, &rec)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "recipe saved", "user_id", u.ID, "recipe_id", rec.ID)
	return &rec, nil
}

// List returns the current user's recipes, most recently modified first.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	u, ok := s.session.Get()
	if !ok {
		return nil, common.ErrUnauthorized
	}

	var result []models.Recipe
	err := s.store.WithLock(func(db *sql.DB) error {
		var err error
		result, err = recipes.NewSQLiteRepository(db).ListByUser(ctx, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes one of the current user's recipes by id.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	u, ok := s.session.Get()
	if !ok {
		return common.ErrUnauthorized
	}

	return s.store.WithLock(func(db *sql.DB) error {
		return recipes.NewSQLiteRepository(db).Delete(ctx, id, u.ID)
	})
}
