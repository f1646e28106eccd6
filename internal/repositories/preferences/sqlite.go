package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/dbx"
	"github.com/dmitrijs2005/labbench/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateDefaults(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO user_preferences (user_id) VALUES (?)`, userID)
	if err != nil {
		return fmt.Errorf("failed to create preferences for user %d: %w", userID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByUserID(ctx context.Context, userID int64) (*models.Preferences, error) {
	var p models.Preferences
	var recent, favorites sql.NullString
	var sciNotation int

	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, default_volume, default_volume_unit, default_concentration_unit,
		       recent_chemicals, favorite_recipes, theme, scientific_notation, decimal_places
		FROM user_preferences WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.DefaultVolume, &p.DefaultVolumeUnit, &p.DefaultConcentrationUnit,
			&recent, &favorites, &p.Theme, &sciNotation, &p.DecimalPlaces)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("preferences for user %d: %w", userID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	p.RecentChemicals = recent.String
	p.FavoriteRecipes = favorites.String
	p.ScientificNotation = sciNotation != 0
	return &p, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.Preferences) error {
	sciNotation := 0
	if p.ScientificNotation {
		sciNotation = 1
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE user_preferences
		SET default_volume = ?, default_volume_unit = ?, default_concentration_unit = ?,
		    recent_chemicals = ?, favorite_recipes = ?, theme = ?,
		    scientific_notation = ?, decimal_places = ?
		WHERE user_id = ?`,
		p.DefaultVolume, p.DefaultVolumeUnit, p.DefaultConcentrationUnit,
		nullable(p.RecentChemicals), nullable(p.FavoriteRecipes), p.Theme,
		sciNotation, p.DecimalPlaces, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("preferences for user %d: %w", p.UserID, common.ErrNotFound)
	}
	return nil
}

// nullable maps the empty string to NULL so optional columns keep their
// schema-level nullability.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
