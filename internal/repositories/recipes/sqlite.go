package recipes

import (
	"context"
	"database/sql"
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

func (r *SQLiteRepository) Upsert(ctx context.Context, rec *models.Recipe) error {
	query := `INSERT INTO user_recipes
			(id, user_id, name, description, category, components, total_volume,
			 volume_unit, ph, instructions, notes, tags, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			category = excluded.category,
			components = excluded.components,
			total_volume = excluded.total_volume,
			volume_unit = excluded.volume_unit,
			ph = excluded.ph,
			instructions = excluded.instructions,
			notes = excluded.notes,
			tags = excluded.tags,
			modified_at = excluded.modified_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Name, nullable(rec.Description), rec.Category,
		rec.Components, rec.TotalVolume, rec.VolumeUnit, rec.PH,
		nullable(rec.Instructions), nullable(rec.Notes), nullable(rec.Tags),
		rec.CreatedAt, rec.ModifiedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Recipe, error) {
	query := `SELECT id, user_id, name, description, category, components, total_volume,
			volume_unit, ph, instructions, notes, tags, created_at, modified_at
		FROM user_recipes WHERE user_id = ? ORDER BY modified_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select recipes: %w", err)
	}
	defer rows.Close()

	var result []models.Recipe
	for rows.Next() {
		var rec models.Recipe
		var description, instructions, notes, tags sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Name, &description, &rec.Category,
			&rec.Components, &rec.TotalVolume, &rec.VolumeUnit, &rec.PH,
			&instructions, &notes, &tags, &rec.CreatedAt, &rec.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		rec.Description = description.String
		rec.Instructions = instructions.String
		rec.Notes = notes.String
		rec.Tags = tags.String
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_recipes WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("recipe %q: %w", id, common.ErrNotFound)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
