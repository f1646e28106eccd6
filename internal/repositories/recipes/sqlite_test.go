package recipes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE user_recipes (
  id TEXT PRIMARY KEY,
  user_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  description TEXT,
  category TEXT NOT NULL,
  components TEXT NOT NULL,
  total_volume REAL NOT NULL,
  volume_unit TEXT NOT NULL,
  ph REAL,
  instructions TEXT,
  notes TEXT,
  tags TEXT,
  created_at TEXT NOT NULL,
  modified_at TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sampleRecipe(id string, userID int64) *models.Recipe {
	return &models.Recipe{
		ID:          id,
		UserID:      userID,
		Name:        "PBS 1x",
		Category:    "buffer",
		Components:  `[{"chemical":"NaCl","amount":8}]`,
		TotalVolume: 1000,
		VolumeUnit:  "mL",
		CreatedAt:   "2024-01-01T10:00:00",
		ModifiedAt:  "2024-01-01T10:00:00",
	}
}

func TestUpsert_InsertThenList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleRecipe("r1", 1)))

	got, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PBS 1x", got[0].Name)
	assert.Nil(t, got[0].PH)
}

func TestUpsert_ConflictUpdatesMutableColumns(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	rec := sampleRecipe("r1", 1)
	require.NoError(t, r.Upsert(ctx, rec))

	ph := 7.4
	rec.Name = "PBS 10x"
	rec.PH = &ph
	rec.Notes = "stock solution"
	rec.ModifiedAt = "2024-02-01T10:00:00"
	require.NoError(t, r.Upsert(ctx, rec))

	got, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PBS 10x", got[0].Name)
	require.NotNil(t, got[0].PH)
	assert.Equal(t, 7.4, *got[0].PH)
	assert.Equal(t, "stock solution", got[0].Notes)
	assert.Equal(t, "2024-01-01T10:00:00", got[0].CreatedAt, "created_at must not change on update")
}

func TestListByUser_ScopedAndOrdered(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	older := sampleRecipe("r1", 1)
	older.ModifiedAt = "2024-01-01T10:00:00"
	newer := sampleRecipe("r2", 1)
	newer.ModifiedAt = "2024-03-01T10:00:00"
	other := sampleRecipe("r3", 2)

	require.NoError(t, r.Upsert(ctx, older))
	require.NoError(t, r.Upsert(ctx, newer))
	require.NoError(t, r.Upsert(ctx, other))

	got, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)
}

func TestListByUser_EmptyIsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete_RemovesOnlyOwnRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, sampleRecipe("r1", 1)))

	// wrong owner
	err := r.Delete(ctx, "r1", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	require.NoError(t, r.Delete(ctx, "r1", 1))

	got, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete_MissingIsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Delete(context.Background(), "nope", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
