package measurements

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

func (r *SQLiteRepository) Upsert(ctx context.Context, m *models.Measurement) error {
	query := `INSERT INTO user_measurements
			(id, user_id, protein_name, date, absorbance_280, extinction_coefficient,
			 molecular_weight, path_length, concentration, concentration_molar,
			 notes, sequence, batch_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			protein_name = excluded.protein_name,
			date = excluded.date,
			absorbance_280 = excluded.absorbance_280,
			extinction_coefficient = excluded.extinction_coefficient,
			molecular_weight = excluded.molecular_weight,
			path_length = excluded.path_length,
			concentration = excluded.concentration,
			concentration_molar = excluded.concentration_molar,
			notes = excluded.notes,
			sequence = excluded.sequence,
			batch_number = excluded.batch_number
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.UserID, m.ProteinName, m.Date, m.Absorbance280, m.ExtinctionCoefficient,
		m.MolecularWeight, m.PathLength, m.Concentration, m.ConcentrationMolar,
		nullable(m.Notes), nullable(m.Sequence), nullable(m.BatchNumber))
	if err != nil {
		return fmt.Errorf("failed to upsert measurement: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Measurement, error) {
	query := `SELECT id, user_id, protein_name, date, absorbance_280, extinction_coefficient,
			molecular_weight, path_length, concentration, concentration_molar,
			notes, sequence, batch_number
		FROM user_measurements WHERE user_id = ? ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select measurements: %w", err)
	}
	defer rows.Close()

	var result []models.Measurement
	for rows.Next() {
		var m models.Measurement
		var notes, sequence, batch sql.NullString
		if err := rows.Scan(&m.ID, &m.UserID, &m.ProteinName, &m.Date,
			&m.Absorbance280, &m.ExtinctionCoefficient, &m.MolecularWeight,
			&m.PathLength, &m.Concentration, &m.ConcentrationMolar,
			&notes, &sequence, &batch); err != nil {
			return nil, fmt.Errorf("failed to scan measurement row: %w", err)
		}
		m.Notes = notes.String
		m.Sequence = sequence.String
		m.BatchNumber = batch.String
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate measurement rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_measurements WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete measurement: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("measurement %q: %w", id, common.ErrNotFound)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
