package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLiteSpecimensRepository SpecimensRepository implementation over the embedded store
type SQLiteSpecimensRepository struct {
	db *sql.DB
}

// NewSQLiteSpecimensRepository creates a specimens repository
func NewSQLiteSpecimensRepository(db *sql.DB) *SQLiteSpecimensRepository {
	return &SQLiteSpecimensRepository{db: db}
}

var _ SpecimensRepository = (*SQLiteSpecimensRepository)(nil)

func (r *SQLiteSpecimensRepository) ListByPatient(ctx context.Context, patientID int64) ([]domain.Specimen, error) {
	// Order by the timepoint vocabulary, not the label string.
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.specimen_id, s.patient_id, s.accession, s.timepoint,
		       s.specimen_type, s.drug_class
		FROM specimens s
		LEFT JOIN timepoints tp ON s.timepoint = tp.name
		WHERE s.patient_id = ?
		ORDER BY tp.sort_order, s.specimen_id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list specimens for patient %d: %w", patientID, err)
	}
	defer rows.Close()

	specimens := []domain.Specimen{}
	for rows.Next() {
		var s domain.Specimen
		if err := rows.Scan(
			&s.SpecimenID, &s.PatientID, &s.Accession, &s.Timepoint,
			&s.SpecimenType, &s.DrugClass,
		); err != nil {
			return nil, fmt.Errorf("failed to scan specimen: %w", err)
		}
		specimens = append(specimens, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate specimens: %w", err)
	}
	return specimens, nil
}

func (r *SQLiteSpecimensRepository) InsertSpecimens(ctx context.Context, specimens []domain.Specimen) error {
	if len(specimens) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO specimens (specimen_id, patient_id, accession, timepoint, specimen_type, drug_class)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare specimen insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range specimens {
		if _, err := stmt.ExecContext(ctx,
			s.SpecimenID, s.PatientID, s.Accession, s.Timepoint,
			s.SpecimenType, s.DrugClass,
		); err != nil {
			return fmt.Errorf("failed to insert specimen %d: %w", s.SpecimenID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit specimens: %w", err)
	}
	return nil
}
