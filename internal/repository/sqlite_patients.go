package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLitePatientsRepository PatientsRepository implementation over the embedded store
type SQLitePatientsRepository struct {
	db *sql.DB
}

// NewSQLitePatientsRepository creates a patients repository
func NewSQLitePatientsRepository(db *sql.DB) *SQLitePatientsRepository {
	return &SQLitePatientsRepository{db: db}
}

var _ PatientsRepository = (*SQLitePatientsRepository)(nil)

func (r *SQLitePatientsRepository) ListByCohort(ctx context.Context, cohortID int64) ([]domain.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT patient_id, cohort_id, responder
		FROM patients
		WHERE cohort_id = ?
		ORDER BY patient_id`, cohortID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients for cohort %d: %w", cohortID, err)
	}
	defer rows.Close()

	patients := []domain.Patient{}
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.PatientID, &p.CohortID, &p.Responder); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patients: %w", err)
	}
	return patients, nil
}

func (r *SQLitePatientsRepository) InsertPatients(ctx context.Context, patients []domain.Patient) error {
	if len(patients) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO patients (patient_id, cohort_id, responder)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare patient insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range patients {
		if _, err := stmt.ExecContext(ctx, p.PatientID, p.CohortID, p.Responder); err != nil {
			return fmt.Errorf("failed to insert patient %d: %w", p.PatientID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit patients: %w", err)
	}
	return nil
}
