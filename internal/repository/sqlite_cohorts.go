package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLiteCohortsRepository CohortsRepository implementation over the embedded store
type SQLiteCohortsRepository struct {
	db *sql.DB
}

// NewSQLiteCohortsRepository creates a cohorts repository
func NewSQLiteCohortsRepository(db *sql.DB) *SQLiteCohortsRepository {
	return &SQLiteCohortsRepository{db: db}
}

var _ CohortsRepository = (*SQLiteCohortsRepository)(nil)

const cohortColumns = `cohort_id, indication, disease_type, specimens_count,
		patients_count, analyzed_specimens, cells_phenotyped, treatment`

func (r *SQLiteCohortsRepository) ListCohorts(ctx context.Context) ([]domain.Cohort, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cohortColumns+`
		FROM cohorts
		ORDER BY cohort_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cohorts: %w", err)
	}
	defer rows.Close()

	cohorts := []domain.Cohort{}
	for rows.Next() {
		var c domain.Cohort
		if err := rows.Scan(
			&c.CohortID, &c.Indication, &c.DiseaseType, &c.SpecimensCount,
			&c.PatientsCount, &c.AnalyzedSpecimens, &c.CellsPhenotyped, &c.Treatment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cohort: %w", err)
		}
		cohorts = append(cohorts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cohorts: %w", err)
	}
	return cohorts, nil
}

func (r *SQLiteCohortsRepository) GetCohort(ctx context.Context, cohortID int64) (*domain.Cohort, error) {
	var c domain.Cohort
	err := r.db.QueryRowContext(ctx, `
		SELECT `+cohortColumns+`
		FROM cohorts
		WHERE cohort_id = ?`, cohortID).Scan(
		&c.CohortID, &c.Indication, &c.DiseaseType, &c.SpecimensCount,
		&c.PatientsCount, &c.AnalyzedSpecimens, &c.CellsPhenotyped, &c.Treatment,
	)
	if err == sql.ErrNoRows {
		// Unknown ids are expected when upstream selections are stale.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cohort %d: %w", cohortID, err)
	}
	return &c, nil
}

func (r *SQLiteCohortsRepository) CountCohorts(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cohorts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cohorts: %w", err)
	}
	return n, nil
}

func (r *SQLiteCohortsRepository) InsertCohorts(ctx context.Context, cohorts []domain.Cohort) error {
	if len(cohorts) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cohorts (`+cohortColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare cohort insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cohorts {
		if _, err := stmt.ExecContext(ctx,
			c.CohortID, c.Indication, c.DiseaseType, c.SpecimensCount,
			c.PatientsCount, c.AnalyzedSpecimens, c.CellsPhenotyped, c.Treatment,
		); err != nil {
			return fmt.Errorf("failed to insert cohort %d: %w", c.CohortID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cohorts: %w", err)
	}
	return nil
}

func (r *SQLiteCohortsRepository) DeleteCohort(ctx context.Context, cohortID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cohorts WHERE cohort_id = ?", cohortID); err != nil {
		return fmt.Errorf("failed to delete cohort %d: %w", cohortID, err)
	}
	return nil
}
