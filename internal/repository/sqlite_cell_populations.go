package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLiteCellPopulationsRepository CellPopulationsRepository implementation over the embedded store
type SQLiteCellPopulationsRepository struct {
	db *sql.DB
}

// NewSQLiteCellPopulationsRepository creates a cell populations repository
func NewSQLiteCellPopulationsRepository(db *sql.DB) *SQLiteCellPopulationsRepository {
	return &SQLiteCellPopulationsRepository{db: db}
}

var _ CellPopulationsRepository = (*SQLiteCellPopulationsRepository)(nil)

func (r *SQLiteCellPopulationsRepository) ListBySpecimen(ctx context.Context, specimenID int64) ([]domain.CellPopulation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT population_id, specimen_id, cell_type, cell_count, percentage
		FROM cell_populations
		WHERE specimen_id = ?
		ORDER BY population_id`, specimenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list populations for specimen %d: %w", specimenID, err)
	}
	defer rows.Close()

	populations := []domain.CellPopulation{}
	for rows.Next() {
		var p domain.CellPopulation
		if err := rows.Scan(&p.PopulationID, &p.SpecimenID, &p.CellType, &p.CellCount, &p.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan population: %w", err)
		}
		populations = append(populations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate populations: %w", err)
	}
	return populations, nil
}

func (r *SQLiteCellPopulationsRepository) ListCellTypes(ctx context.Context, cohortID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT cp.cell_type
		FROM cell_populations cp
		JOIN specimens s ON cp.specimen_id = s.specimen_id
		JOIN patients p ON s.patient_id = p.patient_id
		WHERE p.cohort_id = ?
		ORDER BY cp.cell_type`, cohortID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cell types for cohort %d: %w", cohortID, err)
	}
	defer rows.Close()

	cellTypes := []string{}
	for rows.Next() {
		var ct string
		if err := rows.Scan(&ct); err != nil {
			return nil, fmt.Errorf("failed to scan cell type: %w", err)
		}
		cellTypes = append(cellTypes, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cell types: %w", err)
	}
	return cellTypes, nil
}

func (r *SQLiteCellPopulationsRepository) InsertPopulations(ctx context.Context, populations []domain.CellPopulation) error {
	if len(populations) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cell_populations (population_id, specimen_id, cell_type, cell_count, percentage)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare population insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range populations {
		if _, err := stmt.ExecContext(ctx,
			p.PopulationID, p.SpecimenID, p.CellType, p.CellCount, p.Percentage,
		); err != nil {
			return fmt.Errorf("failed to insert population %d: %w", p.PopulationID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit populations: %w", err)
	}
	return nil
}
