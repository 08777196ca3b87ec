package repository

import (
	"context"

	"github.com/hereisramji/atlas/internal/domain"
)

// CellPopulationsRepository cell population storage access
type CellPopulationsRepository interface {
	// ListBySpecimen returns all populations of one specimen ordered by id
	ListBySpecimen(ctx context.Context, specimenID int64) ([]domain.CellPopulation, error)

	// ListCellTypes returns the distinct cell type names present for a cohort
	ListCellTypes(ctx context.Context, cohortID int64) ([]string, error)

	// InsertPopulations inserts a batch of populations in one transaction
	InsertPopulations(ctx context.Context, populations []domain.CellPopulation) error
}
