package repository

import (
	"context"

	"github.com/hereisramji/atlas/internal/domain"
)

// CellsRepository per-cell storage access (extended entity-store variant)
type CellsRepository interface {
	// ListByPopulation returns the sampled cells of one population
	ListByPopulation(ctx context.Context, populationID int64) ([]domain.Cell, error)

	// ListMarkersByCell returns the marker measurements of one cell
	ListMarkersByCell(ctx context.Context, cellID int64) ([]domain.CellMarker, error)

	// InsertCells inserts a batch of cells in one transaction
	InsertCells(ctx context.Context, cells []domain.Cell) error

	// InsertCellMarkers inserts a batch of measurements in one transaction
	InsertCellMarkers(ctx context.Context, measurements []domain.CellMarker) error
}
