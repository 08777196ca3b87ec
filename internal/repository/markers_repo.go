package repository

import (
	"context"

	"github.com/hereisramji/atlas/internal/domain"
)

// MarkersRepository marker catalog access
type MarkersRepository interface {
	// ListMarkers returns the catalog ordered by id
	ListMarkers(ctx context.Context) ([]domain.Marker, error)

	// GetMarkerByName returns one marker, (nil, nil) when the name is unknown
	GetMarkerByName(ctx context.Context, name string) (*domain.Marker, error)

	// InsertMarkers inserts a batch of markers in one transaction
	InsertMarkers(ctx context.Context, markers []domain.Marker) error
}

// TimepointsRepository timepoint vocabulary access
type TimepointsRepository interface {
	// ListTimepoints returns the vocabulary in chronological order
	ListTimepoints(ctx context.Context) ([]domain.Timepoint, error)

	// InsertTimepoints inserts a batch of timepoints in one transaction
	InsertTimepoints(ctx context.Context, timepoints []domain.Timepoint) error
}

// AggregatesRepository pre-aggregated marker and cell type data access
type AggregatesRepository interface {
	// InsertMarkerData inserts a batch of marker aggregates in one transaction
	InsertMarkerData(ctx context.Context, data []domain.MarkerData) error

	// InsertCellTypeData inserts a batch of frequency aggregates in one transaction
	InsertCellTypeData(ctx context.Context, data []domain.CellTypeData) error
}
