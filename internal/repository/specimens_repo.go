package repository

import (
	"context"

	"github.com/hereisramji/atlas/internal/domain"
)

// SpecimensRepository specimen storage access
type SpecimensRepository interface {
	// ListByPatient returns all specimens of one patient in chronological
	// order. A patient with zero specimens yields an empty slice.
	ListByPatient(ctx context.Context, patientID int64) ([]domain.Specimen, error)

	// InsertSpecimens inserts a batch of specimens in one transaction
	InsertSpecimens(ctx context.Context, specimens []domain.Specimen) error
}
