package repository

import (
	"context"

	"github.com/hereisramji/atlas/internal/domain"
)

// PatientsRepository patient storage access
type PatientsRepository interface {
	// ListByCohort returns all patients of one cohort ordered by id.
	// An unknown cohort id yields an empty slice, not an error.
	ListByCohort(ctx context.Context, cohortID int64) ([]domain.Patient, error)

	// InsertPatients inserts a batch of patients in one transaction
	InsertPatients(ctx context.Context, patients []domain.Patient) error
}
