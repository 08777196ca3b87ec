package repository

import (
	"context"

	"github.com/hereisramji/atlas/internal/domain"
)

// CohortsRepository cohort storage access
type CohortsRepository interface {
	// ListCohorts returns all cohorts ordered by id
	ListCohorts(ctx context.Context) ([]domain.Cohort, error)

	// GetCohort returns one cohort, (nil, nil) when the id is unknown
	GetCohort(ctx context.Context, cohortID int64) (*domain.Cohort, error)

	// CountCohorts returns the number of cohorts in the store
	CountCohorts(ctx context.Context) (int, error)

	// InsertCohorts inserts a batch of cohorts in one transaction
	InsertCohorts(ctx context.Context, cohorts []domain.Cohort) error

	// DeleteCohort removes a cohort and cascades to all child records
	DeleteCohort(ctx context.Context, cohortID int64) error
}
