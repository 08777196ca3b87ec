package service

import (
	"context"
	"database/sql"

	"github.com/hereisramji/atlas/internal/domain"
	"github.com/hereisramji/atlas/internal/repository"
	"github.com/hereisramji/atlas/internal/store"

	"go.uber.org/zap"
)

// degradedQuery runs fn and, on a storage failure, re-initializes the schema
// once and retries. A second failure is logged and surfaced as an empty
// result: a broken store degrades the page, it never crashes the session.
func degradedQuery[T any](ctx context.Context, db *sql.DB, logger *zap.Logger, op string, fn func(context.Context) ([]T, error)) []T {
	rows, err := fn(ctx)
	if err == nil {
		if rows == nil {
			rows = []T{}
		}
		return rows
	}

	logger.Warn("query failed, re-initializing schema",
		zap.String("operation", op),
		zap.Error(err))

	if rerr := store.EnsureSchema(ctx, db); rerr != nil {
		logger.Error("schema re-initialization failed",
			zap.String("operation", op),
			zap.Error(rerr))
		return []T{}
	}

	rows, err = fn(ctx)
	if err != nil {
		logger.Error("query failed after schema recovery",
			zap.String("operation", op),
			zap.Error(err))
		return []T{}
	}
	if rows == nil {
		rows = []T{}
	}
	return rows
}

// AtlasService entity listing operations for the presentation layer.
// Empty results are empty slices; storage failures degrade to empty slices
// after one recovery attempt.
type AtlasService interface {
	// ListCohorts returns all cohorts
	ListCohorts(ctx context.Context) []domain.Cohort

	// ListPatients returns the patients of one cohort
	ListPatients(ctx context.Context, cohortID int64) []domain.Patient

	// ListSpecimens returns the specimens of one patient in chronological order
	ListSpecimens(ctx context.Context, patientID int64) []domain.Specimen

	// ListCellPopulations returns the populations of one specimen
	ListCellPopulations(ctx context.Context, specimenID int64) []domain.CellPopulation

	// ListMarkers returns the marker catalog
	ListMarkers(ctx context.Context) []domain.Marker

	// ListTimepoints returns the timepoint vocabulary in chronological order
	ListTimepoints(ctx context.Context) []domain.Timepoint
}

// atlasService AtlasService implementation
type atlasService struct {
	cohortsRepo     repository.CohortsRepository
	patientsRepo    repository.PatientsRepository
	specimensRepo   repository.SpecimensRepository
	populationsRepo repository.CellPopulationsRepository
	markersRepo     repository.MarkersRepository
	timepointsRepo  repository.TimepointsRepository
	db              *sql.DB // for the schema recovery path
	logger          *zap.Logger
}

// NewAtlasService creates the entity listing service
func NewAtlasService(
	cohortsRepo repository.CohortsRepository,
	patientsRepo repository.PatientsRepository,
	specimensRepo repository.SpecimensRepository,
	populationsRepo repository.CellPopulationsRepository,
	markersRepo repository.MarkersRepository,
	timepointsRepo repository.TimepointsRepository,
	db *sql.DB,
	logger *zap.Logger,
) AtlasService {
	return &atlasService{
		cohortsRepo:     cohortsRepo,
		patientsRepo:    patientsRepo,
		specimensRepo:   specimensRepo,
		populationsRepo: populationsRepo,
		markersRepo:     markersRepo,
		timepointsRepo:  timepointsRepo,
		db:              db,
		logger:          logger,
	}
}

func (s *atlasService) ListCohorts(ctx context.Context) []domain.Cohort {
	return degradedQuery(ctx, s.db, s.logger, "ListCohorts", s.cohortsRepo.ListCohorts)
}

func (s *atlasService) ListPatients(ctx context.Context, cohortID int64) []domain.Patient {
	return degradedQuery(ctx, s.db, s.logger, "ListPatients", func(ctx context.Context) ([]domain.Patient, error) {
		return s.patientsRepo.ListByCohort(ctx, cohortID)
	})
}

func (s *atlasService) ListSpecimens(ctx context.Context, patientID int64) []domain.Specimen {
	return degradedQuery(ctx, s.db, s.logger, "ListSpecimens", func(ctx context.Context) ([]domain.Specimen, error) {
		return s.specimensRepo.ListByPatient(ctx, patientID)
	})
}

func (s *atlasService) ListCellPopulations(ctx context.Context, specimenID int64) []domain.CellPopulation {
	return degradedQuery(ctx, s.db, s.logger, "ListCellPopulations", func(ctx context.Context) ([]domain.CellPopulation, error) {
		return s.populationsRepo.ListBySpecimen(ctx, specimenID)
	})
}

func (s *atlasService) ListMarkers(ctx context.Context) []domain.Marker {
	return degradedQuery(ctx, s.db, s.logger, "ListMarkers", s.markersRepo.ListMarkers)
}

func (s *atlasService) ListTimepoints(ctx context.Context) []domain.Timepoint {
	return degradedQuery(ctx, s.db, s.logger, "ListTimepoints", s.timepointsRepo.ListTimepoints)
}
