package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/hereisramji/atlas/internal/config"
	"github.com/hereisramji/atlas/internal/logger"
	"github.com/hereisramji/atlas/internal/repository"
	"github.com/hereisramji/atlas/internal/seed"
	"github.com/hereisramji/atlas/internal/service"
	"github.com/hereisramji/atlas/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "immune-atlas")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Error("failed to open store", zap.String("path", cfg.StorePath), zap.Error(err))
		os.Exit(1)
	}
	defer store.Close(db)

	// Idempotent schema init, with one recreation attempt before running
	// the session degraded.
	if err := store.EnsureSchema(ctx, db); err != nil {
		log.Warn("schema init failed, recreating", zap.Error(err))
		if err := store.Reset(ctx, db); err != nil {
			log.Error("schema recreation failed, session will run degraded", zap.Error(err))
		}
	}

	randomSeed := cfg.Seed.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))

	repos := seed.Repositories{
		Cohorts:     repository.NewSQLiteCohortsRepository(db),
		Patients:    repository.NewSQLitePatientsRepository(db),
		Specimens:   repository.NewSQLiteSpecimensRepository(db),
		Populations: repository.NewSQLiteCellPopulationsRepository(db),
		Cells:       repository.NewSQLiteCellsRepository(db),
		Markers:     repository.NewSQLiteMarkersRepository(db),
		Timepoints:  repository.NewSQLiteTimepointsRepository(db),
		Aggregates:  repository.NewSQLiteAggregatesRepository(db),
	}

	seeder := seed.New(repos, rng, seed.Config{
		ResponderRatio:     cfg.Seed.ResponderRatio,
		PositivityRate:     cfg.Seed.PositivityRate,
		BatchSize:          cfg.Seed.BatchSize,
		PerCell:            cfg.Seed.PerCell,
		CellsPerPopulation: cfg.Seed.CellsPerPopulation,
	}, log)
	if err := seeder.Seed(ctx); err != nil {
		// A partially seeded store still serves queries; the empty-store
		// check prevents duplicate re-seeding on the next start.
		log.Error("seeding failed", zap.Error(err))
	}

	atlas := service.NewAtlasService(
		repos.Cohorts, repos.Patients, repos.Specimens, repos.Populations,
		repos.Markers, repos.Timepoints, db, log,
	)
	analytics := service.NewAnalyticsService(
		repository.NewSQLiteAnalyticsRepository(db),
		repos.Populations, repos.Markers, db, log,
	)

	cohorts := atlas.ListCohorts(ctx)
	log.Info("store ready", zap.Int("cohorts", len(cohorts)))

	for _, cohort := range cohorts {
		features := analytics.DiscriminatingCellTypes(ctx, service.DiscriminatingCellTypesRequest{
			CohortID: cohort.CohortID,
		})
		if len(features) == 0 {
			continue
		}
		top := features[0]
		log.Info("top discriminating cell type",
			zap.Int64("cohort_id", cohort.CohortID),
			zap.String("indication", cohort.Indication),
			zap.String("cell_type", top.CellType),
			zap.Float64("difference", top.Difference))
	}

	if cfg.ExportPath != "" {
		reports := service.NewReportService(atlas, analytics, log)
		if err := reports.ExportCohortReport(ctx, cfg.ExportPath); err != nil {
			log.Error("report export failed", zap.Error(err))
		}
	}
}
