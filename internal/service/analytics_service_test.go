package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hereisramji/atlas/internal/domain"
	"github.com/hereisramji/atlas/internal/repository"
	"github.com/hereisramji/atlas/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupServiceDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.EnsureSchema(context.Background(), db))
	return db
}

// seedServiceFixture mirrors the worked example: two responders at 10% and
// 20% for CD8 T Central Memory, two non-responders at 5% and 7%.
func seedServiceFixture(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repository.NewSQLiteTimepointsRepository(db).InsertTimepoints(ctx, []domain.Timepoint{
		{TimepointID: 1, Name: "Baseline", SortOrder: 1},
		{TimepointID: 2, Name: "C1D1", SortOrder: 2},
	}))
	require.NoError(t, repository.NewSQLiteCohortsRepository(db).InsertCohorts(ctx, []domain.Cohort{
		{CohortID: 1, Indication: "Melanoma", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 4, PatientsCount: 4, AnalyzedSpecimens: 4, CellsPhenotyped: 4000, Treatment: "Anti-PD-1 (Pembrolizumab)"},
	}))
	require.NoError(t, repository.NewSQLitePatientsRepository(db).InsertPatients(ctx, []domain.Patient{
		{PatientID: 1, CohortID: 1, Responder: true},
		{PatientID: 2, CohortID: 1, Responder: true},
		{PatientID: 3, CohortID: 1, Responder: false},
		{PatientID: 4, CohortID: 1, Responder: false},
	}))
	require.NoError(t, repository.NewSQLiteSpecimensRepository(db).InsertSpecimens(ctx, []domain.Specimen{
		{SpecimenID: 1, PatientID: 1, Accession: "a-1", Timepoint: "Baseline", SpecimenType: "Blood"},
		{SpecimenID: 2, PatientID: 2, Accession: "a-2", Timepoint: "Baseline", SpecimenType: "Blood"},
		{SpecimenID: 3, PatientID: 3, Accession: "a-3", Timepoint: "Baseline", SpecimenType: "Blood"},
		{SpecimenID: 4, PatientID: 4, Accession: "a-4", Timepoint: "C1D1", SpecimenType: "Blood"},
	}))
	require.NoError(t, repository.NewSQLiteCellPopulationsRepository(db).InsertPopulations(ctx, []domain.CellPopulation{
		{PopulationID: 1, SpecimenID: 1, CellType: "CD8 T Central Memory", CellCount: 10000, Percentage: 10},
		{PopulationID: 2, SpecimenID: 2, CellType: "CD8 T Central Memory", CellCount: 20000, Percentage: 20},
		{PopulationID: 3, SpecimenID: 3, CellType: "CD8 T Central Memory", CellCount: 5000, Percentage: 5},
		{PopulationID: 4, SpecimenID: 4, CellType: "CD8 T Central Memory", CellCount: 7000, Percentage: 7},
	}))
}

func newTestAnalyticsService(db *sql.DB) AnalyticsService {
	return NewAnalyticsService(
		repository.NewSQLiteAnalyticsRepository(db),
		repository.NewSQLiteCellPopulationsRepository(db),
		repository.NewSQLiteMarkersRepository(db),
		db,
		zap.NewNop(),
	)
}

func TestDiscriminatingCellTypes_DefaultThreshold(t *testing.T) {
	db := setupServiceDB(t)
	seedServiceFixture(t, db)
	svc := newTestAnalyticsService(db)

	rows := svc.DiscriminatingCellTypes(context.Background(), DiscriminatingCellTypesRequest{CohortID: 1})
	require.Len(t, rows, 1)
	assert.InDelta(t, 9.0, rows[0].Difference, 1e-9)

	// A threshold above the contrast filters the row out.
	high := 10.0
	rows = svc.DiscriminatingCellTypes(context.Background(), DiscriminatingCellTypesRequest{CohortID: 1, MinDifference: &high})
	assert.Empty(t, rows)
}

func TestResponsePredictionMetrics(t *testing.T) {
	db := setupServiceDB(t)
	seedServiceFixture(t, db)
	svc := newTestAnalyticsService(db)

	metrics := svc.ResponsePredictionMetrics(context.Background(), ResponsePredictionRequest{CohortID: 1})
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, "CD8 T Central Memory", m.CellType)
	require.NotNil(t, m.AvgResponder)
	assert.InDelta(t, 15.0, *m.AvgResponder, 1e-9)
	require.NotNil(t, m.AvgNonResponder)
	assert.InDelta(t, 6.0, *m.AvgNonResponder, 1e-9)
	require.NotNil(t, m.Difference)
	assert.InDelta(t, 9.0, *m.Difference, 1e-9)
	assert.Equal(t, 4, m.PatientCount)
	assert.Equal(t, 2, m.ResponderCount)
	assert.Equal(t, 2, m.NonResponderCount)
	// Responders have the higher percentages, so the correlation is positive.
	require.NotNil(t, m.Correlation)
	assert.Greater(t, *m.Correlation, 0.0)
}

func TestBuildPredictionMetric_EmptyGroupIsNil(t *testing.T) {
	metric := buildPredictionMetric("NK Cells", []repository.PatientAverageRow{
		{PatientID: 1, Responder: true, AvgPercentage: 12},
		{PatientID: 2, Responder: true, AvgPercentage: 14},
	})

	require.NotNil(t, metric.AvgResponder)
	assert.InDelta(t, 13.0, *metric.AvgResponder, 1e-9)
	// No non-responders: the average is undefined, never zero.
	assert.Nil(t, metric.AvgNonResponder)
	assert.Nil(t, metric.Difference)
	// Single-group labels have no variance, so the correlation is undefined.
	assert.Nil(t, metric.Correlation)
	assert.Equal(t, 2, metric.ResponderCount)
	assert.Equal(t, 0, metric.NonResponderCount)
}

func TestMarkerTrend_UnknownMarkerYieldsEmpty(t *testing.T) {
	db := setupServiceDB(t)
	seedServiceFixture(t, db)
	svc := newTestAnalyticsService(db)

	rows := svc.MarkerTrend(context.Background(), 1, "CD999")
	assert.Empty(t, rows)
}

func TestDegradedQuery_RecoversMissingSchema(t *testing.T) {
	// No EnsureSchema here: the first query fails with a missing table, the
	// recovery path creates the schema and the retry yields an empty result.
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := newTestAnalyticsService(db)
	rows := svc.DiscriminatingCellTypes(context.Background(), DiscriminatingCellTypesRequest{CohortID: 1})
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	// The recovery attempt left a usable schema behind.
	empty, err := store.IsEmpty(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestListOperations_EmptyStoreYieldsEmptySlices(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAtlasService(
		repository.NewSQLiteCohortsRepository(db),
		repository.NewSQLitePatientsRepository(db),
		repository.NewSQLiteSpecimensRepository(db),
		repository.NewSQLiteCellPopulationsRepository(db),
		repository.NewSQLiteMarkersRepository(db),
		repository.NewSQLiteTimepointsRepository(db),
		db,
		zap.NewNop(),
	)
	ctx := context.Background()

	assert.Empty(t, svc.ListCohorts(ctx))
	assert.Empty(t, svc.ListPatients(ctx, 1))
	assert.Empty(t, svc.ListSpecimens(ctx, 1))
	assert.Empty(t, svc.ListCellPopulations(ctx, 1))
}
