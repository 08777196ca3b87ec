package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hereisramji/atlas/internal/domain"
	"github.com/hereisramji/atlas/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, store.EnsureSchema(context.Background(), db))
	return db
}

// seedComparisonFixture loads one cohort with two responders (cell type X at
// 10% and 20%) and two non-responders (5% and 7%), plus a second cell type
// with no contrast.
func seedComparisonFixture(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, NewSQLiteTimepointsRepository(db).InsertTimepoints(ctx, []domain.Timepoint{
		{TimepointID: 1, Name: "Baseline", SortOrder: 1},
		{TimepointID: 2, Name: "C1D1", SortOrder: 2},
		{TimepointID: 3, Name: "C1D14", SortOrder: 3},
	}))

	require.NoError(t, NewSQLiteCohortsRepository(db).InsertCohorts(ctx, []domain.Cohort{
		{CohortID: 1, Indication: "Melanoma", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 4, PatientsCount: 4, AnalyzedSpecimens: 4, CellsPhenotyped: 4000, Treatment: "Anti-PD-1 (Pembrolizumab)"},
	}))

	require.NoError(t, NewSQLitePatientsRepository(db).InsertPatients(ctx, []domain.Patient{
		{PatientID: 1, CohortID: 1, Responder: true},
		{PatientID: 2, CohortID: 1, Responder: true},
		{PatientID: 3, CohortID: 1, Responder: false},
		{PatientID: 4, CohortID: 1, Responder: false},
	}))

	tcr := sql.NullString{String: "TCR", Valid: true}
	require.NoError(t, NewSQLiteSpecimensRepository(db).InsertSpecimens(ctx, []domain.Specimen{
		{SpecimenID: 1, PatientID: 1, Accession: "a-1", Timepoint: "Baseline", SpecimenType: "Blood", DrugClass: tcr},
		{SpecimenID: 2, PatientID: 2, Accession: "a-2", Timepoint: "Baseline", SpecimenType: "Blood", DrugClass: tcr},
		{SpecimenID: 3, PatientID: 3, Accession: "a-3", Timepoint: "Baseline", SpecimenType: "Blood", DrugClass: tcr},
		{SpecimenID: 4, PatientID: 4, Accession: "a-4", Timepoint: "C1D14", SpecimenType: "Tumor", DrugClass: sql.NullString{}},
	}))

	require.NoError(t, NewSQLiteCellPopulationsRepository(db).InsertPopulations(ctx, []domain.CellPopulation{
		{PopulationID: 1, SpecimenID: 1, CellType: "CD8 T Central Memory", CellCount: 10000, Percentage: 10},
		{PopulationID: 2, SpecimenID: 2, CellType: "CD8 T Central Memory", CellCount: 20000, Percentage: 20},
		{PopulationID: 3, SpecimenID: 3, CellType: "CD8 T Central Memory", CellCount: 5000, Percentage: 5},
		{PopulationID: 4, SpecimenID: 4, CellType: "CD8 T Central Memory", CellCount: 7000, Percentage: 7},
		{PopulationID: 5, SpecimenID: 1, CellType: "NK Cells", CellCount: 4000, Percentage: 4},
		{PopulationID: 6, SpecimenID: 2, CellType: "NK Cells", CellCount: 5000, Percentage: 5},
		{PopulationID: 7, SpecimenID: 3, CellType: "NK Cells", CellCount: 6000, Percentage: 6},
		{PopulationID: 8, SpecimenID: 4, CellType: "NK Cells", CellCount: 3000, Percentage: 3},
	}))
}

func TestDiscriminatingCellTypes(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.DiscriminatingCellTypes(context.Background(), 1, 5.0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "CD8 T Central Memory", row.CellType)
	assert.InDelta(t, 15.0, row.AvgResponder, 1e-9)
	assert.InDelta(t, 6.0, row.AvgNonResponder, 1e-9)
	assert.InDelta(t, 9.0, row.Difference, 1e-9)
	assert.InDelta(t, 9.0, row.AbsDifference, 1e-9)
}

func TestDiscriminatingCellTypes_SortedByAbsDifference(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.DiscriminatingCellTypes(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "CD8 T Central Memory", rows[0].CellType)
	assert.Equal(t, "NK Cells", rows[1].CellType)
	assert.GreaterOrEqual(t, rows[0].AbsDifference, rows[1].AbsDifference)
	// NK Cells: responders (4+5)/2 = 4.5, non-responders (6+3)/2 = 4.5.
	assert.InDelta(t, 0.0, rows[1].Difference, 1e-9)
}

func TestDiscriminatingCellTypes_UnknownCohort(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.DiscriminatingCellTypes(context.Background(), 42, 5.0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCompareCellType(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.CompareCellType(context.Background(), 1, "CD8 T Central Memory", nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Chronological order, responders first within a timepoint.
	assert.Equal(t, "Baseline", rows[0].Timepoint)
	assert.Equal(t, "Responder", rows[0].ResponderStatus)
	assert.InDelta(t, 15.0, rows[0].AvgPercentage, 1e-9)
	assert.InDelta(t, 15000.0, rows[0].AvgCellCount, 1e-9)
	assert.Equal(t, 2, rows[0].PatientCount)

	assert.Equal(t, "Baseline", rows[1].Timepoint)
	assert.Equal(t, "Non-Responder", rows[1].ResponderStatus)
	assert.Equal(t, 1, rows[1].PatientCount)

	assert.Equal(t, "C1D14", rows[2].Timepoint)
	assert.Equal(t, "Non-Responder", rows[2].ResponderStatus)
	assert.False(t, rows[2].DrugClass.Valid)

	// Groups partition the matching rows: patient counts reconcile with the
	// distinct patients under the same filter.
	total := 0
	for _, row := range rows {
		total += row.PatientCount
	}
	assert.Equal(t, 4, total)
}

func TestCompareCellType_TimepointFilter(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.CompareCellType(context.Background(), 1, "CD8 T Central Memory", []string{"Baseline"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Baseline", row.Timepoint)
	}
}

func TestDistributionByDrug_ExcludesNullDrugClass(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.DistributionByDrug(context.Background(), 1, "CD8 T Central Memory")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Specimen 4 has no drug class and must not appear.
	assert.Equal(t, "Non-Responder", rows[0].ResponderStatus)
	assert.Equal(t, "TCR", rows[0].DrugClass)
	assert.InDelta(t, 5.0, rows[0].AvgPercentage, 1e-9)
	assert.Equal(t, 1, rows[0].PatientCount)

	assert.Equal(t, "Responder", rows[1].ResponderStatus)
	assert.InDelta(t, 15.0, rows[1].AvgPercentage, 1e-9)
	assert.Equal(t, 2, rows[1].PatientCount)
}

func TestPerPatientAverages(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	repo := NewSQLiteAnalyticsRepository(db)

	rows, err := repo.PerPatientAverages(context.Background(), 1, "CD8 T Central Memory")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, int64(1), rows[0].PatientID)
	assert.True(t, rows[0].Responder)
	assert.InDelta(t, 10.0, rows[0].AvgPercentage, 1e-9)
	assert.False(t, rows[3].Responder)
	assert.InDelta(t, 7.0, rows[3].AvgPercentage, 1e-9)
}

func TestMarkerTrend_ChronologicalOrder(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	ctx := context.Background()

	require.NoError(t, NewSQLiteMarkersRepository(db).InsertMarkers(ctx, []domain.Marker{
		{MarkerID: 1, Name: "PD-1", Category: "Checkpoint Molecules", Description: ""},
	}))
	// Inserted out of order on purpose.
	require.NoError(t, NewSQLiteAggregatesRepository(db).InsertMarkerData(ctx, []domain.MarkerData{
		{ID: 1, CohortID: 1, MarkerID: 1, TimepointID: 3, ResponderValue: 0.2, NonResponderValue: 0.6},
		{ID: 2, CohortID: 1, MarkerID: 1, TimepointID: 1, ResponderValue: 0.4, NonResponderValue: 0.5},
		{ID: 3, CohortID: 1, MarkerID: 1, TimepointID: 2, ResponderValue: 0.3, NonResponderValue: 0.55},
	}))

	rows, err := NewSQLiteAnalyticsRepository(db).MarkerTrend(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Baseline", "C1D1", "C1D14"}, []string{rows[0].Timepoint, rows[1].Timepoint, rows[2].Timepoint})
}

func TestCellTypeFrequencies(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	ctx := context.Background()

	require.NoError(t, NewSQLiteAggregatesRepository(db).InsertCellTypeData(ctx, []domain.CellTypeData{
		{ID: 1, CohortID: 1, CellType: "B Cells", ResponderFrequency: 0.10, NonResponderFrequency: 0.12},
		{ID: 2, CohortID: 1, CellType: "CD8+ T Cells", ResponderFrequency: 0.25, NonResponderFrequency: 0.15},
	}))

	rows, err := NewSQLiteAnalyticsRepository(db).CellTypeFrequencies(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CD8+ T Cells", rows[0].CellType)
	assert.Equal(t, "B Cells", rows[1].CellType)
}
