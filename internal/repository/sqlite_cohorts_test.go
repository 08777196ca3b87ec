package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/hereisramji/atlas/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCohorts_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"cohort_id", "indication", "disease_type", "specimens_count",
		"patients_count", "analyzed_specimens", "cells_phenotyped", "treatment",
	}).AddRow(
		1, "Melanoma", "Cancer", 76, 34, 76, 103477921, "Anti-PD-1 (Pembrolizumab)",
	).AddRow(
		5, "NSCLC", "Cancer", 35, 12, 35, 7379869, "Anti-PD-1 (Pembrolizumab)",
	)

	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	cohorts, err := NewSQLiteCohortsRepository(db).ListCohorts(context.Background())

	require.NoError(t, err)
	require.Len(t, cohorts, 2)
	assert.Equal(t, int64(1), cohorts[0].CohortID)
	assert.Equal(t, "Melanoma", cohorts[0].Indication)
	assert.Equal(t, "Cancer", cohorts[0].DiseaseType)
	assert.Equal(t, 34, cohorts[0].PatientsCount)
	assert.Equal(t, "NSCLC", cohorts[1].Indication)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCohorts_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("no such table: cohorts"))

	cohorts, err := NewSQLiteCohortsRepository(db).ListCohorts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, cohorts)
	assert.Contains(t, err.Error(), "failed to list cohorts")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCohort_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)

	cohort, err := NewSQLiteCohortsRepository(db).GetCohort(context.Background(), 99)

	// Stale ids are expected input, not faults.
	require.NoError(t, err)
	assert.Nil(t, cohort)
}

func TestDeleteCohort_CascadesToChildren(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	ctx := context.Background()

	require.NoError(t, NewSQLiteCohortsRepository(db).DeleteCohort(ctx, 1))

	patients, err := NewSQLitePatientsRepository(db).ListByCohort(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, patients)

	specimens, err := NewSQLiteSpecimensRepository(db).ListByPatient(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, specimens)

	populations, err := NewSQLiteCellPopulationsRepository(db).ListBySpecimen(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, populations)
}

func TestListSpecimens_NoSpecimensYieldsEmpty(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)

	specimens, err := NewSQLiteSpecimensRepository(db).ListByPatient(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, specimens)
}

func TestListSpecimens_ChronologicalOrder(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)
	ctx := context.Background()

	// Lexically "C1D14" sorts before "C1D1"; chronologically it is the
	// other way around.
	require.NoError(t, NewSQLiteSpecimensRepository(db).InsertSpecimens(ctx, []domain.Specimen{
		{SpecimenID: 5, PatientID: 1, Accession: "a-5", Timepoint: "C1D14", SpecimenType: "Blood"},
		{SpecimenID: 6, PatientID: 1, Accession: "a-6", Timepoint: "C1D1", SpecimenType: "Tumor"},
	}))

	specimens, err := NewSQLiteSpecimensRepository(db).ListByPatient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, specimens, 3)
	assert.Equal(t, "Baseline", specimens[0].Timepoint)
	assert.Equal(t, "C1D1", specimens[1].Timepoint)
	assert.Equal(t, "C1D14", specimens[2].Timepoint)
}

func TestListCellTypes(t *testing.T) {
	db := setupTestDB(t)
	seedComparisonFixture(t, db)

	cellTypes, err := NewSQLiteCellPopulationsRepository(db).ListCellTypes(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"CD8 T Central Memory", "NK Cells"}, cellTypes)
}
