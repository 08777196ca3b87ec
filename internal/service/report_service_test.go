package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hereisramji/atlas/internal/repository"
)

func TestExportCohortReport(t *testing.T) {
	db := setupServiceDB(t)
	seedServiceFixture(t, db)

	atlas := NewAtlasService(
		repository.NewSQLiteCohortsRepository(db),
		repository.NewSQLitePatientsRepository(db),
		repository.NewSQLiteSpecimensRepository(db),
		repository.NewSQLiteCellPopulationsRepository(db),
		repository.NewSQLiteMarkersRepository(db),
		repository.NewSQLiteTimepointsRepository(db),
		db,
		zap.NewNop(),
	)
	reports := NewReportService(atlas, newTestAnalyticsService(db), zap.NewNop())

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, reports.ExportCohortReport(context.Background(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	indication, err := f.GetCellValue("Cohorts", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Melanoma", indication)

	cellType, err := f.GetCellValue("Cohort 1 Features", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CD8 T Central Memory", cellType)
}
