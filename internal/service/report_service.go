package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReportService offline workbook export for sharing outside the dashboard
type ReportService interface {
	// ExportCohortReport writes an xlsx workbook with a cohort summary sheet
	// and one discriminating-features sheet per cohort
	ExportCohortReport(ctx context.Context, path string) error
}

// reportService ReportService implementation
type reportService struct {
	atlas     AtlasService
	analytics AnalyticsService
	logger    *zap.Logger
}

// NewReportService creates the report export service
func NewReportService(atlas AtlasService, analytics AnalyticsService, logger *zap.Logger) ReportService {
	return &reportService{
		atlas:     atlas,
		analytics: analytics,
		logger:    logger,
	}
}

var cohortSheetHeaders = []string{
	"Cohort ID", "Indication", "Type", "Specimens", "Patients",
	"Analyzed Specimens", "Cells Phenotyped", "Treatment",
}

var featureSheetHeaders = []string{
	"Cell Type", "Avg % (Responder)", "Avg % (Non-Responder)",
	"Difference", "Abs Difference",
}

func (s *reportService) ExportCohortReport(ctx context.Context, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Cohorts"
	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeaderRow(f, summarySheet, cohortSheetHeaders, headerStyle); err != nil {
		return err
	}

	cohorts := s.atlas.ListCohorts(ctx)
	for i, c := range cohorts {
		row := i + 2
		values := []interface{}{
			c.CohortID, c.Indication, c.DiseaseType, c.SpecimensCount,
			c.PatientsCount, c.AnalyzedSpecimens, c.CellsPhenotyped, c.Treatment,
		}
		if err := writeRow(f, summarySheet, row, values); err != nil {
			return err
		}
	}

	// One feature-ranking sheet per cohort, unfiltered so the full ordering
	// is visible in the export.
	noThreshold := 0.0
	for _, c := range cohorts {
		features := s.analytics.DiscriminatingCellTypes(ctx, DiscriminatingCellTypesRequest{
			CohortID:      c.CohortID,
			MinDifference: &noThreshold,
		})
		if len(features) == 0 {
			continue
		}

		sheet := fmt.Sprintf("Cohort %d Features", c.CohortID)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		if err := writeHeaderRow(f, sheet, featureSheetHeaders, headerStyle); err != nil {
			return err
		}
		for i, feat := range features {
			values := []interface{}{
				feat.CellType, feat.AvgResponder, feat.AvgNonResponder,
				feat.Difference, feat.AbsDifference,
			}
			if err := writeRow(f, sheet, i+2, values); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}

	s.logger.Info("cohort report exported",
		zap.String("path", path),
		zap.Int("cohorts", len(cohorts)))
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
