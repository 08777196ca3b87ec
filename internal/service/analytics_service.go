package service

import (
	"context"
	"database/sql"
	"math"

	"github.com/hereisramji/atlas/internal/repository"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// DefaultMinDifference is the threshold, in percentage points, below which
// a responder/non-responder contrast is not considered discriminating.
// A demo default, not a clinical constant.
const DefaultMinDifference = 5.0

// CompareCellTypeRequest parameters for the cell type comparison
type CompareCellTypeRequest struct {
	CohortID   int64
	CellType   string
	Timepoints []string // optional, restricts to these timepoint labels
}

// DiscriminatingCellTypesRequest parameters for the feature ranking
type DiscriminatingCellTypesRequest struct {
	CohortID      int64
	MinDifference *float64 // nil means DefaultMinDifference
}

// ResponsePredictionRequest parameters for the prediction metrics
type ResponsePredictionRequest struct {
	CohortID  int64
	CellTypes []string // optional, defaults to every cell type in the cohort
}

// PredictionMetric per-cell-type response prediction summary. Averages are
// taken per patient first; a group with zero patients has no average, so
// those fields are pointers and stay nil rather than silently reading 0.
type PredictionMetric struct {
	CellType          string   `json:"cell_type"`
	AvgResponder      *float64 `json:"avg_responder"`
	AvgNonResponder   *float64 `json:"avg_non_responder"`
	Difference        *float64 `json:"difference"`
	PatientCount      int      `json:"patient_count"`
	ResponderCount    int      `json:"responder_count"`
	NonResponderCount int      `json:"non_responder_count"`
	// Point-biserial correlation between per-patient average percentage and
	// the responder label; nil when undefined (fewer than two patients or a
	// single-group cohort).
	Correlation *float64 `json:"correlation"`
}

// AnalyticsService responder/non-responder contrast queries, the
// discriminating-feature core. Same degraded-result contract as
// AtlasService: empty results for empty data, unknown ids and recovered
// storage failures alike.
type AnalyticsService interface {
	// CompareCellType returns grouped averages per (responder, timepoint,
	// specimen type, drug class) in chronological timepoint order
	CompareCellType(ctx context.Context, req CompareCellTypeRequest) []repository.CellTypeComparisonRow

	// DiscriminatingCellTypes ranks cell types by descending absolute
	// responder/non-responder difference
	DiscriminatingCellTypes(ctx context.Context, req DiscriminatingCellTypesRequest) []repository.DiscriminatingCellTypeRow

	// DistributionByDrug returns grouped averages per (responder, drug class)
	DistributionByDrug(ctx context.Context, cohortID int64, cellType string) []repository.DrugDistributionRow

	// ResponsePredictionMetrics computes per-cell-type group means and the
	// point-biserial correlation from per-patient averages
	ResponsePredictionMetrics(ctx context.Context, req ResponsePredictionRequest) []PredictionMetric

	// MarkerTrend returns the aggregate expression series for one marker name
	MarkerTrend(ctx context.Context, cohortID int64, markerName string) []repository.MarkerTrendRow

	// CellTypeFrequencies returns the pre-aggregated frequencies for one cohort
	CellTypeFrequencies(ctx context.Context, cohortID int64) []repository.CellTypeFrequencyRow
}

// analyticsService AnalyticsService implementation
type analyticsService struct {
	analyticsRepo   repository.AnalyticsRepository
	populationsRepo repository.CellPopulationsRepository
	markersRepo     repository.MarkersRepository
	db              *sql.DB // for the schema recovery path
	logger          *zap.Logger
}

// NewAnalyticsService creates the analytics service
func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	populationsRepo repository.CellPopulationsRepository,
	markersRepo repository.MarkersRepository,
	db *sql.DB,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsService{
		analyticsRepo:   analyticsRepo,
		populationsRepo: populationsRepo,
		markersRepo:     markersRepo,
		db:              db,
		logger:          logger,
	}
}

func (s *analyticsService) CompareCellType(ctx context.Context, req CompareCellTypeRequest) []repository.CellTypeComparisonRow {
	return degradedQuery(ctx, s.db, s.logger, "CompareCellType", func(ctx context.Context) ([]repository.CellTypeComparisonRow, error) {
		return s.analyticsRepo.CompareCellType(ctx, req.CohortID, req.CellType, req.Timepoints)
	})
}

func (s *analyticsService) DiscriminatingCellTypes(ctx context.Context, req DiscriminatingCellTypesRequest) []repository.DiscriminatingCellTypeRow {
	minDifference := DefaultMinDifference
	if req.MinDifference != nil {
		minDifference = *req.MinDifference
	}
	return degradedQuery(ctx, s.db, s.logger, "DiscriminatingCellTypes", func(ctx context.Context) ([]repository.DiscriminatingCellTypeRow, error) {
		return s.analyticsRepo.DiscriminatingCellTypes(ctx, req.CohortID, minDifference)
	})
}

func (s *analyticsService) DistributionByDrug(ctx context.Context, cohortID int64, cellType string) []repository.DrugDistributionRow {
	return degradedQuery(ctx, s.db, s.logger, "DistributionByDrug", func(ctx context.Context) ([]repository.DrugDistributionRow, error) {
		return s.analyticsRepo.DistributionByDrug(ctx, cohortID, cellType)
	})
}

func (s *analyticsService) ResponsePredictionMetrics(ctx context.Context, req ResponsePredictionRequest) []PredictionMetric {
	return degradedQuery(ctx, s.db, s.logger, "ResponsePredictionMetrics", func(ctx context.Context) ([]PredictionMetric, error) {
		cellTypes := req.CellTypes
		if len(cellTypes) == 0 {
			var err error
			cellTypes, err = s.populationsRepo.ListCellTypes(ctx, req.CohortID)
			if err != nil {
				return nil, err
			}
		}

		metrics := []PredictionMetric{}
		for _, cellType := range cellTypes {
			averages, err := s.analyticsRepo.PerPatientAverages(ctx, req.CohortID, cellType)
			if err != nil {
				return nil, err
			}
			if len(averages) == 0 {
				continue
			}
			metrics = append(metrics, buildPredictionMetric(cellType, averages))
		}
		return metrics, nil
	})
}

func (s *analyticsService) MarkerTrend(ctx context.Context, cohortID int64, markerName string) []repository.MarkerTrendRow {
	return degradedQuery(ctx, s.db, s.logger, "MarkerTrend", func(ctx context.Context) ([]repository.MarkerTrendRow, error) {
		marker, err := s.markersRepo.GetMarkerByName(ctx, markerName)
		if err != nil {
			return nil, err
		}
		if marker == nil {
			// Stale marker selections are expected, not faults.
			return []repository.MarkerTrendRow{}, nil
		}
		return s.analyticsRepo.MarkerTrend(ctx, cohortID, marker.MarkerID)
	})
}

func (s *analyticsService) CellTypeFrequencies(ctx context.Context, cohortID int64) []repository.CellTypeFrequencyRow {
	return degradedQuery(ctx, s.db, s.logger, "CellTypeFrequencies", func(ctx context.Context) ([]repository.CellTypeFrequencyRow, error) {
		return s.analyticsRepo.CellTypeFrequencies(ctx, cohortID)
	})
}

// buildPredictionMetric folds per-patient averages into one metric row.
func buildPredictionMetric(cellType string, averages []repository.PatientAverageRow) PredictionMetric {
	metric := PredictionMetric{
		CellType:     cellType,
		PatientCount: len(averages),
	}

	var responderSum, nonResponderSum float64
	percentages := make([]float64, 0, len(averages))
	labels := make([]float64, 0, len(averages))

	for _, row := range averages {
		percentages = append(percentages, row.AvgPercentage)
		if row.Responder {
			metric.ResponderCount++
			responderSum += row.AvgPercentage
			labels = append(labels, 1)
		} else {
			metric.NonResponderCount++
			nonResponderSum += row.AvgPercentage
			labels = append(labels, 0)
		}
	}

	if metric.ResponderCount > 0 {
		avg := responderSum / float64(metric.ResponderCount)
		metric.AvgResponder = &avg
	}
	if metric.NonResponderCount > 0 {
		avg := nonResponderSum / float64(metric.NonResponderCount)
		metric.AvgNonResponder = &avg
	}
	if metric.AvgResponder != nil && metric.AvgNonResponder != nil {
		diff := *metric.AvgResponder - *metric.AvgNonResponder
		metric.Difference = &diff
	}

	// Pearson correlation against the 0/1 label is the point-biserial
	// coefficient. gonum yields NaN when either series has no variance.
	if len(percentages) >= 2 {
		if corr := stat.Correlation(percentages, labels, nil); !math.IsNaN(corr) {
			metric.Correlation = &corr
		}
	}

	return metric
}
