package repository

import (
	"context"
	"database/sql"
)

// CellTypeComparisonRow one group of the responder/non-responder comparison
// for a single cell type. Groups partition the matching population rows by
// (responder, timepoint, specimen type, drug class).
type CellTypeComparisonRow struct {
	Responder       bool           `json:"responder"`
	ResponderStatus string         `json:"responder_status"`
	Timepoint       string         `json:"timepoint"`
	SpecimenType    string         `json:"specimen_type"`
	DrugClass       sql.NullString `json:"-"`
	AvgPercentage   float64        `json:"avg_percentage"`
	AvgCellCount    float64        `json:"avg_cell_count"`
	PatientCount    int            `json:"patient_count"`
}

// DiscriminatingCellTypeRow one cell type ranked by how far its responder
// and non-responder averages sit apart.
type DiscriminatingCellTypeRow struct {
	CellType        string  `json:"cell_type"`
	AvgResponder    float64 `json:"avg_percentage_responder"`
	AvgNonResponder float64 `json:"avg_percentage_non_responder"`
	Difference      float64 `json:"difference"`
	AbsDifference   float64 `json:"abs_difference"`
}

// DrugDistributionRow one (responder, drug class) group; rows without a
// drug class are excluded from this view.
type DrugDistributionRow struct {
	Responder       bool    `json:"responder"`
	ResponderStatus string  `json:"responder_status"`
	DrugClass       string  `json:"drug_class"`
	AvgPercentage   float64 `json:"avg_percentage"`
	PatientCount    int     `json:"patient_count"`
}

// PatientAverageRow per-patient average percentage for one cell type,
// input to the response-prediction metrics.
type PatientAverageRow struct {
	PatientID     int64   `json:"patient_id"`
	Responder     bool    `json:"responder"`
	AvgPercentage float64 `json:"avg_percentage"`
}

// MarkerTrendRow aggregate marker expression at one timepoint.
type MarkerTrendRow struct {
	Timepoint         string  `json:"timepoint"`
	SortOrder         int     `json:"sort_order"`
	ResponderValue    float64 `json:"responder_value"`
	NonResponderValue float64 `json:"nonresponder_value"`
}

// CellTypeFrequencyRow aggregate cell type frequency for one cohort.
type CellTypeFrequencyRow struct {
	CellType              string  `json:"cell_type"`
	ResponderFrequency    float64 `json:"responder_frequency"`
	NonResponderFrequency float64 `json:"nonresponder_frequency"`
}

// AnalyticsRepository grouped statistics over the entity store.
// Every method returns an empty slice, never an error, for filters that
// match nothing; errors signal genuine storage failures only.
type AnalyticsRepository interface {
	// CompareCellType groups all population rows of one (cohort, cell type)
	// by (responder, timepoint, specimen type, drug class), averaging
	// percentage and cell count and counting distinct patients. Rows come
	// back in chronological timepoint order. An optional timepoints filter
	// restricts the view.
	CompareCellType(ctx context.Context, cohortID int64, cellType string, timepoints []string) ([]CellTypeComparisonRow, error)

	// DiscriminatingCellTypes ranks cell types of one cohort by descending
	// absolute responder/non-responder difference of the flat average
	// percentage, keeping rows with abs difference >= minDifference.
	// Equal differences tie-break by cell type name.
	DiscriminatingCellTypes(ctx context.Context, cohortID int64, minDifference float64) ([]DiscriminatingCellTypeRow, error)

	// DistributionByDrug groups one (cohort, cell type) by (responder,
	// drug class), excluding specimens without a drug class.
	DistributionByDrug(ctx context.Context, cohortID int64, cellType string) ([]DrugDistributionRow, error)

	// PerPatientAverages returns each patient's average percentage for one
	// cell type, with the responder flag.
	PerPatientAverages(ctx context.Context, cohortID int64, cellType string) ([]PatientAverageRow, error)

	// MarkerTrend returns the responder/non-responder expression series for
	// one (cohort, marker) in chronological order.
	MarkerTrend(ctx context.Context, cohortID, markerID int64) ([]MarkerTrendRow, error)

	// CellTypeFrequencies returns the pre-aggregated frequencies for one
	// cohort, highest responder frequency first.
	CellTypeFrequencies(ctx context.Context, cohortID int64) ([]CellTypeFrequencyRow, error)
}
