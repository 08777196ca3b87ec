package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLiteAnalyticsRepository AnalyticsRepository implementation over the embedded store
type SQLiteAnalyticsRepository struct {
	db *sql.DB
}

// NewSQLiteAnalyticsRepository creates an analytics repository
func NewSQLiteAnalyticsRepository(db *sql.DB) *SQLiteAnalyticsRepository {
	return &SQLiteAnalyticsRepository{db: db}
}

var _ AnalyticsRepository = (*SQLiteAnalyticsRepository)(nil)

// populationJoin is the cohort -> patients -> specimens -> populations path
// shared by every comparison query.
const populationJoin = `
		FROM patients p
		JOIN specimens s ON p.patient_id = s.patient_id
		JOIN cell_populations cp ON s.specimen_id = cp.specimen_id`

func (r *SQLiteAnalyticsRepository) CompareCellType(ctx context.Context, cohortID int64, cellType string, timepoints []string) ([]CellTypeComparisonRow, error) {
	query := `
		SELECT p.responder, s.timepoint, s.specimen_type, s.drug_class,
		       AVG(cp.percentage) AS avg_percentage,
		       AVG(cp.cell_count) AS avg_cell_count,
		       COUNT(DISTINCT p.patient_id) AS patient_count` + populationJoin + `
		LEFT JOIN timepoints tp ON s.timepoint = tp.name
		WHERE p.cohort_id = ? AND cp.cell_type = ?`
	args := []interface{}{cohortID, cellType}

	if len(timepoints) > 0 {
		query += " AND s.timepoint IN (?" + strings.Repeat(", ?", len(timepoints)-1) + ")"
		for _, tp := range timepoints {
			args = append(args, tp)
		}
	}

	// Chronological ordering comes from the timepoint vocabulary, not the
	// label string ("C1D14" would sort before "C1D1" lexically).
	query += `
		GROUP BY p.responder, s.timepoint, tp.sort_order, s.specimen_type, s.drug_class
		ORDER BY tp.sort_order, p.responder DESC, s.specimen_type, s.drug_class`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compare cell type %q: %w", cellType, err)
	}
	defer rows.Close()

	result := []CellTypeComparisonRow{}
	for rows.Next() {
		var row CellTypeComparisonRow
		if err := rows.Scan(
			&row.Responder, &row.Timepoint, &row.SpecimenType, &row.DrugClass,
			&row.AvgPercentage, &row.AvgCellCount, &row.PatientCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comparison row: %w", err)
		}
		row.ResponderStatus = domain.ResponderStatus(row.Responder)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparison rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteAnalyticsRepository) DiscriminatingCellTypes(ctx context.Context, cohortID int64, minDifference float64) ([]DiscriminatingCellTypeRow, error) {
	// Flat averages over all matching population rows per group. Cell types
	// seen only in one group drop out of the inner join, matching the
	// "undefined average" rule: no contrast exists without both groups.
	query := `
		SELECT r.cell_type,
		       r.avg_pct AS avg_responder,
		       nr.avg_pct AS avg_non_responder,
		       r.avg_pct - nr.avg_pct AS difference,
		       ABS(r.avg_pct - nr.avg_pct) AS abs_difference
		FROM (
			SELECT cp.cell_type, AVG(cp.percentage) AS avg_pct` + populationJoin + `
			WHERE p.cohort_id = ? AND p.responder = 1
			GROUP BY cp.cell_type
		) r
		JOIN (
			SELECT cp.cell_type, AVG(cp.percentage) AS avg_pct` + populationJoin + `
			WHERE p.cohort_id = ? AND p.responder = 0
			GROUP BY cp.cell_type
		) nr ON r.cell_type = nr.cell_type
		WHERE ABS(r.avg_pct - nr.avg_pct) >= ?
		ORDER BY abs_difference DESC, r.cell_type`

	rows, err := r.db.QueryContext(ctx, query, cohortID, cohortID, minDifference)
	if err != nil {
		return nil, fmt.Errorf("failed to find discriminating cell types: %w", err)
	}
	defer rows.Close()

	result := []DiscriminatingCellTypeRow{}
	for rows.Next() {
		var row DiscriminatingCellTypeRow
		if err := rows.Scan(
			&row.CellType, &row.AvgResponder, &row.AvgNonResponder,
			&row.Difference, &row.AbsDifference,
		); err != nil {
			return nil, fmt.Errorf("failed to scan discriminating row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate discriminating rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteAnalyticsRepository) DistributionByDrug(ctx context.Context, cohortID int64, cellType string) ([]DrugDistributionRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.responder, s.drug_class,
		       AVG(cp.percentage) AS avg_percentage,
		       COUNT(DISTINCT p.patient_id) AS patient_count`+populationJoin+`
		WHERE p.cohort_id = ? AND cp.cell_type = ? AND s.drug_class IS NOT NULL
		GROUP BY p.responder, s.drug_class
		ORDER BY s.drug_class, p.responder`, cohortID, cellType)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution by drug: %w", err)
	}
	defer rows.Close()

	result := []DrugDistributionRow{}
	for rows.Next() {
		var row DrugDistributionRow
		if err := rows.Scan(&row.Responder, &row.DrugClass, &row.AvgPercentage, &row.PatientCount); err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		row.ResponderStatus = domain.ResponderStatus(row.Responder)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distribution rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteAnalyticsRepository) PerPatientAverages(ctx context.Context, cohortID int64, cellType string) ([]PatientAverageRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.patient_id, p.responder, AVG(cp.percentage) AS avg_percentage`+populationJoin+`
		WHERE p.cohort_id = ? AND cp.cell_type = ?
		GROUP BY p.patient_id, p.responder
		ORDER BY p.patient_id`, cohortID, cellType)
	if err != nil {
		return nil, fmt.Errorf("failed to get per-patient averages: %w", err)
	}
	defer rows.Close()

	result := []PatientAverageRow{}
	for rows.Next() {
		var row PatientAverageRow
		if err := rows.Scan(&row.PatientID, &row.Responder, &row.AvgPercentage); err != nil {
			return nil, fmt.Errorf("failed to scan patient average: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate patient averages: %w", err)
	}
	return result, nil
}

func (r *SQLiteAnalyticsRepository) MarkerTrend(ctx context.Context, cohortID, markerID int64) ([]MarkerTrendRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tp.name, tp.sort_order, md.responder_value, md.nonresponder_value
		FROM marker_data md
		JOIN timepoints tp ON md.timepoint_id = tp.timepoint_id
		WHERE md.cohort_id = ? AND md.marker_id = ?
		ORDER BY tp.sort_order`, cohortID, markerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get marker trend: %w", err)
	}
	defer rows.Close()

	result := []MarkerTrendRow{}
	for rows.Next() {
		var row MarkerTrendRow
		if err := rows.Scan(&row.Timepoint, &row.SortOrder, &row.ResponderValue, &row.NonResponderValue); err != nil {
			return nil, fmt.Errorf("failed to scan marker trend row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate marker trend rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteAnalyticsRepository) CellTypeFrequencies(ctx context.Context, cohortID int64) ([]CellTypeFrequencyRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cell_type, responder_frequency, nonresponder_frequency
		FROM cell_type_data
		WHERE cohort_id = ?
		ORDER BY responder_frequency DESC, cell_type`, cohortID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cell type frequencies: %w", err)
	}
	defer rows.Close()

	result := []CellTypeFrequencyRow{}
	for rows.Next() {
		var row CellTypeFrequencyRow
		if err := rows.Scan(&row.CellType, &row.ResponderFrequency, &row.NonResponderFrequency); err != nil {
			return nil, fmt.Errorf("failed to scan frequency row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate frequency rows: %w", err)
	}
	return result, nil
}
