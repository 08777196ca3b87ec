package domain

// Marker domain model (maps to the markers table)
// Catalog entry for a measurable cell-surface or intracellular protein.
type Marker struct {
	// Primary key
	MarkerID int64 `db:"marker_id"` // INTEGER, PRIMARY KEY

	// Marker name, e.g. "PD-1"
	Name string `db:"name"` // TEXT, NOT NULL, UNIQUE

	// Panel category, e.g. "Checkpoint Molecules"
	Category string `db:"category"` // TEXT, NOT NULL

	// Free-text description
	Description string `db:"description"` // TEXT, NOT NULL, may be empty
}

// MarkerData domain model (maps to the marker_data table)
// Pre-aggregated responder/non-responder expression per (cohort, marker,
// timepoint), used to render marker trend lines.
type MarkerData struct {
	// Primary key
	ID int64 `db:"id"` // INTEGER, PRIMARY KEY

	CohortID    int64 `db:"cohort_id"`    // INTEGER, NOT NULL, FK to cohorts ON DELETE CASCADE
	MarkerID    int64 `db:"marker_id"`    // INTEGER, NOT NULL, FK to markers ON DELETE CASCADE
	TimepointID int64 `db:"timepoint_id"` // INTEGER, NOT NULL, FK to timepoints

	// Aggregate expression values in [0.01, 0.99]
	ResponderValue    float64 `db:"responder_value"`    // REAL, NOT NULL
	NonResponderValue float64 `db:"nonresponder_value"` // REAL, NOT NULL
}

// CellTypeData domain model (maps to the cell_type_data table)
// Pre-aggregated responder/non-responder frequency per (cohort, cell type).
type CellTypeData struct {
	// Primary key
	ID int64 `db:"id"` // INTEGER, PRIMARY KEY

	CohortID int64  `db:"cohort_id"` // INTEGER, NOT NULL, FK to cohorts ON DELETE CASCADE
	CellType string `db:"cell_type"` // TEXT, NOT NULL

	// Frequencies in [0.01, 0.99]
	ResponderFrequency    float64 `db:"responder_frequency"`    // REAL, NOT NULL
	NonResponderFrequency float64 `db:"nonresponder_frequency"` // REAL, NOT NULL
}
