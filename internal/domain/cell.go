package domain

// Cell domain model (maps to the cells table)
// Individual cell record under a population. Only present when the store is
// seeded in the extended per-cell variant, capped at a fixed sample size per
// population to keep the file tractable.
type Cell struct {
	// Primary key
	CellID int64 `db:"cell_id"` // INTEGER, PRIMARY KEY

	// Owning population
	PopulationID int64 `db:"population_id"` // INTEGER, NOT NULL, FK to cell_populations ON DELETE CASCADE
}

// CellMarker domain model (maps to the cell_markers table)
// One marker measurement on one cell.
type CellMarker struct {
	// Primary key
	ID int64 `db:"id"` // INTEGER, PRIMARY KEY

	// Measured cell
	CellID int64 `db:"cell_id"` // INTEGER, NOT NULL, FK to cells ON DELETE CASCADE

	// Measured marker
	MarkerID int64 `db:"marker_id"` // INTEGER, NOT NULL, FK to markers ON DELETE CASCADE

	// Fluorescence-style intensity value
	Intensity float64 `db:"intensity"` // REAL, NOT NULL

	// Gated positivity call matching the intensity range
	Positive bool `db:"positive"` // INTEGER (0/1), NOT NULL
}
