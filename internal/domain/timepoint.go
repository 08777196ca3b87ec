package domain

// Timepoint domain model (maps to the timepoints table)
// Ordered vocabulary entry so chronological sequences render consistently
// regardless of lexical string order ("C1D14" sorts before "C1D1" as text).
type Timepoint struct {
	// Primary key
	TimepointID int64 `db:"timepoint_id"` // INTEGER, PRIMARY KEY

	// Timepoint label, e.g. "Baseline", "C1D1"
	Name string `db:"name"` // TEXT, NOT NULL, UNIQUE

	// Chronological position, 1-based
	SortOrder int `db:"sort_order"` // INTEGER, NOT NULL
}
