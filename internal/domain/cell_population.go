package domain

// CellPopulation domain model (maps to the cell_populations table)
// A named subset of cells within a specimen. For any specimen the
// percentages of its populations sum to 100.0; the generator enforces this
// by giving the last cell type the exact remainder.
type CellPopulation struct {
	// Primary key
	PopulationID int64 `db:"population_id"` // INTEGER, PRIMARY KEY

	// Owning specimen
	SpecimenID int64 `db:"specimen_id"` // INTEGER, NOT NULL, FK to specimens ON DELETE CASCADE

	// Cell type name, e.g. "CD8 T Central Memory"
	CellType string `db:"cell_type"` // TEXT, NOT NULL

	// Absolute count derived from percentage and the specimen total
	CellCount int64 `db:"cell_count"` // INTEGER, NOT NULL, >= 0

	// Share of the specimen in [0, 100]
	Percentage float64 `db:"percentage"` // REAL, NOT NULL
}
