package domain

import "database/sql"

// Specimen domain model (maps to the specimens table)
// A biological sample taken from one patient at one timepoint.
type Specimen struct {
	// Primary key
	SpecimenID int64 `db:"specimen_id"` // INTEGER, PRIMARY KEY

	// Owning patient
	PatientID int64 `db:"patient_id"` // INTEGER, NOT NULL, FK to patients ON DELETE CASCADE

	// Lab accession code (UUID)
	Accession string `db:"accession"` // TEXT, NOT NULL, UNIQUE

	// Collection timepoint, from the fixed vocabulary in the timepoints table
	Timepoint string `db:"timepoint"` // TEXT, NOT NULL

	// Sample origin
	SpecimenType string `db:"specimen_type"` // TEXT, NOT NULL ('Blood'/'Tumor')

	// Drug class at collection time (nullable)
	DrugClass sql.NullString `db:"drug_class"` // TEXT, nullable ('TCR'/'PD-1')
}

// Specimen type values
const (
	SpecimenTypeBlood = "Blood"
	SpecimenTypeTumor = "Tumor"
)
