package domain

// Cohort domain model (maps to the cohorts table)
// A named group of patients sharing an indication and treatment context.
type Cohort struct {
	// Primary key
	CohortID int64 `db:"cohort_id"` // INTEGER, PRIMARY KEY

	// Disease name, e.g. "Melanoma", "NSCLC"
	Indication string `db:"indication"` // TEXT, NOT NULL

	// Disease class
	DiseaseType string `db:"disease_type"` // TEXT, NOT NULL ('Cancer'/'Autoimmune')

	// Declared cohort size metadata (from the study design, not derived)
	SpecimensCount    int   `db:"specimens_count"`    // INTEGER, NOT NULL
	PatientsCount     int   `db:"patients_count"`     // INTEGER, NOT NULL
	AnalyzedSpecimens int   `db:"analyzed_specimens"` // INTEGER, NOT NULL
	CellsPhenotyped   int64 `db:"cells_phenotyped"`   // INTEGER, NOT NULL

	// Treatment label, e.g. "Anti-PD-1 (Pembrolizumab)"
	Treatment string `db:"treatment"` // TEXT, NOT NULL
}

// Disease type values
const (
	DiseaseTypeCancer     = "Cancer"
	DiseaseTypeAutoimmune = "Autoimmune"
)
