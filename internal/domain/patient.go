package domain

// Patient domain model (maps to the patients table)
// Belongs to exactly one cohort. The responder flag is assigned once at
// creation and never mutated afterwards.
type Patient struct {
	// Primary key
	PatientID int64 `db:"patient_id"` // INTEGER, PRIMARY KEY

	// Owning cohort
	CohortID int64 `db:"cohort_id"` // INTEGER, NOT NULL, FK to cohorts ON DELETE CASCADE

	// Clinical response to treatment
	Responder bool `db:"responder"` // INTEGER (0/1), NOT NULL
}

// Display labels for the responder flag, used by grouped query results.
const (
	ResponderLabel    = "Responder"
	NonResponderLabel = "Non-Responder"
)

// ResponderStatus returns the display label for a responder flag.
func ResponderStatus(responder bool) string {
	if responder {
		return ResponderLabel
	}
	return NonResponderLabel
}
