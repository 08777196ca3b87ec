package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements defines the entity tables, parent-first so foreign keys
// resolve. Deleting a cohort cascades down to patients, specimens,
// populations, cells and their marker measurements.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS cohorts (
		cohort_id          INTEGER PRIMARY KEY,
		indication         TEXT    NOT NULL,
		disease_type       TEXT    NOT NULL,
		specimens_count    INTEGER NOT NULL,
		patients_count     INTEGER NOT NULL,
		analyzed_specimens INTEGER NOT NULL,
		cells_phenotyped   INTEGER NOT NULL,
		treatment          TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		patient_id INTEGER PRIMARY KEY,
		cohort_id  INTEGER NOT NULL REFERENCES cohorts(cohort_id) ON DELETE CASCADE,
		responder  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS specimens (
		specimen_id   INTEGER PRIMARY KEY,
		patient_id    INTEGER NOT NULL REFERENCES patients(patient_id) ON DELETE CASCADE,
		accession     TEXT    NOT NULL UNIQUE,
		timepoint     TEXT    NOT NULL,
		specimen_type TEXT    NOT NULL,
		drug_class    TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS cell_populations (
		population_id INTEGER PRIMARY KEY,
		specimen_id   INTEGER NOT NULL REFERENCES specimens(specimen_id) ON DELETE CASCADE,
		cell_type     TEXT    NOT NULL,
		cell_count    INTEGER NOT NULL,
		percentage    REAL    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cells (
		cell_id       INTEGER PRIMARY KEY,
		population_id INTEGER NOT NULL REFERENCES cell_populations(population_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS markers (
		marker_id   INTEGER PRIMARY KEY,
		name        TEXT    NOT NULL UNIQUE,
		category    TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS cell_markers (
		id        INTEGER PRIMARY KEY,
		cell_id   INTEGER NOT NULL REFERENCES cells(cell_id) ON DELETE CASCADE,
		marker_id INTEGER NOT NULL REFERENCES markers(marker_id) ON DELETE CASCADE,
		intensity REAL    NOT NULL,
		positive  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS timepoints (
		timepoint_id INTEGER PRIMARY KEY,
		name         TEXT    NOT NULL UNIQUE,
		sort_order   INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS marker_data (
		id                 INTEGER PRIMARY KEY,
		cohort_id          INTEGER NOT NULL REFERENCES cohorts(cohort_id) ON DELETE CASCADE,
		marker_id          INTEGER NOT NULL REFERENCES markers(marker_id) ON DELETE CASCADE,
		timepoint_id       INTEGER NOT NULL REFERENCES timepoints(timepoint_id) ON DELETE CASCADE,
		responder_value    REAL    NOT NULL,
		nonresponder_value REAL    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cell_type_data (
		id                     INTEGER PRIMARY KEY,
		cohort_id              INTEGER NOT NULL REFERENCES cohorts(cohort_id) ON DELETE CASCADE,
		cell_type              TEXT    NOT NULL,
		responder_frequency    REAL    NOT NULL,
		nonresponder_frequency REAL    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_cohort ON patients(cohort_id)`,
	`CREATE INDEX IF NOT EXISTS idx_specimens_patient ON specimens(patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_populations_specimen ON cell_populations(specimen_id)`,
	`CREATE INDEX IF NOT EXISTS idx_populations_cell_type ON cell_populations(cell_type)`,
	`CREATE INDEX IF NOT EXISTS idx_cells_population ON cells(population_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cell_markers_cell ON cell_markers(cell_id)`,
	`CREATE INDEX IF NOT EXISTS idx_marker_data_cohort ON marker_data(cohort_id, marker_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cell_type_data_cohort ON cell_type_data(cohort_id)`,
}

// tableNames in child-first order for Reset.
var tableNames = []string{
	"cell_markers",
	"cells",
	"cell_populations",
	"specimens",
	"patients",
	"marker_data",
	"cell_type_data",
	"markers",
	"timepoints",
	"cohorts",
}

// EnsureSchema idempotently creates the backing schema. Safe to call on
// every process start and from the query-layer recovery path.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Reset drops all entity tables and recreates the schema, leaving an empty
// store. This is the only way entities are destroyed.
func Reset(ctx context.Context, db *sql.DB) error {
	for _, name := range tableNames {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", name, err)
		}
	}
	return EnsureSchema(ctx, db)
}
