package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLiteMarkersRepository MarkersRepository implementation over the embedded store
type SQLiteMarkersRepository struct {
	db *sql.DB
}

// NewSQLiteMarkersRepository creates a markers repository
func NewSQLiteMarkersRepository(db *sql.DB) *SQLiteMarkersRepository {
	return &SQLiteMarkersRepository{db: db}
}

var _ MarkersRepository = (*SQLiteMarkersRepository)(nil)

func (r *SQLiteMarkersRepository) ListMarkers(ctx context.Context) ([]domain.Marker, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT marker_id, name, category, description
		FROM markers
		ORDER BY marker_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list markers: %w", err)
	}
	defer rows.Close()

	markers := []domain.Marker{}
	for rows.Next() {
		var m domain.Marker
		if err := rows.Scan(&m.MarkerID, &m.Name, &m.Category, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan marker: %w", err)
		}
		markers = append(markers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate markers: %w", err)
	}
	return markers, nil
}

func (r *SQLiteMarkersRepository) GetMarkerByName(ctx context.Context, name string) (*domain.Marker, error) {
	var m domain.Marker
	err := r.db.QueryRowContext(ctx, `
		SELECT marker_id, name, category, description
		FROM markers
		WHERE name = ?`, name).Scan(&m.MarkerID, &m.Name, &m.Category, &m.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get marker %q: %w", name, err)
	}
	return &m, nil
}

func (r *SQLiteMarkersRepository) InsertMarkers(ctx context.Context, markers []domain.Marker) error {
	if len(markers) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO markers (marker_id, name, category, description)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare marker insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range markers {
		if _, err := stmt.ExecContext(ctx, m.MarkerID, m.Name, m.Category, m.Description); err != nil {
			return fmt.Errorf("failed to insert marker %q: %w", m.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit markers: %w", err)
	}
	return nil
}

// SQLiteTimepointsRepository TimepointsRepository implementation over the embedded store
type SQLiteTimepointsRepository struct {
	db *sql.DB
}

// NewSQLiteTimepointsRepository creates a timepoints repository
func NewSQLiteTimepointsRepository(db *sql.DB) *SQLiteTimepointsRepository {
	return &SQLiteTimepointsRepository{db: db}
}

var _ TimepointsRepository = (*SQLiteTimepointsRepository)(nil)

func (r *SQLiteTimepointsRepository) ListTimepoints(ctx context.Context) ([]domain.Timepoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT timepoint_id, name, sort_order
		FROM timepoints
		ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list timepoints: %w", err)
	}
	defer rows.Close()

	timepoints := []domain.Timepoint{}
	for rows.Next() {
		var tp domain.Timepoint
		if err := rows.Scan(&tp.TimepointID, &tp.Name, &tp.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan timepoint: %w", err)
		}
		timepoints = append(timepoints, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timepoints: %w", err)
	}
	return timepoints, nil
}

func (r *SQLiteTimepointsRepository) InsertTimepoints(ctx context.Context, timepoints []domain.Timepoint) error {
	if len(timepoints) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO timepoints (timepoint_id, name, sort_order)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare timepoint insert: %w", err)
	}
	defer stmt.Close()

	for _, tp := range timepoints {
		if _, err := stmt.ExecContext(ctx, tp.TimepointID, tp.Name, tp.SortOrder); err != nil {
			return fmt.Errorf("failed to insert timepoint %q: %w", tp.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit timepoints: %w", err)
	}
	return nil
}

// SQLiteAggregatesRepository AggregatesRepository implementation over the embedded store
type SQLiteAggregatesRepository struct {
	db *sql.DB
}

// NewSQLiteAggregatesRepository creates an aggregates repository
func NewSQLiteAggregatesRepository(db *sql.DB) *SQLiteAggregatesRepository {
	return &SQLiteAggregatesRepository{db: db}
}

var _ AggregatesRepository = (*SQLiteAggregatesRepository)(nil)

func (r *SQLiteAggregatesRepository) InsertMarkerData(ctx context.Context, data []domain.MarkerData) error {
	if len(data) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO marker_data (id, cohort_id, marker_id, timepoint_id, responder_value, nonresponder_value)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare marker data insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range data {
		if _, err := stmt.ExecContext(ctx,
			d.ID, d.CohortID, d.MarkerID, d.TimepointID, d.ResponderValue, d.NonResponderValue,
		); err != nil {
			return fmt.Errorf("failed to insert marker data %d: %w", d.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit marker data: %w", err)
	}
	return nil
}

func (r *SQLiteAggregatesRepository) InsertCellTypeData(ctx context.Context, data []domain.CellTypeData) error {
	if len(data) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cell_type_data (id, cohort_id, cell_type, responder_frequency, nonresponder_frequency)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare cell type data insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range data {
		if _, err := stmt.ExecContext(ctx,
			d.ID, d.CohortID, d.CellType, d.ResponderFrequency, d.NonResponderFrequency,
		); err != nil {
			return fmt.Errorf("failed to insert cell type data %d: %w", d.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cell type data: %w", err)
	}
	return nil
}
