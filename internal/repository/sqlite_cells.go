package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hereisramji/atlas/internal/domain"
)

// SQLiteCellsRepository CellsRepository implementation over the embedded store
type SQLiteCellsRepository struct {
	db *sql.DB
}

// NewSQLiteCellsRepository creates a cells repository
func NewSQLiteCellsRepository(db *sql.DB) *SQLiteCellsRepository {
	return &SQLiteCellsRepository{db: db}
}

var _ CellsRepository = (*SQLiteCellsRepository)(nil)

func (r *SQLiteCellsRepository) ListByPopulation(ctx context.Context, populationID int64) ([]domain.Cell, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cell_id, population_id
		FROM cells
		WHERE population_id = ?
		ORDER BY cell_id`, populationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cells for population %d: %w", populationID, err)
	}
	defer rows.Close()

	cells := []domain.Cell{}
	for rows.Next() {
		var c domain.Cell
		if err := rows.Scan(&c.CellID, &c.PopulationID); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cells: %w", err)
	}
	return cells, nil
}

func (r *SQLiteCellsRepository) ListMarkersByCell(ctx context.Context, cellID int64) ([]domain.CellMarker, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cell_id, marker_id, intensity, positive
		FROM cell_markers
		WHERE cell_id = ?
		ORDER BY marker_id`, cellID)
	if err != nil {
		return nil, fmt.Errorf("failed to list markers for cell %d: %w", cellID, err)
	}
	defer rows.Close()

	measurements := []domain.CellMarker{}
	for rows.Next() {
		var m domain.CellMarker
		if err := rows.Scan(&m.ID, &m.CellID, &m.MarkerID, &m.Intensity, &m.Positive); err != nil {
			return nil, fmt.Errorf("failed to scan cell marker: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cell markers: %w", err)
	}
	return measurements, nil
}

func (r *SQLiteCellsRepository) InsertCells(ctx context.Context, cells []domain.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cells (cell_id, population_id)
		VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cells {
		if _, err := stmt.ExecContext(ctx, c.CellID, c.PopulationID); err != nil {
			return fmt.Errorf("failed to insert cell %d: %w", c.CellID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cells: %w", err)
	}
	return nil
}

func (r *SQLiteCellsRepository) InsertCellMarkers(ctx context.Context, measurements []domain.CellMarker) error {
	if len(measurements) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cell_markers (id, cell_id, marker_id, intensity, positive)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare cell marker insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range measurements {
		if _, err := stmt.ExecContext(ctx, m.ID, m.CellID, m.MarkerID, m.Intensity, m.Positive); err != nil {
			return fmt.Errorf("failed to insert cell marker %d: %w", m.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cell markers: %w", err)
	}
	return nil
}
