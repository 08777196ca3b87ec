package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open creates a connection to the embedded SQLite store at path.
// Foreign keys are enabled per connection so cascade deletes work; the busy
// timeout covers the single-writer seeding transaction.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One interactive session owns one connection for its lifetime.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close closes the store connection.
func Close(db *sql.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// IsEmpty reports whether the store holds zero cohorts. Used as the seeding
// trigger so repeated startup never duplicates data.
func IsEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cohorts").Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count cohorts: %w", err)
	}
	return n == 0, nil
}
