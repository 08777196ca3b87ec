package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db))

	empty, err := IsEmpty(ctx, db)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestIsEmpty_FailsWithoutSchema(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = IsEmpty(context.Background(), db)
	assert.Error(t, err)
}

func TestReset_LeavesEmptyStore(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))

	_, err = db.ExecContext(ctx, `
		INSERT INTO cohorts (cohort_id, indication, disease_type, specimens_count,
			patients_count, analyzed_specimens, cells_phenotyped, treatment)
		VALUES (1, 'Melanoma', 'Cancer', 1, 1, 1, 1000, 'TIL Therapy')`)
	require.NoError(t, err)

	empty, err := IsEmpty(ctx, db)
	require.NoError(t, err)
	require.False(t, empty)

	require.NoError(t, Reset(ctx, db))

	empty, err = IsEmpty(ctx, db)
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestReset_RecreatesFromNothing(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	// Reset on a store with no tables at all is the recovery path.
	require.NoError(t, Reset(context.Background(), db))

	empty, err := IsEmpty(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, empty)
}
