package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGormStore(t *testing.T) *GormStore {
	t.Helper()
	st, err := NewGormStore(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	return st
}

func TestGormStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newGormStore(t)

	data, err := st.Get(ctx, "sectors")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, st.Update(ctx, "sectors", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return []byte(`[{"id":"setor_001"}]`), nil
	}))

	data, err = st.Get(ctx, "sectors")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"setor_001"}]`, string(data))

	// Second update sees the first one's value.
	require.NoError(t, st.Update(ctx, "sectors", func(cur []byte) ([]byte, error) {
		assert.Equal(t, `[{"id":"setor_001"}]`, string(cur))
		return []byte(`[]`), nil
	}))
}

func TestGormStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newGormStore(t)

	require.NoError(t, st.Update(ctx, "tasks", func([]byte) ([]byte, error) {
		return []byte(`[]`), nil
	}))
	require.NoError(t, st.Delete(ctx, "tasks"))
	require.NoError(t, st.Delete(ctx, "tasks"))

	data, err := st.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Nil(t, data)
}

// A genuine write failure must surface as-is, not be mistaken for a
// concurrent insert and looped into ErrConflict.
func TestGormStoreUpdateSurfacesWriteError(t *testing.T) {
	ctx := context.Background()
	st := newGormStore(t)

	sqlDB, err := st.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = st.Update(ctx, "users", func([]byte) ([]byte, error) {
		return []byte(`[]`), nil
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
}
