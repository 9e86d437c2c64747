package store

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingKey(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	data, err := st.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStoreUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	err = st.Update(ctx, KeySectors, func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return []byte(`[{"id":"a"}]`), nil
	})
	require.NoError(t, err)

	data, err := st.Get(ctx, KeySectors)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(data))
}

func TestFileStoreUpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Update(ctx, KeyTasks, func([]byte) ([]byte, error) {
		return []byte("v1"), nil
	}))

	wantErr := assert.AnError
	err = st.Update(ctx, KeyTasks, func([]byte) ([]byte, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	data, err := st.Get(ctx, KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

// Concurrent increments through Update must all land: the per-key lock
// closes the read-modify-write lost-update window.
func TestFileStoreConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.Update(ctx, "counter", func(current []byte) ([]byte, error) {
				n := 0
				if current != nil {
					var convErr error
					n, convErr = strconv.Atoi(string(current))
					if convErr != nil {
						return nil, convErr
					}
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := st.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(writers), string(data))
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Update(ctx, KeyCurrentUserID, func([]byte) ([]byte, error) {
		return []byte("user_001"), nil
	}))
	require.NoError(t, st.Delete(ctx, KeyCurrentUserID))
	require.NoError(t, st.Delete(ctx, KeyCurrentUserID))

	data, err := st.Get(ctx, KeyCurrentUserID)
	require.NoError(t, err)
	assert.Nil(t, data)
}
