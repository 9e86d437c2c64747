package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb)
}

func TestRedisStoreMissingKey(t *testing.T) {
	st := newRedisStore(t)

	data, err := st.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisStoreUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newRedisStore(t)

	err := st.Update(ctx, KeyUsers, func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return []byte(`[{"id":"admin_001"}]`), nil
	})
	require.NoError(t, err)

	data, err := st.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"admin_001"}]`, string(data))

	// Second update sees the previous value.
	err = st.Update(ctx, KeyUsers, func(current []byte) ([]byte, error) {
		assert.JSONEq(t, `[{"id":"admin_001"}]`, string(current))
		return []byte(`[]`), nil
	})
	require.NoError(t, err)
}

func TestRedisStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := newRedisStore(t)

	require.NoError(t, st.Update(ctx, KeyCurrentUserID, func([]byte) ([]byte, error) {
		return []byte("admin_001"), nil
	}))
	require.NoError(t, st.Delete(ctx, KeyCurrentUserID))

	data, err := st.Get(ctx, KeyCurrentUserID)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisStoreKeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	st := NewRedisStore(rdb)

	require.NoError(t, st.Update(ctx, KeySectors, func([]byte) ([]byte, error) {
		return []byte(`[]`), nil
	}))
	assert.True(t, mr.Exists("cantina:sectors"))
}
