package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *KVStore {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "xallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVStore(db)
}

func TestKVStore(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	_, found, err := s.Get(ctx, "xallet:stats:1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "xallet:stats:1", `{"version":2}`))
	require.NoError(t, s.Set(ctx, "xallet:stats:1", `{"version":2,"stats":{}}`))
	require.NoError(t, s.Set(ctx, "xallet:stats:2", `other`))

	v, found, err := s.Get(ctx, "xallet:stats:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"version":2,"stats":{}}`, v)

	v, _, err = s.Get(ctx, "xallet:stats:2")
	require.NoError(t, err)
	assert.Equal(t, "other", v)
}

func TestMigrateIsRepeatable(t *testing.T) {
	s := openTemp(t)
	assert.NoError(t, Migrate(context.Background(), s.db))
}
