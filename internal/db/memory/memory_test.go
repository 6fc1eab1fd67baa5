package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))
	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", v)
}

func TestKVStoreConcurrent(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = s.Set(ctx, key, "x")
			_, _, _ = s.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, found, _ := s.Get(ctx, fmt.Sprintf("k%d", i))
		assert.True(t, found)
	}
}
