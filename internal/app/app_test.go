package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyuu2025-stack/xallet/internal/config"
	"github.com/skyuu2025-stack/xallet/internal/features/assistant"
)

func TestOpenStoreBackends(t *testing.T) {
	ctx := context.Background()

	a := &App{}
	store, err := a.openStore(ctx, &config.Config{StoreBackend: config.StoreMemory})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))

	store, err = a.openStore(ctx, &config.Config{
		StoreBackend: config.StoreSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "x.db"),
	})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	v, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
	a.Close()

	_, err = a.openStore(ctx, &config.Config{StoreBackend: "redis"})
	assert.Error(t, err)
}

func TestCollaboratorDisabledWithoutKey(t *testing.T) {
	ai, err := newCollaborator(context.Background(), &config.Config{FeatureAssistantEnabled: true})
	require.NoError(t, err)
	assert.IsType(t, assistant.Disabled{}, ai)
}
