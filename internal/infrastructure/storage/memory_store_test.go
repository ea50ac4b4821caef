package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleops/lux-inventory/internal/domain"
	"github.com/galleops/lux-inventory/internal/infrastructure/storage"
)

func TestMemoryStore(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSnapshot)

	require.NoError(t, store.Save(ctx, []byte(`{"v":1}`)))
	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), data)

	// Cada escritura reemplaza el blob completo
	require.NoError(t, store.Save(ctx, []byte(`{"v":2}`)))
	data, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), data)
}
