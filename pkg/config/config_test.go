package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleops/lux-inventory/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "data/inventory.json", cfg.Storage.Path)
	assert.Equal(t, "W1", cfg.Inventory.DefaultWarehouse)
	assert.Equal(t, "W2", cfg.Inventory.TransferWarehouse)
	assert.True(t, cfg.Inventory.AllowNegativeStock)
}

// El driver sqlite tiene su propia ruta por defecto: una base .db, no el
// archivo .json del driver file.
func TestLoad_SQLiteConSuPropiaRuta(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "data/inventory.db", cfg.Storage.Path)
}

// Una ruta explícita manda sobre el default del driver.
func TestLoad_RutaExplicita(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_PATH", "/var/lib/lux/inventario.db")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/lux/inventario.db", cfg.Storage.Path)
}
