package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "ar", cfg.DefaultLocale)
	assert.Equal(t, 5*time.Minute, cfg.SnapshotTTL)
	assert.Equal(t, "data/products.json", cfg.ProductsFile)
	assert.True(t, cfg.DevMode())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_ENV", "production")
	t.Setenv("STOREFRONT_ADDR", ":9000")
	t.Setenv("STOREFRONT_API_BASE_URL", "https://api.example.test")
	t.Setenv("STOREFRONT_SNAPSHOT_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "https://api.example.test", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.SnapshotTTL)
	assert.False(t, cfg.DevMode())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("STOREFRONT_SNAPSHOT_TTL", "not-a-duration")
	_, err := Load()
	assert.Error(t, err)
}
