package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000/", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "metric", cfg.Weather.Units)
	assert.Equal(t, "smart-closet-items", cfg.Storage.BucketName)
	assert.Equal(t, "items", cfg.Storage.KeyPrefix)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CLOSET_BASE_URL", "https://closet.example.com/")
	t.Setenv("CLOSET_HTTP_TIMEOUT", "5s")
	t.Setenv("WEATHER_API_KEY", "test-key")
	t.Setenv("AWS_BUCKET_NAME", "closet-staging")
	t.Setenv("CLOSET_DEFAULT_LAT", "35.6762")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://closet.example.com/", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "test-key", cfg.Weather.APIKey)
	assert.Equal(t, "closet-staging", cfg.Storage.BucketName)
	assert.InDelta(t, 35.6762, cfg.DefaultLatitude, 0.0001)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("CLOSET_HTTP_TIMEOUT", "not-a-duration")

	_, err := LoadConfig()
	assert.Error(t, err)
}
