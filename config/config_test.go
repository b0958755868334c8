package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROOMSTAY_BASE_URL", "")
	t.Setenv("ROOMSTAY_API_KEY", "key-123")
	t.Setenv("ROOMSTAY_DATA_DIR", "/tmp/roomstay-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "/tmp/roomstay-test", cfg.DataDir)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("ROOMSTAY_API_KEY", "")
	_, err := Load()
	assert.ErrorContains(t, err, "ROOMSTAY_API_KEY")
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("ROOMSTAY_BASE_URL", "not-absolute")
	t.Setenv("ROOMSTAY_API_KEY", "key-123")
	_, err := Load()
	assert.ErrorContains(t, err, "ROOMSTAY_BASE_URL")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROOMSTAY_BASE_URL", "http://localhost:8080/api")
	t.Setenv("ROOMSTAY_API_KEY", "key-123")
	t.Setenv("ROOMSTAY_DATA_DIR", "/srv/data")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
	assert.Equal(t, "/srv/data", cfg.DataDir)
}
