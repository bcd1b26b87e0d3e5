package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.ParseDuration (string, e.g. "30s").
	jsonBody := `{
		"app": { "version": "1.2.3" },
		"api": {
			"base_url": "https://academy.example.com",
			"dev_host": "localhost",
			"request_timeout": "30s",
			"retry_attempts": 4,
			"retry_base_delay": "1s"
		},
		"storage": {
			"db": { "dsn": "academy.db" }
		},
		"workers": { "keepalive_interval": "5m" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://academy.example.com", cfg.API.BaseURL)
	assert.Equal(t, "localhost", cfg.API.DevHost)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, uint64(4), cfg.API.RetryAttempts)
	assert.Equal(t, time.Second, cfg.API.RetryBaseDelay)
	assert.Equal(t, "academy.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.KeepaliveInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/nonexistent/config.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_Malformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
