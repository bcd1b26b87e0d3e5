package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// Earlier sources win for non-zero fields; later sources fill the gaps.
	first := &StructuredConfig{
		API: API{BaseURL: "https://env.example.com"},
	}
	second := &StructuredConfig{
		API:     API{BaseURL: "https://flags.example.com", RequestTimeout: 30 * time.Second},
		Storage: Storage{DB: DB{DSN: "academy.db"}},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "academy.db", cfg.Storage.DB.DSN)
}

func TestConfigBuilder_WithEnvAndJSON(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_BASE_URL": "https://academy.example.com",
	})

	cfg, err := newConfigBuilder().withEnv().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "https://academy.example.com", cfg.API.BaseURL)
}

func TestConfigBuilder_WithJSON_MissingFile(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/nonexistent/config.json",
	})

	cfg, err := newConfigBuilder().withEnv().withJSON().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
}
