package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// academy-client application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// API holds settings for the outbound HTTP transport: base URL,
	// timeouts, and retry policy.
	API API `envPrefix:"API_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs such as the
	// session keepalive loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// API holds network and retry settings for the outbound transport layer.
type API struct {
	// BaseURL is the full origin of the Academy API (e.g.
	// "https://academy.example.com"). When empty, the origin is resolved
	// from DevHost at startup.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// DevHost is the hostname the client considers itself running on.
	// Loopback hosts resolve to the local development origin; anything
	// else resolves to the production origin.
	// Env: API_DEV_HOST
	DevHost string `env:"DEV_HOST"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryAttempts is the number of additional attempts made after the
	// first failed request when retrying is enabled.
	// Env: API_RETRY_ATTEMPTS
	RetryAttempts uint64 `env:"RETRY_ATTEMPTS"`

	// RetryBaseDelay is the delay before the first retry; each subsequent
	// retry doubles it (e.g. "1s" gives 1s, 2s, 4s).
	// Env: API_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Storage groups the configuration for the client's persistence backends.
type Storage struct {
	// DB holds the local session database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite connection string
	// (e.g. "academy-client.db" or "file:academy.db?cache=shared").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// KeepaliveInterval defines how often the session keepalive job
	// re-validates the stored session against the server.
	// Env: WORKERS_KEEPALIVE_INTERVAL
	KeepaliveInterval time.Duration `env:"KEEPALIVE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
