package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a field is absent from every
// configuration source.
const (
	DefaultDSN               = "academy-client.db"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRetryAttempts     = 3
	DefaultRetryBaseDelay    = time.Second
	DefaultKeepaliveInterval = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the full API origin; empty means resolve from DevHost.
	BaseURL string
	// DevHost is the hostname used for origin resolution.
	DevHost string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryAttempts is the number of retries after the first failed request.
	RetryAttempts uint64
	// RetryBaseDelay is the delay before the first retry.
	RetryBaseDelay time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// KeepaliveInterval defines how often the session keepalive job runs.
	KeepaliveInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for anything left unset,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.API.BaseURL,
			DevHost:        cfg.API.DevHost,
			RequestTimeout: cfg.API.RequestTimeout,
			RetryAttempts:  cfg.API.RetryAttempts,
			RetryBaseDelay: cfg.API.RetryBaseDelay,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{KeepaliveInterval: cfg.Workers.KeepaliveInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RetryAttempts == 0 {
		cfg.Adapter.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.Adapter.RetryBaseDelay == 0 {
		cfg.Adapter.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.Workers.KeepaliveInterval == 0 {
		cfg.Workers.KeepaliveInterval = DefaultKeepaliveInterval
	}
}
