package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; cross-source rules live on the client view
// where defaults have already been applied.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryBaseDelay <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.KeepaliveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
