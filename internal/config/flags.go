package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-base-url full API origin (e.g. "https://academy.example.com")
//	-dev-host hostname used for origin resolution when -base-url is empty
//	-d local session database DSN
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retry-attempts number of retries after the first failed request
//	-retry-base-delay delay before the first retry (doubles each retry)
//	-keepalive-interval how often the session keepalive job runs
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var baseURL string
	var devHost string
	var databaseDSN string
	var requestTimeout time.Duration
	var retryAttempts uint64
	var retryBaseDelay time.Duration
	var keepaliveInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&baseURL, "base-url", "", "Full API origin")
	fs.StringVar(&devHost, "dev-host", "", "Hostname used for origin resolution")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Uint64Var(&retryAttempts, "retry-attempts", 0, "Retries after the first failed request")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "Delay before the first retry")
	fs.DurationVar(&keepaliveInterval, "keepalive-interval", 0, "Session keepalive interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.Parse(args)

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			DevHost:        devHost,
			RequestTimeout: requestTimeout,
			RetryAttempts:  retryAttempts,
			RetryBaseDelay: retryBaseDelay,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			KeepaliveInterval: keepaliveInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
