package config

import "time"

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Scan.Workers <= 0 {
		cfg.Scan.Workers = 4
	}

	if cfg.Reputation.Endpoint == "" {
		cfg.Reputation.Endpoint = "https://www.virustotal.com/api/v3"
	}
	if cfg.Reputation.Timeout <= 0 {
		cfg.Reputation.Timeout = 30 * time.Second
	}
	if cfg.Reputation.MaxConcurrent <= 0 {
		cfg.Reputation.MaxConcurrent = 4
	}

	if cfg.Results.Path == "" {
		cfg.Results.Path = "custodian.db"
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "text"
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = "127.0.0.1:9090"
	}
}
