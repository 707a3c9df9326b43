package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validate checks the configuration for structural errors. It does not
// touch the filesystem; missing directories surface when the scan starts.
func Validate(cfg *Config) error {
	if cfg.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive, got %d", cfg.Scan.Workers)
	}

	if cfg.Scan.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Scan.Schedule); err != nil {
			return fmt.Errorf("invalid scan.schedule %q: %w", cfg.Scan.Schedule, err)
		}
	}

	if cfg.Catalog.Watch && cfg.Catalog.Path == "" {
		return fmt.Errorf("catalog.watch requires catalog.path")
	}

	if cfg.Reputation.Endpoint == "" {
		return fmt.Errorf("reputation.endpoint must not be empty")
	}
	if cfg.Reputation.MaxConcurrent <= 0 {
		return fmt.Errorf("reputation.max_concurrent must be positive, got %d",
			cfg.Reputation.MaxConcurrent)
	}
	if cfg.Reputation.RequestsPerMinute < 0 {
		return fmt.Errorf("reputation.requests_per_minute must not be negative, got %d",
			cfg.Reputation.RequestsPerMinute)
	}

	if cfg.Results.Enabled && cfg.Results.Path == "" {
		return fmt.Errorf("results.path must not be empty when the results store is enabled")
	}

	return nil
}
