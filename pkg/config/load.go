package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file, applies defaults and
// CUSTODIAN_* environment overrides, and validates the result.
// An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides applies CUSTODIAN_SECTION_FIELD environment variables.
// Environment always wins over the file.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CUSTODIAN_SCAN_DIRECTORY"); val != "" {
		cfg.Scan.Directory = val
	}
	if val := os.Getenv("CUSTODIAN_SCAN_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Scan.Workers = i
		}
	}
	if val := os.Getenv("CUSTODIAN_SCAN_OUTPUT"); val != "" {
		cfg.Scan.Output = val
	}
	if val := os.Getenv("CUSTODIAN_SCAN_SCHEDULE"); val != "" {
		cfg.Scan.Schedule = val
	}

	if val := os.Getenv("CUSTODIAN_CATALOG_PATH"); val != "" {
		cfg.Catalog.Path = val
	}

	if val := os.Getenv("CUSTODIAN_REPUTATION_ENDPOINT"); val != "" {
		cfg.Reputation.Endpoint = val
	}
	if val := os.Getenv("CUSTODIAN_REPUTATION_API_KEY"); val != "" {
		cfg.Reputation.APIKey = val
	}
	if val := os.Getenv("CUSTODIAN_REPUTATION_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Reputation.Timeout = d
		}
	}
	if val := os.Getenv("CUSTODIAN_REPUTATION_MAX_CONCURRENT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Reputation.MaxConcurrent = i
		}
	}
	if val := os.Getenv("CUSTODIAN_REPUTATION_REQUESTS_PER_MINUTE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Reputation.RequestsPerMinute = i
		}
	}

	if val := os.Getenv("CUSTODIAN_RESULTS_PATH"); val != "" {
		cfg.Results.Path = val
	}

	if val := os.Getenv("CUSTODIAN_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("CUSTODIAN_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
}
