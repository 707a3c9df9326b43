// Package config defines and loads the scanner's configuration.
//
// Configuration comes from a YAML file, overlaid with CUSTODIAN_* environment
// variables, and is validated before the engine starts. Nothing in the engine
// reads process-wide constants; every component receives its configuration
// explicitly.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	// Scan contains scan execution settings: what to scan, how wide the
	// worker pool is, and where the report goes.
	Scan ScanConfig `yaml:"scan"`

	// Catalog contains pattern catalog settings.
	Catalog CatalogConfig `yaml:"catalog"`

	// Reputation contains the reputation lookup endpoint settings.
	Reputation ReputationConfig `yaml:"reputation"`

	// Results contains the local results store settings.
	Results ResultsConfig `yaml:"results"`

	// Telemetry contains logging and metrics settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScanConfig contains scan execution settings.
type ScanConfig struct {
	// Directory is the directory whose files are scanned. Required.
	Directory string `yaml:"directory"`

	// Workers bounds how many files are processed concurrently.
	// Default: 4.
	Workers int `yaml:"workers"`

	// Output is the report destination path; "-" or empty writes the
	// report to stdout.
	Output string `yaml:"output"`

	// Schedule is an optional cron expression for repeated scans
	// (e.g. "0 3 * * *" for daily at 3 AM). Empty runs a single scan.
	Schedule string `yaml:"schedule"`
}

// CatalogConfig contains pattern catalog settings.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty uses the built-in catalog.
	Path string `yaml:"path"`

	// Watch reloads the catalog file on change. Requires Path.
	Watch bool `yaml:"watch"`
}

// ReputationConfig contains the reputation lookup endpoint settings.
type ReputationConfig struct {
	// Endpoint is the VirusTotal v3 API base URL.
	Endpoint string `yaml:"endpoint"`

	// APIKey is the x-apikey credential. Usually supplied via the
	// CUSTODIAN_REPUTATION_API_KEY environment variable rather than the
	// file. Empty disables lookups; every verdict resolves to Unknown.
	APIKey string `yaml:"api_key"`

	// Timeout is the per-request timeout. Default: 30s.
	Timeout time.Duration `yaml:"timeout"`

	// MaxConcurrent caps in-flight lookups. Default: 4.
	MaxConcurrent int `yaml:"max_concurrent"`

	// RequestsPerMinute paces lookups to the endpoint's quota.
	// Zero disables pacing.
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// ResultsConfig contains the local results store settings.
type ResultsConfig struct {
	// Enabled turns the store on.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file. Default: "custodian.db".
	Path string `yaml:"path"`
}

// TelemetryConfig contains logging and metrics settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is "debug", "info", "warn", or "error". Default: "info".
	Level string `yaml:"level"`

	// Format is "text" or "json". Default: "text".
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled exposes the /metrics endpoint.
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the metrics endpoint address.
	// Default: "127.0.0.1:9090".
	ListenAddress string `yaml:"listen_address"`
}
