package config

import "time"

// Config is the root configuration for the envguard tool.
type Config struct {
	Files   FilesConfig   `yaml:"files"`
	History HistoryConfig `yaml:"history"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// FilesConfig names the files checked when no positional arguments are given.
type FilesConfig struct {
	// Target is the file being validated (usually .env).
	Target string `yaml:"target"`

	// Sample is the reference file the target is validated against.
	Sample string `yaml:"sample"`
}

// HistoryConfig controls recording of check runs.
type HistoryConfig struct {
	// Enabled turns on run recording.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file holding recorded runs.
	Path string `yaml:"path"`
}

// WatchConfig controls continuous validation mode.
type WatchConfig struct {
	// Debounce is the quiet period after a file event before re-checking.
	Debounce time.Duration `yaml:"debounce"`

	// Schedule is an optional cron expression for periodic re-checks.
	Schedule string `yaml:"schedule"`

	// MetricsAddress, when set, serves Prometheus metrics on this address
	// while watching (e.g. ":9090").
	MetricsAddress string `yaml:"metrics_address"`
}

// LoggingConfig controls structured logging in watch mode.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the log output format ("text", "json").
	Format string `yaml:"format"`
}
