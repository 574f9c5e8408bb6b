package config

import "fmt"

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks the configuration for inconsistencies.
func Validate(cfg *Config) error {
	if cfg.Files.Target == "" {
		return fmt.Errorf("files.target must not be empty")
	}
	if cfg.Files.Sample == "" {
		return fmt.Errorf("files.sample must not be empty")
	}
	if cfg.Files.Target == cfg.Files.Sample {
		return fmt.Errorf("files.target and files.sample must name different files")
	}

	if cfg.History.Enabled && cfg.History.Path == "" {
		return fmt.Errorf("history.path must be set when history.enabled is true")
	}

	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}

	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format %q is not one of text, json", cfg.Logging.Format)
	}

	return nil
}
