package config

import "fmt"

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks a configuration for invalid values. It is called after
// defaults are applied, so zero values only appear when set explicitly.
func Validate(cfg *Config) error {
	if cfg.Validator.Ploidy == 0 {
		return fmt.Errorf("validator.ploidy must be positive")
	}
	if cfg.Validator.MaxHeaderLines <= 0 {
		return fmt.Errorf("validator.max_header_lines must be positive")
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format %q is not one of text, json", cfg.Logging.Format)
	}
	return nil
}
