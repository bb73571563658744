package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates the result. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies GANYMEDE_* environment variable overrides on top. The sequence
// is: file, defaults, environment, validation.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides. Variables use
// the format GANYMEDE_SECTION_FIELD; malformed values are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("GANYMEDE_VALIDATOR_FAIL_FAST"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Validator.FailFast = b
		}
	}
	if val := os.Getenv("GANYMEDE_VALIDATOR_PLOIDY"); val != "" {
		if n, err := strconv.ParseUint(val, 10, 32); err == nil {
			cfg.Validator.Ploidy = uint(n)
		}
	}
	if val := os.Getenv("GANYMEDE_VALIDATOR_MAX_HEADER_LINES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Validator.MaxHeaderLines = n
		}
	}
	if val := os.Getenv("GANYMEDE_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("GANYMEDE_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
}
