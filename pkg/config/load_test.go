package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
validator:
  fail_fast: true
  ploidy: 1
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !cfg.Validator.FailFast {
		t.Error("fail_fast should be true")
	}
	if cfg.Validator.Ploidy != 1 {
		t.Errorf("ploidy = %d, want 1", cfg.Validator.Ploidy)
	}
	// Unset fields fall back to defaults.
	if cfg.Validator.MaxHeaderLines != DefaultMaxHeaderLines {
		t.Errorf("max_header_lines = %d, want default %d", cfg.Validator.MaxHeaderLines, DefaultMaxHeaderLines)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != DefaultLogFormat {
		t.Errorf("logging.format = %q, want default %q", cfg.Logging.Format, DefaultLogFormat)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "validator: [not a mapping")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: loud\n")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a validation error")
		}
	})

	t.Run("invalid max header lines", func(t *testing.T) {
		path := writeConfig(t, "validator:\n  max_header_lines: -1\n")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected a validation error")
		}
	})
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
validator:
  fail_fast: false
  ploidy: 2
`)

	t.Setenv("GANYMEDE_VALIDATOR_FAIL_FAST", "true")
	t.Setenv("GANYMEDE_VALIDATOR_PLOIDY", "3")
	t.Setenv("GANYMEDE_LOGGING_FORMAT", "json")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if !cfg.Validator.FailFast {
		t.Error("environment must override fail_fast")
	}
	if cfg.Validator.Ploidy != 3 {
		t.Errorf("ploidy = %d, want 3", cfg.Validator.Ploidy)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging.format = %q, want json", cfg.Logging.Format)
	}
}

func TestEnvOverridesAreValidated(t *testing.T) {
	path := writeConfig(t, "")

	t.Setenv("GANYMEDE_LOGGING_LEVEL", "shout")

	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Error("invalid override should fail validation")
	}
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if err := Validate(cfg); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
	if cfg.Validator.Ploidy != DefaultPloidy {
		t.Errorf("ploidy = %d, want %d", cfg.Validator.Ploidy, DefaultPloidy)
	}
}
