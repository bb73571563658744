package config

// Default values applied to unset fields.
const (
	DefaultPloidy         = 2
	DefaultMaxHeaderLines = 10000
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// ApplyDefaults fills unset fields with their default values. It never
// overrides a value the file or the environment set explicitly.
func ApplyDefaults(cfg *Config) {
	if cfg.Validator.Ploidy == 0 {
		cfg.Validator.Ploidy = DefaultPloidy
	}
	if cfg.Validator.MaxHeaderLines == 0 {
		cfg.Validator.MaxHeaderLines = DefaultMaxHeaderLines
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// NewDefault returns a configuration with every field at its default.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
