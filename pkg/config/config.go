package config

// Config is the root configuration structure for Ganymede.
type Config struct {
	// Validator contains settings for header validation.
	Validator ValidatorConfig `yaml:"validator"`

	// Logging contains settings for the structured logger.
	Logging LoggingConfig `yaml:"logging"`
}

// ValidatorConfig contains settings for header validation.
type ValidatorConfig struct {
	// FailFast stops validation of a document at the first violation
	// instead of collecting every violation in the header.
	// Default: false
	FailFast bool `yaml:"fail_fast"`

	// Ploidy is the declared ploidy assumed per sample.
	// Default: 2
	Ploidy uint `yaml:"ploidy"`

	// MaxHeaderLines caps the number of header lines read per document
	// before the input is rejected as malformed.
	// Default: 10000
	MaxHeaderLines int `yaml:"max_header_lines"`
}

// LoggingConfig contains settings for the structured logger.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}
