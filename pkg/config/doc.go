// Package config loads and validates Ganymede's runtime configuration.
//
// Configuration is YAML-based. Loading follows a fixed sequence: read the
// file, apply defaults, apply GANYMEDE_* environment variable overrides,
// validate. Environment variables always win over file values.
package config
