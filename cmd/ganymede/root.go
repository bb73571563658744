package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"helix-hq/ganymede/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// cfg is the loaded runtime configuration, populated before any
	// subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ganymede",
	Short: "Ganymede - VCF meta-information validator",
	Long: `Ganymede validates the meta-information section of VCF files.

It checks each header line's structure and content against the VCF
specification: required keys per meta section, Number and Type field
grammars, structural-variant ALT ID prefixes, and the reserved INFO tag
definitions whose Number/Type pair is fixed by the specification.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and installs the logger before any
// subcommand runs. Without --config, built-in defaults apply.
func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		loaded, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.NewDefault()
	}

	setupLogging(cfg)
	return nil
}

// setupLogging installs the process-wide slog logger according to the
// configuration; --verbose forces debug level regardless of config.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
