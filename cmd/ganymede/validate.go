package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"helix-hq/ganymede/pkg/vcf"
	vcfErrors "helix-hq/ganymede/pkg/vcf/errors"
	"helix-hq/ganymede/pkg/vcf/header"
)

var validateFlags struct {
	failFast bool
	format   string
	ploidy   uint
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate VCF meta-information headers",
	Long: `Validate the meta-information section of one or more VCF files.

Each header line is checked against the VCF specification:
  - required keys per meta section (ALT, contig, FILTER, FORMAT, INFO, SAMPLE)
  - Number arity codes and Type tokens
  - structural-variant ALT ID prefixes (DEL, INS, DUP, INV, CNV)
  - reserved INFO tags with a mandated Number/Type pair

Input may be plain text, gzip or bgzip compressed; compression is detected
from the stream.

Examples:
  # Validate a single file
  ganymede validate calls.vcf

  # Collect all violations across several files
  ganymede validate calls.vcf cohort.vcf.gz

  # Stop at the first violation, JSON output for CI/CD
  ganymede validate --fail-fast --format json calls.vcf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.failFast, "fail-fast", false, "stop at the first violation per file")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.Flags().UintVar(&validateFlags.ploidy, "ploidy", 0, "declared ploidy (default from config)")
}

// FileResult is the validation outcome for a single file.
type FileResult struct {
	File       string      `json:"file"`
	Valid      bool        `json:"valid"`
	Version    string      `json:"version,omitempty"`
	Samples    int         `json:"samples"`
	Entries    int         `json:"entries"`
	Violations []Violation `json:"violations,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Violation is one meta-section violation in JSON-friendly form.
type Violation struct {
	Line    int    `json:"line"`
	MetaKey string `json:"meta_key"`
	Message string `json:"message"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateFlags.format != "text" && validateFlags.format != "json" {
		return fmt.Errorf("unknown output format %q", validateFlags.format)
	}

	failFast := cfg.Validator.FailFast || validateFlags.failFast
	ploidy := vcf.Ploidy(cfg.Validator.Ploidy)
	if validateFlags.ploidy > 0 {
		ploidy = vcf.Ploidy(validateFlags.ploidy)
	}

	results := make([]FileResult, 0, len(args))
	for _, path := range args {
		results = append(results, validateFile(path, header.Options{
			Name:     path,
			FailFast: failFast,
			Ploidy:   ploidy,
			MaxLines: cfg.Validator.MaxHeaderLines,
		}))
	}

	if validateFlags.format == "json" {
		if err := outputJSON(results); err != nil {
			return err
		}
	} else {
		outputText(results)
	}

	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d file(s)", failed, len(results))
	}
	return nil
}

func validateFile(path string, opts header.Options) FileResult {
	result := FileResult{File: path}

	f, err := os.Open(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer f.Close()

	h, err := header.Parse(f, opts)
	if h != nil && h.Source != nil {
		result.Version = h.Source.Version.String()
		result.Samples = len(h.Source.Samples)
		result.Entries = len(h.Entries)
		slog.Debug("header assembled",
			"file", path,
			"version", h.Source.Version.String(),
			"format", h.Source.FormatString(),
			"samples", len(h.Source.Samples),
			"entries", len(h.Entries))
	}
	if err != nil {
		var list *vcfErrors.ErrorList
		var single *vcfErrors.MetaSectionError
		switch {
		case errors.As(err, &list):
			for _, v := range list.Errors {
				result.Violations = append(result.Violations, Violation{Line: v.Line, MetaKey: v.MetaKey, Message: v.Message})
			}
		case errors.As(err, &single):
			result.Violations = append(result.Violations, Violation{Line: single.Line, MetaKey: single.MetaKey, Message: single.Message})
		default:
			result.Error = err.Error()
		}
		return result
	}

	result.Valid = true
	return result
}

func outputJSON(results []FileResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func outputText(results []FileResult) {
	for _, r := range results {
		switch {
		case r.Valid:
			fmt.Printf("✓ %s: %s, %d entries, %d samples\n", r.File, r.Version, r.Entries, r.Samples)
		case r.Error != "":
			fmt.Printf("✗ %s: %s\n", r.File, r.Error)
		default:
			fmt.Printf("✗ %s: %d violation(s)\n", r.File, len(r.Violations))
			for _, v := range r.Violations {
				fmt.Printf("    line %d: meta section %s: %s\n", v.Line, v.MetaKey, v.Message)
			}
		}
	}
}
