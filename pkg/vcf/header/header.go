package header

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"helix-hq/ganymede/pkg/vcf"
	vcfErrors "helix-hq/ganymede/pkg/vcf/errors"
	"helix-hq/ganymede/pkg/vcf/meta"
)

// columnHeaderPrefix marks the mandatory column line that terminates the
// meta-information section and declares the sample names.
const columnHeaderPrefix = "#CHROM"

// fixedColumns are the mandatory body columns preceding FORMAT and the
// sample columns.
var fixedColumns = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

// Options controls header assembly.
type Options struct {
	// Name identifies the input in the Source and in error messages,
	// typically the file path.
	Name string

	// FailFast stops validation at the first violation instead of
	// collecting every violation in the header.
	FailFast bool

	// Ploidy is the declared ploidy; zero means the diploid default.
	Ploidy vcf.Ploidy

	// MaxLines caps the number of header lines read before giving up;
	// zero means the default of 10000.
	MaxLines int
}

// Header is the validated meta-information section of one document.
type Header struct {
	// Source is the document context every entry was validated against.
	Source *vcf.Source

	// Entries holds the validated meta entries in declaration order.
	// Lines that failed validation have no entry here.
	Entries []*meta.Entry
}

// Entry returns the first validated entry with the given meta-key, or nil.
func (h *Header) Entry(key string) *meta.Entry {
	for _, e := range h.Entries {
		if e.ID() == key {
			return e
		}
	}
	return nil
}

// EntriesByKey returns every validated entry with the given meta-key, in
// declaration order.
func (h *Header) EntriesByKey(key string) []*meta.Entry {
	var out []*meta.Entry
	for _, e := range h.Entries {
		if e.ID() == key {
			out = append(out, e)
		}
	}
	return out
}

// Parse reads the header of a VCF stream up to and including the #CHROM
// column line, builds the document Source, and validates every meta line.
//
// Hard failures (unreadable stream, missing ##fileformat, missing #CHROM,
// malformed column line) abort with an ordinary error. Meta-section
// violations are collected into an ErrorList returned alongside the
// partially assembled header, or, with Options.FailFast, returned alone as
// soon as the first one is found.
func Parse(r io.Reader, opts Options) (*Header, error) {
	name := opts.Name
	if name == "" {
		name = "(stream)"
	}
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = 10000
	}
	ploidy := opts.Ploidy
	if ploidy == 0 {
		ploidy = 2
	}

	text, format, err := NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	// First pass over the raw lines: the Source needs the version (line 1)
	// and the sample names (#CHROM line) before any entry is validated.
	var metaTexts []string
	var samples []string
	sawColumns := false

	scanner := bufio.NewScanner(text)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo > maxLines {
			return nil, fmt.Errorf("%s: header exceeds %d lines", name, maxLines)
		}
		line := scanner.Text()

		if strings.HasPrefix(line, columnHeaderPrefix) {
			samples, err = parseColumnLine(name, lineNo, line)
			if err != nil {
				return nil, err
			}
			sawColumns = true
			break
		}
		if !strings.HasPrefix(line, "##") {
			return nil, fmt.Errorf("%s: line %d: expected a meta line or the column header, got %q", name, lineNo, line)
		}
		metaTexts = append(metaTexts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(metaTexts) == 0 {
		return nil, fmt.Errorf("%s: missing ##fileformat line", name)
	}
	if !sawColumns {
		return nil, fmt.Errorf("%s: missing %s column header line", name, columnHeaderPrefix)
	}

	version, err := parseFileformat(name, metaTexts[0])
	if err != nil {
		return nil, err
	}

	source, err := vcf.NewSource(name, format, version, ploidy, samples)
	if err != nil {
		return nil, err
	}

	header := &Header{Source: source}
	violations := vcfErrors.NewErrorList()
	for i, text := range metaTexts {
		entry, err := validateMetaLine(i+1, text, source)
		if err != nil {
			verr, ok := err.(*vcfErrors.MetaSectionError)
			if !ok {
				return nil, err
			}
			if opts.FailFast {
				return header, verr
			}
			violations.Add(verr)
			continue
		}
		header.Entries = append(header.Entries, entry)
	}

	return header, violations.ToError()
}

// validateMetaLine tokenizes one ##-line and runs it through entry
// construction.
func validateMetaLine(number int, text string, source *vcf.Source) (*meta.Entry, error) {
	line, err := TokenizeMeta(number, text)
	if err != nil {
		return nil, err
	}
	return line.Entry(source)
}

// parseFileformat pins the declared version from the mandatory first line.
func parseFileformat(name, line string) (vcf.Version, error) {
	value, ok := strings.CutPrefix(line, "##fileformat=")
	if !ok {
		return vcf.VersionUnknown, fmt.Errorf("%s: first line must be ##fileformat, got %q", name, line)
	}
	version, err := vcf.ParseVersion(value)
	if err != nil {
		return vcf.VersionUnknown, fmt.Errorf("%s: %w", name, err)
	}
	return version, nil
}

// parseColumnLine extracts the sample names from the #CHROM line. The
// eight fixed columns are mandatory; FORMAT and sample columns only appear
// when the document carries genotypes.
func parseColumnLine(name string, number int, line string) ([]string, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < len(fixedColumns) {
		return nil, fmt.Errorf("%s: line %d: column header has %d fields, expected at least %d", name, number, len(fields), len(fixedColumns))
	}
	for i, want := range fixedColumns {
		if fields[i] != want {
			return nil, fmt.Errorf("%s: line %d: column %d is %q, expected %q", name, number, i+1, fields[i], want)
		}
	}
	if len(fields) == len(fixedColumns) {
		return nil, nil
	}
	if fields[len(fixedColumns)] != "FORMAT" {
		return nil, fmt.Errorf("%s: line %d: column %d is %q, expected %q", name, number, len(fixedColumns)+1, fields[len(fixedColumns)], "FORMAT")
	}
	return fields[len(fixedColumns)+1:], nil
}
