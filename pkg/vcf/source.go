package vcf

import (
	"fmt"
	"strings"
)

// InputFormat is a bit set describing how the input stream is encoded.
// Flags combine with bitwise OR, e.g. FormatText|FormatBGZF for a
// bgzip-compressed textual VCF.
type InputFormat uint8

const (
	// FormatText marks a plain-text VCF stream.
	FormatText InputFormat = 1 << iota
	// FormatGzip marks a gzip-compressed stream.
	FormatGzip
	// FormatBGZF marks a block-gzip (bgzip) compressed stream. BGZF is a
	// gzip variant, so FormatGzip is normally set alongside it.
	FormatBGZF
)

// Has reports whether all flags in f are set.
func (fm InputFormat) Has(f InputFormat) bool {
	return fm&f == f
}

// Version identifies the VCF specification version a document declares.
type Version int

const (
	// VersionUnknown is the zero value; a Source never carries it.
	VersionUnknown Version = iota
	// V41 is VCF specification version 4.1.
	V41
	// V42 is VCF specification version 4.2.
	V42
	// V43 is VCF specification version 4.3.
	V43
)

// versionNames maps each supported version to its ##fileformat spelling.
var versionNames = map[Version]string{
	V41: "VCFv4.1",
	V42: "VCFv4.2",
	V43: "VCFv4.3",
}

// String returns the ##fileformat spelling of the version.
func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseVersion parses a ##fileformat value (e.g. "VCFv4.2") into a Version.
// The match is exact; unsupported or misspelled values are rejected.
func ParseVersion(s string) (Version, error) {
	for v, name := range versionNames {
		if s == name {
			return v, nil
		}
	}
	return VersionUnknown, fmt.Errorf("unsupported VCF version %q (supported: VCFv4.1, VCFv4.2, VCFv4.3)", s)
}

// Ploidy is the number of chromosome copies assumed per sample.
type Ploidy uint

// Source describes the document being validated. It is the shared,
// read-only context consulted by meta-entry validation.
//
// Source is immutable after construction. Do not modify fields after
// NewSource returns.
type Source struct {
	// Name identifies the input, typically a file path.
	Name string

	// Format holds the detected input-format flags.
	Format InputFormat

	// Version is the VCF specification version the document declares.
	Version Version

	// Ploidy is the declared ploidy, always positive.
	Ploidy Ploidy

	// Samples holds the sample names from the #CHROM line, unique and in
	// declaration order.
	Samples []string

	sampleIndex map[string]int
}

// NewSource builds the document context. It rejects an unknown version, a
// non-positive ploidy, and duplicate sample names.
func NewSource(name string, format InputFormat, version Version, ploidy Ploidy, samples []string) (*Source, error) {
	if _, ok := versionNames[version]; !ok {
		return nil, fmt.Errorf("source %q: unknown VCF version", name)
	}
	if ploidy == 0 {
		return nil, fmt.Errorf("source %q: ploidy must be positive", name)
	}

	idx := make(map[string]int, len(samples))
	for i, s := range samples {
		if s == "" {
			return nil, fmt.Errorf("source %q: empty sample name at position %d", name, i)
		}
		if prev, dup := idx[s]; dup {
			return nil, fmt.Errorf("source %q: duplicate sample name %q (positions %d and %d)", name, s, prev, i)
		}
		idx[s] = i
	}

	return &Source{
		Name:        name,
		Format:      format,
		Version:     version,
		Ploidy:      ploidy,
		Samples:     append([]string(nil), samples...),
		sampleIndex: idx,
	}, nil
}

// HasSample reports whether the document declares a sample with this name.
func (s *Source) HasSample(name string) bool {
	_, ok := s.sampleIndex[name]
	return ok
}

// SampleIndex returns the zero-based column position of a sample name, or
// -1 if the document does not declare it.
func (s *Source) SampleIndex(name string) int {
	if i, ok := s.sampleIndex[name]; ok {
		return i
	}
	return -1
}

// String returns a short description for logs and error messages.
func (s *Source) String() string {
	return fmt.Sprintf("%s (%s, %d samples)", s.Name, s.Version, len(s.Samples))
}

// FormatString renders the input-format flags, e.g. "text+gzip+bgzf".
func (s *Source) FormatString() string {
	var parts []string
	if s.Format.Has(FormatText) {
		parts = append(parts, "text")
	}
	if s.Format.Has(FormatGzip) {
		parts = append(parts, "gzip")
	}
	if s.Format.Has(FormatBGZF) {
		parts = append(parts, "bgzf")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "+")
}
