// Package header assembles and validates the header of a VCF stream.
//
// It is the layer above pkg/vcf/meta: it splits header lines, decides each
// payload's shape from its punctuation (a bare key, key=value, or
// key=<k=v,...>), extracts the declared version from ##fileformat and the
// sample names from the #CHROM column line, builds the shared document
// Source, and feeds every meta line through the core validator.
//
// Whether validation stops at the first violation or collects every
// violation in the header is this package's policy knob (Options.FailFast);
// the core itself always validates one line atomically.
//
// Input may be plain text, gzip, or bgzip compressed; compression is
// sniffed from the stream and recorded in the Source's input-format flags.
package header
