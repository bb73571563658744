// Package errors defines the violation type produced by meta-information
// validation and a list type for callers that collect violations across a
// whole header.
//
// The core validator in pkg/vcf/meta always fails fast: constructing one
// entry yields at most one MetaSectionError. Whether a document-level
// caller aborts at the first violation or keeps validating remaining lines
// is that caller's policy; ErrorList supports the collecting variant.
//
// Import with an alias to avoid shadowing the standard library:
//
//	vcfErrors "helix-hq/ganymede/pkg/vcf/errors"
package errors
