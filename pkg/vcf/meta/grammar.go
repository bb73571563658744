package meta

import "regexp"

var (
	// numberPattern matches a valid Number arity code: an unsigned decimal
	// integer, or exactly one of the symbolic counts A (per alternate
	// allele), R (per allele incl. reference), G (per genotype) and .
	// (unspecified).
	numberPattern = regexp.MustCompile(`^([0-9]+|[AGR.])$`)

	// altIDPattern matches a structural-variant ALT ID: one of the five
	// reserved prefixes, optionally followed by colon-delimited non-empty
	// subtype segments (e.g. "CNV:FOO:BAR").
	altIDPattern = regexp.MustCompile(`^(DEL|INS|DUP|INV|CNV)(:[^:]+)*$`)
)

// typeTokens is the closed set of Type values a field may declare.
// Matching is case-sensitive; "int" or "." are not types.
var typeTokens = map[string]bool{
	"Integer":   true,
	"Float":     true,
	"Character": true,
	"String":    true,
	"Flag":      true,
}

// ValidNumber reports whether token is a well-formed Number arity code in
// isolation. Reserved identifiers further constrain which code is correct;
// see ReservedInfoTag.
func ValidNumber(token string) bool {
	return numberPattern.MatchString(token)
}

// ValidType reports whether token is one of the five Type tokens. Whether
// Flag is permitted for a given section is the section rule's decision,
// not this function's: INFO allows it, FORMAT does not.
func ValidType(token string) bool {
	return typeTokens[token]
}

// ValidAltID reports whether id is a legal structural-variant ALT ID.
func ValidAltID(id string) bool {
	return altIDPattern.MatchString(id)
}
