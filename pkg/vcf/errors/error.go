package errors

import (
	"fmt"
	"strings"
)

// MetaSectionError describes one rule violation on one meta-information
// line. It carries everything a report needs: the 1-based source line, the
// meta-key of the offending entry, and which rule failed.
type MetaSectionError struct {
	// Line is the 1-based line number within the source document.
	Line int
	// MetaKey is the header key of the offending entry, e.g. "INFO".
	MetaKey string
	// Message names the rule that failed, e.g. a missing required key or a
	// malformed Number token.
	Message string
}

// Error implements the error interface.
func (e *MetaSectionError) Error() string {
	return fmt.Sprintf("line %d: meta section %s: %s", e.Line, e.MetaKey, e.Message)
}

// ErrorList accumulates violations across header lines. It allows a caller
// to report every malformed line of a document instead of stopping at the
// first one.
type ErrorList struct {
	Errors []*MetaSectionError
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends a violation to the list. Nil errors are ignored so callers
// can add construction results unconditionally.
func (el *ErrorList) Add(err *MetaSectionError) {
	if err != nil {
		el.Errors = append(el.Errors, err)
	}
}

// HasErrors returns true if the list contains any violations.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of violations in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface, formatting one violation per line.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "found %d meta section violation(s):\n", el.Count())
	for _, err := range el.Errors {
		sb.WriteString("  ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
// Returning a typed nil from a function with an error result would compare
// non-nil, so collecting callers must go through this method.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByMetaKey returns all violations recorded for the given meta-key.
func (el *ErrorList) ByMetaKey(key string) []*MetaSectionError {
	var result []*MetaSectionError
	for _, err := range el.Errors {
		if err.MetaKey == key {
			result = append(result, err)
		}
	}
	return result
}
