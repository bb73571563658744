package meta

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"helix-hq/ganymede/pkg/vcf"
	vcfErrors "helix-hq/ganymede/pkg/vcf/errors"
)

// Structure identifies which of the three payload shapes an Entry carries.
// It is fixed at construction and never changes.
type Structure int

const (
	// NoValue is a bare key with no payload, e.g. ##reference.
	NoValue Structure = iota
	// PlainValue is a single-line string payload, e.g. ##assembly=GRCh38.
	PlainValue
	// KeyValue is an ordered key-value payload, e.g. ##contig=<ID=chr1>.
	KeyValue
)

// String returns the structure name for logs and test failures.
func (s Structure) String() string {
	switch s {
	case NoValue:
		return "NoValue"
	case PlainValue:
		return "PlainValue"
	case KeyValue:
		return "KeyValue"
	default:
		return fmt.Sprintf("Structure(%d)", int(s))
	}
}

// Pair is one key-value element of a KeyValue payload, in source order.
type Pair struct {
	Key   string
	Value string
}

// Entry is one validated meta-information line. Entries are immutable:
// every field is fixed when a constructor returns, and a constructor that
// reports an error returns no entry at all.
//
// An Entry holds its document Source by pointer and never mutates it.
type Entry struct {
	line      int
	id        string
	structure Structure
	plain     string
	pairs     *orderedmap.OrderedMap[string, string]
	source    *vcf.Source
}

// NewNoValue builds an entry for a bare meta-key with no payload. Any key
// is legal without a value, so construction cannot fail.
func NewNoValue(line int, key string, source *vcf.Source) *Entry {
	return &Entry{
		line:      line,
		id:        key,
		structure: NoValue,
		source:    source,
	}
}

// NewPlainValue builds an entry for a single-string payload. The value
// must be a single line; a payload containing a newline is rejected
// regardless of meta-key.
func NewPlainValue(line int, key, value string, source *vcf.Source) (*Entry, error) {
	e := &Entry{
		line:      line,
		id:        key,
		structure: PlainValue,
		plain:     value,
		source:    source,
	}
	if strings.ContainsAny(value, "\n\r") {
		return nil, e.violation("value must be a single line")
	}
	return e, nil
}

// NewKeyValue builds an entry for an ordered key-value payload and runs
// the section rules for the meta-key: required keys first, then the
// section's grammar and reserved-tag checks, in that order, stopping at
// the first violation. Unrecognized meta-keys get the default rule
// (nothing required, nothing checked), and unrecognized keys within the
// payload are passed through untouched.
//
// A key repeated within one payload resolves last-write-wins, keeping the
// position of its first occurrence.
func NewKeyValue(line int, key string, pairs []Pair, source *vcf.Source) (*Entry, error) {
	om := orderedmap.New[string, string](len(pairs))
	for _, p := range pairs {
		om.Set(p.Key, p.Value)
	}

	e := &Entry{
		line:      line,
		id:        key,
		structure: KeyValue,
		pairs:     om,
		source:    source,
	}

	rule := sectionRules[key] // zero value is the default rule
	for _, req := range rule.requiredKeys {
		if _, ok := om.Get(req); !ok {
			return nil, e.violation(fmt.Sprintf("missing required key %q", req))
		}
	}
	for _, check := range rule.checks {
		if err := check(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Line returns the 1-based source line the entry was declared on.
func (e *Entry) Line() int { return e.line }

// ID returns the normalized meta-key, e.g. "INFO" or "contig".
func (e *Entry) ID() string { return e.id }

// Structure returns the payload shape fixed at construction.
func (e *Entry) Structure() Structure { return e.structure }

// Source returns the shared document context the entry was validated
// against.
func (e *Entry) Source() *vcf.Source { return e.source }

// Plain returns the string payload. The second result is false when the
// entry's structure is not PlainValue; that is a caller contract mismatch,
// not a validation failure.
func (e *Entry) Plain() (string, bool) {
	if e.structure != PlainValue {
		return "", false
	}
	return e.plain, true
}

// KeyValue returns the ordered key-value payload. The second result is
// false when the entry's structure is not KeyValue. The returned map is
// the entry's own and must be treated as read-only.
func (e *Entry) KeyValue() (*orderedmap.OrderedMap[string, string], bool) {
	if e.structure != KeyValue {
		return nil, false
	}
	return e.pairs, true
}

// Get looks up one key of a KeyValue payload. It returns false both for a
// missing key and for a non-KeyValue entry.
func (e *Entry) Get(key string) (string, bool) {
	if e.structure != KeyValue {
		return "", false
	}
	return e.pairs.Get(key)
}

// Equal reports value equality: same line, meta-key, structure, payload,
// and document context.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.line != other.line || e.id != other.id || e.structure != other.structure || e.source != other.source {
		return false
	}
	switch e.structure {
	case PlainValue:
		return e.plain == other.plain
	case KeyValue:
		if e.pairs.Len() != other.pairs.Len() {
			return false
		}
		op := other.pairs.Oldest()
		for p := e.pairs.Oldest(); p != nil; p = p.Next() {
			if op == nil || p.Key != op.Key || p.Value != op.Value {
				return false
			}
			op = op.Next()
		}
		return true
	default:
		return true
	}
}

// String renders the entry back into its ##-line form.
func (e *Entry) String() string {
	switch e.structure {
	case PlainValue:
		return fmt.Sprintf("##%s=%s", e.id, e.plain)
	case KeyValue:
		var sb strings.Builder
		sb.WriteString("##")
		sb.WriteString(e.id)
		sb.WriteString("=<")
		first := true
		for p := e.pairs.Oldest(); p != nil; p = p.Next() {
			if !first {
				sb.WriteString(",")
			}
			first = false
			sb.WriteString(p.Key)
			sb.WriteString("=")
			sb.WriteString(quoteIfNeeded(p.Value))
		}
		sb.WriteString(">")
		return sb.String()
	default:
		return "##" + e.id
	}
}

// quoteIfNeeded wraps a payload value in double quotes when it contains
// characters that would break the <...> syntax.
func quoteIfNeeded(v string) string {
	if v == "" || strings.ContainsAny(v, `,"=<> `) {
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}
	return v
}

// violation builds the single structured error kind the core produces.
func (e *Entry) violation(msg string) *vcfErrors.MetaSectionError {
	return &vcfErrors.MetaSectionError{
		Line:    e.line,
		MetaKey: e.id,
		Message: msg,
	}
}
