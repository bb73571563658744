package header

import (
	"fmt"
	"strings"

	"helix-hq/ganymede/pkg/vcf"
	vcfErrors "helix-hq/ganymede/pkg/vcf/errors"
	"helix-hq/ganymede/pkg/vcf/meta"
)

// MetaLine is the tokenized form of one ##-prefixed header line: the
// meta-key plus an already-shaped payload, ready for entry construction.
type MetaLine struct {
	// Number is the 1-based source line.
	Number int
	// Key is the meta-key, e.g. "INFO" or "fileformat".
	Key string
	// Shape is the payload shape decided from the line's punctuation.
	Shape meta.Structure
	// Plain holds the payload when Shape is PlainValue.
	Plain string
	// Pairs holds the payload when Shape is KeyValue, in source order.
	Pairs []meta.Pair
}

// TokenizeMeta splits one ##-line into key and shaped payload. The shape
// decision is purely syntactic: no "=" means NoValue, "=<...>" means
// KeyValue, any other "=" means PlainValue. Content rules are applied
// later by entry construction, not here.
func TokenizeMeta(number int, text string) (*MetaLine, error) {
	rest, ok := strings.CutPrefix(text, "##")
	if !ok {
		return nil, tokenizeError(number, "", `meta line must start with "##"`)
	}

	key, value, hasValue := strings.Cut(rest, "=")
	if key == "" {
		return nil, tokenizeError(number, "", "empty meta-key")
	}
	if !hasValue {
		return &MetaLine{Number: number, Key: key, Shape: meta.NoValue}, nil
	}

	if !strings.HasPrefix(value, "<") {
		return &MetaLine{Number: number, Key: key, Shape: meta.PlainValue, Plain: value}, nil
	}

	body, closed := strings.CutSuffix(value[1:], ">")
	if !closed {
		return nil, tokenizeError(number, key, `key-value payload is not terminated by ">"`)
	}
	pairs, err := parsePairs(number, key, body)
	if err != nil {
		return nil, err
	}
	return &MetaLine{Number: number, Key: key, Shape: meta.KeyValue, Pairs: pairs}, nil
}

// Entry runs the tokenized line through meta-entry construction against
// the given document context.
func (l *MetaLine) Entry(source *vcf.Source) (*meta.Entry, error) {
	switch l.Shape {
	case meta.NoValue:
		return meta.NewNoValue(l.Number, l.Key, source), nil
	case meta.PlainValue:
		return meta.NewPlainValue(l.Number, l.Key, l.Plain, source)
	default:
		return meta.NewKeyValue(l.Number, l.Key, l.Pairs, source)
	}
}

// parsePairs scans the inside of a <...> payload. Values may be wrapped in
// double quotes, in which case commas and equals signs lose their
// separator meaning and \" escapes a quote.
func parsePairs(number int, key, body string) ([]meta.Pair, error) {
	var pairs []meta.Pair
	i := 0
	for i < len(body) {
		eq := strings.IndexByte(body[i:], '=')
		if eq < 0 {
			return nil, tokenizeError(number, key, fmt.Sprintf("expected key=value, got %q", body[i:]))
		}
		k := body[i : i+eq]
		if k == "" {
			return nil, tokenizeError(number, key, "empty key in key-value payload")
		}
		i += eq + 1

		var v string
		if i < len(body) && body[i] == '"' {
			unquoted, next, err := scanQuoted(number, key, body, i)
			if err != nil {
				return nil, err
			}
			v = unquoted
			i = next
			if i < len(body) {
				if body[i] != ',' {
					return nil, tokenizeError(number, key, "expected ',' after quoted value")
				}
				i++
				if i == len(body) {
					return nil, tokenizeError(number, key, "trailing comma in key-value payload")
				}
			}
		} else if comma := strings.IndexByte(body[i:], ','); comma >= 0 {
			v = body[i : i+comma]
			i += comma + 1
			if i == len(body) {
				return nil, tokenizeError(number, key, "trailing comma in key-value payload")
			}
		} else {
			v = body[i:]
			i = len(body)
		}

		pairs = append(pairs, meta.Pair{Key: k, Value: v})
	}
	if len(pairs) == 0 {
		return nil, tokenizeError(number, key, "empty key-value payload")
	}
	return pairs, nil
}

// scanQuoted reads a double-quoted value starting at body[start] and
// returns the unescaped content plus the index just past the closing
// quote.
func scanQuoted(number int, key, body string, start int) (string, int, error) {
	var sb strings.Builder
	i := start + 1 // past the opening quote
	for i < len(body) {
		switch {
		case body[i] == '\\' && i+1 < len(body) && (body[i+1] == '"' || body[i+1] == '\\'):
			sb.WriteByte(body[i+1])
			i += 2
		case body[i] == '"':
			return sb.String(), i + 1, nil
		default:
			sb.WriteByte(body[i])
			i++
		}
	}
	return "", 0, tokenizeError(number, key, "unterminated quoted value")
}

// tokenizeError reports a syntactically malformed header line. It reuses
// the meta-section violation type so document-level callers can collect
// tokenizer and validation failures in one list.
func tokenizeError(number int, key, msg string) *vcfErrors.MetaSectionError {
	if key == "" {
		key = "(unknown)"
	}
	return &vcfErrors.MetaSectionError{Line: number, MetaKey: key, Message: msg}
}
