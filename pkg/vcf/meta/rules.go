package meta

import (
	"fmt"

	vcfErrors "helix-hq/ganymede/pkg/vcf/errors"
)

// checkFunc is one extra semantic check a section applies after its
// required keys are known to be present.
type checkFunc func(e *Entry) *vcfErrors.MetaSectionError

// sectionRule declares, per meta-key, which keys a KeyValue payload must
// carry and which extra checks run afterwards. The zero value is the
// default rule for unrecognized meta-keys: nothing required, nothing
// checked.
type sectionRule struct {
	requiredKeys []string
	checks       []checkFunc
}

// sectionRules is the per-meta-key rule table. Lookup is case-sensitive;
// "contig" is lowercase in the specification while the other recognized
// keys are uppercase.
var sectionRules = map[string]sectionRule{
	"ALT": {
		requiredKeys: []string{"ID", "Description"},
		checks:       []checkFunc{checkAltID},
	},
	"contig": {
		requiredKeys: []string{"ID"},
	},
	"FILTER": {
		requiredKeys: []string{"ID", "Description"},
	},
	"FORMAT": {
		requiredKeys: []string{"ID", "Number", "Type", "Description"},
		checks:       []checkFunc{checkNumber, checkFormatType},
	},
	"INFO": {
		requiredKeys: []string{"ID", "Number", "Type", "Description"},
		checks:       []checkFunc{checkNumber, checkInfoType, checkReservedInfo},
	},
	"SAMPLE": {
		requiredKeys: []string{"ID"},
		// Optional keys such as Genomes and Mixtures pass through unchecked.
	},
}

// checkAltID enforces the structural-variant prefix grammar on the ALT ID.
func checkAltID(e *Entry) *vcfErrors.MetaSectionError {
	id, _ := e.Get("ID")
	if !ValidAltID(id) {
		return e.violation(fmt.Sprintf("ID %q does not begin with DEL, INS, DUP, INV or CNV", id))
	}
	return nil
}

// checkNumber enforces the arity-code grammar on the Number value.
func checkNumber(e *Entry) *vcfErrors.MetaSectionError {
	number, _ := e.Get("Number")
	if !ValidNumber(number) {
		return e.violation(fmt.Sprintf("Number %q is not an unsigned integer or one of A, R, G, .", number))
	}
	return nil
}

// checkInfoType enforces the type-token grammar; INFO permits Flag.
func checkInfoType(e *Entry) *vcfErrors.MetaSectionError {
	typ, _ := e.Get("Type")
	if !ValidType(typ) {
		return e.violation(fmt.Sprintf("Type %q is not one of Integer, Float, Character, String, Flag", typ))
	}
	return nil
}

// checkFormatType enforces the type-token grammar; FORMAT fields carry
// per-sample values, so the presence-only Flag type is not permitted.
func checkFormatType(e *Entry) *vcfErrors.MetaSectionError {
	typ, _ := e.Get("Type")
	if typ == "Flag" {
		return e.violation(`Type "Flag" is not permitted in FORMAT entries`)
	}
	if !ValidType(typ) {
		return e.violation(fmt.Sprintf("Type %q is not one of Integer, Float, Character, String", typ))
	}
	return nil
}

// checkReservedInfo applies the reserved-tag override: an ID the
// specification predefines must declare exactly the mandated pair, even
// when the declared pair is grammatically valid in isolation.
func checkReservedInfo(e *Entry) *vcfErrors.MetaSectionError {
	id, _ := e.Get("ID")
	tag, ok := ReservedInfoTag(id)
	if !ok {
		return nil
	}
	number, _ := e.Get("Number")
	typ, _ := e.Get("Type")
	if number != tag.Number || typ != tag.Type {
		return e.violation(fmt.Sprintf("reserved INFO tag %q requires Number=%s and Type=%s, declared Number=%s and Type=%s",
			id, tag.Number, tag.Type, number, typ))
	}
	return nil
}
