package meta

// ReservedTag is the (Number, Type) pair the VCF specification mandates
// for a reserved field identifier. An entry declaring a reserved ID with
// any other pair is rejected even when the pair is grammatically valid on
// its own.
type ReservedTag struct {
	Number string
	Type   string
}

// reservedInfoTags maps the specification's predefined INFO identifiers to
// their mandated pair. Lookup is case-sensitive and exact. The table is
// version-independent; selecting different tables per declared VCF version
// would slot in here if a future spec revision diverges.
var reservedInfoTags = map[string]ReservedTag{
	"AA":        {"1", "String"},  // ancestral allele
	"AC":        {"A", "Integer"}, // allele count in genotypes
	"AD":        {"R", "Integer"}, // total read depth per allele
	"ADF":       {"R", "Integer"}, // forward-strand read depth per allele
	"ADR":       {"R", "Integer"}, // reverse-strand read depth per allele
	"AF":        {"A", "Float"},   // allele frequency
	"AN":        {"1", "Integer"}, // total number of alleles
	"BQ":        {"1", "Float"},   // RMS base quality
	"CIGAR":     {"A", "String"},  // alignment of alternate to reference
	"DB":        {"0", "Flag"},    // dbSNP membership
	"DP":        {"1", "Integer"}, // combined depth across samples
	"END":       {"1", "Integer"}, // end position of the variant
	"H2":        {"0", "Flag"},    // HapMap2 membership
	"H3":        {"0", "Flag"},    // HapMap3 membership
	"MQ":        {"1", "Float"},   // RMS mapping quality
	"MQ0":       {"1", "Integer"}, // number of MAPQ == 0 reads
	"NS":        {"1", "Integer"}, // number of samples with data
	"SB":        {"4", "Integer"}, // strand bias
	"SOMATIC":   {"0", "Flag"},    // somatic mutation
	"VALIDATED": {"0", "Flag"},    // validated by follow-up experiment
	"1000G":     {"0", "Flag"},    // 1000 Genomes membership
}

// ReservedInfoTag returns the mandated (Number, Type) pair for a reserved
// INFO identifier. The second result is false for identifiers the
// specification leaves to the document author. Downstream record
// validation consults the same table when cross-checking body fields.
func ReservedInfoTag(id string) (ReservedTag, bool) {
	tag, ok := reservedInfoTags[id]
	return tag, ok
}
