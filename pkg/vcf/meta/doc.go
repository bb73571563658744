// Package meta implements construction and validation of VCF
// meta-information entries, the ##-prefixed header lines that declare the
// metadata body-record parsing depends on.
//
// An Entry has one of three structures, fixed at construction:
//
//   - NoValue:    ##reference
//   - PlainValue: ##assembly=GRCh38
//   - KeyValue:   ##INFO=<ID=DP,Number=1,Type=Integer,Description="...">
//
// The payload shape is decided upstream by the tokenizer (presence of "="
// and "<...>"); this package receives the already-shaped payload and
// decides whether its content is legal. Validation is all-or-nothing: a
// constructor returns either a fully validated, immutable Entry or a
// single *errors.MetaSectionError naming the first rule that failed.
//
// Three rule layers interact:
//
//   - field grammars: pure token checks for the Number arity code, the
//     Type token, and the structural-variant ID prefix used by ALT;
//   - the section rule table: which keys each meta-key requires in a
//     KeyValue payload and which grammar checks apply to it;
//   - the reserved INFO tag table: well-known identifiers whose
//     (Number, Type) pair is fixed by the VCF specification and overrides
//     the otherwise-permissive grammars.
//
// All tables are immutable process-wide data; entries share the document
// Source by pointer and never mutate it, so independent lines may be
// validated concurrently.
package meta
