// Package vcf defines the document-level model shared by every part of
// Ganymede: the input format flags, the supported VCF specification
// versions, the declared ploidy, and the Source describing the file under
// validation.
//
// A Source is built once per document, before any meta-information line is
// validated, and is immutable afterwards. Validators hold it by pointer;
// because nothing mutates it after construction, concurrent validation of
// independent lines is safe without locking.
package vcf
