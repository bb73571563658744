// Ganymede is a validator for the meta-information section of VCF files.
//
// It checks every ##-prefixed header line against the VCF specification's
// structural rules: required keys per section, the Number and Type field
// grammars, structural-variant ALT ID prefixes, and the reserved INFO tag
// table.
//
// Usage:
//
//	# Validate the header of one or more files (plain, gzip or bgzip)
//	ganymede validate calls.vcf cohort.vcf.gz
//
//	# Stop at the first violation, emit machine-readable output
//	ganymede validate --fail-fast --format json calls.vcf
//
//	# Show version information
//	ganymede version
package main

func main() {
	Execute()
}
