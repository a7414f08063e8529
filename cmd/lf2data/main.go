// Lf2data parses, validates, and catalogs Little Fighter 2 object data
// files.
//
// It understands both plain-text object data and the classic encoded
// .dat format, and produces either a typed object model or a single
// precise, positioned error.
//
// Usage:
//
//	# Parse one file and print a summary
//	lf2data parse data/frozen.dat
//
//	# Validate a directory of data files
//	lf2data lint --dir data/
//
//	# JSON output for CI/CD
//	lf2data lint --dir data/ --format json
//
//	# Scan a directory into the catalog, then keep watching it
//	lf2data scan --watch
//
//	# List catalog records
//	lf2data catalog list
//
//	# Show version information
//	lf2data version
package main

func main() {
	Execute()
}
