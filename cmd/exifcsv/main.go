// Package main provides the entry point for the exifcsv CLI.
//
// exifcsv scans a directory for JPEG images, extracts their EXIF
// metadata in parallel, and writes the results to a CSV file.
//
// Usage:
//
//	exifcsv scan [directory]
//	exifcsv history
//
// See --help for all available options.
package main

// main is the entry point for exifcsv.
func main() {
	Execute()
}
