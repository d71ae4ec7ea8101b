// Package model defines the data types shared across exifcsv components.
// It contains the per-file extraction results and the run report that
// pipeline steps accumulate into.
package model
