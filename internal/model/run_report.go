package model

import "time"

// RunReport accumulates the state of one scan run as it moves through
// the pipeline. Discovery fills Files, extraction fills Rows and
// Failures, and the CSV step records the output location.
//
// A RunReport has no lifecycle beyond a single run: it is built once,
// never persisted in memory between runs, and never mutated after the
// pipeline completes.
type RunReport struct {
	// ScanDir is the directory that was scanned.
	ScanDir string

	// DateScanned is when the run started.
	DateScanned time.Time

	// Files are the discovered candidate paths, sorted lexicographically.
	Files []string

	// Rows are the successful extraction results. Their order matches
	// Files with failed entries removed; the parallel extraction stage
	// preserves input-to-output positional correspondence.
	Rows []*FileMetadata

	// Failures are the files that could not be parsed, in input order.
	Failures []ExtractionFailure

	// OutputPath is where the CSV was written.
	OutputPath string

	// CSVWritten reports whether the CSV file was flushed successfully.
	CSVWritten bool

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string

	// Error holds the first step error when the pipeline continues on
	// error. The run still completes; the error is reported at the top
	// level without changing the exit status.
	Error error

	// ErrorMessage mirrors Error as a string for serialization.
	ErrorMessage string
}

// NewRunReport creates a RunReport for the given scan directory.
func NewRunReport(scanDir string) *RunReport {
	return &RunReport{
		ScanDir:     scanDir,
		DateScanned: time.Now(),
		Rows:        make([]*FileMetadata, 0),
		Failures:    make([]ExtractionFailure, 0),
	}
}

// FileCount returns the number of discovered candidate files.
func (r *RunReport) FileCount() int {
	return len(r.Files)
}

// RowCount returns the number of rows that survived extraction.
func (r *RunReport) RowCount() int {
	return len(r.Rows)
}

// FailureCount returns the number of files that failed to parse.
func (r *RunReport) FailureCount() int {
	return len(r.Failures)
}
