package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and identify exactly
// which option is invalid. Package-level sentinel errors let callers use
// errors.Is() while still providing human-readable messages.
var (
	// ErrNoScanDir is returned when the scan directory is empty.
	ErrNoScanDir = errors.New("no scan directory specified")

	// ErrNoExtensions is returned when no file extensions are configured.
	ErrNoExtensions = errors.New("no file extensions specified")

	// ErrNoOutputFile is returned when the CSV output path is empty.
	ErrNoOutputFile = errors.New("no output file specified")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidPause is returned when the post-run pause is negative.
	// Use zero to disable the pause.
	ErrInvalidPause = errors.New("invalid pause: must be non-negative")
)
