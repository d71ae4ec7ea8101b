// Package log provides structured logging helpers for exifcsv.
// Log output can include EXIF tag values, which may carry location and
// device identifiers; the redacting handler masks those before they
// reach the terminal or any captured log stream.
package log
