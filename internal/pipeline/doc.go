// Package pipeline orchestrates a scan run as a sequence of steps:
// discovery, parallel EXIF extraction, CSV output, and history recording.
// Steps accumulate their results into a shared model.RunReport.
package pipeline
