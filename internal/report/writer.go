package report

import (
	"io"

	"github.com/nao1215/exifcsv/internal/model"
)

// Writer defines the interface for run-report output.
// Implementations serialize a completed run in a specific format.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.RunReport) (int, error)
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// countingWriter wraps an io.Writer and tracks the bytes written, so
// writers built on top of encoding/csv can still report byte counts.
type countingWriter struct {
	w io.Writer
	n int
}

// Write forwards to the wrapped writer and accumulates the byte count.
func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
