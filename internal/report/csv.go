package report

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/nao1215/exifcsv/internal/model"
)

// TimestampPrefix marks the provenance comment row written as the first
// CSV record. Consumers that expect only data rows should skip lines
// beginning with "#".
const TimestampPrefix = "# csv_created_at: "

// CSVWriter serializes a run report as comma-delimited CSV with standard
// double-quote escaping.
//
// Rows are ragged: each data row carries three mandatory fields plus one
// per EXIF tag, and the writer never pads or truncates to a uniform
// column count. Rows are written verbatim in the order the report holds
// them.
type CSVWriter struct {
	baseWriter

	// now supplies the timestamp for the provenance row, in the local
	// timezone at the moment of writing. Overridable for deterministic
	// tests.
	now func() time.Time
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithClock overrides the timestamp source for the provenance row.
func WithClock(now func() time.Time) CSVWriterOption {
	return func(w *CSVWriter) {
		if now != nil {
			w.now = now
		}
	}
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{
		baseWriter: newBaseWriter(output),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the single-field timestamp comment row followed by one
// row per extracted file. All buffered output is flushed before Write
// returns.
func (w *CSVWriter) Write(report *model.RunReport) (int, error) {
	counter := &countingWriter{w: w.output}
	cw := csv.NewWriter(counter)

	created := w.now().Format(time.RFC3339)
	if err := cw.Write([]string{TimestampPrefix + created}); err != nil {
		return counter.n, err
	}

	for _, row := range report.Rows {
		if err := cw.Write(row.Fields()); err != nil {
			return counter.n, err
		}
	}

	cw.Flush()
	return counter.n, cw.Error()
}
