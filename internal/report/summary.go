package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/exifcsv/internal/model"
)

// SummaryWriter outputs a human-readable run summary.
// This format is designed for terminal display; it is not machine
// parseable and not part of any output contract.
type SummaryWriter struct {
	baseWriter

	// showFailures controls whether failed files are listed individually.
	showFailures bool
}

// SummaryWriterOption configures a SummaryWriter.
type SummaryWriterOption func(*SummaryWriter)

// WithShowFailures configures the writer to list each failed file.
func WithShowFailures(show bool) SummaryWriterOption {
	return func(w *SummaryWriter) {
		w.showFailures = show
	}
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer, opts ...SummaryWriterOption) *SummaryWriter {
	w := &SummaryWriter{
		baseWriter:   newBaseWriter(output),
		showFailures: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run summary.
func (w *SummaryWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("exifcsv scan summary\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Scan Directory:   %s\n", report.ScanDir)
	fmt.Fprintf(&sb, "Scan Date:        %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Files Discovered: %d\n", report.FileCount())
	fmt.Fprintf(&sb, "Rows Written:     %d\n", report.RowCount())
	fmt.Fprintf(&sb, "Failures:         %d\n", report.FailureCount())

	if w.showFailures && report.FailureCount() > 0 {
		sb.WriteString("\nFailed files (excluded from output):\n")
		for _, failure := range report.Failures {
			fmt.Fprintf(&sb, "  %s: %v\n", failure.Path, failure.Err)
		}
	}

	if report.CSVWritten {
		fmt.Fprintf(&sb, "\nOutput: %s\n", report.OutputPath)
	} else if report.ErrorMessage != "" {
		fmt.Fprintf(&sb, "\nOutput not written: %s\n", report.ErrorMessage)
	}

	return w.output.Write([]byte(sb.String()))
}
