package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/exifcsv/internal/model"
)

// MarkdownWriter outputs the run summary in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// scan result into an issue or wiki page.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary as GitHub Flavored Markdown.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("exifcsv Scan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Scan Directory", "`" + report.ScanDir + "`"},
			{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Files Discovered", strconv.Itoa(report.FileCount())},
			{"Rows Written", strconv.Itoa(report.RowCount())},
			{"Failures", strconv.Itoa(report.FailureCount())},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")

	if report.FailureCount() > 0 {
		md.H2("Failed Files")
		md.PlainText("")
		items := make([]string, 0, report.FailureCount())
		for _, failure := range report.Failures {
			items = append(items, "`"+failure.Path+"`: "+failure.Err.Error())
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// statusText returns the status cell based on report state.
func (w *MarkdownWriter) statusText(report *model.RunReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	if report.CSVWritten {
		return "✅ Written to `" + report.OutputPath + "`"
	}
	return "⚠️ CSV not written"
}
