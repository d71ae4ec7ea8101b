// Package report provides run-result serialization in multiple formats.
//
// This package contains writers for different outputs:
//   - CSVWriter: the primary exif_output.csv artifact
//   - SummaryWriter: human-readable run summary for terminal display
//   - MarkdownWriter: the same summary as GitHub Flavored Markdown
//
// Design decision: We separate report writing from the data structures
// (which are in the model package) so new output formats can be added
// without touching the pipeline. Writers implement a common interface
// and can be used interchangeably.
package report
