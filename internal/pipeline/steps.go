package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/exifcsv/internal/database"
	"github.com/nao1215/exifcsv/internal/exif"
	"github.com/nao1215/exifcsv/internal/model"
	"github.com/nao1215/exifcsv/internal/report"
	"github.com/nao1215/exifcsv/internal/scanner"
)

// DefaultConcurrency is the number of parallel EXIF extractions when the
// caller does not configure one. Extraction is I/O bound, so a handful of
// workers keeps disks busy without flooding the scheduler.
const DefaultConcurrency = 8

// DiscoverStep lists candidate image files in the scan directory.
// It runs discovery once per configured extension, merges the results,
// and sorts them lexicographically so the run output is deterministic.
type DiscoverStep struct {
	// dir is the directory to scan, non-recursively.
	dir string

	// extensions are matched case-insensitively, without leading dots.
	extensions []string

	// logger for structured logging.
	logger *slog.Logger
}

// DiscoverStepOption configures a DiscoverStep.
type DiscoverStepOption func(*DiscoverStep)

// WithDiscoverLogger sets a custom logger for the discovery step.
func WithDiscoverLogger(logger *slog.Logger) DiscoverStepOption {
	return func(s *DiscoverStep) {
		s.logger = logger
	}
}

// NewDiscoverStep creates a discovery step for the given directory and
// extensions.
func NewDiscoverStep(dir string, extensions []string, opts ...DiscoverStepOption) *DiscoverStep {
	s := &DiscoverStep{
		dir:        dir,
		extensions: extensions,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do executes file discovery. An unreadable directory yields an empty
// candidate list rather than an error; the run continues and produces a
// CSV with only the timestamp row.
func (s *DiscoverStep) Do(_ context.Context, runReport *model.RunReport) error {
	runReport.Files = scanner.FindAll(s.dir, s.extensions)

	s.logger.Info("discovery completed",
		"dir", s.dir,
		"extensions", s.extensions,
		"files", len(runReport.Files),
	)

	return nil
}

// ExtractStep runs EXIF extraction across all discovered files using an
// order-preserving parallel fan-out.
//
// Each file's extraction is independent: it reads only its own file and
// writes only to its own result slot, so no locking is needed. Results
// keep the position of their input path regardless of which worker
// finishes first; failed files are compacted out of the final row
// collection without disturbing the order of the survivors.
type ExtractStep struct {
	// concurrency is the maximum number of parallel extractions.
	concurrency int

	// logger for structured logging.
	logger *slog.Logger

	// extract is the per-file extraction function. Overridable in tests.
	extract func(path string) (*model.FileMetadata, error)
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithExtractConcurrency sets the maximum number of parallel extractions.
// Non-positive values keep the default.
func WithExtractConcurrency(n int) ExtractStepOption {
	return func(s *ExtractStep) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithExtractLogger sets a custom logger for the extraction step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// NewExtractStep creates an extraction step.
func NewExtractStep(opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
		extract:     exif.Extract,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do executes EXIF extraction for every discovered file.
//
// Per-file failures never abort the run: they are logged with the
// offending path and recorded in the report, and the file contributes
// nothing to the output. Each file is attempted exactly once.
func (s *ExtractStep) Do(ctx context.Context, runReport *model.RunReport) error {
	// Pre-allocated slices indexed by input position keep the output
	// order aligned with the sorted path list regardless of completion
	// order. Each goroutine writes only its own slot.
	results := make([]*model.FileMetadata, len(runReport.Files))
	failures := make([]*model.ExtractionFailure, len(runReport.Files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range runReport.Files {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			meta, err := s.extract(path)
			if err != nil {
				s.logger.Warn("failed to extract EXIF metadata",
					"path", path,
					"error", err,
				)
				failures[i] = &model.ExtractionFailure{Path: path, Err: err}
				return nil
			}

			s.logger.Debug("extracted EXIF metadata",
				"path", path,
				"tags", len(meta.Tags),
			)
			for _, tag := range meta.Tags {
				s.logger.Debug("exif tag", "path", path, "tag", tag.String())
			}

			results[i] = meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Compact in input order so the CSV rows match the sorted path list.
	for i := range runReport.Files {
		switch {
		case results[i] != nil:
			runReport.Rows = append(runReport.Rows, results[i])
		case failures[i] != nil:
			runReport.Failures = append(runReport.Failures, *failures[i])
		}
	}

	s.logger.Info("extraction completed",
		"files", len(runReport.Files),
		"rows", len(runReport.Rows),
		"failures", len(runReport.Failures),
	)

	return nil
}

// WriteCSVStep serializes the surviving rows to the output CSV file.
// The prior file at the output path is overwritten without confirmation,
// and all buffered output is flushed to disk before the step returns.
type WriteCSVStep struct {
	// outputPath is the CSV destination, overwritten on every run.
	outputPath string

	// logger for structured logging.
	logger *slog.Logger

	// now supplies the timestamp for the provenance row.
	now func() time.Time
}

// WriteCSVStepOption configures a WriteCSVStep.
type WriteCSVStepOption func(*WriteCSVStep)

// WithWriteCSVLogger sets a custom logger for the CSV step.
func WithWriteCSVLogger(logger *slog.Logger) WriteCSVStepOption {
	return func(s *WriteCSVStep) {
		s.logger = logger
	}
}

// WithWriteCSVClock overrides the timestamp source for the provenance row.
// Tests use this for deterministic output.
func WithWriteCSVClock(now func() time.Time) WriteCSVStepOption {
	return func(s *WriteCSVStep) {
		if now != nil {
			s.now = now
		}
	}
}

// NewWriteCSVStep creates a CSV output step writing to outputPath.
func NewWriteCSVStep(outputPath string, opts ...WriteCSVStepOption) *WriteCSVStep {
	s := &WriteCSVStep{
		outputPath: outputPath,
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *WriteCSVStep) Name() string {
	return "write_csv"
}

// Do writes the CSV file. A write failure is a step error: the pipeline
// records it in the report for top-level reporting, but with
// WithContinueOnError the run still proceeds to its remaining steps.
func (s *WriteCSVStep) Do(_ context.Context, runReport *model.RunReport) error {
	f, err := os.Create(s.outputPath) //nolint:gosec // Output path comes from configuration
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", s.outputPath, err)
	}

	w := report.NewCSVWriter(f, report.WithClock(s.now))
	if _, err := w.Write(runReport); err != nil {
		_ = f.Close() //nolint:errcheck // Write error takes precedence
		return fmt.Errorf("failed to write CSV to %s: %w", s.outputPath, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush CSV to %s: %w", s.outputPath, err)
	}

	runReport.OutputPath = s.outputPath
	runReport.CSVWritten = true

	s.logger.Info("CSV written",
		"path", s.outputPath,
		"rows", len(runReport.Rows),
	)

	return nil
}

// HistoryStep records the completed run in the history database.
// Recording is best effort: a database failure is logged but never
// escalated, because history is a convenience and not part of the run's
// contract.
type HistoryStep struct {
	// db is the history database. A nil db makes the step a no-op.
	db *database.HistoryDB

	// logger for structured logging.
	logger *slog.Logger
}

// HistoryStepOption configures a HistoryStep.
type HistoryStepOption func(*HistoryStep)

// WithHistoryLogger sets a custom logger for the history step.
func WithHistoryLogger(logger *slog.Logger) HistoryStepOption {
	return func(s *HistoryStep) {
		s.logger = logger
	}
}

// NewHistoryStep creates a history recording step.
func NewHistoryStep(db *database.HistoryDB, opts ...HistoryStepOption) *HistoryStep {
	s := &HistoryStep{
		db:     db,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *HistoryStep) Name() string {
	return "history"
}

// Do records the run. No-op when no database is configured.
func (s *HistoryStep) Do(ctx context.Context, runReport *model.RunReport) error {
	if s.db == nil {
		return nil
	}

	if err := s.db.SaveRun(ctx, runReport); err != nil {
		s.logger.Warn("failed to record run history", "error", err)
		return nil
	}

	s.logger.Debug("run recorded in history database")
	return nil
}
