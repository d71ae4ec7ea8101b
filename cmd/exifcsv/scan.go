package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/exifcsv/internal/config"
	"github.com/nao1215/exifcsv/internal/database"
	"github.com/nao1215/exifcsv/internal/log"
	"github.com/nao1215/exifcsv/internal/model"
	"github.com/nao1215/exifcsv/internal/pipeline"
	"github.com/nao1215/exifcsv/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory for JPEG images and write EXIF metadata to CSV",
		Long: `Scan lists JPEG files (.jpeg/.jpg, matched case-insensitively) in the
given directory, extracts EXIF metadata from each file in parallel, and
writes the results to a CSV file in the current working directory.

Each CSV data row contains the file path, detected MIME type, tag count,
and one "<tag>: <value>" field per EXIF tag. Files that cannot be parsed
are reported on stderr and excluded from the output; the run always
completes and the process always exits normally.

Examples:
  # Scan the current directory
  exifcsv scan

  # Scan a photo directory
  exifcsv scan ~/Pictures/camera-roll

  # Restore the original "give me time to read the terminal" pause
  exifcsv scan --pause 30s

  # Limit parallel extraction and use a custom output file
  exifcsv scan -b 2 -o metadata.csv ~/Pictures

  # Use a custom configuration file
  exifcsv scan -c myconfig.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScanCmd,
	}

	// Scan behavior flags
	cmd.Flags().StringSliceP("ext", "e", nil,
		"File extensions to scan without leading dots (default: jpeg,jpg)")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Maximum number of parallel EXIF extractions")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"CSV output file path (overwritten on every run)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print the run summary as Markdown instead of plain text")

	// Interactive behavior
	cmd.Flags().DurationP("pause", "p", config.DefaultPostRunPause,
		"Pause this long after the run so terminal output can be read (e.g. 30s)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .exifcsv in current or home directory)")

	// History database
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the history database")

	return cmd
}

// runScanCmd executes the scan command.
//
// Scan failures are reported here and deliberately not returned: per the
// output contract the process exits normally whether or not the CSV
// write succeeded. Only configuration problems produce a non-zero exit.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewRedactLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	if err := runScan(ctx, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "exifcsv: %v\n", err)
	}

	// The pause is pure UX for operators who launch the tool by
	// double-click; it runs whether or not the scan succeeded.
	if cfg.PostRunPause > 0 {
		fmt.Printf("Pausing %s so you can read the output...\n", cfg.PostRunPause)
		select {
		case <-time.After(cfg.PostRunPause):
		case <-ctx.Done():
		}
	}

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra flags.
// File values override defaults; flags that were explicitly passed
// override file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configFilePath

	// Load the optional config file. If the user explicitly specified a
	// path, a missing file is an error; otherwise it is silently skipped.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Apply(cf); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Explicit flags win over file values
	if cmd.Flags().Changed("ext") {
		cfg.Extensions, err = cmd.Flags().GetStringSlice("ext")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputFile, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("pause") {
		cfg.PostRunPause, err = cmd.Flags().GetDuration("pause")
		if err != nil {
			return nil, err
		}
	}

	cfg.MarkdownSummary, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional argument overrides the scan directory
	if len(args) > 0 {
		cfg.ScanDir = args[0]
	}

	return cfg, nil
}

// runScan executes the scan pipeline: discover, extract, write CSV,
// record history.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting scan",
		"dir", cfg.ScanDir,
		"extensions", cfg.Extensions,
		"concurrency", cfg.Concurrency,
		"output", cfg.OutputFile,
	)

	// Open the history database if recording is enabled. History is a
	// convenience; failure to open it never blocks the scan.
	var db *database.HistoryDB
	if cfg.SaveHistory {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("failed to open history database", "dir", cfg.DBDir, "error", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)
	p.AddSteps(
		pipeline.NewDiscoverStep(cfg.ScanDir, cfg.Extensions, pipeline.WithDiscoverLogger(logger)),
		pipeline.NewExtractStep(
			pipeline.WithExtractConcurrency(cfg.Concurrency),
			pipeline.WithExtractLogger(logger),
		),
		pipeline.NewWriteCSVStep(cfg.OutputFile, pipeline.WithWriteCSVLogger(logger)),
		pipeline.NewHistoryStep(db, pipeline.WithHistoryLogger(logger)),
	)

	runReport := model.NewRunReport(cfg.ScanDir)
	if err := p.Execute(ctx, runReport); err != nil {
		return err
	}

	if runReport.CSVWritten {
		fmt.Printf("EXIF data written to %s\n", runReport.OutputPath)
	}

	if err := outputSummary(cfg, runReport); err != nil {
		logger.Warn("failed to write run summary", "error", err)
	}

	// A recorded step error (e.g. CSV write failure) surfaces here so
	// the caller can report it; the exit status stays zero either way.
	return runReport.Error
}

// outputSummary prints the run summary in the requested format.
func outputSummary(cfg *config.Config, runReport *model.RunReport) error {
	var w report.Writer
	if cfg.MarkdownSummary {
		w = report.NewMarkdownWriter(os.Stdout)
	} else {
		w = report.NewSummaryWriter(os.Stdout)
	}

	_, err := w.Write(runReport)
	return err
}
