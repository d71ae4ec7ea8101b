package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/exifcsv/internal/config"
	"github.com/nao1215/exifcsv/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent scan runs",
		Long: `History lists recent scan runs recorded in the local history
database, newest first. Each entry shows when the scan ran, which
directory was scanned, and how many files were found, written, and
failed.

Runs are recorded automatically unless scan is invoked with
--no-history.`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().String("db-dir", "", "History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false})
	if err != nil {
		// No database means no runs were ever recorded; that is not an
		// error worth a non-zero exit.
		fmt.Fprintln(cmd.OutOrStdout(), "No scan history found.")
		return nil
	}
	defer db.Close()

	records, err := db.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to read scan history: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scan history found.")
		return nil
	}

	printRunRecords(cmd, records)
	return nil
}

// printRunRecords renders run records as an aligned table.
func printRunRecords(cmd *cobra.Command, records []database.RunRecord) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Scan history (%d runs):\n\n", len(records))
	fmt.Fprintf(out, "  %-19s  %-40s  %5s  %5s  %6s  %s\n",
		"Date", "Directory", "Files", "Rows", "Failed", "Output")
	for _, rec := range records {
		fmt.Fprintf(out, "  %-19s  %-40s  %5d  %5d  %6d  %s\n",
			rec.CreatedAt.Local().Format(time.DateTime),
			truncatePath(rec.ScanDir, 40),
			rec.FileCount,
			rec.RowCount,
			rec.FailureCount,
			rec.OutputPath,
		)
	}
}

// truncatePath shortens long paths for table display, keeping the tail
// since the deepest directories are the most informative.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + strings.TrimPrefix(path[len(path)-maxLen+3:], "/")
}
