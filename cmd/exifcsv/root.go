package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for exifcsv.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exifcsv",
		Short: "Export EXIF metadata from JPEG images to CSV",
		Long: `exifcsv scans a directory for JPEG images (non-recursively), extracts
EXIF metadata from each file in parallel, and writes one CSV row per image.

Files that cannot be parsed are reported on stderr and skipped; they never
abort the run. The output file is overwritten on every run and starts with
a "# csv_created_at" timestamp row for provenance.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
