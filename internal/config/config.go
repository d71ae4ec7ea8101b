package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultScanDir is the directory scanned when none is given.
	// The working directory preserves the drop-the-binary-in-a-photo-
	// folder workflow, but the scan root is always an explicit value so
	// tests can inject temporary directories.
	DefaultScanDir = "."

	// DefaultOutputFile is the CSV file created (or overwritten) in the
	// current working directory.
	DefaultOutputFile = "exif_output.csv"

	// DefaultConcurrency bounds parallel EXIF extraction. Extraction is
	// I/O bound; eight workers keep a local disk busy without flooding
	// the scheduler on small machines.
	DefaultConcurrency = 8

	// DefaultPostRunPause is zero: the pause exists only for operators
	// who launch the tool by double-click and want time to read the
	// terminal before the window closes. Automated callers should never
	// pay for it, so it is opt-in via --pause.
	DefaultPostRunPause = 0 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "exifcsv"
)

// DefaultExtensions are the file extensions scanned when none are
// configured. Only JPEG variants: EXIF support in other formats is out
// of scope.
func DefaultExtensions() []string {
	return []string{"jpeg", "jpg"}
}

// Config holds all configuration options for exifcsv.
// This struct is populated from CLI flags and the optional .exifcsv file
// and passed through the application via dependency injection rather
// than global state.
type Config struct {
	// ScanDir is the directory scanned for image files, non-recursively.
	ScanDir string

	// Extensions are the file extensions to scan, without leading dots,
	// matched case-insensitively.
	Extensions []string

	// OutputFile is the CSV destination. A prior file at this path is
	// overwritten without confirmation.
	OutputFile string

	// Concurrency is the maximum number of parallel EXIF extractions.
	Concurrency int

	// PostRunPause is how long to wait after the run completes before
	// returning, so an interactive operator can read the console output.
	// Zero disables the pause. It has no data-processing purpose.
	PostRunPause time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// MarkdownSummary switches the terminal run summary to Markdown.
	MarkdownSummary bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .exifcsv in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// DBDir is the directory holding the run-history SQLite database.
	// Defaults to the XDG data directory.
	DBDir string

	// SaveHistory indicates whether to record the run in the history
	// database. History is best effort and never affects the run result.
	SaveHistory bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults; callers override
// specific values after creation.
func NewConfig() *Config {
	return &Config{
		ScanDir:      DefaultScanDir,
		Extensions:   DefaultExtensions(),
		OutputFile:   DefaultOutputFile,
		Concurrency:  DefaultConcurrency,
		PostRunPause: DefaultPostRunPause,
		SaveHistory:  true,
	}
}

// XDGDataDir returns the XDG data directory for exifcsv.
// On Linux: ~/.local/share/exifcsv
// On macOS: ~/Library/Application Support/exifcsv
// On Windows: %LOCALAPPDATA%\exifcsv
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
// Validation runs once after CLI parsing, before any scanning begins,
// so problems fail fast with a clear message.
func (c *Config) Validate() error {
	if c.ScanDir == "" {
		return ErrNoScanDir
	}

	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}

	if c.OutputFile == "" {
		return ErrNoOutputFile
	}

	// Zero or negative concurrency would mean no extraction at all
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// Negative pause is invalid; zero disables it
	if c.PostRunPause < 0 {
		return ErrInvalidPause
	}

	return nil
}
