package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".exifcsv"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the optional .exifcsv YAML configuration file.
// Every field is optional; unset fields keep their current values when
// applied to a Config. CLI flags take precedence over file values.
type File struct {
	// ScanDir is the directory to scan.
	ScanDir string `yaml:"scan_dir"`

	// Extensions are the file extensions to scan, without leading dots.
	Extensions []string `yaml:"extensions"`

	// Output is the CSV destination path.
	Output string `yaml:"output"`

	// Concurrency is the maximum number of parallel extractions.
	Concurrency int `yaml:"concurrency"`

	// Pause is the post-run pause as ParseDuration syntax (e.g. "30s").
	// Kept as a string because YAML has no native duration type.
	Pause string `yaml:"pause"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// handle this based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .exifcsv in the current directory
// 3. Look for .exifcsv in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply copies the file's set values onto the config. Unset fields
// (empty strings, nil slices, zero ints) leave the config untouched, so
// flag values applied afterwards win over file values only when the flag
// was actually passed.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}

	if f.ScanDir != "" {
		c.ScanDir = f.ScanDir
	}
	if len(f.Extensions) > 0 {
		c.Extensions = f.Extensions
	}
	if f.Output != "" {
		c.OutputFile = f.Output
	}
	if f.Concurrency > 0 {
		c.Concurrency = f.Concurrency
	}
	if f.Pause != "" {
		pause, err := time.ParseDuration(f.Pause)
		if err != nil {
			return fmt.Errorf("invalid pause %q in config file: %w", f.Pause, err)
		}
		c.PostRunPause = pause
	}

	return nil
}
