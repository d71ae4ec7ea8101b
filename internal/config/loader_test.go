package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// writeConfigFile writes content to a temp config file and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all fields", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
scan_dir: /photos
extensions:
  - jpeg
  - jpg
output: out.csv
concurrency: 4
pause: "30s"
`)

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.ScanDir != "/photos" {
			t.Errorf("expected scan_dir '/photos', got %q", cf.ScanDir)
		}
		if !reflect.DeepEqual(cf.Extensions, []string{"jpeg", "jpg"}) {
			t.Errorf("expected [jpeg jpg], got %v", cf.Extensions)
		}
		if cf.Output != "out.csv" {
			t.Errorf("expected output 'out.csv', got %q", cf.Output)
		}
		if cf.Concurrency != 4 {
			t.Errorf("expected concurrency 4, got %d", cf.Concurrency)
		}
		if cf.Pause != "30s" {
			t.Errorf("expected pause '30s', got %q", cf.Pause)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "scan_dir: [unclosed")
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests config file resolution.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "scan_dir: .")
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

// TestConfigApply tests merging a config file into a Config.
func TestConfigApply(t *testing.T) {
	t.Parallel()

	t.Run("set fields override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := cfg.Apply(&File{
			ScanDir:     "/photos",
			Extensions:  []string{"jpg"},
			Output:      "out.csv",
			Concurrency: 2,
			Pause:       "10s",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.ScanDir != "/photos" || cfg.OutputFile != "out.csv" || cfg.Concurrency != 2 {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if cfg.PostRunPause != 10*time.Second {
			t.Errorf("expected 10s pause, got %v", cfg.PostRunPause)
		}
	})

	t.Run("unset fields keep current values", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(&File{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(cfg, NewConfig()) {
			t.Errorf("expected config unchanged, got %+v", cfg)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid pause returns error", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Apply(&File{Pause: "soon"}); err == nil {
			t.Error("expected error for invalid pause")
		}
	})
}
