package config

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. Changes to defaults should be intentional, so each one
// is pinned here.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default ScanDir is the working directory", func(t *testing.T) {
		t.Parallel()
		if cfg.ScanDir != "." {
			t.Errorf("expected ScanDir '.', got %q", cfg.ScanDir)
		}
	})

	t.Run("default Extensions are jpeg and jpg", func(t *testing.T) {
		t.Parallel()
		if !reflect.DeepEqual(cfg.Extensions, []string{"jpeg", "jpg"}) {
			t.Errorf("expected [jpeg jpg], got %v", cfg.Extensions)
		}
	})

	t.Run("default OutputFile is exif_output.csv", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputFile != "exif_output.csv" {
			t.Errorf("expected 'exif_output.csv', got %q", cfg.OutputFile)
		}
	})

	t.Run("default Concurrency is 8", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency != 8 {
			t.Errorf("expected Concurrency 8, got %d", cfg.Concurrency)
		}
	})

	t.Run("default PostRunPause is disabled", func(t *testing.T) {
		t.Parallel()
		if cfg.PostRunPause != 0 {
			t.Errorf("expected no pause, got %v", cfg.PostRunPause)
		}
	})

	t.Run("default SaveHistory is true", func(t *testing.T) {
		t.Parallel()
		if !cfg.SaveHistory {
			t.Error("expected SaveHistory to be true")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case targets one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty scan dir returns ErrNoScanDir", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ScanDir = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoScanDir) {
			t.Errorf("expected ErrNoScanDir, got %v", err)
		}
	})

	t.Run("no extensions returns ErrNoExtensions", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Extensions = nil
		if err := cfg.Validate(); !errors.Is(err, ErrNoExtensions) {
			t.Errorf("expected ErrNoExtensions, got %v", err)
		}
	})

	t.Run("empty output file returns ErrNoOutputFile", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.OutputFile = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoOutputFile) {
			t.Errorf("expected ErrNoOutputFile, got %v", err)
		}
	})

	t.Run("zero concurrency returns ErrInvalidConcurrency", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Concurrency = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})

	t.Run("negative concurrency returns ErrInvalidConcurrency", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Concurrency = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})

	t.Run("negative pause returns ErrInvalidPause", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.PostRunPause = -time.Second
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidPause) {
			t.Errorf("expected ErrInvalidPause, got %v", err)
		}
	})

	t.Run("positive pause is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.PostRunPause = 30 * time.Second
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
