package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nao1215/exifcsv/internal/model"
)

// TestOpen tests database creation semantics.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database with default options", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		hdb, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()

		if hdb.dbPath != filepath.Join(dir, "exifcsv.db") {
			t.Errorf("unexpected database path: %s", hdb.dbPath)
		}
	})

	t.Run("missing database errors when creation is disabled", func(t *testing.T) {
		t.Parallel()

		_, err := Open(t.TempDir(), Options{CreateIfNotExists: false})
		if err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("creates nested data directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "data")
		hdb, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()
	})
}

// TestSaveRunAndRecentRuns tests the save/list roundtrip.
func TestSaveRunAndRecentRuns(t *testing.T) {
	t.Parallel()

	t.Run("saved runs are listed newest first", func(t *testing.T) {
		t.Parallel()

		hdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()

		ctx := context.Background()
		base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

		for i, dir := range []string{"/first", "/second", "/third"} {
			r := model.NewRunReport(dir)
			r.DateScanned = base.Add(time.Duration(i) * time.Hour)
			r.Files = []string{"a.jpg", "b.jpg"}
			r.Rows = []*model.FileMetadata{{Path: "a.jpg", MIMEType: "image/jpeg"}}
			r.Failures = []model.ExtractionFailure{{Path: "b.jpg", Err: errors.New("corrupt")}}
			r.OutputPath = "exif_output.csv"

			if err := hdb.SaveRun(ctx, r); err != nil {
				t.Fatalf("failed to save run: %v", err)
			}
		}

		records, err := hdb.RecentRuns(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].ScanDir != "/third" {
			t.Errorf("expected newest record first, got %s", records[0].ScanDir)
		}
		if records[0].FileCount != 2 || records[0].RowCount != 1 || records[0].FailureCount != 1 {
			t.Errorf("unexpected counts: %+v", records[0])
		}
		if !records[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
			t.Errorf("unexpected timestamp: %v", records[0].CreatedAt)
		}
	})

	t.Run("limit caps the number of records", func(t *testing.T) {
		t.Parallel()

		hdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()

		ctx := context.Background()
		for range 5 {
			if err := hdb.SaveRun(ctx, model.NewRunReport(".")); err != nil {
				t.Fatalf("failed to save run: %v", err)
			}
		}

		records, err := hdb.RecentRuns(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("empty database lists nothing", func(t *testing.T) {
		t.Parallel()

		hdb, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer hdb.Close()

		records, err := hdb.RecentRuns(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})
}
