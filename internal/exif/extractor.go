package exif

import (
	"errors"
	"fmt"
	"os"

	goexif "github.com/dsoprea/go-exif/v3"
	"github.com/gabriel-vasile/mimetype"

	"github.com/nao1215/exifcsv/internal/model"
)

// ErrNotJPEG is returned when the file content is not a JPEG image.
// Discovery matches extensions only; content that is not actually JPEG
// is rejected here so that renamed or corrupt files are skipped instead
// of producing bogus rows.
var ErrNotJPEG = errors.New("file content is not a JPEG image")

// Extract parses the EXIF metadata of the file at path.
//
// A valid JPEG that carries no EXIF segment succeeds with zero tags.
// Any other failure (unreadable file, non-JPEG content, corrupt EXIF
// data) is returned as an error. Callers treat every error as a
// recoverable per-file failure: the file is skipped and the run
// continues. Each file is attempted exactly once and no state is shared
// between calls.
func Extract(path string) (*model.FileMetadata, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect MIME type: %w", err)
	}
	if !mtype.Is("image/jpeg") {
		return nil, fmt.Errorf("%w (detected %s)", ErrNotJPEG, mtype.String())
	}

	data, err := os.ReadFile(path) //nolint:gosec // Paths come from directory discovery
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	meta := &model.FileMetadata{
		Path:     path,
		MIMEType: mtype.String(),
	}

	rawExif, err := goexif.SearchAndExtractExif(data)
	if err != nil {
		if errors.Is(err, goexif.ErrNoExif) {
			// JPEG without an EXIF segment: a valid 0-tag result.
			return meta, nil
		}
		return nil, fmt.Errorf("failed to locate EXIF data: %w", err)
	}

	entries, _, err := goexif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode EXIF data: %w", err)
	}

	meta.Tags = make([]model.Tag, 0, len(entries))
	for _, entry := range entries {
		meta.Tags = append(meta.Tags, model.Tag{
			Name:  entry.TagName,
			Value: entry.Formatted,
		})
	}

	return meta, nil
}
