package model

import "strconv"

// Tag is a single EXIF tag paired with its human-readable value.
// Tags keep the order in which the EXIF parser reports them; they are
// never re-sorted.
type Tag struct {
	// Name is the EXIF tag name (e.g., "Make", "GPSLatitude").
	Name string

	// Value is the human-readable rendering of the tag value.
	Value string
}

// String returns the "<tag-name>: <value>" form used in CSV fields.
func (t Tag) String() string {
	return t.Name + ": " + t.Value
}

// FileMetadata holds the extraction result for one image file.
type FileMetadata struct {
	// Path is the file path as discovered, used verbatim in output.
	Path string

	// MIMEType is the detected content type (e.g., "image/jpeg").
	MIMEType string

	// Tags are the EXIF entries in parser order. A valid JPEG without
	// an EXIF segment has zero tags and is still a successful result.
	Tags []Tag
}

// Fields flattens the metadata into a CSV row:
//
//	[path, MIME type, tag count, "tag0: value0", "tag1: value1", ...]
//
// The first three fields are always present; a file with N tags yields
// exactly 3+N fields. Rows are intentionally ragged across files because
// tag counts vary.
func (m *FileMetadata) Fields() []string {
	fields := make([]string, 0, 3+len(m.Tags))
	fields = append(fields, m.Path, m.MIMEType, strconv.Itoa(len(m.Tags)))
	for _, tag := range m.Tags {
		fields = append(fields, tag.String())
	}
	return fields
}

// ExtractionFailure records a file whose EXIF metadata could not be read.
// Failed files contribute nothing to the CSV output; the failure is only
// surfaced on the error stream and in the run summary.
type ExtractionFailure struct {
	// Path is the file that failed to parse.
	Path string

	// Err is the underlying parse or I/O error, passed through verbatim.
	Err error
}
