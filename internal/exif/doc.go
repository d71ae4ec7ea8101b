// Package exif extracts EXIF metadata from JPEG files.
//
// The EXIF/TIFF binary tag decoding itself is delegated to
// github.com/dsoprea/go-exif; this package maps one file on disk to a
// detected MIME type and an ordered list of human-readable tag values.
package exif
