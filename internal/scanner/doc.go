// Package scanner discovers candidate image files on the local filesystem.
// Discovery is non-recursive and matches file extensions case-insensitively.
package scanner
