package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// sensitiveTagPrefixes are EXIF tag names whose values are masked when
// they show up in log attributes. GPS tags reveal where a photo was
// taken; serial numbers uniquely identify the device across photos.
var sensitiveTagPrefixes = []string{
	"GPSLatitude",
	"GPSLongitude",
	"GPSPosition",
	"GPSAltitude",
	"GPSTimeStamp",
	"GPSDateStamp",
	"SerialNumber",
	"BodySerialNumber",
	"CameraSerialNumber",
	"LensSerialNumber",
}

// sensitiveKeys are attribute keys whose values are always masked.
var sensitiveKeys = map[string]bool{
	"gps":      true,
	"location": true,
	"serial":   true,
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// RedactHandler wraps an slog.Handler to mask location- and
// device-identifying EXIF values. It intercepts log records and replaces
// attribute values that look like sensitive tag renderings before
// passing them to the underlying handler.
//
// Design decision: We use a handler wrapper rather than filtering at the
// call sites because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. New logging call sites are covered automatically
type RedactHandler struct {
	// handler is the underlying slog handler that receives masked records.
	handler slog.Handler
}

// NewRedactHandler creates a new RedactHandler wrapping the given handler.
// If handler is nil, the returned RedactHandler uses slog.Default().Handler().
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *RedactHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString && isSensitiveTagValue(a.Value.String()) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// isSensitiveTagValue reports whether a value is the "<tag>: <value>"
// rendering of a location- or device-identifying EXIF tag.
func isSensitiveTagValue(value string) bool {
	for _, prefix := range sensitiveTagPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// NewRedactLogger creates a *slog.Logger that writes text-formatted
// records to w with sensitive EXIF values masked.
//
// If verbose is true the level is Debug, otherwise Warn: per-file
// extraction failures log at Warn so they stay visible by default,
// while per-tag detail only appears with --verbose.
func NewRedactLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewRedactHandler(textHandler))
}
