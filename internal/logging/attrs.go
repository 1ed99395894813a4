package logging

import (
	"context"
	"log/slog"

	"github.com/semtools/semmeta/internal/types"
)

// Standard attribute keys.
const (
	FieldComponent = "component"
	FieldFile      = "file"
	FieldStage     = "stage"
	FieldCode      = "code"
	FieldRunID     = "run_id"
	FieldError     = "error"
)

// NoopHandler discards all records.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h NoopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h NoopHandler) WithGroup(string) slog.Handler           { return h }

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// WarningAttrs returns the attributes used when logging a non-fatal
// extraction warning.
func WarningAttrs(file string, w types.Warning) []any {
	attrs := []any{
		slog.String(FieldFile, file),
		slog.String(FieldStage, w.Stage),
		slog.String(FieldCode, string(w.Code)),
	}
	if w.Offset > 0 {
		attrs = append(attrs, slog.Int64("offset", w.Offset))
	}
	return attrs
}

// Error wraps err as a standard error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}
