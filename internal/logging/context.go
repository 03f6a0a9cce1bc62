package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldField names the release field a parse decision concerns.
	FieldField = "field"
	// FieldRule is the index of the catalogue rule that matched.
	FieldRule = "rule"
	// FieldRelease is the release name being parsed or stored.
	FieldRelease = "release"
	// FieldScanID identifies one library scan run.
	FieldScanID = "scan_id"
	// FieldPath is a filesystem path.
	FieldPath = "path"
	// FieldDecisionType groups decision logs by what was decided.
	FieldDecisionType = "decision_type"
)

type scanKey struct{}

// WithScanID returns a context carrying the identifier of a scan run.
func WithScanID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, scanKey{}, id)
}

// ScanIDFromContext returns the scan identifier stored in ctx.
func ScanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(scanKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := ScanIDFromContext(ctx); ok {
		return logger.With(String(FieldScanID, id))
	}
	return logger
}
