package testsupport

import (
	"path/filepath"
	"testing"

	"relname/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose state directory is unique per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Library.Workers = 2

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithCoherentTypes turns on list typing for every non-title field.
func WithCoherentTypes() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Parse.CoherentTypes = true
	}
}

// WithExtensions replaces the scanned extensions.
func WithExtensions(exts ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Library.Extensions = exts
	}
}

// WithException appends a local title correction.
func WithException(ex config.Exception) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Exceptions = append(b.cfg.Exceptions, ex)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
