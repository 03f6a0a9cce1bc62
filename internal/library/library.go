package library

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"relname/internal/config"
	"relname/internal/logging"
	"relname/internal/release"
	"relname/internal/store"
)

// Scanner parses release files under a root directory into a store.
type Scanner struct {
	cfg    *config.Config
	store  *store.Store
	parser *release.Parser
	logger *slog.Logger

	// ready is called once Watch has registered its directories.
	ready func()
}

// Summary reports the outcome of one scan.
type Summary struct {
	ScanID   string
	Root     string
	Files    int
	Duration time.Duration
}

// New returns a scanner. A nil parser uses the built-in catalogue.
func New(cfg *config.Config, st *store.Store, parser *release.Parser, logger *slog.Logger) *Scanner {
	if parser == nil {
		parser = release.NewParser(nil, logger)
	}
	return &Scanner{
		cfg:    cfg,
		store:  st,
		parser: parser,
		logger: logging.NewComponentLogger(logger, "library"),
	}
}

func (s *Scanner) options() release.Options {
	return release.Options{
		Standardise:   s.cfg.Parse.Standardise,
		CoherentTypes: s.cfg.Parse.CoherentTypes,
	}
}

// ReleaseName returns the name parsed for a file: its base name without the
// extension.
func ReleaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *Scanner) record(path, scanID string) (store.Record, error) {
	res := s.parser.Parse(ReleaseName(path), s.options())
	rec, err := store.NewRecord(path, scanID, res)
	if err != nil {
		return store.Record{}, fmt.Errorf("encode %s: %w", path, err)
	}
	return rec, nil
}

// Scan indexes every file under root whose extension is configured.
func (s *Scanner) Scan(ctx context.Context, root string) (Summary, error) {
	started := time.Now()
	root, err := filepath.Abs(root)
	if err != nil {
		return Summary{}, fmt.Errorf("resolve root: %w", err)
	}

	unlock, err := s.store.AcquireWriter()
	if err != nil {
		return Summary{}, err
	}
	defer func() { _ = unlock() }()

	paths, err := s.collect(root)
	if err != nil {
		return Summary{}, err
	}

	scan, err := s.store.BeginScan(ctx, root)
	if err != nil {
		return Summary{}, err
	}
	logger := logging.WithContext(logging.WithScanID(ctx, scan.ID), s.logger)
	logger.Info("scan started", logging.String(logging.FieldPath, root), logging.Int("files", len(paths)))

	records := make([]store.Record, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Library.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := s.record(path, scan.ID)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("parse files: %w", err)
	}

	for _, rec := range records {
		if err := s.store.Upsert(ctx, rec); err != nil {
			return Summary{}, err
		}
		logger.Debug("release indexed",
			logging.String(logging.FieldPath, rec.Path),
			logging.String(logging.FieldRelease, rec.Name),
		)
	}
	if err := s.store.FinishScan(ctx, scan.ID, len(records)); err != nil {
		return Summary{}, err
	}

	summary := Summary{ScanID: scan.ID, Root: root, Files: len(records), Duration: time.Since(started)}
	logger.Info("scan finished", logging.Int("files", summary.Files), logging.Duration("duration", summary.Duration))
	return summary, nil
}

// collect walks root in lexical order and returns files with a configured extension.
func (s *Scanner) collect(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && s.cfg.HasExtension(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}
