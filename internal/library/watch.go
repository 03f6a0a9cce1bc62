package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"relname/internal/logging"
)

// Watch indexes files as they are created or moved under root and drops
// files that are removed or moved away. New subdirectories are watched too.
// It returns nil when ctx is cancelled.
func (s *Scanner) Watch(ctx context.Context, root string) error {
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	unlock, err := s.store.AcquireWriter()
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, root); err != nil {
		return err
	}

	scan, err := s.store.BeginScan(ctx, root)
	if err != nil {
		return err
	}
	logger := logging.WithContext(logging.WithScanID(ctx, scan.ID), s.logger)
	logger.Info("watching", logging.String(logging.FieldPath, root))
	if s.ready != nil {
		s.ready()
	}

	indexed := 0
	defer func() {
		// The watch context is already cancelled here.
		if err := s.store.FinishScan(context.WithoutCancel(ctx), scan.ID, indexed); err != nil {
			logger.Warn("finish watch session", logging.Error(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped", logging.Int("files", indexed))
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			n, err := s.handle(ctx, watcher, event, scan.ID, logger)
			if err != nil {
				logger.Warn("watch event failed",
					logging.String(logging.FieldPath, event.Name),
					logging.Error(err),
				)
				continue
			}
			indexed += n
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.Error(err))
		}
	}
}

func (s *Scanner) handle(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event, scanID string, logger *slog.Logger) (int, error) {
	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") {
				return 0, nil
			}
			if err := addTree(watcher, event.Name); err != nil {
				return 0, err
			}
			// Files may land before the directory watch is registered.
			paths, err := s.collect(event.Name)
			if err != nil {
				return 0, err
			}
			for _, path := range paths {
				if err := s.index(ctx, path, scanID, logger); err != nil {
					return 0, err
				}
			}
			return len(paths), nil
		}
		if !info.Mode().IsRegular() || !s.cfg.HasExtension(event.Name) {
			return 0, nil
		}
		return 1, s.index(ctx, event.Name, scanID, logger)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if s.cfg.HasExtension(event.Name) {
			logger.Debug("release removed", logging.String(logging.FieldPath, event.Name))
			return 0, s.store.Delete(ctx, event.Name)
		}
		// A directory moved away or deleted takes its releases with it.
		n, err := s.store.DeleteTree(ctx, event.Name)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			logger.Debug("directory removed",
				logging.String(logging.FieldPath, event.Name),
				logging.Int("files", n),
			)
		}
		return 0, nil
	}
	return 0, nil
}

func (s *Scanner) index(ctx context.Context, path, scanID string, logger *slog.Logger) error {
	rec, err := s.record(path, scanID)
	if err != nil {
		return err
	}
	if err := s.store.Upsert(ctx, rec); err != nil {
		return err
	}
	logger.Info("release indexed",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldRelease, rec.Name),
		logging.String("title", rec.Title),
	)
	return nil
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
