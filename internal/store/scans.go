package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BeginScan records the start of a scan of root and returns it with a fresh ID.
func (s *Store) BeginScan(ctx context.Context, root string) (*Scan, error) {
	scan := &Scan{
		ID:        uuid.NewString(),
		Root:      root,
		StartedAt: time.Now().UTC(),
	}
	if _, err := s.exec(ctx,
		"INSERT INTO scans (id, root, started_at) VALUES (?, ?, ?)",
		scan.ID, scan.Root, formatTime(scan.StartedAt),
	); err != nil {
		return nil, fmt.Errorf("insert scan: %w", err)
	}
	return scan, nil
}

// FinishScan stamps the scan with its completion time and file count.
func (s *Store) FinishScan(ctx context.Context, id string, files int) error {
	res, err := s.exec(ctx,
		"UPDATE scans SET finished_at = ?, files = ? WHERE id = ?",
		formatTime(time.Now().UTC()), files, id,
	)
	if err != nil {
		return fmt.Errorf("finish scan %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish scan %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetScan returns the scan with the given ID.
func (s *Store) GetScan(ctx context.Context, id string) (*Scan, error) {
	var (
		scan     Scan
		started  string
		finished sql.NullString
	)
	err := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT id, root, started_at, finished_at, files FROM scans WHERE id = ?", id,
	).Scan(&scan.ID, &scan.Root, &started, &finished, &scan.Files)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scan %s: %w", id, err)
	}
	scan.StartedAt = parseTime(started)
	scan.FinishedAt = parseTime(finished.String)
	return &scan, nil
}
