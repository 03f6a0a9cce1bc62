package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"relname/internal/language"
)

// Upsert inserts or replaces the record stored at rec.Path.
func (s *Store) Upsert(ctx context.Context, rec Record) error {
	_, err := s.exec(
		ctx,
		`INSERT INTO releases (`+releaseColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
            scan_id = excluded.scan_id,
            name = excluded.name,
            title = excluded.title,
            year = excluded.year,
            seasons = excluded.seasons,
            episodes = excluded.episodes,
            languages = excluded.languages,
            fields_json = excluded.fields_json,
            parsed_at = excluded.parsed_at`,
		rec.Path,
		nullableString(rec.ScanID),
		rec.Name,
		rec.Title,
		nullableInt(rec.Year),
		joinInts(rec.Seasons),
		joinInts(rec.Episodes),
		joinList(rec.Languages),
		string(rec.Fields),
		formatTime(rec.ParsedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert release %s: %w", rec.Path, err)
	}
	return nil
}

// Get returns the record indexed at path.
func (s *Store) Get(ctx context.Context, path string) (*Record, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		"SELECT "+releaseColumns+" FROM releases WHERE path = ?", path)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("get release %s: %w", path, err)
	}
	return rec, nil
}

// Delete removes the record indexed at path. Missing paths are not an error.
func (s *Store) Delete(ctx context.Context, path string) error {
	if _, err := s.exec(ctx, "DELETE FROM releases WHERE path = ?", path); err != nil {
		return fmt.Errorf("delete release %s: %w", path, err)
	}
	return nil
}

// DeleteTree removes every record stored under dir and reports how many
// were removed.
func (s *Store) DeleteTree(ctx context.Context, dir string) (int, error) {
	prefix := strings.TrimRight(dir, string(filepath.Separator)) + string(filepath.Separator)
	res, err := s.exec(ctx, "DELETE FROM releases WHERE substr(path, 1, length(?)) = ?", prefix, prefix)
	if err != nil {
		return 0, fmt.Errorf("delete releases under %s: %w", dir, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete releases under %s: %w", dir, err)
	}
	return int(n), nil
}

// List returns records matching filter ordered by title, then path.
func (s *Store) List(ctx context.Context, filter Filter) ([]Record, error) {
	var (
		where []string
		args  []any
	)
	if lang := strings.TrimSpace(filter.Language); lang != "" {
		where = append(where, `languages LIKE ? ESCAPE '\'`)
		args = append(args, "%,"+escapeLike(language.Normalize(lang))+",%")
	}
	if title := strings.TrimSpace(filter.Title); title != "" {
		where = append(where, `title LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(title)+"%")
	}

	query := "SELECT " + releaseColumns + " FROM releases"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY title COLLATE NOCASE, path"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan release: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate releases: %w", err)
	}
	return out, nil
}

// Titles returns the distinct non-empty titles in the index.
func (s *Store) Titles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		"SELECT DISTINCT title FROM releases WHERE title != '' ORDER BY title COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}
	return titles, nil
}
