package store

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

const releaseColumns = "path, scan_id, name, title, year, seasons, episodes, languages, fields_json, parsed_at"

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		rec       Record
		scanID    sql.NullString
		year      sql.NullInt64
		seasons   string
		episodes  string
		languages string
		fields    string
		parsedRaw string
	)
	if err := scanner.Scan(
		&rec.Path,
		&scanID,
		&rec.Name,
		&rec.Title,
		&year,
		&seasons,
		&episodes,
		&languages,
		&fields,
		&parsedRaw,
	); err != nil {
		return nil, err
	}
	rec.ScanID = scanID.String
	rec.Year = int(year.Int64)
	rec.Seasons = splitInts(seasons)
	rec.Episodes = splitInts(episodes)
	rec.Languages = splitList(languages)
	rec.Fields = []byte(fields)
	rec.ParsedAt = parseTime(parsedRaw)
	return &rec, nil
}

// joinList stores a list as ",a,b," so a single code matches with LIKE '%,a,%'.
func joinList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return "," + strings.Join(values, ",") + ","
}

func splitList(raw string) []string {
	raw = strings.Trim(raw, ",")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return joinList(parts)
}

func splitInts(raw string) []int {
	parts := splitList(raw)
	if len(parts) == 0 {
		return nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// escapeLike escapes LIKE wildcards; queries use ESCAPE '\'.
func escapeLike(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(value)
}
