package store

import (
	"encoding/json"
	"time"

	"relname/internal/language"
	"relname/internal/release"
)

// Scan records one library scan run.
type Scan struct {
	ID         string
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time
	Files      int
}

// Record is one indexed release file.
type Record struct {
	Path      string
	ScanID    string
	Name      string
	Title     string
	Year      int
	Seasons   []int
	Episodes  []int
	Languages []string // ISO 639-1 codes, or lowercased names without one
	Fields    json.RawMessage
	ParsedAt  time.Time
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	// Language accepts a canonical name or an ISO code.
	Language string
	// Title matches case-insensitively anywhere in the title.
	Title string
	Limit int
}

// NewRecord builds the index row for a parsed release stored at path.
func NewRecord(path, scanID string, res *release.Result) (Record, error) {
	fields, err := json.Marshal(res)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		Path:      path,
		ScanID:    scanID,
		Name:      res.Name(),
		Title:     res.Title(),
		Seasons:   res.GetInts("seasons"),
		Episodes:  res.GetInts("episodes"),
		Languages: language.Codes(res.GetStrings("languages")),
		Fields:    fields,
		ParsedAt:  time.Now().UTC(),
	}
	if years := res.GetInts("year"); len(years) > 0 {
		rec.Year = years[0]
	}
	return rec, nil
}
