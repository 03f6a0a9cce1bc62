package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"relname/internal/release"
	"relname/internal/store"
	"relname/internal/testsupport"
)

func TestOpenAppliesMigrationsOnce(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first := testsupport.MustOpenStore(t, cfg)
	if first.Path() != cfg.DatabasePath() {
		t.Fatalf("Path() = %q, want %q", first.Path(), cfg.DatabasePath())
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening must skip already applied migrations.
	second := testsupport.MustOpenStore(t, cfg)
	if _, err := second.Titles(context.Background()); err != nil {
		t.Fatalf("Titles after reopen: %v", err)
	}
}

func TestUpsertAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	rec := testsupport.Index(t, st, "/media/tv", "Friends.S01-S03.FRENCH.1080p.BluRay.x264-GROUP")

	got, err := st.Get(ctx, rec.Path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Friends" {
		t.Fatalf("title = %q, want Friends", got.Title)
	}
	if !reflect.DeepEqual(got.Seasons, []int{1, 2, 3}) {
		t.Fatalf("seasons = %v, want [1 2 3]", got.Seasons)
	}
	if !reflect.DeepEqual(got.Languages, []string{"fr"}) {
		t.Fatalf("languages = %v, want [fr]", got.Languages)
	}
	if got.ScanID != "" {
		t.Fatalf("scan id = %q, want empty", got.ScanID)
	}
	if got.ParsedAt.IsZero() {
		t.Fatal("expected parsed_at to round trip")
	}

	var fields map[string]any
	if err := json.Unmarshal(got.Fields, &fields); err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if fields["resolution"] != "1080p" {
		t.Fatalf("stored fields = %v", fields)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	rec := testsupport.Index(t, st, "/media", "The.Matrix.1999.1080p.BluRay.x264-GROUP")
	res := release.Parse("The Matrix Reloaded 2003 720p", release.DefaultOptions())
	updated, err := store.NewRecord(rec.Path, "", res)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if err := st.Upsert(ctx, updated); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := st.Get(ctx, rec.Path)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "The Matrix Reloaded" || got.Year != 2003 {
		t.Fatalf("record not replaced: %+v", got)
	}
	all, err := st.List(ctx, store.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one row, got %d", len(all))
	}
}

func TestGetMissing(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	if _, err := st.Get(context.Background(), "/nowhere.mkv"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get missing: err = %v, want ErrNotFound", err)
	}
}

func TestListFilters(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	testsupport.Index(t, st, "/m", "Amelie.2001.FRENCH.1080p.BluRay.x264-GROUP")
	testsupport.Index(t, st, "/m", "The.Matrix.1999.1080p.BluRay.x264-GROUP")
	testsupport.Index(t, st, "/m", "The.Matrix.Reloaded.2003.1080p.BluRay.x264-GROUP")
	testsupport.Index(t, st, "/m", "Intouchables.2011.FRENCH.720p.BluRay.x264-GROUP")

	tests := []struct {
		name   string
		filter store.Filter
		want   []string
	}{
		{"all", store.Filter{}, []string{"Amelie", "Intouchables", "The Matrix", "The Matrix Reloaded"}},
		{"language name", store.Filter{Language: "French"}, []string{"Amelie", "Intouchables"}},
		{"language code", store.Filter{Language: "fr"}, []string{"Amelie", "Intouchables"}},
		{"title substring", store.Filter{Title: "matrix"}, []string{"The Matrix", "The Matrix Reloaded"}},
		{"limit", store.Filter{Limit: 1}, []string{"Amelie"}},
		{"wildcards are literal", store.Filter{Title: "%"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := st.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			var got []string
			for _, rec := range recs {
				got = append(got, rec.Title)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("List(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestTitlesAreDistinct(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	testsupport.Index(t, st, "/tv", "Friends.S01E01.720p.HDTV.x264-GROUP")
	testsupport.Index(t, st, "/tv", "Friends.S01E02.720p.HDTV.x264-GROUP")
	testsupport.Index(t, st, "/tv", "Seinfeld.S02E01.720p.HDTV.x264-GROUP")

	titles, err := st.Titles(ctx)
	if err != nil {
		t.Fatalf("Titles: %v", err)
	}
	if !reflect.DeepEqual(titles, []string{"Friends", "Seinfeld"}) {
		t.Fatalf("Titles() = %v", titles)
	}
}

func TestDelete(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	rec := testsupport.Index(t, st, "/m", "The.Matrix.1999.1080p")
	if err := st.Delete(ctx, rec.Path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, rec.Path); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.Delete(ctx, rec.Path); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestDeleteTree(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	gone := []store.Record{
		testsupport.Index(t, st, "/m/tv", "Friends.S01E01.720p"),
		testsupport.Index(t, st, "/m/tv/s02", "Friends.S02E01.720p"),
	}
	kept := []store.Record{
		testsupport.Index(t, st, "/m/tv_extra", "Seinfeld.S01E01.720p"),
		testsupport.Index(t, st, "/m", "The.Matrix.1999.1080p"),
	}

	n, err := st.DeleteTree(ctx, "/m/tv/")
	if err != nil {
		t.Fatalf("DeleteTree: %v", err)
	}
	if n != len(gone) {
		t.Fatalf("DeleteTree removed %d records, want %d", n, len(gone))
	}
	for _, rec := range gone {
		if _, err := st.Get(ctx, rec.Path); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("%s still indexed: %v", rec.Path, err)
		}
	}
	for _, rec := range kept {
		if _, err := st.Get(ctx, rec.Path); err != nil {
			t.Fatalf("%s removed: %v", rec.Path, err)
		}
	}
}

func TestScanLifecycle(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	scan, err := st.BeginScan(ctx, "/media")
	if err != nil {
		t.Fatalf("BeginScan: %v", err)
	}
	if scan.ID == "" {
		t.Fatal("expected scan id")
	}

	res := release.Parse("The.Matrix.1999.1080p", release.DefaultOptions())
	rec, err := store.NewRecord("/media/matrix.mkv", scan.ID, res)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if err := st.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := st.FinishScan(ctx, scan.ID, 1); err != nil {
		t.Fatalf("FinishScan: %v", err)
	}

	got, err := st.GetScan(ctx, scan.ID)
	if err != nil {
		t.Fatalf("GetScan: %v", err)
	}
	if got.Files != 1 || got.FinishedAt.IsZero() || got.Root != "/media" {
		t.Fatalf("unexpected scan %+v", got)
	}
	stored, err := st.Get(ctx, "/media/matrix.mkv")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.ScanID != scan.ID {
		t.Fatalf("scan id = %q, want %q", stored.ScanID, scan.ID)
	}

	if err := st.FinishScan(ctx, "missing", 0); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("FinishScan(missing) err = %v, want ErrNotFound", err)
	}
}

func TestAcquireWriterIsExclusive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first := testsupport.MustOpenStore(t, cfg)
	second := testsupport.MustOpenStore(t, cfg)

	release1, err := first.AcquireWriter()
	if err != nil {
		t.Fatalf("first AcquireWriter: %v", err)
	}
	if _, err := second.AcquireWriter(); !errors.Is(err, store.ErrLocked) {
		t.Fatalf("second AcquireWriter err = %v, want ErrLocked", err)
	}
	if err := release1(); err != nil {
		t.Fatalf("release: %v", err)
	}
	release2, err := second.AcquireWriter()
	if err != nil {
		t.Fatalf("AcquireWriter after release: %v", err)
	}
	_ = release2()
}
