package testsupport

import (
	"context"
	"path/filepath"
	"testing"

	"relname/internal/config"
	"relname/internal/release"
	"relname/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// Index parses name and upserts it under dir/name.mkv, returning the record.
func Index(t testing.TB, st *store.Store, dir, name string) store.Record {
	t.Helper()

	res := release.Parse(name, release.DefaultOptions())
	rec, err := store.NewRecord(filepath.Join(dir, name+".mkv"), "", res)
	if err != nil {
		t.Fatalf("store.NewRecord: %v", err)
	}
	if err := st.Upsert(context.Background(), rec); err != nil {
		t.Fatalf("store.Upsert: %v", err)
	}
	return rec
}
