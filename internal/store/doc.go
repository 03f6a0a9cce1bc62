// Package store persists parsed releases in a SQLite library index.
//
// Each scan run is recorded with a UUID, and every indexed file keeps the
// parsed field map as JSON next to a few denormalised columns (title, year,
// seasons, episodes, language codes) used for filtering. Writers take an
// exclusive file lock so two scans never interleave their upserts.
package store
