// Package config loads, normalizes, and validates relname configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as RELNAME_STATE_DIR.
// Extra exception records declared in the file are handed to the catalogue so
// local corrections apply without a rebuild.
package config
