// Package catalog holds the immutable pattern catalogue that drives release
// name parsing.
//
// A Catalog is an ordered list of field keys, each with one or more pattern
// rules, a declared value kind, an extraction strategy and an optional
// canonicalization table. It also carries the language and genre lookup
// tables, the known-exception title corrections and the auxiliary patterns
// used by post-processing.
//
// The field order is load-bearing: two fields can match the same text and only
// the one processed first may claim it. Catalogues are validated and compiled
// once by Build; Default returns the shared built-in catalogue. A built
// Catalog is never mutated and is safe for concurrent use.
package catalog
