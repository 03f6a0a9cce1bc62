// Package library indexes media directories into the release store.
//
// Scan walks a directory once, parsing file names in parallel and upserting
// the results in walk order. Watch keeps the index current as files appear,
// move, or disappear. Both hold the store's writer lock while they run.
package library
