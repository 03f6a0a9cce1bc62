// Command relname parses media release names into structured metadata.
//
// `relname parse` reads names from arguments or stdin and prints the parsed
// fields as a table or JSON. `scan` and `watch` index a media directory into
// a SQLite library, which `show` lists and `find` searches by title.
package main
