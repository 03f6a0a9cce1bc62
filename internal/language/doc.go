// Package language maps the canonical language names reported by the parser
// to ISO 639-1 and ISO 639-2 codes and display names.
//
// Names that describe a region rather than one language (Nordic, ExYu) have
// no code; callers fall back to the lowercased name.
package language
