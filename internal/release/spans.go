package release

import (
	"slices"
	"strings"
	"unicode"
)

// spanTracker records every claimed range of one name, including ranges of
// duplicate matches that never produced a value.
type spanTracker struct {
	size  int
	spans []Span
}

func newSpanTracker(size int) *spanTracker {
	return &spanTracker{size: size}
}

func (t *spanTracker) add(s Span) {
	if s.End < s.Start {
		s.End = s.Start
	}
	t.spans = append(t.spans, s)
}

// merged returns the claimed ranges sorted by start with touching and
// overlapping ranges coalesced.
func (t *spanTracker) merged() []Span {
	return mergeSpans(t.spans)
}

func mergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return a.End - b.End
	})
	out := []Span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			last.End = max(last.End, s.End)
			continue
		}
		out = append(out, s)
	}
	return out
}

// complement returns the unclaimed gaps of text in order. Empty gaps are
// never returned; delimiter-only gaps are dropped unless keepDelims is set.
func (t *spanTracker) complement(text []rune, keepDelims bool) []Span {
	var gaps []Span
	cursor := 0
	emit := func(start, end int) {
		if end <= start {
			return
		}
		if !keepDelims && onlyDelims(text[start:end]) {
			return
		}
		gaps = append(gaps, Span{Start: start, End: end})
	}
	for _, s := range t.merged() {
		emit(cursor, min(s.Start, t.size))
		cursor = max(cursor, s.End)
	}
	emit(cursor, t.size)
	return gaps
}

const delimiterChars = ".-+_/(),"

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(delimiterChars, r)
}

func onlyDelims(text []rune) bool {
	for _, r := range text {
		if !isDelimiter(r) {
			return false
		}
	}
	return true
}
