package release

import (
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"

	"relname/internal/catalog"
	"relname/internal/logging"
)

// state is the working set of a single parse call.
type state struct {
	cat    *catalog.Catalog
	opts   Options
	logger *slog.Logger

	// runes is the trimmed name; search is the same text with underscores
	// turned into spaces. Both have the same length so offsets agree.
	runes  []rune
	search []rune

	res   *Result
	spans *spanTracker
	// gaps is the unmatched text handed from the pre-excess hooks to the
	// excess builder.
	gaps []string
}

func newState(p *Parser, name string, opts Options) *state {
	runes := []rune(name)
	search := []rune(strings.ReplaceAll(name, "_", " "))
	return &state{
		cat:    p.cat,
		opts:   opts,
		logger: p.logger,
		runes:  runes,
		search: search,
		res:    newResult(name),
		spans:  newSpanTracker(len(runes)),
	}
}

func (st *state) text(s Span) string {
	return string(st.runes[s.Start:s.End])
}

// match runs every catalogue field in order against the name.
func (st *state) match() {
	for _, f := range st.cat.Fields() {
		st.matchField(f)
	}
}

func (st *state) matchField(f *catalog.Field) {
	cutoff := st.ignoreBefore(f)
	for i, rule := range f.Rules {
		m := st.pick(f.Key, rule.Regexp(), cutoff)
		if m == nil {
			continue
		}
		span := Span{Start: m.Index, End: m.Index + m.Length}
		if st.res.Has(f.Key) {
			// Later mentions only shrink the leftover text.
			st.spans.add(span)
			continue
		}
		if owner, ok := st.overlaps(span); ok {
			st.logger.Debug("candidate discarded",
				logging.Args(append(logging.DecisionAttrs("field_overlap", "discarded", "overlaps "+owner),
					logging.String(logging.FieldField, f.Key),
					logging.Int(logging.FieldRule, i),
				)...)...)
			continue
		}
		v, ok := st.extract(f, rule, m)
		if !ok {
			continue
		}
		st.res.setSpan(f.Key, v, span)
		st.spans.add(span)
		st.logger.Debug("field committed",
			logging.String(logging.FieldField, f.Key),
			logging.Int(logging.FieldRule, i),
			logging.String("value", v.Text()),
		)
	}
}

// pick returns the representative match of re at or after cutoff: the first
// one, or the last one for the year so a year inside the title loses to the
// release year.
func (st *state) pick(key string, re *regexp2.Regexp, cutoff int) *regexp2.Match {
	var picked *regexp2.Match
	m, err := re.FindRunesMatch(st.search)
	for err == nil && m != nil {
		if m.Index >= cutoff {
			picked = m
			if key != "year" {
				break
			}
		}
		m, err = re.FindNextMatch(m)
	}
	return picked
}

// ignoreBefore returns the offset before which matches of f are ignored.
func (st *state) ignoreBefore(f *catalog.Field) int {
	if !f.AfterTitle {
		return 0
	}
	if triggers := f.Triggers(); len(triggers) > 0 {
		hit := false
		for _, re := range triggers {
			if findFirst(re, st.search) != nil {
				hit = true
				break
			}
		}
		if !hit {
			return 0
		}
	}
	m := findFirst(st.cat.TitleAnchor(), st.search)
	if m == nil {
		return 0
	}
	st.logger.Debug("title region excluded",
		logging.String(logging.FieldField, f.Key),
		logging.Int("offset", m.Index),
	)
	return m.Index
}

// overlaps reports the committed, non-exempt field whose span strictly
// contains an endpoint of s.
func (st *state) overlaps(s Span) (string, bool) {
	for _, key := range st.res.keys {
		if st.cat.OverlapExempt(key) {
			continue
		}
		owned, ok := st.res.spans[key]
		if !ok {
			continue
		}
		if (owned.Start < s.Start && s.Start < owned.End) || (owned.Start < s.End && s.End < owned.End) {
			return key, true
		}
	}
	return "", false
}

func findAll(re *regexp2.Regexp, text []rune) []*regexp2.Match {
	var out []*regexp2.Match
	m, err := re.FindRunesMatch(text)
	for err == nil && m != nil {
		out = append(out, m)
		m, err = re.FindNextMatch(m)
	}
	return out
}

func findFirst(re *regexp2.Regexp, text []rune) *regexp2.Match {
	m, err := re.FindRunesMatch(text)
	if err != nil {
		return nil
	}
	return m
}

// groupText returns the text of a capture group, or "" when it did not
// participate.
func groupText(g *regexp2.Group) string {
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
