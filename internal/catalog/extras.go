package catalog

import (
	"fmt"
	"strings"
)

// delim is the shared delimiter class used between release name tokens.
const delim = `[\.\s\-\+_\/(),]`

// Delimiters returns the delimiter character class.
func Delimiters() string { return delim }

// link joins patterns into one non-capturing alternation.
func link(patterns ...string) string {
	return `(?:` + strings.Join(patterns, `|`) + `)`
}

func linkRules(rules []RuleDef) string {
	ps := make([]string, len(rules))
	for i, r := range rules {
		ps[i] = r.Pattern
	}
	return link(ps...)
}

func linkEntries(entries []Entry) string {
	ps := make([]string, len(entries))
	for i, e := range entries {
		ps[i] = e.Pattern
	}
	return link(ps...)
}

func plain(patterns ...string) []RuleDef {
	out := make([]RuleDef, len(patterns))
	for i, p := range patterns {
		out[i] = RuleDef{Pattern: p}
	}
	return out
}

func named(pattern, replace string) RuleDef {
	return RuleDef{Pattern: pattern, Replace: replace}
}

func transformed(pattern string, ts ...Transform) RuleDef {
	return RuleDef{Pattern: pattern, Transforms: ts}
}

// suffixed requires suffix to follow each rule, with between allowed in
// the middle.
func suffixed(suffix string, rules []RuleDef, between string) []RuleDef {
	out := make([]RuleDef, len(rules))
	for i, r := range rules {
		r.Pattern = `(` + r.Pattern + `)(?:` + between + `)?(?:` + suffix + `)`
		out[i] = r
	}
	return out
}

var channels = [][2]int{{1, 0}, {2, 0}, {5, 0}, {5, 1}, {6, 1}, {7, 1}}

// withChannels expands each audio rule into its channel layouts followed by
// the bare codec.
func withChannels(rules []RuleDef) []RuleDef {
	var out []RuleDef
	for _, r := range rules {
		for _, ch := range channels {
			out = append(out, RuleDef{
				Pattern: fmt.Sprintf(`((?:%s)%s*%d[. \-]?%d(?:ch)?)`, r.Pattern, delim, ch[0], ch[1]),
				Replace: fmt.Sprintf("%s %d.%d", r.Replace, ch[0], ch[1]),
			})
		}
		out = append(out, RuleDef{Pattern: `(` + r.Pattern + `)`, Replace: r.Replace})
	}
	return out
}

var completeSeries = []string{
	`(?:the\s)?complete\s(?:series|season|collection)$`,
	`(?:the)\scomplete\s?(?:series|season|collection)?$`,
}

var exceptions = []ExceptionRecord{
	{
		Title:     "Marvel's Agents of S H I E L D",
		Field:     "title",
		Value:     "Marvel's Agents of S H I E L D",
		Corrected: "Marvel's Agents of S.H.I.E.L.D.",
	},
	{
		Title:     "Marvels Agents of S H I E L D",
		Field:     "title",
		Value:     "Marvels Agents of S H I E L D",
		Corrected: "Marvel's Agents of S.H.I.E.L.D.",
	},
	{
		Title:     "Magnum P I",
		Field:     "title",
		Value:     "Magnum P I",
		Corrected: "Magnum P.I.",
	},
}
