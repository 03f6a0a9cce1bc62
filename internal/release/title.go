package release

import (
	"slices"
	"strings"

	"github.com/dlclark/regexp2"

	"relname/internal/catalog"
	"relname/internal/logging"
)

// nonLatin covers Japanese, Chinese, Cyrillic and Arabic script.
const nonLatin = `\u3040-\u30ff\u3400-\u4dbf\u4e00-\u9fff\uf900-\ufaff\uff66-\uff9f\u0400-\u04ff\u0600-\u06ff`

func mustCompile(pattern string) *regexp2.Regexp {
	re, err := catalog.Compile(pattern, regexp2.None)
	if err != nil {
		panic(err)
	}
	return re
}

var (
	// An opening parenthesis, or a bracket group that is short or holds a
	// digit, ends the title.
	titleStop       = mustCompile(`\(|\[(?:[^\]]{0,3}|[^\]]*\d[^\]]*)\]`)
	titleLeadDebris = mustCompile(`^(?:\)|\[.*\])`)

	cleanLead     = mustCompile(`^( -|\(|\[)`)
	cleanTrail    = mustCompile(`([\[)_\]]|- )$`)
	cyrillicCast  = mustCompile(`\([^)]*[\u0400-\u04ff][^)]*\)$|\/.*\((.*)\)$`)
	altTitles     = mustCompile(`[^/|(]*[` + nonLatin + `][^/|]*/|[/|][^/|(]*[` + nonLatin + `][^/|]*`)
	hasLatin      = mustCompile(`[a-zA-Z]`)
	nonLatinRun   = mustCompile(`[` + nonLatin + `](?:[^a-zA-Z]*[` + nonLatin + `])?`)
	edgeSymbols   = mustCompile(`^[^\w` + nonLatin + `#\[【★]+|[ \-:/\\\[|{(#$&^]+$`)
	edgeRemaining = mustCompile(`^[^\w` + nonLatin + `#]+|\]$`)
	groupAtStart  = mustCompile(`^[\[【★].*[\]】★][ .]?(.+)`)
	groupAtEnd    = mustCompile(`(.+)[ .]?[\[【★].*[\]】★]$`)
	spaceRun      = mustCompile(`\s{2,}`)
)

// extractTitle commits the first meaningful unmatched region as the title.
func (st *state) extractTitle() {
	gaps := st.spans.complement(st.runes, false)
	if len(gaps) == 0 {
		st.res.set("title", String(""))
		return
	}
	span := gaps[0]
	if st.titleTooDeep(span.Start) {
		st.logger.Debug("title dropped",
			logging.Args(logging.DecisionAttrs("title", "empty", "unmatched region follows four fields")...)...)
		st.res.set("title", String(""))
		return
	}

	raw := st.text(span)
	if m := findFirst(titleStop, []rune(raw)); m != nil {
		span.End = span.Start + m.Index
		raw = st.text(span)
	}
	if m := findFirst(titleLeadDebris, []rune(raw)); m != nil {
		span.Start += m.Length
		raw = st.text(span)
	}

	title := cleanTitle(raw)
	st.res.setSpan("title", String(title), span)
	st.spans.add(span)
}

// titleTooDeep reports whether a region starting at start lies past the
// fourth committed field.
func (st *state) titleTooDeep(start int) bool {
	var starts []int
	for _, s := range st.res.spans {
		starts = append(starts, s.Start)
	}
	if len(starts) <= 3 {
		return false
	}
	slices.Sort(starts)
	return start > starts[3]
}

// cleanString strips separator debris from a fragment of the name.
func cleanString(s string) string {
	s = replaceFirst(cleanLead, s, "")
	if !strings.Contains(s, " ") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ".", " ")
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = replaceFirst(cleanTrail, s, "")
	s = strings.TrimSpace(s)
	return strings.Trim(s, " _-")
}

// cleanTitle applies cleanString and removes mixed-script noise: cast lists,
// alternate titles and stray non-Latin runs inside a Latin title.
func cleanTitle(raw string) string {
	title := cleanString(raw)
	title = replaceAll(cyrillicCast, title, "")
	title = replaceAll(altTitles, title, "")
	if matches(hasLatin, title) {
		title = replaceAll(nonLatinRun, title, "")
	}
	title = replaceAll(edgeSymbols, title, "")
	// Group tags at either edge go before the stray-bracket pass removes
	// their closing bracket.
	for _, re := range []*regexp2.Regexp{groupAtStart, groupAtEnd} {
		if m := findFirst(re, []rune(title)); m != nil {
			if inner := strings.TrimSpace(groupText(&m.Groups()[1])); inner != "" {
				title = inner
			}
		}
	}
	title = replaceAll(edgeRemaining, title, "")
	title = replaceAll(spaceRun, title, " ")
	return strings.TrimSpace(title)
}

func replaceAll(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}

func replaceFirst(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, 1)
	if err != nil {
		return s
	}
	return out
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
