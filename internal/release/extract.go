package release

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/dlclark/regexp2"

	"relname/internal/catalog"
)

var (
	digitRun     = regexp.MustCompile(`\d+`)
	delimiterRun = regexp.MustCompile(`[.\s\-+_/(),]+`)
	subsMarker   = regexp.MustCompile(`(?i)^(?:subs?|soft)`)
)

// captures holds the groups of one match, excluding the whole match.
type captures struct {
	whole  string
	groups []string
}

func capturesOf(m *regexp2.Match) captures {
	all := m.Groups()
	c := captures{whole: m.String()}
	for i := 1; i < len(all); i++ {
		c.groups = append(c.groups, groupText(&all[i]))
	}
	return c
}

// clean picks the representative text: the first non-empty group after the
// first, then the first group, then the whole match.
func (c captures) clean() string {
	if len(c.groups) == 0 {
		return c.whole
	}
	for _, g := range c.groups[1:] {
		if g != "" {
			return g
		}
	}
	return c.groups[0]
}

// extract turns a match into a value of the field's declared kind.
func (st *state) extract(f *catalog.Field, rule *catalog.Rule, m *regexp2.Match) (Value, bool) {
	c := capturesOf(m)
	text := c.clean()
	switch f.Kind {
	case catalog.KindBool:
		return Bool(true), true
	case catalog.KindInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, false
		}
		return Int(n), true
	case catalog.KindIntList:
		nums := numberRange(text, c.groups)
		if len(nums) == 0 {
			return nil, false
		}
		return IntList(nums), true
	case catalog.KindString:
		if st.opts.Standardise {
			return String(standardiseText(rule, text)), true
		}
		return String(text), true
	case catalog.KindStringList:
		if f.Canon == catalog.CanonGenres {
			return st.genres(rule, text)
		}
		tokens := splitTokens(text)
		if f.Extract == catalog.ExtractSubtitles && len(tokens) > 1 {
			tokens = slices.DeleteFunc(tokens, subsMarker.MatchString)
		}
		if len(tokens) == 0 {
			return nil, false
		}
		if st.opts.Standardise {
			return st.standardiseList(f, rule, tokens), true
		}
		return StringList(tokens), true
	default:
		return nil, false
	}
}

// numberRange expands season and episode text into a sorted inclusive list.
// Several numbers span their minimum to maximum; a single number with a
// second captured bound spans the two groups.
func numberRange(text string, groups []string) []int {
	var nums []int
	for _, d := range digitRun.FindAllString(text, -1) {
		n, err := strconv.Atoi(d)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	switch {
	case len(nums) >= 2:
		return inclusive(slices.Min(nums), slices.Max(nums))
	case len(nums) == 1 && len(groups) >= 2 && groups[0] != "" && groups[1] != "":
		lo, errLo := strconv.Atoi(groups[0])
		hi, errHi := strconv.Atoi(groups[1])
		if errLo != nil || errHi != nil {
			return nums
		}
		return inclusive(min(lo, hi), max(lo, hi))
	default:
		return nums
	}
}

func inclusive(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}
	return out
}

func splitTokens(text string) []string {
	var out []string
	for _, tok := range delimiterRun.Split(text, -1) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
