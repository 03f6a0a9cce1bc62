package release

import (
	"strings"

	"relname/internal/catalog"
)

// placeholder marks subtitles that were announced without a language.
const placeholder = "Available"

// standardiseText applies a rule's canonical label and transforms.
func standardiseText(rule *catalog.Rule, text string) string {
	if rule.Replace != "" {
		text = rule.Replace
	}
	for _, t := range rule.Transforms {
		text = t.Apply(text)
	}
	return text
}

// standardiseList maps list tokens through the field's lookup table. A
// language list with no recognised token becomes the placeholder.
func (st *state) standardiseList(f *catalog.Field, rule *catalog.Rule, tokens []string) Value {
	if rule.Replace != "" {
		return StringList{standardiseText(rule, rule.Replace)}
	}
	switch f.Canon {
	case catalog.CanonLanguages:
		langs := st.languages(tokens)
		if len(langs) == 0 {
			return String(placeholder)
		}
		return StringList(langs)
	default:
		return StringList(tokens)
	}
}

// genres walks text with the genre table so entries holding a delimiter,
// such as Sci-Fi, stay whole. Unknown words are kept only in raw mode; a
// standardised list with no known genre yields no value.
func (st *state) genres(rule *catalog.Rule, text string) (Value, bool) {
	if st.opts.Standardise && rule.Replace != "" {
		return StringList{standardiseText(rule, rule.Replace)}, true
	}
	runes := []rune(text)
	var raw, names []string
	for i := 0; i < len(runes); {
		if isDelimiter(runes[i]) {
			i++
			continue
		}
		if name, n, ok := st.cat.GenreAt(runes[i:]); ok && wordEnds(runes, i+n) {
			raw = append(raw, strings.TrimRightFunc(string(runes[i:i+n]), isDelimiter))
			names = append(names, name)
			i += n
			continue
		}
		j := i
		for j < len(runes) && !isDelimiter(runes[j]) {
			j++
		}
		raw = append(raw, string(runes[i:j]))
		i = j
	}
	out := raw
	if st.opts.Standardise {
		out = names
	}
	if len(out) == 0 {
		return nil, false
	}
	return StringList(out), true
}

// wordEnds reports whether a match ending at end stops on a token boundary.
func wordEnds(runes []rune, end int) bool {
	return end >= len(runes) || isDelimiter(runes[end]) || isDelimiter(runes[end-1])
}

// languages resolves tokens to canonical language names, dropping subtitle
// markers and unrecognised tokens.
func (st *state) languages(tokens []string) []string {
	marker := st.cat.SubtitleMarker()
	var out []string
	for _, tok := range tokens {
		stripped, err := marker.Replace(tok, "", -1, -1)
		if err != nil {
			stripped = tok
		}
		if name, ok := st.cat.Language(stripped); ok {
			out = append(out, name)
		}
	}
	return out
}
