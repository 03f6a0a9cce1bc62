package release

import (
	"regexp"
	"strconv"
	"strings"

	"relname/internal/logging"
)

var (
	bracketSuffix   = regexp.MustCompile(`(\[(.*)\])`)
	punctuationOnly = regexp.MustCompile(`^[\[\],.+\-]*$`)
	vaguePair       = regexp.MustCompile(`(\d{1,2})-(\d{1,2})$`)
)

// afterExcess runs the passes that repair the finished field map.
func (st *state) afterExcess() {
	st.encoderFromExcess()
	st.siteFromEncoder()
	st.languageFromSubtitles()
	st.filterLanguages()
	st.subtitleAvailability()
	st.vagueSeasonEpisode()
	st.yearAsTitle()
	st.dropEmpty()
}

// encoderFromExcess takes the last leftover token as the release group.
func (st *state) encoderFromExcess() {
	if st.res.Has("encoder") {
		return
	}
	v, ok := st.res.Get("excess")
	if !ok {
		return
	}
	tokens := stringsOf(v)
	if len(tokens) == 0 {
		return
	}
	st.res.set("encoder", String(tokens[len(tokens)-1]))
	st.setExcess(tokens[:len(tokens)-1])
}

// siteFromEncoder splits a bracketed suffix off the encoder.
func (st *state) siteFromEncoder() {
	if st.res.Has("site") {
		return
	}
	encoder, ok := st.res.GetString("encoder")
	if !ok {
		return
	}
	m := bracketSuffix.FindStringSubmatch(encoder)
	if m == nil {
		return
	}
	if site := m[2]; !punctuationOnly.MatchString(site) {
		st.res.set("site", String(site))
	}
	st.res.set("encoder", String(strings.TrimSpace(strings.Replace(encoder, m[1], "", 1))))
}

// languageFromSubtitles treats the first of several subtitle languages as
// the audio language when no language was found.
func (st *state) languageFromSubtitles() {
	if st.res.Has("languages") {
		return
	}
	subs, ok := st.res.Get("subtitles")
	if !ok {
		return
	}
	list, ok := subs.(StringList)
	if !ok || len(list) < 2 {
		return
	}
	st.res.set("languages", StringList{list[0]})
	st.res.set("subtitles", StringList(append([]string(nil), list[1:]...)))
}

// filterLanguages keeps only tokens found in the language table.
func (st *state) filterLanguages() {
	v, ok := st.res.Get("languages")
	if !ok {
		return
	}
	var kept []string
	for _, tok := range stringsOf(v) {
		if _, ok := st.cat.Language(tok); ok {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		st.res.remove("languages")
		return
	}
	st.res.set("languages", StringList(kept))
}

// subtitleAvailability records whether subtitles exist and resolves the
// placeholder to the known languages, dropping it when there are none.
func (st *state) subtitleAvailability() {
	subs, ok := st.res.Get("subtitles")
	if !ok {
		return
	}
	st.res.set("is_subtitle_available", Bool(truthy(subs)))
	if !isPlaceholder(subs) {
		return
	}
	if langs, ok := st.res.Get("languages"); ok {
		st.res.set("subtitles", langs)
		return
	}
	st.res.remove("subtitles")
}

func isPlaceholder(v Value) bool {
	switch v := v.(type) {
	case String:
		return string(v) == placeholder
	case StringList:
		return len(v) == 1 && v[0] == placeholder
	case Int, Bool, IntList, BoolList:
		return false
	default:
		return false
	}
}

// vagueSeasonEpisode reads a trailing "NN-NN" in the title as a season and
// episode pair when neither was found.
func (st *state) vagueSeasonEpisode() {
	if st.res.Has("seasons") || st.res.Has("episodes") {
		return
	}
	title, ok := st.res.GetString("title")
	if !ok {
		return
	}
	m := vaguePair.FindStringSubmatchIndex(title)
	if m == nil {
		return
	}
	season, _ := strconv.Atoi(title[m[2]:m[3]])
	episode, _ := strconv.Atoi(title[m[4]:m[5]])
	offset := 0
	if s, ok := st.res.Span("title"); ok {
		offset = s.Start
	}
	runeAt := func(i int) int { return offset + len([]rune(title[:i])) }
	st.res.setSpan("seasons", IntList{season}, Span{Start: runeAt(m[2]), End: runeAt(m[3])})
	st.res.setSpan("episodes", IntList{episode}, Span{Start: runeAt(m[4]), End: runeAt(m[5])})
	trimmed := cleanString(title[:m[0]])
	st.res.setSpan("title", String(trimmed), Span{Start: offset, End: runeAt(m[0])})
	st.logger.Debug("vague season and episode",
		logging.Args(logging.DecisionAttrs("season_episode", "title_suffix", title[m[0]:])...)...)
}

// yearAsTitle covers titles that are only a year, such as "1917".
func (st *state) yearAsTitle() {
	year, ok := st.res.Get("year")
	if !ok {
		return
	}
	if st.res.Title() != "" {
		return
	}
	st.res.set("title", String(year.Text()))
	delete(st.res.spans, "title")
	st.res.remove("year")
}

// dropEmpty removes fields whose value is the empty string.
func (st *state) dropEmpty() {
	for _, key := range st.res.Keys() {
		if v, ok := st.res.Get(key); ok {
			if s, isString := v.(String); isString && s == "" {
				st.res.remove(key)
			}
		}
	}
}

// coerceLists wraps every field except title and episodeName in a list.
func (st *state) coerceLists() {
	for _, key := range st.res.Keys() {
		if key == "title" || key == "episodeName" {
			continue
		}
		v, _ := st.res.Get(key)
		st.res.set(key, asList(v))
	}
}
