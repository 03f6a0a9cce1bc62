package release

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"relname/internal/catalog"
	"relname/internal/logging"
)

var encoderSiteSplit = regexp.MustCompile(`[\-\s)]`)

// beforeExcess collects the unmatched text and runs the hooks that recover
// fields from it.
func (st *state) beforeExcess() {
	for _, g := range st.spans.complement(st.runes, true) {
		st.gaps = append(st.gaps, st.text(g))
	}
	st.stripCompleteSeries()
	st.recoverEpisodeName()
	st.recoverEncoderSite()
}

// stripCompleteSeries removes a trailing "complete series" phrase from the
// title.
func (st *state) stripCompleteSeries() {
	title, ok := st.res.GetString("title")
	if !ok || title == "" {
		return
	}
	runes := []rune(title)
	m := findFirst(st.cat.CompleteSeries(), runes)
	if m == nil {
		return
	}
	stripped := string(runes[:m.Index]) + string(runes[m.Index+m.Length:])
	st.res.set("title", String(cleanString(stripped)))
}

// recoverEpisodeName takes the first word run of the unmatched text and
// keeps it as the episode name when it directly follows an episode marker,
// a date or a year.
func (st *state) recoverEpisodeName() {
	var candidate string
	for _, gap := range st.gaps {
		if m := findFirst(st.cat.EpisodeName(), []rune(gap)); m != nil {
			candidate = m.String()
			break
		}
	}
	if strings.TrimSpace(candidate) == "" {
		return
	}
	anchored, err := catalog.Compile(
		`(?:`+st.cat.EpisodeAnchor()+`)[._\-\s+]*(?<name>`+regexp2.Escape(candidate)+`)`,
		regexp2.IgnoreCase)
	if err != nil {
		return
	}
	m := findFirst(anchored, st.runes)
	if m == nil {
		return
	}
	g := m.GroupByName("name")
	if g == nil || len(g.Captures) == 0 {
		return
	}
	raw := g.String()
	span := Span{Start: g.Index, End: g.Index + g.Length}
	st.res.setSpan("episodeName", String(cleanString(raw)), span)
	st.spans.add(span)
	st.consume(raw)
	st.logger.Debug("episode name recovered", logging.String("value", raw))
}

// recoverEncoderSite splits a trailing "encoder site" pair, such as
// "GROUP [site]", into its two fields.
func (st *state) recoverEncoderSite() {
	for _, gap := range st.gaps {
		for _, m := range findAll(st.cat.PreWebsiteEncoder(), []rune(strings.TrimSpace(gap))) {
			anchored, err := catalog.Compile(
				`[\s\-](`+regexp2.Escape(m.String())+`)(?:\.`+st.cat.Filetype()+`)?$`,
				regexp2.IgnoreCase)
			if err != nil {
				continue
			}
			full := findFirst(anchored, st.runes)
			if full == nil {
				continue
			}
			pair := full.Groups()[1]
			var parts []string
			for _, p := range encoderSiteSplit.Split(pair.String(), -1) {
				if p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) == 2 {
				encoder, site := parts[0], parts[1]
				encLen := len([]rune(encoder))
				siteLen := len([]rune(site))
				end := pair.Index + pair.Length
				st.res.setSpan("encoder", String(cleanString(encoder)), Span{Start: pair.Index, End: pair.Index + encLen})
				if !st.res.Has("site") {
					st.res.setSpan("site", String(cleanString(site)), Span{Start: end - siteLen, End: end})
				}
				st.spans.add(Span{Start: pair.Index, End: end})
				st.consume(pair.String())
				st.logger.Debug("encoder and site recovered",
					logging.String("encoder", encoder),
					logging.String("site", site),
				)
			}
			return
		}
	}
}

// consume removes text from every unmatched gap.
func (st *state) consume(text string) {
	if text == "" {
		return
	}
	for i, gap := range st.gaps {
		st.gaps[i] = strings.ReplaceAll(gap, text, "")
	}
}
