package release

import (
	"regexp"
	"strings"
)

var (
	excessLead  = regexp.MustCompile(`^[-_.\s(),]+`)
	excessTrail = regexp.MustCompile(`[-.\s,]+$`)
	excessBreak = regexp.MustCompile(`[()/]`)
	excessSplit = regexp.MustCompile(`\.\.+|\s+`)
	// Tokens made only of these words and punctuation carry no information.
	excessNoise = regexp.MustCompile(`(?i)^(?:[^\p{L}\p{N}]*(?:complete|season|full))*[^\p{L}\p{N}]*$`)
)

// buildExcess turns the remaining unmatched text into the excess field.
func (st *state) buildExcess() {
	st.setExcess(excessTokens(st.gaps))
}

func excessTokens(gaps []string) []string {
	var out []string
	for _, gap := range gaps {
		gap = excessLead.ReplaceAllString(gap, "")
		gap = excessTrail.ReplaceAllString(gap, "")
		gap = excessBreak.ReplaceAllString(gap, " ")
		for _, tok := range excessSplit.Split(gap, -1) {
			tok = strings.Trim(tok, "-")
			if tok == "" || excessNoise.MatchString(tok) {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}

// setExcess stores tokens as a single string, a list, or nothing.
func (st *state) setExcess(tokens []string) {
	switch len(tokens) {
	case 0:
		st.res.remove("excess")
	case 1:
		st.res.set("excess", String(tokens[0]))
	default:
		st.res.set("excess", StringList(tokens))
	}
}
