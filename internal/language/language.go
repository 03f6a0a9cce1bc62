package language

import "strings"

type entry struct {
	name  string // Canonical name as produced by the parser
	code2 string // ISO 639-1 (2-letter), empty when none exists
	code3 string // ISO 639-2 primary (3-letter)
	alt3  string // ISO 639-2 alternate (e.g. "fre" vs "fra")
}

var languages = []entry{
	{"English", "en", "eng", ""},
	{"Spanish", "es", "spa", ""},
	{"French", "fr", "fra", "fre"},
	{"German", "de", "deu", "ger"},
	{"Italian", "it", "ita", ""},
	{"Portuguese", "pt", "por", ""},
	{"Japanese", "ja", "jpn", ""},
	{"Korean", "ko", "kor", ""},
	{"Chinese", "zh", "zho", "chi"},
	{"Russian", "ru", "rus", ""},
	{"Arabic", "ar", "ara", ""},
	{"Egyptian", "", "arz", ""},
	{"Hindi", "hi", "hin", ""},
	{"Dutch", "nl", "nld", "dut"},
	{"Polish", "pl", "pol", ""},
	{"Swedish", "sv", "swe", ""},
	{"Danish", "da", "dan", ""},
	{"Norwegian", "no", "nor", ""},
	{"Finnish", "fi", "fin", ""},
	{"Czech", "cs", "ces", "cze"},
	{"Greek", "el", "ell", "gre"},
	{"Hebrew", "he", "heb", ""},
	{"Hungarian", "hu", "hun", ""},
	{"Turkish", "tr", "tur", ""},
	{"Ukrainian", "uk", "ukr", ""},
	{"Vietnamese", "vi", "vie", ""},
	{"Thai", "th", "tha", ""},
	{"Indonesian", "id", "ind", ""},
	{"Tagalog", "tl", "tgl", ""},
	{"Albanian", "sq", "sqi", "alb"},
	{"Bengali", "bn", "ben", ""},
	{"Kannada", "kn", "kan", ""},
	{"Tamil", "ta", "tam", ""},
	{"Telugu", "te", "tel", ""},
	{"Marathi", "mr", "mar", ""},
	{"Malayalam", "ml", "mal", ""},
	{"Gujarati", "gu", "guj", ""},
	{"Punjabi", "pa", "pan", ""},
	{"Oriya", "or", "ori", ""},
	{"Urdu", "ur", "urd", ""},
	{"Sinhala", "si", "sin", ""},
	{"Interslavic", "", "", ""},
	{"Nordic", "", "", ""},
	{"ExYu", "", "", ""},
}

// Index maps built at init time.
var (
	byName  map[string]*entry
	byCode2 map[string]*entry
	byCode3 map[string]*entry
)

func init() {
	byName = make(map[string]*entry, len(languages))
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byName[strings.ToLower(e.name)] = e
		if e.code2 != "" {
			byCode2[e.code2] = e
		}
		if e.code3 != "" {
			byCode3[e.code3] = e
		}
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
	}
}

func lookup(value string) *entry {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if e, ok := byName[value]; ok {
		return e
	}
	if e, ok := byCode2[value]; ok {
		return e
	}
	if e, ok := byCode3[value]; ok {
		return e
	}
	return nil
}

// Known reports whether value is a canonical name or code this package maps.
func Known(value string) bool {
	return lookup(value) != nil
}

// ToISO2 converts a canonical name or code to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input and for names without a code.
func ToISO2(value string) string {
	if e := lookup(value); e != nil {
		return e.code2
	}
	return ""
}

// ToISO3 converts a canonical name or code to ISO 639-2 (3-letter).
// Returns "und" when no code exists.
func ToISO3(value string) string {
	if e := lookup(value); e != nil && e.code3 != "" {
		return e.code3
	}
	return "und"
}

// DisplayName returns the canonical name for any recognized name or code.
// Returns "Unknown" for empty input, or the uppercased input otherwise.
func DisplayName(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Unknown"
	}
	if e := lookup(value); e != nil {
		return e.name
	}
	return strings.ToUpper(strings.TrimSpace(value))
}

// Codes maps parsed language names to deduplicated index keys: the ISO 639-1
// code when one exists, otherwise the lowercased name.
func Codes(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	codes := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		code := ToISO2(trimmed)
		if code == "" {
			code = strings.ToLower(trimmed)
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

// Normalize maps a user supplied filter (name, 2- or 3-letter code) to the
// key stored by Codes.
func Normalize(value string) string {
	if code := ToISO2(value); code != "" {
		return code
	}
	return strings.ToLower(strings.TrimSpace(value))
}
