package catalog

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Fields returns the catalogue fields in processing order.
func (c *Catalog) Fields() []*Field {
	return append([]*Field(nil), c.fields...)
}

// Keys returns the field keys in processing order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.fields))
	for i, f := range c.fields {
		keys[i] = f.Key
	}
	return keys
}

// Field returns the field declared for key.
func (c *Catalog) Field(key string) (*Field, bool) {
	f, ok := c.byKey[key]
	return f, ok
}

// OverlapExempt reports whether spans of key may be overlapped by later
// fields.
func (c *Catalog) OverlapExempt(key string) bool {
	_, ok := c.exempt[key]
	return ok
}

// TitleAnchor returns the pattern that marks the end of the title region.
func (c *Catalog) TitleAnchor() *regexp2.Regexp { return c.titleAnchor }

// EpisodeAnchor returns the raw pattern expected directly before an episode
// name.
func (c *Catalog) EpisodeAnchor() string { return c.episodeAnchor }

// Filetype returns the raw pattern of a container extension.
func (c *Catalog) Filetype() string { return c.filetype }

// EpisodeName returns the case-sensitive episode name pattern.
func (c *Catalog) EpisodeName() *regexp2.Regexp { return c.episodeName }

// PreWebsiteEncoder returns the pattern of a trailing "encoder site" pair.
func (c *Catalog) PreWebsiteEncoder() *regexp2.Regexp { return c.preWebsiteEncoder }

// CompleteSeries returns the pattern of a complete-collection phrase.
func (c *Catalog) CompleteSeries() *regexp2.Regexp { return c.completeSeries }

// SubtitleMarker returns the pattern of subtitle marker words.
func (c *Catalog) SubtitleMarker() *regexp2.Regexp { return c.subtitleMarker }

// Exceptions returns the known title corrections.
func (c *Catalog) Exceptions() []ExceptionRecord {
	return append([]ExceptionRecord(nil), c.exceptions...)
}

// Language returns the canonical language name for token. Tables are matched
// as prefixes, first entry wins.
func (c *Catalog) Language(token string) (string, bool) {
	return first(c.languages, token)
}

// GenreAt matches the genre table at the start of text. It returns the
// canonical name and the matched length in runes.
func (c *Catalog) GenreAt(text []rune) (string, int, bool) {
	for _, l := range c.genres {
		m, err := l.re.FindRunesMatch(text)
		if err == nil && m != nil && m.Length > 0 {
			return l.name, m.Length, true
		}
	}
	return "", 0, false
}

// LanguageNames returns the canonical language names in table order, without
// duplicates.
func (c *Catalog) LanguageNames() []string {
	seen := make(map[string]struct{}, len(c.languages))
	var out []string
	for _, l := range c.languages {
		if _, ok := seen[l.name]; ok {
			continue
		}
		seen[l.name] = struct{}{}
		out = append(out, l.name)
	}
	return out
}

func first(table []lookup, token string) (string, bool) {
	for _, l := range table {
		if ok, _ := l.re.MatchString(token); ok {
			return l.name, true
		}
	}
	return "", false
}

// WithExceptions returns a copy of c with records appended to its exception
// table. The receiver is left unchanged.
func (c *Catalog) WithExceptions(records ...ExceptionRecord) (*Catalog, error) {
	for _, ex := range records {
		if ex.Title == "" || ex.Field == "" || ex.Corrected == "" {
			return nil, fmt.Errorf("%w: incomplete exception %+v", ErrInvalidDefinition, ex)
		}
	}
	clone := *c
	clone.exceptions = append(append([]ExceptionRecord(nil), c.exceptions...), records...)
	return &clone, nil
}
