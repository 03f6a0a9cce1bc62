package catalog

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrInvalidDefinition reports a catalogue definition that cannot be built.
var ErrInvalidDefinition = errors.New("invalid catalog definition")

// MatchTimeout bounds each match attempt of a catalogue pattern. A match
// that runs out of time counts as no match.
const MatchTimeout = 250 * time.Millisecond

// Rule is a compiled pattern of a field.
type Rule struct {
	Pattern    string
	Replace    string
	Transforms []Transform
	re         *regexp2.Regexp
}

// Regexp returns the compiled, case-insensitive pattern.
func (r *Rule) Regexp() *regexp2.Regexp { return r.re }

// Field is a compiled catalogue field.
type Field struct {
	Key        string
	Kind       Kind
	Extract    Extractor
	Canon      Canon
	Rules      []*Rule
	AfterTitle bool
	triggers   []*regexp2.Regexp
}

// Triggers returns the patterns gating the AfterTitle restriction. An empty
// result means the restriction always applies.
func (f *Field) Triggers() []*regexp2.Regexp { return f.triggers }

type lookup struct {
	name string
	re   *regexp2.Regexp
}

// Catalog is an immutable, compiled pattern catalogue.
type Catalog struct {
	fields        []*Field
	byKey         map[string]*Field
	exempt        map[string]struct{}
	titleAnchor   *regexp2.Regexp
	episodeAnchor string
	filetype      string
	languages     []lookup
	genres        []lookup
	exceptions    []ExceptionRecord

	episodeName       *regexp2.Regexp
	preWebsiteEncoder *regexp2.Regexp
	completeSeries    *regexp2.Regexp
	subtitleMarker    *regexp2.Regexp
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Build(DefaultDefinition())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in definition: %v", err))
	}
	return c
})

// Default returns the shared built-in catalogue.
func Default() *Catalog {
	return defaultCatalog()
}

// Build validates def and compiles it into a Catalog.
func Build(def Definition) (*Catalog, error) {
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidDefinition)
	}
	c := &Catalog{
		byKey:         make(map[string]*Field, len(def.Fields)),
		exempt:        make(map[string]struct{}, len(def.OverlapExempt)),
		episodeAnchor: def.EpisodeAnchor,
		filetype:      def.Filetype,
		exceptions:    append([]ExceptionRecord(nil), def.Exceptions...),
	}
	for _, fd := range def.Fields {
		f, err := buildField(fd)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byKey[f.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, f.Key)
		}
		c.fields = append(c.fields, f)
		c.byKey[f.Key] = f
	}
	for _, key := range def.OverlapExempt {
		if _, ok := c.byKey[key]; !ok {
			return nil, fmt.Errorf("%w: overlap exemption for unknown field %q", ErrInvalidDefinition, key)
		}
		c.exempt[key] = struct{}{}
	}
	for _, ex := range def.Exceptions {
		if ex.Title == "" || ex.Field == "" || ex.Corrected == "" {
			return nil, fmt.Errorf("%w: incomplete exception %+v", ErrInvalidDefinition, ex)
		}
	}

	var err error
	if c.titleAnchor, err = compile("title anchor", def.TitleAnchor, regexp2.IgnoreCase); err != nil {
		return nil, err
	}
	if c.languages, err = compileLookups("language", def.Languages); err != nil {
		return nil, err
	}
	if c.genres, err = compileLookups("genre", def.Genres); err != nil {
		return nil, err
	}
	// Episode names are recognised by their capitalisation.
	if c.episodeName, err = compile("episode name", def.Hooks.EpisodeName, regexp2.None); err != nil {
		return nil, err
	}
	if c.preWebsiteEncoder, err = compile("pre-website encoder", def.Hooks.PreWebsiteEncoder, regexp2.IgnoreCase); err != nil {
		return nil, err
	}
	if c.completeSeries, err = compile("complete series", def.Hooks.CompleteSeries, regexp2.IgnoreCase); err != nil {
		return nil, err
	}
	if c.subtitleMarker, err = compile("subtitle marker", def.Hooks.SubtitleMarker, regexp2.IgnoreCase); err != nil {
		return nil, err
	}
	for name, p := range map[string]string{"episode anchor": def.EpisodeAnchor, "filetype": def.Filetype} {
		if _, err := compile(name, p, regexp2.IgnoreCase); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func buildField(fd FieldDef) (*Field, error) {
	if fd.Key == "" {
		return nil, fmt.Errorf("%w: field with empty key", ErrInvalidDefinition)
	}
	if err := checkShape(fd); err != nil {
		return nil, err
	}
	if len(fd.Rules) == 0 {
		return nil, fmt.Errorf("%w: field %q has no rules", ErrInvalidDefinition, fd.Key)
	}
	f := &Field{
		Key:        fd.Key,
		Kind:       fd.Kind,
		Extract:    fd.Extract,
		Canon:      fd.Canon,
		AfterTitle: fd.AfterTitle,
	}
	for i, rd := range fd.Rules {
		for _, t := range rd.Transforms {
			if !t.valid() {
				return nil, fmt.Errorf("%w: field %q rule %d has an invalid transform", ErrInvalidDefinition, fd.Key, i)
			}
		}
		if rd.Replace != "" && fd.Kind != KindString && fd.Kind != KindStringList {
			return nil, fmt.Errorf("%w: field %q rule %d replaces a %s value", ErrInvalidDefinition, fd.Key, i, fd.Kind)
		}
		pattern := rd.Pattern
		if fd.Bounded {
			pattern = `\b(?:` + pattern + `)\b`
		}
		re, err := compile(fmt.Sprintf("field %q rule %d", fd.Key, i), pattern, regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}
		f.Rules = append(f.Rules, &Rule{
			Pattern:    rd.Pattern,
			Replace:    rd.Replace,
			Transforms: append([]Transform(nil), rd.Transforms...),
			re:         re,
		})
	}
	for i, p := range fd.Triggers {
		re, err := compile(fmt.Sprintf("field %q trigger %d", fd.Key, i), p, regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}
		f.triggers = append(f.triggers, re)
	}
	return f, nil
}

// checkShape rejects kind, extractor and canon combinations that cannot
// produce a value of the declared kind.
func checkShape(fd FieldDef) error {
	ok := false
	switch fd.Kind {
	case KindString, KindInt, KindBool:
		ok = fd.Extract == ExtractCapture && fd.Canon == CanonNone
	case KindIntList:
		ok = fd.Extract == ExtractRange && fd.Canon == CanonNone
	case KindStringList:
		ok = (fd.Extract == ExtractSplit || fd.Extract == ExtractSubtitles) && fd.Canon != CanonNone
	}
	if !ok {
		return fmt.Errorf("%w: field %q declares kind %s with %s extraction", ErrInvalidDefinition, fd.Key, fd.Kind, fd.Extract)
	}
	return nil
}

func compile(what, pattern string, opts regexp2.RegexOptions) (*regexp2.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty %s pattern", ErrInvalidDefinition, what)
	}
	re, err := Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %s: %v", ErrInvalidDefinition, what, err)
	}
	return re, nil
}

// Compile compiles pattern with MatchTimeout applied.
func Compile(pattern string, opts regexp2.RegexOptions) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = MatchTimeout
	return re, nil
}

func compileLookups(what string, entries []Entry) ([]lookup, error) {
	out := make([]lookup, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: %s entry %q has no name", ErrInvalidDefinition, what, e.Pattern)
		}
		re, err := compile(what+" "+e.Name, `^(?:`+e.Pattern+`)`, regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}
		out = append(out, lookup{name: e.Name, re: re})
	}
	return out, nil
}
