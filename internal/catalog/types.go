package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the declared value shape of a field.
type Kind int

const (
	KindString Kind = iota + 1
	KindInt
	KindBool
	KindIntList
	KindStringList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindIntList:
		return "int-list"
	case KindStringList:
		return "string-list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Extractor selects how a match is turned into a raw value.
type Extractor int

const (
	// ExtractCapture uses the first non-empty capture group, or the whole
	// match when the pattern has no groups.
	ExtractCapture Extractor = iota + 1
	// ExtractRange reads digit runs and expands them into an inclusive range.
	ExtractRange
	// ExtractSplit splits the captured text on delimiters.
	ExtractSplit
	// ExtractSubtitles splits like ExtractSplit and drops subtitle marker
	// tokens when more than one token is present.
	ExtractSubtitles
)

func (e Extractor) String() string {
	switch e {
	case ExtractCapture:
		return "capture"
	case ExtractRange:
		return "range"
	case ExtractSplit:
		return "split"
	case ExtractSubtitles:
		return "subtitles"
	default:
		return fmt.Sprintf("extractor(%d)", int(e))
	}
}

// Canon selects the token lookup table used during standardisation.
type Canon int

const (
	CanonNone Canon = iota
	CanonLanguages
	CanonGenres
)

// Op is a transform operation applied to a standardised string value.
type Op int

const (
	OpUpper Op = iota + 1
	OpLower
	OpTrim
	OpReplace
)

// Transform is one step of a rule's value transform chain.
type Transform struct {
	Op  Op
	Old string
	New string
}

// Upper upper-cases the value.
func Upper() Transform { return Transform{Op: OpUpper} }

// Lower lower-cases the value.
func Lower() Transform { return Transform{Op: OpLower} }

// Trim removes surrounding whitespace.
func Trim() Transform { return Transform{Op: OpTrim} }

// Replace substitutes every occurrence of old with new.
func Replace(old, new string) Transform { return Transform{Op: OpReplace, Old: old, New: new} }

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Apply runs the transform against s.
func (t Transform) Apply(s string) string {
	switch t.Op {
	case OpUpper:
		return upperCaser.String(s)
	case OpLower:
		return lowerCaser.String(s)
	case OpTrim:
		return strings.TrimSpace(s)
	case OpReplace:
		return strings.ReplaceAll(s, t.Old, t.New)
	default:
		return s
	}
}

func (t Transform) valid() bool {
	switch t.Op {
	case OpUpper, OpLower, OpTrim:
		return true
	case OpReplace:
		return t.Old != ""
	default:
		return false
	}
}

// RuleDef declares one pattern of a field.
type RuleDef struct {
	Pattern string
	// Replace, when set, becomes the standardised value of a match.
	Replace    string
	Transforms []Transform
}

// FieldDef declares one field of a catalogue definition.
type FieldDef struct {
	Key     string
	Kind    Kind
	Extract Extractor
	Canon   Canon
	Rules   []RuleDef
	// Bounded wraps each rule in word boundaries when compiled.
	Bounded bool
	// AfterTitle restricts matches to text following the title anchor.
	AfterTitle bool
	// Triggers further restricts AfterTitle: the restriction only applies
	// when one of these patterns matches the name.
	Triggers []string
}

// ExceptionRecord corrects a known mis-split title. When the parsed title is
// exactly Title and Field holds Value, Field is removed and the title becomes
// Corrected.
type ExceptionRecord struct {
	Title     string
	Field     string
	Value     string
	Corrected string
}

// Entry maps a token pattern to its canonical name.
type Entry struct {
	Pattern string
	Name    string
}

// Hooks holds the raw auxiliary patterns used around the main extraction loop.
type Hooks struct {
	EpisodeName       string
	PreWebsiteEncoder string
	CompleteSeries    string
	SubtitleMarker    string
}

// Definition is the declarative input to Build.
type Definition struct {
	Fields        []FieldDef
	OverlapExempt []string
	TitleAnchor   string
	// EpisodeAnchor is the pattern that precedes an episode name.
	EpisodeAnchor string
	// Filetype is the pattern of a trailing container extension.
	Filetype   string
	Languages  []Entry
	Genres     []Entry
	Exceptions []ExceptionRecord
	Hooks      Hooks
}
