package release

import (
	"strconv"
	"strings"
)

// Value is a parsed field value. The concrete type is one of String, Int,
// Bool, IntList, StringList or BoolList.
type Value interface {
	isValue()
	// Text renders the value for display.
	Text() string
}

type (
	String     string
	Int        int
	Bool       bool
	IntList    []int
	StringList []string
	BoolList   []bool
)

func (String) isValue()     {}
func (Int) isValue()        {}
func (Bool) isValue()       {}
func (IntList) isValue()    {}
func (StringList) isValue() {}
func (BoolList) isValue()   {}

func (v String) Text() string { return string(v) }
func (v Int) Text() string    { return strconv.Itoa(int(v)) }
func (v Bool) Text() string   { return strconv.FormatBool(bool(v)) }

func (v IntList) Text() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func (v StringList) Text() string { return strings.Join(v, ", ") }

func (v BoolList) Text() string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = strconv.FormatBool(b)
	}
	return strings.Join(parts, ", ")
}

// asList wraps a scalar into its list form. Lists are returned unchanged.
func asList(v Value) Value {
	switch v := v.(type) {
	case String:
		return StringList{string(v)}
	case Int:
		return IntList{int(v)}
	case Bool:
		return BoolList{bool(v)}
	case IntList, StringList, BoolList:
		return v
	default:
		return v
	}
}

// contains reports whether v equals want, or holds it as a list element.
func contains(v Value, want string) bool {
	switch v := v.(type) {
	case String:
		return string(v) == want
	case Int:
		return v.Text() == want
	case Bool:
		return v.Text() == want
	case IntList:
		for _, n := range v {
			if strconv.Itoa(n) == want {
				return true
			}
		}
	case StringList:
		for _, s := range v {
			if s == want {
				return true
			}
		}
	case BoolList:
		for _, b := range v {
			if strconv.FormatBool(b) == want {
				return true
			}
		}
	}
	return false
}

// truthy mirrors emptiness checks on the value.
func truthy(v Value) bool {
	switch v := v.(type) {
	case String:
		return v != ""
	case Int:
		return v != 0
	case Bool:
		return bool(v)
	case IntList:
		return len(v) > 0
	case StringList:
		return len(v) > 0
	case BoolList:
		return len(v) > 0
	default:
		return false
	}
}

// stringsOf returns the string elements of v, or nil when v is not string
// shaped.
func stringsOf(v Value) []string {
	switch v := v.(type) {
	case String:
		return []string{string(v)}
	case StringList:
		return append([]string(nil), v...)
	case Int, Bool, IntList, BoolList:
		return nil
	default:
		return nil
	}
}
