package release

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Span is a half-open rune range into the trimmed release name.
type Span struct {
	Start int
	End   int
}

// Result is the outcome of one parse. Fields keep the order in which they
// were committed.
type Result struct {
	name   string
	keys   []string
	values map[string]Value
	spans  map[string]Span
}

func newResult(name string) *Result {
	return &Result{
		name:   name,
		values: make(map[string]Value),
		spans:  make(map[string]Span),
	}
}

// Name returns the trimmed input the result was parsed from.
func (r *Result) Name() string { return r.name }

// Get returns the value of key.
func (r *Result) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the present field keys in commit order.
func (r *Result) Keys() []string { return slices.Clone(r.keys) }

// Len returns the number of present fields.
func (r *Result) Len() int { return len(r.keys) }

// Span returns the originating range of key. Synthesized fields have none.
func (r *Result) Span(key string) (Span, bool) {
	s, ok := r.spans[key]
	return s, ok
}

// Fields returns a copy of the field map.
func (r *Result) Fields() map[string]Value {
	out := make(map[string]Value, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Title returns the title field, or "" when absent.
func (r *Result) Title() string {
	if v, ok := r.values["title"].(String); ok {
		return string(v)
	}
	return ""
}

// GetString returns the field as a string when it is string shaped.
func (r *Result) GetString(key string) (string, bool) {
	v, ok := r.values[key].(String)
	return string(v), ok
}

// GetInt returns the field as an integer when it is integer shaped.
func (r *Result) GetInt(key string) (int, bool) {
	v, ok := r.values[key].(Int)
	return int(v), ok
}

// GetStrings returns the string elements of a string or string list field.
func (r *Result) GetStrings(key string) []string {
	v, ok := r.values[key]
	if !ok {
		return nil
	}
	return stringsOf(v)
}

// GetInts returns the elements of an integer list field.
func (r *Result) GetInts(key string) []int {
	switch v := r.values[key].(type) {
	case IntList:
		return slices.Clone(v)
	case Int:
		return []int{int(v)}
	default:
		return nil
	}
}

func (r *Result) set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Result) setSpan(key string, v Value, s Span) {
	r.set(key, v)
	r.spans[key] = s
}

func (r *Result) remove(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	delete(r.spans, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// MarshalJSON encodes the result as an object in commit order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", key, err)
		}
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
