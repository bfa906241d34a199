// Package game implements the extracted game-data entities.
package game

import "sort"

// Record is one loosely typed object from the extracted game catalogs.
// NOTE: This is data-only. Values carry whatever the JSON decoder produced:
// string, float64, bool, []any, or a nested object. All interpretation
// (reference expansion, value scaling, template matching) is done by the
// engine, not here.
type Record map[string]any

// AsRecord returns v as a Record when it is a JSON object. Nested objects
// decode as map[string]any; objects built in code are already Records. Both
// shapes flow through the pipeline, so every consumer goes through here.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	}
	return nil, false
}

// AsNumber returns v as a float64 when it is numeric. JSON numbers decode to
// float64; fixture data built in tests may use untyped int literals. Bools
// are not numbers here.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	}
	return 0, false
}

// Str returns the string value for key, or "" when absent or not a string.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Num returns the numeric value for key.
func (r Record) Num(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return AsNumber(v)
}

// NumOr returns the numeric value for key, or fallback when absent.
func (r Record) NumOr(key string, fallback float64) float64 {
	if n, ok := r.Num(key); ok {
		return n
	}
	return fallback
}

// Bool returns the boolean value for key, or false when absent.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// List returns the sequence value for key, or nil.
func (r Record) List(key string) []any {
	l, _ := r[key].([]any)
	return l
}

// Child returns the nested object for key, or nil.
func (r Record) Child(key string) Record {
	c, ok := AsRecord(r[key])
	if !ok {
		return nil
	}
	return c
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// SortedKeys returns the record's keys in lexicographic order. Anything that
// walks a record and produces ordered output iterates through here.
func (r Record) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the record. The copy shares nothing with the
// original, so expanding one hero never leaks into another.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies any decoded JSON value. Nested objects come back as
// Records regardless of their input shape.
func CloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]any:
		return Record(val).Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}
