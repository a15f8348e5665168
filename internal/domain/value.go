package domain

import (
	"fmt"
	"math"
	"sort"
)

// Value wraps a decoded JSON value together with whether it was present
// at all. Every accessor returns an explicit ok flag; defaulting is done
// by the caller with StringOr and never implicitly.
type Value struct {
	raw     any
	present bool
}

// ValueOf wraps a decoded JSON value.
func ValueOf(raw any) Value {
	return Value{raw: raw, present: true}
}

// Present reports whether the value exists. A JSON null is present.
func (v Value) Present() bool { return v.present }

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool { return !v.present || v.raw == nil }

// Raw returns the underlying decoded value.
func (v Value) Raw() any { return v.raw }

// Get returns the named member of an object. Members of non-objects and
// missing members are absent.
func (v Value) Get(name string) Value {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return Value{}
	}
	raw, ok := obj[name]
	if !ok {
		return Value{}
	}
	return ValueOf(raw)
}

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool { return IsPlainObject(v.raw) }

// Keys returns an object's member names in sorted order.
func (v Value) Keys() []string {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns the elements of a JSON array.
func (v Value) List() ([]Value, bool) {
	arr, ok := v.raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Value, len(arr))
	for i, raw := range arr {
		out[i] = ValueOf(raw)
	}
	return out, true
}

// Str returns the value as a string.
func (v Value) Str() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// NonEmptyString returns the value when it is a string with content.
func (v Value) NonEmptyString() (string, bool) {
	s, ok := v.raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// StringOr returns the string value, or def when the value is absent or
// null. Present non-string values are rendered with Text so that enum
// checks can report them.
func (v Value) StringOr(def string) string {
	if v.IsNull() {
		return def
	}
	if s, ok := v.raw.(string); ok {
		return s
	}
	return v.Text()
}

// Number returns the value as a finite number.
func (v Value) Number() (float64, bool) {
	f, ok := v.raw.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Bool returns the value as a boolean.
func (v Value) Bool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok
}

// Truthy mirrors the loose truthiness content authors expect: absent,
// null, false, 0 and "" are falsy; everything else is truthy.
func (v Value) Truthy() bool {
	switch t := v.raw.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

// Text renders the value for inclusion in a message.
func (v Value) Text() string {
	switch t := v.raw.(type) {
	case nil:
		if !v.present {
			return ""
		}
		return "null"
	case string:
		return t
	case map[string]any:
		return "[object]"
	case []any:
		return "[array]"
	default:
		return fmt.Sprint(t)
	}
}
