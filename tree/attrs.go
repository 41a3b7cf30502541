package tree

import (
	"strconv"

	"cogentcore.org/core/ordmap"
)

// Attribute keys of the core schema. Annotation blocks in input files may
// introduce arbitrary keys next to these. KeyName is a fallback label
// some producers use in place of KeyTitle.
const (
	KeyTitle    = "title"
	KeyName     = "name"
	KeyDistance = "distance"
	KeySupport  = "support"
)

// A Kind discriminates the payload of a Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// A Value is a single tagged attribute value: a string or a number.
// The zero value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// StringValue returns a Value holding a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns a Value holding a number.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind reports which payload the value holds.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload. It is empty for number values.
func (v Value) Text() string { return v.str }

// Number returns the numeric payload. It is 0 for string values.
func (v Value) Number() float64 { return v.num }

// String renders the payload of either kind.
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// Attrs is an insertion-ordered mapping from attribute keys to tagged
// values. The zero value is an empty bag ready for use. Setting a key that
// is already present replaces its value without disturbing the order.
type Attrs struct {
	om ordmap.Map[string, Value]
}

// Set adds or replaces the value for a key.
func (a *Attrs) Set(key string, v Value) { a.om.Add(key, v) }

// SetString sets key to a string value.
func (a *Attrs) SetString(key, s string) { a.om.Add(key, StringValue(s)) }

// SetNumber sets key to a numeric value.
func (a *Attrs) SetNumber(key string, f float64) { a.om.Add(key, NumberValue(f)) }

// Get returns the value for a key.
func (a *Attrs) Get(key string) (Value, bool) { return a.om.ValueByKeyTry(key) }

// Text returns the string payload for a key. The second return value is
// false if the key is absent or holds a number.
func (a *Attrs) Text(key string) (string, bool) {
	v, ok := a.om.ValueByKeyTry(key)
	if !ok || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Number returns the numeric payload for a key. The second return value is
// false if the key is absent or holds a string.
func (a *Attrs) Number(key string) (float64, bool) {
	v, ok := a.om.ValueByKeyTry(key)
	if !ok || v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Has reports whether a key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.om.ValueByKeyTry(key)
	return ok
}

// Len returns the number of attributes.
func (a *Attrs) Len() int { return a.om.Len() }

// Keys returns the attribute keys in insertion order.
func (a *Attrs) Keys() []string { return a.om.Keys() }
