package jv

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union over the JSON variants: null, bool,
// 64-bit integer, 64-bit float, string, array and object.
//
// The zero Value is null. Values are immutable once constructed; accessors
// that hand out the underlying slice or map do so without copying, and
// mutating those is undefined behavior.
type Value struct {
	a []Value
	o map[string]Value
	s string
	i int64
	f float64
	k Kind
	b bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{k: KindBool, b: v} }

// Int returns an exact integer value.
func Int(v int64) Value { return Value{k: KindInt, i: v} }

// Double returns a floating-point value.
func Double(v float64) Value { return Value{k: KindDouble, f: v} }

// String returns a string value.
func String(v string) Value { return Value{k: KindString, s: v} }

// Array returns an array value holding the given elements in order.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{k: KindArray, a: elems}
}

// Object returns an object value. The map is copied so later writes to the
// argument do not leak into the value; key collisions follow the map's own
// last-write-wins semantics.
func Object(members map[string]Value) Value {
	copied := make(map[string]Value, len(members))
	for k, v := range members {
		copied[k] = v
	}
	return Value{k: KindObject, o: copied}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.k }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.k == KindNull }

// Equal reports structural equality between two values.
//
// Int and Double compare equal when the integer converts exactly to the
// float; all other cross-variant comparisons are unequal. Arrays compare
// element-wise in order, objects compare key-wise ignoring iteration order.
func (v Value) Equal(w Value) bool {
	switch v.k {
	case KindNull:
		return w.k == KindNull
	case KindBool:
		return w.k == KindBool && v.b == w.b
	case KindInt:
		switch w.k {
		case KindInt:
			return v.i == w.i
		case KindDouble:
			return float64(v.i) == w.f
		}
		return false
	case KindDouble:
		switch w.k {
		case KindDouble:
			return v.f == w.f
		case KindInt:
			return v.f == float64(w.i)
		}
		return false
	case KindString:
		return w.k == KindString && v.s == w.s
	case KindArray:
		if w.k != KindArray || len(v.a) != len(w.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(w.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if w.k != KindObject || len(v.o) != len(w.o) {
			return false
		}
		for k, vv := range v.o {
			wv, ok := w.o[k]
			if !ok || !vv.Equal(wv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a debug form of the value: arrays as bracketed comma
// lists, objects as brace-delimited key: value lists with keys sorted for
// stable output, strings unquoted.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.k {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindDouble:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		b.WriteString(v.s)
	case KindArray:
		b.WriteByte('[')
		for i, elem := range v.a {
			if i > 0 {
				b.WriteString(", ")
			}
			elem.render(b)
		}
		b.WriteByte(']')
	case KindObject:
		keys := make([]string, 0, len(v.o))
		for k := range v.o {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			v.o[k].render(b)
		}
		b.WriteByte('}')
	}
}
