package jv

import (
	"errors"
	"math"
)

// ConvertFunc turns a resolved Value into a concrete type. It is both the
// converter plumbing for the retrieval policies and the contract custom
// types satisfy to participate in them.
type ConvertFunc[T any] func(Value) (T, error)

// Get resolves a path strictly: any resolution failure or conversion
// failure propagates as-is.
func Get[T any](root Value, conv ConvertFunc[T], path ...Fragment) (T, error) {
	v, err := resolvePath(root, false, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return conv(v)
}

// GetOpt resolves a path under the optional policy. A nil result pointer
// means absent. With MissingKeyBecomesNil a missing key or out-of-bounds
// index is absent; with NullBecomesNil a null subscripted along the path
// is absent, and so is a final value that is literally null but fails the
// typed conversion. Every other failure propagates.
func GetOpt[T any](root Value, conv ConvertFunc[T], opts Options, path ...Fragment) (*T, error) {
	v, err := resolvePath(root, opts.has(NullBecomesNil), path)
	if err != nil {
		var nullSub *nullSubscriptError
		if errors.As(err, &nullSub) {
			if opts.has(NullBecomesNil) {
				return nil, nil
			}
			return nil, &UnexpectedSubscriptError{Fragment: nullSub.fragment, Kind: KindNull}
		}
		if opts.has(MissingKeyBecomesNil) {
			var keyErr *KeyNotFoundError
			var idxErr *IndexOutOfBoundsError
			if errors.As(err, &keyErr) || errors.As(err, &idxErr) {
				return nil, nil
			}
		}
		return nil, err
	}
	out, err := conv(v)
	if err != nil {
		if v.IsNull() && opts.has(NullBecomesNil) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// GetOr resolves a path with MissingKeyBecomesNil forced on and
// substitutes fallback when the result is absent. A type mismatch on a
// present value still propagates; the fallback only covers absence.
func GetOr[T any](root Value, conv ConvertFunc[T], fallback T, path ...Fragment) (T, error) {
	out, err := GetOpt(root, conv, MissingKeyBecomesNil, path...)
	if err != nil {
		var zero T
		return zero, err
	}
	if out == nil {
		return fallback, nil
	}
	return *out, nil
}

// AsValue is the identity converter.
func AsValue(v Value) (Value, error) { return v, nil }

// AsBool converts a bool value. No coercions apply.
func AsBool(v Value) (bool, error) {
	if v.k != KindBool {
		return false, &NotConvertibleError{Target: "bool", Kind: v.k}
	}
	return v.b, nil
}

// AsInt converts to int64 from an Int, from a Double with an exactly
// integral in-range value, or from a String that is itself a valid
// numeral with an integral value.
func AsInt(v Value) (int64, error) {
	switch v.k {
	case KindInt:
		return v.i, nil
	case KindDouble:
		if iv, ok := integralInt64(v.f); ok {
			return iv, nil
		}
	case KindString:
		if num, ok := parseNumeral(v.s); ok {
			return AsInt(num)
		}
	}
	return 0, &NotConvertibleError{Target: "int", Kind: v.k}
}

// AsDouble converts to float64 from a Double, from an Int, or from a
// String that is itself a valid numeral.
func AsDouble(v Value) (float64, error) {
	switch v.k {
	case KindDouble:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	case KindString:
		if num, ok := parseNumeral(v.s); ok {
			return AsDouble(num)
		}
	}
	return 0, &NotConvertibleError{Target: "double", Kind: v.k}
}

// AsString converts a string value. No coercions apply.
func AsString(v Value) (string, error) {
	if v.k != KindString {
		return "", &NotConvertibleError{Target: "string", Kind: v.k}
	}
	return v.s, nil
}

// AsArray converts an array value to its element slice.
func AsArray(v Value) ([]Value, error) {
	if v.k != KindArray {
		return nil, &NotConvertibleError{Target: "array", Kind: v.k}
	}
	return v.a, nil
}

// AsObject converts an object value to its member map.
func AsObject(v Value) (map[string]Value, error) {
	if v.k != KindObject {
		return nil, &NotConvertibleError{Target: "object", Kind: v.k}
	}
	return v.o, nil
}

// ArrayOf converts every element of an array value, aborting on the first
// element that fails.
func ArrayOf[T any](v Value, conv ConvertFunc[T]) ([]T, error) {
	elems, err := AsArray(v)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		t, err := conv(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// DictionaryOf converts every member value of an object, aborting on the
// first member that fails.
func DictionaryOf[T any](v Value, conv ConvertFunc[T]) (map[string]T, error) {
	members, err := AsObject(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]T, len(members))
	for k, member := range members {
		t, err := conv(member)
		if err != nil {
			return nil, err
		}
		out[k] = t
	}
	return out, nil
}

// ArrayAs adapts ArrayOf into a converter, so homogeneous arrays compose
// with the retrieval policies.
func ArrayAs[T any](conv ConvertFunc[T]) ConvertFunc[[]T] {
	return func(v Value) ([]T, error) { return ArrayOf(v, conv) }
}

// DictionaryAs adapts DictionaryOf into a converter.
func DictionaryAs[T any](conv ConvertFunc[T]) ConvertFunc[map[string]T] {
	return func(v Value) (map[string]T, error) { return DictionaryOf(v, conv) }
}

// OrNil adapts a converter so a literal null becomes a nil pointer rather
// than a conversion error. Combined with ArrayAs this gives per-element
// null handling inside collections.
func OrNil[T any](conv ConvertFunc[T]) ConvertFunc[*T] {
	return func(v Value) (*T, error) {
		if v.IsNull() {
			return nil, nil
		}
		out, err := conv(v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// integralInt64 reports whether f is an exactly integral value in int64
// range and returns it.
func integralInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
