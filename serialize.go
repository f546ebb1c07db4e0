package jv

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedType reports a Go value FromInterface cannot represent.
var ErrUnsupportedType = errors.New("jv: unsupported value type")

// Interface converts the value into the host-neutral primitive tree:
// nil, bool, int64, float64, string, []any and map[string]any. This is
// the form handed to a generic JSON writer.
func (v Value) Interface() any {
	switch v.k {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindDouble:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.a))
		for i, elem := range v.a {
			out[i] = elem.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.o))
		for k, member := range v.o {
			out[k] = member.Interface()
		}
		return out
	default:
		return nil
	}
}

// Marshal serializes the value through the standard JSON writer. Writer
// failures (for example non-finite doubles) propagate unchanged.
func Marshal(v Value) ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalIndent is Marshal with indentation.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v.Interface(), prefix, indent)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v)
}

// FromInterface builds a Value from a decoded primitive tree as produced
// by generic JSON or YAML decoders: nil, booleans, Go numerics,
// json.Number, strings, []any and map[string]any, recursively. It is the
// inverse of Interface; arbitrary structs are not reflected over.
func FromInterface(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint64(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint64(t)
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case json.Number:
		if iv, err := t.Int64(); err == nil {
			return Int(iv), nil
		}
		fv, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: number %q", ErrUnsupportedType, t.String())
		}
		return Double(fv), nil
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := FromInterface(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Value{k: KindArray, a: elems}, nil
	case map[string]any:
		members := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := FromInterface(e)
			if err != nil {
				return Value{}, err
			}
			members[k] = v
		}
		return Value{k: KindObject, o: members}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}

func fromUint64(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedType, u)
	}
	return Int(int64(u)), nil
}
