package jv

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestInterface(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  any
	}{
		{"null", Null(), nil},
		{"bool", Bool(true), true},
		{"int", Int(4), int64(4)},
		{"double", Double(1.5), 1.5},
		{"string", String("x"), "x"},
		{"array", Array(Int(1), Null()), []any{int64(1), nil}},
		{
			"object",
			Object(map[string]Value{"a": Bool(false), "b": Array()}),
			map[string]any{"a": false, "b": []any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Interface(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Interface() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"null", Null(), "null"},
		{"bool not numeric", Bool(true), "true"},
		{"int", Int(-3), "-3"},
		{"double", Double(2.5), "2.5"},
		{"string", String("a\"b"), `"a\"b"`},
		{"array", Array(Int(1), String("x")), `[1,"x"]`},
		{"object", Object(map[string]Value{"k": Null()}), `{"k":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarshalJSONInterface(t *testing.T) {
	v := Object(map[string]Value{"a": Int(1)})
	got, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("json.Marshal() = %s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"scalars", `[null, true, false, 42, -7, 2.5, "text"]`},
		{"nested", `{"a": {"b": [1, [2, {"c": null}]]}, "d": "x"}`},
		{"unicode", `["café", "𐐷", "日本語"]`},
		{"empty containers", `{"a": [], "b": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.input)
			data, err := Marshal(v)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			back, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse(Marshal()) error = %v", err)
			}
			if !back.Equal(v) {
				t.Errorf("round trip changed value: %s vs %s", back, v)
			}
		})
	}
}

func TestRoundTripIntegralDouble(t *testing.T) {
	// An integral double may reparse as Int; numeric equality must hold
	// either way.
	v := Double(4.0)
	data, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !back.Equal(v) {
		t.Errorf("Parse(Marshal(Double(4.0))) = %s, not numerically equal", back)
	}
}

func TestFromInterface(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    Value
		wantErr bool
	}{
		{"nil", nil, Null(), false},
		{"bool", true, Bool(true), false},
		{"string", "x", String("x"), false},
		{"int", 4, Int(4), false},
		{"int64", int64(-9), Int(-9), false},
		{"uint64 in range", uint64(7), Int(7), false},
		{"uint64 overflow", uint64(1) << 63, Value{}, true},
		{"float64", 1.5, Double(1.5), false},
		{"json number int", json.Number("42"), Int(42), false},
		{"json number double", json.Number("2.5"), Double(2.5), false},
		{"json number invalid", json.Number("nope"), Value{}, true},
		{"value passthrough", Int(3), Int(3), false},
		{
			"slice",
			[]any{1, "x", nil},
			Array(Int(1), String("x"), Null()),
			false,
		},
		{
			"map",
			map[string]any{"a": true, "b": []any{2.5}},
			Object(map[string]Value{"a": Bool(true), "b": Array(Double(2.5))}),
			false,
		},
		{"unsupported", struct{}{}, Value{}, true},
		{"nested unsupported", []any{struct{}{}}, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromInterface(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromInterface() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedType) {
					t.Errorf("error = %v, want ErrUnsupportedType", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromInterface() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInterfaceFromInterfaceInverse(t *testing.T) {
	v := mustParse(t, `{"a": [1, 2.5, "x", null, {"b": true}]}`)
	back, err := FromInterface(v.Interface())
	if err != nil {
		t.Fatalf("FromInterface() error = %v", err)
	}
	if !back.Equal(v) {
		t.Errorf("FromInterface(Interface()) = %s, want %s", back, v)
	}
}
