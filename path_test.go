package jv

import (
	"errors"
	"testing"
)

func testDocument(t *testing.T) Value {
	t.Helper()
	return mustParse(t, `{"a": [10, 20], "b": null}`)
}

func TestFragmentString(t *testing.T) {
	if got := Key("name").String(); got != `"name"` {
		t.Errorf("Key.String() = %q", got)
	}
	if got := Index(3).String(); got != "[3]" {
		t.Errorf("Index.String() = %q", got)
	}
	if !Key("x").IsKey() || Index(0).IsKey() {
		t.Errorf("IsKey() misreports fragment kind")
	}
}

func TestValueGet(t *testing.T) {
	root := testDocument(t)

	v, err := root.Get(Key("a"), Index(0))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !v.Equal(Int(10)) {
		t.Errorf("Get() = %s, want 10", v)
	}

	if v, err = root.Get(); err != nil || !v.Equal(root) {
		t.Errorf("Get() with empty path = (%s, %v), want root", v, err)
	}
}

func TestPathResolutionErrors(t *testing.T) {
	root := testDocument(t)

	t.Run("key not found", func(t *testing.T) {
		_, err := root.Get(Key("c"))
		var keyErr *KeyNotFoundError
		if !errors.As(err, &keyErr) {
			t.Fatalf("error = %v, want *KeyNotFoundError", err)
		}
		if keyErr.Key != "c" {
			t.Errorf("Key = %q, want %q", keyErr.Key, "c")
		}
	})

	t.Run("index out of bounds", func(t *testing.T) {
		_, err := root.Get(Key("a"), Index(5))
		var idxErr *IndexOutOfBoundsError
		if !errors.As(err, &idxErr) {
			t.Fatalf("error = %v, want *IndexOutOfBoundsError", err)
		}
		if idxErr.Index != 5 || idxErr.Length != 2 {
			t.Errorf("got index %d length %d, want 5 and 2", idxErr.Index, idxErr.Length)
		}
	})

	t.Run("negative index", func(t *testing.T) {
		_, err := root.Get(Key("a"), Index(-1))
		var idxErr *IndexOutOfBoundsError
		if !errors.As(err, &idxErr) {
			t.Fatalf("error = %v, want *IndexOutOfBoundsError", err)
		}
	})

	t.Run("key into array", func(t *testing.T) {
		_, err := root.Get(Key("a"), Key("x"))
		var subErr *UnexpectedSubscriptError
		if !errors.As(err, &subErr) {
			t.Fatalf("error = %v, want *UnexpectedSubscriptError", err)
		}
		if subErr.Kind != KindArray || !subErr.Fragment.IsKey() {
			t.Errorf("got kind %v fragment %s", subErr.Kind, subErr.Fragment)
		}
	})

	t.Run("index into object", func(t *testing.T) {
		_, err := root.Get(Index(0))
		var subErr *UnexpectedSubscriptError
		if !errors.As(err, &subErr) {
			t.Fatalf("error = %v, want *UnexpectedSubscriptError", err)
		}
		if subErr.Kind != KindObject {
			t.Errorf("Kind = %v, want %v", subErr.Kind, KindObject)
		}
	})

	t.Run("subscript into null without null detection", func(t *testing.T) {
		_, err := root.Get(Key("b"), Key("x"))
		var subErr *UnexpectedSubscriptError
		if !errors.As(err, &subErr) {
			t.Fatalf("error = %v, want *UnexpectedSubscriptError", err)
		}
		if subErr.Kind != KindNull {
			t.Errorf("Kind = %v, want %v", subErr.Kind, KindNull)
		}
	})

	t.Run("failure aborts whole path", func(t *testing.T) {
		// The out-of-bounds step fails before the trailing key is touched.
		_, err := root.Get(Key("a"), Index(9), Key("whatever"))
		var idxErr *IndexOutOfBoundsError
		if !errors.As(err, &idxErr) {
			t.Fatalf("error = %v, want *IndexOutOfBoundsError", err)
		}
	})
}
