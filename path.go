package jv

import "strconv"

// Fragment is one step of a path: either a string key addressing into an
// object or an integer index addressing into an array.
type Fragment struct {
	key   string
	index int
	isKey bool
}

// Key returns a fragment addressing an object member.
func Key(k string) Fragment { return Fragment{key: k, isKey: true} }

// Index returns a fragment addressing an array element.
func Index(i int) Fragment { return Fragment{index: i} }

// IsKey reports whether the fragment is a key step.
func (f Fragment) IsKey() bool { return f.isKey }

// String renders the fragment as it would appear in a path.
func (f Fragment) String() string {
	if f.isKey {
		return strconv.Quote(f.key)
	}
	return "[" + strconv.Itoa(f.index) + "]"
}

// Get resolves a path of fragments left to right and returns the value it
// lands on. The first failing step aborts the whole path: a missing key
// fails with KeyNotFoundError, an index outside the array with
// IndexOutOfBoundsError, and a fragment applied to the wrong kind of
// value with UnexpectedSubscriptError.
func (v Value) Get(path ...Fragment) (Value, error) {
	return resolvePath(v, false, path)
}

func resolvePath(v Value, detectNull bool, path []Fragment) (Value, error) {
	for _, f := range path {
		var err error
		v, err = resolveFragment(v, f, detectNull)
		if err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

// resolveFragment applies a single fragment. With detectNull enabled a
// fragment landing on null raises the internal null-subscript condition
// instead of UnexpectedSubscriptError, so the optional policies can
// translate it to absence.
func resolveFragment(v Value, f Fragment, detectNull bool) (Value, error) {
	if detectNull && v.k == KindNull {
		return Value{}, &nullSubscriptError{fragment: f}
	}
	if f.isKey {
		if v.k != KindObject {
			return Value{}, &UnexpectedSubscriptError{Fragment: f, Kind: v.k}
		}
		w, ok := v.o[f.key]
		if !ok {
			return Value{}, &KeyNotFoundError{Key: f.key}
		}
		return w, nil
	}
	if v.k != KindArray {
		return Value{}, &UnexpectedSubscriptError{Fragment: f, Kind: v.k}
	}
	if f.index < 0 || f.index >= len(v.a) {
		return Value{}, &IndexOutOfBoundsError{Index: f.index, Length: len(v.a)}
	}
	return v.a[f.index], nil
}
