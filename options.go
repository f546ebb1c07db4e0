package jv

// Options selects how the optional retrieval policy treats null values
// and missing keys or indices along a path. The zero value recovers
// nothing, behaving like strict retrieval.
type Options uint8

const (
	// NullBecomesNil turns a null along the path, or a null where the final
	// typed conversion expected a value, into absence instead of an error.
	NullBecomesNil Options = 1 << iota
	// MissingKeyBecomesNil turns a missing object key or out-of-bounds array
	// index into absence instead of an error.
	MissingKeyBecomesNil
)

func (o Options) has(flag Options) bool { return o&flag != 0 }
