package jv

// Decodable is the opt-in contract for decoding custom types from a
// Value. Implementations populate the receiver and may return their own
// domain errors, which the retrieval policies propagate opaquely.
type Decodable interface {
	DecodeJSON(v Value) error
}

// Decode constructs a T from a value through its Decodable pointer
// receiver.
func Decode[T any, PT interface {
	*T
	Decodable
}](v Value) (T, error) {
	var out T
	if err := PT(&out).DecodeJSON(v); err != nil {
		return out, err
	}
	return out, nil
}

// As returns the converter for a Decodable type, so custom types plug
// into Get, GetOpt, GetOr and the collection helpers uniformly.
func As[T any, PT interface {
	*T
	Decodable
}]() ConvertFunc[T] {
	return Decode[T, PT]
}
