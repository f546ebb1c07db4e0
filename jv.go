// Package jv is a typed JSON value model with a hand-written parser and
// path-based retrieval engine.
//
// A document parses into a closed Value union (null, bool, int, double,
// string, array, object). Paths of Key and Index fragments address into
// nested values with precise, inspectable errors; three retrieval
// policies (strict, optional, fallback) control how missing keys and
// null values are handled. Serialization goes back out through the
// standard library's JSON writer.
//
//	v, err := jv.Parse(data)
//	name, err := jv.Get(v, jv.AsString, jv.Key("user"), jv.Key("name"))
package jv

// Parse decodes a single JSON document from a UTF-8 byte buffer. A
// leading byte-order mark is skipped; any other detected encoding fails
// with InvalidUnicodeStreamEncoding. Errors carry the byte offset where
// the malformed construct begins, and no partial value is ever returned.
func Parse(data []byte) (Value, error) {
	enc, bomLen := DetectEncoding(data)
	if enc != EncodingUTF8 {
		return Value{}, &ParseError{Code: InvalidUnicodeStreamEncoding, Offset: 0}
	}
	p := parserPool.Get().(*parser)
	defer func() {
		p.input = nil
		parserPool.Put(p)
	}()
	p.reset(data, bomLen)
	return p.parseDocument()
}

// ParseString decodes a single JSON document from a string.
func ParseString(s string) (Value, error) {
	return Parse([]byte(s))
}
