package jv

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel error wrapped by every ParseError, enabling
// category checks with errors.Is.
var ErrParse = errors.New("jv: parse error")

// ParseCode discriminates the parse failure taxonomy.
type ParseCode uint8

const (
	// EndOfStreamUnexpected means the input ended inside a value.
	EndOfStreamUnexpected ParseCode = iota + 1
	// EndOfStreamGarbage means non-whitespace bytes followed the top-level value.
	EndOfStreamGarbage
	// ExceededNestingLimit means container nesting went past MaxDepth.
	ExceededNestingLimit
	// ValueInvalid means a byte could not start any JSON value.
	ValueInvalid
	// ControlCharacterUnrecognized means a raw control byte appeared inside a
	// string, or an escape introduced an unknown character.
	ControlCharacterUnrecognized
	// UnicodeEscapeInvalid means a \uXXXX escape had non-hex digits or an
	// unpaired surrogate.
	UnicodeEscapeInvalid
	// LiteralMisspelled means bytes diverged from true, false or null.
	LiteralMisspelled
	// CollectionMissingSeparator means a comma or colon was absent.
	CollectionMissingSeparator
	// DictionaryMissingKey means an object member did not start with a string.
	DictionaryMissingKey
	// NumberMissingFractionalDigits means no digit followed a decimal point.
	NumberMissingFractionalDigits
	// NumberMissingExponent means no digit followed the exponent symbol.
	NumberMissingExponent
	// NumberOverflow means the numeral exceeds the representable range.
	NumberOverflow
	// InvalidUnicodeStreamEncoding means the input is not UTF-8.
	InvalidUnicodeStreamEncoding
	// InvalidUTF8String means a decoded string is not valid UTF-8.
	InvalidUTF8String
)

// String returns the parse code name.
func (c ParseCode) String() string {
	switch c {
	case EndOfStreamUnexpected:
		return "unexpected end of stream"
	case EndOfStreamGarbage:
		return "trailing garbage after value"
	case ExceededNestingLimit:
		return "exceeded nesting limit"
	case ValueInvalid:
		return "invalid value start"
	case ControlCharacterUnrecognized:
		return "unrecognized control character"
	case UnicodeEscapeInvalid:
		return "invalid unicode escape"
	case LiteralMisspelled:
		return "misspelled keyword literal"
	case CollectionMissingSeparator:
		return "missing collection separator"
	case DictionaryMissingKey:
		return "missing dictionary key"
	case NumberMissingFractionalDigits:
		return "missing fractional digits"
	case NumberMissingExponent:
		return "missing digits after exponent symbol"
	case NumberOverflow:
		return "number overflow"
	case InvalidUnicodeStreamEncoding:
		return "unsupported stream encoding"
	case InvalidUTF8String:
		return "string is not valid UTF-8"
	default:
		return "unknown parse error"
	}
}

// ParseError reports a fatal parse failure. Offset is the byte position
// where the malformed construct begins; Char is the offending byte where
// one exists (ValueInvalid, ControlCharacterUnrecognized).
type ParseError struct {
	Code   ParseCode
	Offset int
	Char   byte
}

// Error implements error.
func (e *ParseError) Error() string {
	switch e.Code {
	case ValueInvalid, ControlCharacterUnrecognized:
		return fmt.Sprintf("jv: %s %q at offset %d", e.Code, e.Char, e.Offset)
	default:
		return fmt.Sprintf("jv: %s at offset %d", e.Code, e.Offset)
	}
}

// Is matches ParseError against the ErrParse sentinel.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// KeyNotFoundError reports a key absent from an object during path
// resolution.
type KeyNotFoundError struct {
	Key string
}

// Error implements error.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("jv: key %q not found", e.Key)
}

// IndexOutOfBoundsError reports an index outside [0, Length) during path
// resolution.
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

// Error implements error.
func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("jv: index %d out of bounds for array of length %d", e.Index, e.Length)
}

// UnexpectedSubscriptError reports a fragment applied to a value of the
// wrong kind: keying an array, indexing an object, or subscripting a
// scalar or null.
type UnexpectedSubscriptError struct {
	Fragment Fragment
	Kind     Kind
}

// Error implements error.
func (e *UnexpectedSubscriptError) Error() string {
	return fmt.Sprintf("jv: cannot subscript %s with %s", e.Kind, e.Fragment)
}

// NotConvertibleError reports a resolved value whose kind does not match,
// and cannot be coerced to, the requested target type.
type NotConvertibleError struct {
	Target string
	Kind   Kind
}

// Error implements error.
func (e *NotConvertibleError) Error() string {
	return fmt.Sprintf("jv: %s value is not convertible to %s", e.Kind, e.Target)
}

// nullSubscriptError is the internal condition raised when null-detection
// is enabled and a fragment lands on a null value. The retrieval policies
// convert it to absence instead of surfacing a subscript error.
type nullSubscriptError struct {
	fragment Fragment
}

func (e *nullSubscriptError) Error() string {
	return fmt.Sprintf("jv: subscript %s into null", e.fragment)
}
