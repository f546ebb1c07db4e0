package jv

import (
	"math"
	"strconv"
)

// scanNumber decodes a numeral per the RFC 8259 grammar with one
// restriction: after a leading 0 only a decimal point continues the
// number, so "0e1" is a zero followed by trailing bytes. A numeral with
// no fraction and no exponent is an exact Int, except "-0" which is the
// double negative zero. All number errors carry the numeral's start
// offset.
func (p *parser) scanNumber() (Value, error) {
	input, n := p.input, len(p.input)
	start := p.off
	i := p.off
	if input[i] == '-' {
		i++
		if i >= n {
			return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: n}
		}
	}
	zeroLead := false
	switch c := input[i]; {
	case c == '0':
		zeroLead = true
		i++
	case c >= '1' && c <= '9':
		i++
		for i < n && input[i] >= '0' && input[i] <= '9' {
			i++
		}
	default:
		return Value{}, &ParseError{Code: ValueInvalid, Offset: i, Char: c}
	}
	isDouble := false
	if i < n && input[i] == '.' {
		isDouble = true
		i++
		if i >= n || input[i] < '0' || input[i] > '9' {
			return Value{}, &ParseError{Code: NumberMissingFractionalDigits, Offset: start}
		}
		for i < n && input[i] >= '0' && input[i] <= '9' {
			i++
		}
	}
	if (!zeroLead || isDouble) && i < n && (input[i] == 'e' || input[i] == 'E') {
		isDouble = true
		i++
		if i < n && (input[i] == '+' || input[i] == '-') {
			i++
		}
		if i >= n || input[i] < '0' || input[i] > '9' {
			return Value{}, &ParseError{Code: NumberMissingExponent, Offset: start}
		}
		for i < n && input[i] >= '0' && input[i] <= '9' {
			i++
		}
	}
	lit := string(input[start:i])
	p.off = i
	if !isDouble {
		if lit == "-0" {
			return Double(math.Copysign(0, -1)), nil
		}
		iv, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Code: NumberOverflow, Offset: start}
		}
		return Int(iv), nil
	}
	// The grammar is already validated, so the only possible error is
	// ErrRange: overflow lands on ±Inf and fails, underflow rounds to
	// zero and is kept.
	fv, _ := strconv.ParseFloat(lit, 64)
	if math.IsInf(fv, 0) {
		return Value{}, &ParseError{Code: NumberOverflow, Offset: start}
	}
	return Double(fv), nil
}

// parseNumeral decodes a standalone numeral by the same grammar, used for
// string-to-number coercion. The whole string must be consumed.
func parseNumeral(s string) (Value, bool) {
	var p parser
	p.reset([]byte(s), 0)
	if len(s) == 0 {
		return Value{}, false
	}
	c := s[0]
	if c != '-' && (c < '0' || c > '9') {
		return Value{}, false
	}
	v, err := p.scanNumber()
	if err != nil || p.off != len(s) {
		return Value{}, false
	}
	return v, true
}
