package jv

import "unicode/utf8"

// skipWhitespace advances past space, tab, carriage return and line feed.
func (p *parser) skipWhitespace() {
	for p.off < len(p.input) {
		switch p.input[p.off] {
		case ' ', '\t', '\r', '\n':
			p.off++
		default:
			return
		}
	}
}

// scanLiteral byte-compares the input against a keyword literal. A
// mismatch at any position reports the offset of the literal's start.
func (p *parser) scanLiteral(word string, v Value) (Value, error) {
	start := p.off
	if len(p.input)-start < len(word) {
		return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: len(p.input)}
	}
	for i := 0; i < len(word); i++ {
		if p.input[start+i] != word[i] {
			return Value{}, &ParseError{Code: LiteralMisspelled, Offset: start}
		}
	}
	p.off = start + len(word)
	return v, nil
}

// scanString decodes a quoted string starting at the current offset into
// the parser's scratch buffer and returns an owned copy.
func (p *parser) scanString() (string, error) {
	p.off++ // consume opening '"'
	buf := p.scratch[:0]
	nonASCII := false
	for {
		if p.off >= len(p.input) {
			p.scratch = buf
			return "", &ParseError{Code: EndOfStreamUnexpected, Offset: len(p.input)}
		}
		c := p.input[p.off]
		switch {
		case c == '"':
			p.off++
			p.scratch = buf
			if nonASCII && !utf8.Valid(buf) {
				return "", &ParseError{Code: InvalidUTF8String, Offset: p.off}
			}
			return string(buf), nil
		case c == '\\':
			var err error
			buf, err = p.scanEscape(buf)
			if err != nil {
				p.scratch = buf
				return "", err
			}
			nonASCII = true
		case c < 0x20:
			p.scratch = buf
			return "", &ParseError{Code: ControlCharacterUnrecognized, Offset: p.off, Char: c}
		default:
			if c >= utf8.RuneSelf {
				nonASCII = true
			}
			buf = append(buf, c)
			p.off++
		}
	}
}

// scanEscape decodes one backslash escape into buf. The cursor is on the
// backslash; errors carry the escape's start offset.
func (p *parser) scanEscape(buf []byte) ([]byte, error) {
	start := p.off
	p.off++ // consume '\'
	if p.off >= len(p.input) {
		return buf, &ParseError{Code: EndOfStreamUnexpected, Offset: len(p.input)}
	}
	c := p.input[p.off]
	p.off++
	switch c {
	case '"', '\\', '/':
		return append(buf, c), nil
	case 'b':
		return append(buf, '\b'), nil
	case 'f':
		return append(buf, '\f'), nil
	case 'n':
		return append(buf, '\n'), nil
	case 'r':
		return append(buf, '\r'), nil
	case 't':
		return append(buf, '\t'), nil
	case 'u':
		r, err := p.scanUnicodeEscape(start)
		if err != nil {
			return buf, err
		}
		return utf8.AppendRune(buf, r), nil
	default:
		return buf, &ParseError{Code: ControlCharacterUnrecognized, Offset: start, Char: c}
	}
}

// scanUnicodeEscape reads the 4 hex digits after \u as a UTF-16 code
// unit. A lead surrogate must be followed immediately by a \uXXXX trail
// surrogate; the pair combines into one code point. Unpaired surrogates
// of either half are fatal.
func (p *parser) scanUnicodeEscape(start int) (rune, error) {
	u1, ok := p.scanHex4()
	if !ok {
		return 0, &ParseError{Code: UnicodeEscapeInvalid, Offset: start}
	}
	if u1 < 0xD800 || u1 > 0xDFFF {
		return u1, nil
	}
	if u1 > 0xDBFF {
		// trail surrogate with no lead
		return 0, &ParseError{Code: UnicodeEscapeInvalid, Offset: start}
	}
	if len(p.input)-p.off < 2 || p.input[p.off] != '\\' || p.input[p.off+1] != 'u' {
		return 0, &ParseError{Code: UnicodeEscapeInvalid, Offset: start}
	}
	p.off += 2
	u2, ok := p.scanHex4()
	if !ok || u2 < 0xDC00 || u2 > 0xDFFF {
		return 0, &ParseError{Code: UnicodeEscapeInvalid, Offset: start}
	}
	return 0x10000 + (u1-0xD800)<<10 + (u2 - 0xDC00), nil
}

// scanHex4 reads exactly 4 hex digits at the cursor.
func (p *parser) scanHex4() (rune, bool) {
	if len(p.input)-p.off < 4 {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := p.input[p.off+i]
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	p.off += 4
	return r, true
}
