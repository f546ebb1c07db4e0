package jv

import "sync"

// MaxDepth is the maximum nesting depth of arrays and objects the parser
// accepts. A document nested deeper fails with ExceededNestingLimit.
const MaxDepth = 512

// parser is a single-use cursor over an immutable input buffer. The
// scratch buffer and the member-slice freelist survive across parses when
// the instance is reused through the pool; neither is observable by
// callers since all returned data is copied out.
type parser struct {
	input   []byte
	off     int
	depth   int
	scratch []byte
	members [][]member
}

type member struct {
	key   string
	value Value
}

var parserPool = sync.Pool{
	New: func() any { return new(parser) },
}

func (p *parser) reset(input []byte, off int) {
	p.input = input
	p.off = off
	p.depth = 0
}

// parseDocument parses exactly one value and requires only whitespace to
// follow it.
func (p *parser) parseDocument() (Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	p.skipWhitespace()
	if p.off < len(p.input) {
		return Value{}, &ParseError{Code: EndOfStreamGarbage, Offset: p.off, Char: p.input[p.off]}
	}
	return v, nil
}

// parseValue dispatches on the next non-whitespace byte.
func (p *parser) parseValue() (Value, error) {
	p.skipWhitespace()
	if p.off >= len(p.input) {
		return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: p.off}
	}
	switch c := p.input[p.off]; {
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '"':
		s, err := p.scanString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == 't':
		return p.scanLiteral("true", Bool(true))
	case c == 'f':
		return p.scanLiteral("false", Bool(false))
	case c == 'n':
		return p.scanLiteral("null", Null())
	case c == '-' || (c >= '0' && c <= '9'):
		return p.scanNumber()
	default:
		return Value{}, &ParseError{Code: ValueInvalid, Offset: p.off, Char: c}
	}
}

func (p *parser) parseArray() (Value, error) {
	open := p.off
	p.depth++
	if p.depth > MaxDepth {
		return Value{}, &ParseError{Code: ExceededNestingLimit, Offset: open}
	}
	defer func() { p.depth-- }()
	p.off++ // consume '['

	elems := []Value{}
	for {
		p.skipWhitespace()
		if p.off >= len(p.input) {
			return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: p.off}
		}
		if p.input[p.off] == ']' {
			p.off++
			return Value{k: KindArray, a: elems}, nil
		}
		if len(elems) > 0 {
			if p.input[p.off] != ',' {
				return Value{}, &ParseError{Code: CollectionMissingSeparator, Offset: p.off, Char: p.input[p.off]}
			}
			p.off++
		}
		elem, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, elem)
	}
}

func (p *parser) parseObject() (Value, error) {
	open := p.off
	p.depth++
	if p.depth > MaxDepth {
		return Value{}, &ParseError{Code: ExceededNestingLimit, Offset: open}
	}
	defer func() { p.depth-- }()
	p.off++ // consume '{'

	members := p.borrowMembers()
	defer p.returnMembers(members)

	for {
		p.skipWhitespace()
		if p.off >= len(p.input) {
			return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: p.off}
		}
		if p.input[p.off] == '}' {
			p.off++
			obj := make(map[string]Value, len(*members))
			for _, m := range *members {
				obj[m.key] = m.value // later duplicates overwrite earlier ones
			}
			return Value{k: KindObject, o: obj}, nil
		}
		if len(*members) > 0 {
			if p.input[p.off] != ',' {
				return Value{}, &ParseError{Code: CollectionMissingSeparator, Offset: p.off, Char: p.input[p.off]}
			}
			p.off++
			p.skipWhitespace()
		}
		if p.off >= len(p.input) {
			return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: p.off}
		}
		if p.input[p.off] != '"' {
			return Value{}, &ParseError{Code: DictionaryMissingKey, Offset: p.off, Char: p.input[p.off]}
		}
		key, err := p.scanString()
		if err != nil {
			return Value{}, err
		}
		p.skipWhitespace()
		if p.off >= len(p.input) {
			return Value{}, &ParseError{Code: EndOfStreamUnexpected, Offset: p.off}
		}
		if p.input[p.off] != ':' {
			return Value{}, &ParseError{Code: CollectionMissingSeparator, Offset: p.off, Char: p.input[p.off]}
		}
		p.off++
		value, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		*members = append(*members, member{key: key, value: value})
	}
}

// borrowMembers hands out a cleared member slice from the freelist, so
// sibling and nested objects reuse accumulation buffers instead of
// allocating per object.
func (p *parser) borrowMembers() *[]member {
	if n := len(p.members); n > 0 {
		ms := p.members[n-1]
		p.members = p.members[:n-1]
		ms = ms[:0]
		return &ms
	}
	ms := make([]member, 0, 8)
	return &ms
}

func (p *parser) returnMembers(ms *[]member) {
	clear(*ms)
	p.members = append(p.members, (*ms)[:0])
}
