// Copyright (C) 2025 The JayceON Authors. All Rights Reserved.

package jayceon

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// defaultGrowth is the number of extra slots a container acquires when
// it runs out of capacity and no other increment was configured.
const defaultGrowth = 16

// Sentinel errors reported by Parse. Use errors.Is to test for them;
// the error returned by Parse wraps the sentinel that applies.
var (
	// ErrSyntax is reported for any grammar violation, unexpected
	// character, or premature end of input.
	ErrSyntax = errors.New("invalid JSON syntax")

	// ErrDuplicateKey is reported when an object repeats a member key.
	ErrDuplicateKey = errors.New("duplicate object key")

	// ErrUnsupportedEscape is reported for a string escape sequence the
	// parser does not recognize, including all \uXXXX escapes.
	ErrUnsupportedEscape = errors.New("unsupported string escape")
)

// A Parser converts JSON text into documents. A zero Parser is ready
// for use with default settings: comments are treated as whitespace,
// input after the root object is ignored, and containers grow by
// defaultGrowth slots at a time. A Parser may be reused and is safe
// for concurrent use once configured.
type Parser struct {
	noComments  bool
	noTrailing  bool
	growValues  int
	growPairs   int
	growStrings int
}

// AllowComments configures p to treat (true) or reject (false) C++
// style line (// ...) and block (/* ... */) comments as whitespace.
// Comments are a non-standard extension of the JSON spec and are
// allowed by default; when rejected, a "/" outside a string is a
// syntax error.
func (p *Parser) AllowComments(ok bool) { p.noComments = !ok }

// AllowTrailingData configures whether input remaining after the
// closing brace of the root object is ignored (true, the default) or
// reported as a syntax error (false).
func (p *Parser) AllowTrailingData(ok bool) { p.noTrailing = !ok }

// Growth sets the fixed number of extra slots allocated when an array,
// an object, or a string buffer runs out of capacity. An increment
// less than 1 selects the default.
func (p *Parser) Growth(values, pairs, strings int) {
	p.growValues = values
	p.growPairs = pairs
	p.growStrings = strings
}

// Parse parses a single JSON document from data. The document shares
// no storage with data, which may be reused once Parse returns.
func (p *Parser) Parse(data []byte) (*Document, error) {
	ps := &parser{
		buf:      data,
		comments: !p.noComments,
		gv:       growth(p.growValues),
		gp:       growth(p.growPairs),
		gs:       growth(p.growStrings),
	}
	doc := new(Document)
	ps.skipSpace()
	if err := ps.parseObject(&doc.root); err != nil {
		return nil, err
	}
	if p.noTrailing {
		ps.skipSpace()
		if !ps.eof() {
			return nil, ps.failf("%w: data after document", ErrSyntax)
		}
	}
	return doc, nil
}

// ParseString is shorthand for Parse on the contents of s.
func (p *Parser) ParseString(s string) (*Document, error) { return p.Parse([]byte(s)) }

// Parse parses a single JSON document from data with default settings.
func Parse(data []byte) (*Document, error) {
	var p Parser
	return p.Parse(data)
}

// ParseString parses a single JSON document from s with default
// settings.
func ParseString(s string) (*Document, error) { return Parse([]byte(s)) }

// MustParse parses s with default settings and panics if parsing
// fails. It is intended for static strings known to be valid.
func MustParse(s string) *Document {
	doc, err := ParseString(s)
	if err != nil {
		panic("jayceon: " + err.Error())
	}
	return doc
}

func growth(n int) int {
	if n < 1 {
		return defaultGrowth
	}
	return n
}

// posError attaches the byte offset at which a parse failed.
type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

// parser carries the state of a single parse: the input buffer, the
// read position, and the resolved configuration.
type parser struct {
	buf []byte
	pos int

	comments   bool
	gv, gp, gs int
}

func (p *parser) eof() bool { return p.pos >= len(p.buf) }

func (p *parser) failf(msg string, args ...any) error {
	return posError{p.pos, fmt.Errorf(msg, args...)}
}

// skipSpace advances past whitespace, and past comments when they are
// enabled. An unterminated block comment consumes the rest of the
// input without an error of its own; whatever structure the caller
// expects next reports the failure.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch c := p.buf[p.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++

		case c == '/' && p.comments && p.pos+1 < len(p.buf) && p.buf[p.pos+1] == '/':
			p.pos += 2
			for !p.eof() && p.buf[p.pos] != '\n' {
				p.pos++
			}

		case c == '/' && p.comments && p.pos+1 < len(p.buf) && p.buf[p.pos+1] == '*':
			p.pos += 2
			for !p.eof() {
				if p.buf[p.pos] == '*' && p.pos+1 < len(p.buf) && p.buf[p.pos+1] == '/' {
					p.pos += 2
					break
				}
				p.pos++
			}

		default:
			return
		}
	}
}

// parseValue parses a value of any type into out. The productions are
// tried in order null, bool, number, string, array, object; their lead
// bytes are disjoint, so the ordered trial reduces to a dispatch on
// the first byte. On failure out is left unmodified.
func (p *parser) parseValue(out *Value) error {
	if p.eof() {
		return p.failf("%w: unexpected end of input", ErrSyntax)
	}
	switch c := p.buf[p.pos]; {
	case c == 'n':
		return p.parseNull(out)
	case c == 't' || c == 'f':
		return p.parseBool(out)
	case c == '-' || isDigit(c):
		return p.parseNumber(out)
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return err
		}
		*out = Value{kind: kindString, str: s}
		return nil
	case c == '[':
		var arr Array
		if err := p.parseArray(&arr); err != nil {
			return err
		}
		*out = Value{kind: kindArray, arr: arr}
		return nil
	case c == '{':
		var obj Object
		if err := p.parseObject(&obj); err != nil {
			return err
		}
		*out = Value{kind: kindObject, obj: obj}
		return nil
	default:
		return p.failf("%w: unexpected %q", ErrSyntax, c)
	}
}

var (
	litNull  = mem.S("null")
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
)

// parseNull matches the constant null. A mismatch fails without
// consuming input.
func (p *parser) parseNull(out *Value) error {
	if !mem.HasPrefix(mem.B(p.buf[p.pos:]), litNull) {
		return p.failf("%w: unknown constant", ErrSyntax)
	}
	p.pos += litNull.Len()
	*out = Value{kind: kindNull}
	return nil
}

// parseBool matches the constant true or false. A mismatch fails
// without consuming input.
func (p *parser) parseBool(out *Value) error {
	lit, val := litFalse, false
	if p.buf[p.pos] == 't' {
		lit, val = litTrue, true
	}
	if !mem.HasPrefix(mem.B(p.buf[p.pos:]), lit) {
		return p.failf("%w: unknown constant", ErrSyntax)
	}
	p.pos += lit.Len()
	*out = Value{kind: kindBool, b: val}
	return nil
}

// parseNumber decodes an optionally signed decimal number with an
// optional fraction and exponent. The value accumulates digit by
// digit in base 10; the exponent is applied afterward by pow10.
func (p *parser) parseNumber(out *Value) error {
	neg := false
	if p.buf[p.pos] == '-' {
		p.pos++
		neg = true
	}

	// Integer part: a lone 0, or digits not starting with 0.
	var val float64
	switch {
	case p.eof():
		return p.failf("%w: missing integer digits", ErrSyntax)
	case p.buf[p.pos] == '0':
		p.pos++
	case isDigit(p.buf[p.pos]):
		for !p.eof() && isDigit(p.buf[p.pos]) {
			val = val*10 + float64(p.buf[p.pos]-'0')
			p.pos++
		}
	default:
		return p.failf("%w: missing integer digits", ErrSyntax)
	}

	if !p.eof() && p.buf[p.pos] == '.' {
		p.pos++
		if p.eof() || !isDigit(p.buf[p.pos]) {
			return p.failf("%w: no digits after decimal point", ErrSyntax)
		}
		scale := 1.0
		for !p.eof() && isDigit(p.buf[p.pos]) {
			scale *= 0.1
			val += float64(p.buf[p.pos]-'0') * scale
			p.pos++
		}
	}

	if !p.eof() && (p.buf[p.pos] == 'e' || p.buf[p.pos] == 'E') {
		p.pos++
		esign := false
		if !p.eof() && (p.buf[p.pos] == '+' || p.buf[p.pos] == '-') {
			esign = p.buf[p.pos] == '-'
			p.pos++
		}
		if p.eof() || !isDigit(p.buf[p.pos]) {
			return p.failf("%w: missing exponent digits", ErrSyntax)
		}
		var exp int
		for !p.eof() && isDigit(p.buf[p.pos]) {
			exp = exp*10 + int(p.buf[p.pos]-'0')
			p.pos++
		}
		if esign {
			exp = -exp
		}
		val = pow10(val, exp)
	}

	if neg {
		val = -val
	}
	*out = Value{kind: kindNumber, num: val}
	return nil
}

// pow10 scales x by 10**y one factor at a time. Exponent magnitudes
// above 30 collapse the result to exactly zero; that is the accuracy
// cutoff of the accumulation scheme, not a failure.
func pow10(x float64, y int) float64 {
	if y > 30 || y < -30 {
		return 0
	}
	for i := 0; i < y; i++ {
		x *= 10
	}
	for i := 0; i < -y; i++ {
		x *= 0.1
	}
	return x
}

// parseString decodes a quoted string literal into a freshly owned
// buffer, consuming input through the closing quote. The buffer grows
// by the configured increment and is shrunk to fit on completion.
//
// The recognized escapes are \n \r \b \f \t \" \\ and \/. Any other
// escape, including the \uXXXX Unicode escapes, fails the parse, as
// does a literal newline or end of input before the closing quote.
func (p *parser) parseString() (string, error) {
	if p.eof() || p.buf[p.pos] != '"' {
		return "", p.failf("%w: expected string", ErrSyntax)
	}
	p.pos++

	var val []byte
	for {
		if p.eof() || p.buf[p.pos] == '\n' {
			return "", p.failf("%w: unterminated string", ErrSyntax)
		}
		c := p.buf[p.pos]
		if c == '"' {
			p.pos++
			return string(val), nil
		}
		if c == '\\' {
			p.pos++
			if p.eof() {
				return "", p.failf("%w: unterminated string", ErrSyntax)
			}
			switch e := p.buf[p.pos]; e {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case 't':
				c = '\t'
			case '"', '\\', '/':
				c = e
			case 'u':
				return "", p.failf("%w: \\u escapes are not supported", ErrUnsupportedEscape)
			default:
				return "", p.failf("%w: invalid escape %q", ErrUnsupportedEscape, e)
			}
		}
		if len(val) == cap(val) {
			vs := make([]byte, len(val), cap(val)+p.gs)
			copy(vs, val)
			val = vs
		}
		val = append(val, c)
		p.pos++
	}
}

// parseArray parses a bracketed, comma-separated sequence of values
// into out. Empty arrays are permitted; a comma must be followed by
// another value.
func (p *parser) parseArray(out *Array) error {
	if p.eof() || p.buf[p.pos] != '[' {
		return p.failf("%w: expected array", ErrSyntax)
	}
	p.pos++

	p.skipSpace()
	if p.eof() {
		return p.failf("%w: unterminated array", ErrSyntax)
	}
	if p.buf[p.pos] == ']' {
		p.pos++
		return nil
	}
	for {
		var v Value
		if err := p.parseValue(&v); err != nil {
			return err
		}
		out.add(v, p.gv)

		p.skipSpace()
		if p.eof() {
			return p.failf("%w: unterminated array", ErrSyntax)
		}
		switch p.buf[p.pos] {
		case ']':
			p.pos++
			return nil
		case ',':
			p.pos++
			p.skipSpace()
		default:
			return p.failf("%w: expected %q or %q in array", ErrSyntax, ',', ']')
		}
	}
}

// parseObject parses a braced, comma-separated sequence of key-value
// members into out. Members are inserted at their sorted position as
// they are parsed; a repeated key fails the parse.
func (p *parser) parseObject(out *Object) error {
	if p.eof() || p.buf[p.pos] != '{' {
		return p.failf("%w: expected object", ErrSyntax)
	}
	p.pos++

	p.skipSpace()
	if p.eof() {
		return p.failf("%w: unterminated object", ErrSyntax)
	}
	if p.buf[p.pos] == '}' {
		p.pos++
		return nil
	}
	for {
		key, err := p.parseString()
		if err != nil {
			return err
		}
		p.skipSpace()
		if p.eof() || p.buf[p.pos] != ':' {
			return p.failf("%w: expected %q after member key", ErrSyntax, ':')
		}
		p.pos++
		p.skipSpace()

		var v Value
		if err := p.parseValue(&v); err != nil {
			return err
		}
		if !out.insert(key, v, p.gp) {
			return p.failf("%w: %q", ErrDuplicateKey, key)
		}

		p.skipSpace()
		if p.eof() {
			return p.failf("%w: unterminated object", ErrSyntax)
		}
		switch p.buf[p.pos] {
		case '}':
			p.pos++
			return nil
		case ',':
			p.pos++
			p.skipSpace()
		default:
			return p.failf("%w: expected %q or %q in object", ErrSyntax, ',', '}')
		}
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
