package regexsyntax

import (
	"sort"

	"github.com/dekarrin/lexgen/internal/automaton"
)

// parseClass parses a bracketed character class "[...]" or "[^...]" into an
// NFA matching any one scalar in the (possibly negated) union of its items.
// It is grounded directly on the reference implementation's bracket-parsing
// state machine: ranges are recorded as signed +1/-1 endpoints in an ordered
// map, then a single sweep over the endpoints in increasing order tracks
// "coverage" (how many open ranges we're currently inside), XORed against
// the negation flag, to emit the minimal set of merged, non-overlapping
// output ranges — rather than unioning each input range into the NFA one at
// a time, which would duplicate work for overlapping ranges.
func (p *parser) parseClass() (*automaton.NFA, error) {
	start := p.pos
	p.advance() // consume '['

	negated := false
	if p.peekIs('^') {
		negated = true
		p.advance()
	}

	endpoints := make(map[rune]int)
	var order []rune
	bump := func(r rune, delta int) {
		if _, ok := endpoints[r]; !ok {
			order = append(order, r)
		}
		endpoints[r] += delta
	}

	var lastChar rune
	haveLastChar := false
	closingInterval := false
	itemCount := 0

	for {
		if p.atEnd() {
			return nil, newSyntaxError(start, "unbalanced character class: missing ']'")
		}
		if p.peekIs(']') {
			break
		}

		var r rune
		escaped := false
		if p.peekIs('\\') {
			p.advance()
			escaped = true
			var err error
			r, err = p.readClassEscape()
			if err != nil {
				return nil, err
			}
		} else {
			r = p.advance()
		}

		switch {
		case r == '-' && !escaped && !closingInterval && haveLastChar:
			closingInterval = true
			bump(lastChar+1, 1)
		case closingInterval:
			if r < lastChar {
				return nil, newSyntaxError(start, "character class range %q-%q is out of order", lastChar, r)
			}
			bump(r+1, -1)
			closingInterval = false
			haveLastChar = false
			itemCount++
		default:
			bump(r, 1)
			bump(r+1, -1)
			lastChar = r
			haveLastChar = true
			itemCount++
		}
	}
	p.advance() // consume ']'

	if closingInterval {
		return nil, newSyntaxError(start, "unterminated character class range: trailing '-'")
	}
	if itemCount == 0 {
		return nil, newSyntaxError(start, "empty character class")
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var n *automaton.NFA
	overlay := 0
	var begin rune
	haveBegin := false
	if negated {
		begin = 0
		haveBegin = true
	}
	var last rune

	for _, pos := range order {
		overlay += endpoints[pos]
		last = pos
		inInterval := (overlay > 0) != negated

		if !haveBegin && inInterval {
			begin = pos
			haveBegin = true
		}
		if haveBegin && !inInterval {
			rangeNFA := automaton.FromRange(begin, pos-1)
			if n == nil {
				n = rangeNFA
			} else {
				n = automaton.Alternation(n, rangeNFA)
			}
			haveBegin = false
		}
	}

	if overlay != 0 {
		return nil, newSyntaxError(start, "unbalanced character class intervals")
	}

	if negated {
		// The sweep above only covers up to the last recorded endpoint; cap
		// the class at U+FFFF (the lexer's default scalar ceiling, per
		// dot's semantics) rather than the full Unicode range, matching the
		// reference implementation's "push [last, 0xffff]" finishing step.
		rangeNFA := automaton.FromRange(last, 0xFFFF)
		if n == nil {
			n = rangeNFA
		} else {
			n = automaton.Alternation(n, rangeNFA)
		}
	}

	if n == nil {
		return nil, newSyntaxError(start, "character class matches nothing")
	}
	return n, nil
}

// readClassEscape parses a single escaped rune inside a character class. It
// supports the same named and numeric escapes as parseEscape, but always
// returns a single rune (not an NFA), since a class endpoint is a scalar
// value, not a pattern.
func (p *parser) readClassEscape() (rune, error) {
	if p.atEnd() {
		return 0, newSyntaxError(p.pos, "dangling '\\' in character class")
	}
	c := p.advance()
	switch c {
	case '\\', '^', '-', ']', '\'', '"':
		return c, nil
	case '0':
		return 0, nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'x':
		v := 0
		start := p.pos
		for i := 0; i < 2; i++ {
			if p.atEnd() {
				return 0, newSyntaxError(start, "incomplete \\x escape in character class")
			}
			d, ok := hexDigit(p.advance())
			if !ok {
				return 0, newSyntaxError(start, "invalid hex digit in \\x escape")
			}
			v = v*16 + d
		}
		return rune(v), nil
	case 'u':
		return p.readUnicodeClassEscape()
	default:
		return c, nil
	}
}

// readUnicodeClassEscape parses \u{H...} inside a character class into a
// single Unicode scalar value, mirroring parseUnicodeEscape's brace/hex-digit
// loop.
func (p *parser) readUnicodeClassEscape() (rune, error) {
	start := p.pos
	if !p.peekIs('{') {
		return 0, newSyntaxError(start, "expected '{' after \\u")
	}
	p.advance()

	v := 0
	digits := 0
	for !p.peekIs('}') {
		if p.atEnd() {
			return 0, newSyntaxError(start, "unterminated \\u{...} escape")
		}
		d, ok := hexDigit(p.advance())
		if !ok {
			return 0, newSyntaxError(start, "invalid hex digit in \\u{...} escape")
		}
		v = v*16 + d
		digits++
		if digits > 6 {
			return 0, newSyntaxError(start, "\\u{...} escape too long")
		}
	}
	p.advance() // consume '}'

	if digits == 0 {
		return 0, newSyntaxError(start, "empty \\u{} escape")
	}
	r := rune(v)
	if r > 0x10FFFF {
		return 0, newSyntaxError(start, "\\u{%X} exceeds the maximum Unicode scalar value", v)
	}
	return r, nil
}
