package lex

import (
	"fmt"

	"github.com/dekarrin/lexgen/span"
	"github.com/dekarrin/rosed"
)

// ScanErrorKind distinguishes the two ways a scan can fail, per §6.
type ScanErrorKind int

const (
	// NoMatch means no rule's pattern matched at the current input
	// position; the byte at the current location is not a valid start of
	// any lexeme.
	NoMatch ScanErrorKind = iota
	// UnexpectedEndOfInput means the scanner reached the end of the input
	// while in the middle of a pattern that requires more bytes, and no
	// shorter prefix of what was read was itself a complete, accepted
	// lexeme.
	UnexpectedEndOfInput
)

func (k ScanErrorKind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		return "unknown scan error"
	}
}

// ScanError reports a scanning failure at a specific location, following the
// same typed-error convention as regexsyntax.SyntaxError: a small struct with
// an Error() method, built through a constructor rather than returned as a
// sentinel or bare fmt.Errorf.
type ScanError struct {
	Kind ScanErrorKind
	At   span.Location
	// Offender is the offending byte for NoMatch errors. It is meaningless
	// for UnexpectedEndOfInput.
	Offender byte
}

func newNoMatchError(at span.Location, offender byte) *ScanError {
	return &ScanError{Kind: NoMatch, At: at, Offender: offender}
}

func newEndOfInputError(at span.Location) *ScanError {
	return &ScanError{Kind: UnexpectedEndOfInput, At: at}
}

func (e *ScanError) Error() string {
	var msg string
	switch e.Kind {
	case NoMatch:
		msg = fmt.Sprintf("lex error at %s: no rule matches starting at byte 0x%02x", e.At, e.Offender)
	case UnexpectedEndOfInput:
		msg = fmt.Sprintf("lex error at %s: unexpected end of input partway through a token", e.At)
	default:
		msg = fmt.Sprintf("lex error at %s: %s", e.At, e.Kind)
	}
	return rosed.Edit(msg).Wrap(76).String()
}
