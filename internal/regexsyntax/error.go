package regexsyntax

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// SyntaxError reports a malformed regex pattern, with the byte offset into
// the pattern string where the problem was detected, when available. It
// follows the teacher's typed-error convention (internal/tqerrors,
// internal/ictiobus/lex): a small struct with an Error() method, constructed
// through a package-level function, rather than a sentinel error value.
type SyntaxError struct {
	msg       string
	offset    int
	hasOffset bool
}

func newSyntaxError(offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		msg:       fmt.Sprintf(format, args...),
		offset:    offset,
		hasOffset: true,
	}
}

func newSyntaxErrorNoOffset(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{msg: fmt.Sprintf(format, args...)}
}

// Offset returns the byte offset the error was detected at and whether one
// is available at all (some errors, like an entirely empty pattern, have no
// single offending position).
func (e *SyntaxError) Offset() (int, bool) {
	return e.offset, e.hasOffset
}

func (e *SyntaxError) Error() string {
	var full string
	if e.hasOffset {
		full = fmt.Sprintf("regex syntax error at byte %d: %s", e.offset, e.msg)
	} else {
		full = fmt.Sprintf("regex syntax error: %s", e.msg)
	}
	return rosed.Edit(full).Wrap(76).String()
}
