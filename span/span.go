// Package span defines the small position types the lexer attaches to every
// token and diagnostic: a line/column Location and a From/To Span of two
// Locations, mirroring the reference implementation's span.rs.
package span

import "fmt"

// Location is a 1-indexed line and a 0-indexed column into the lexed input.
// Column is measured in bytes consumed since the start of the line, not runes.
type Location struct {
	Line int
	Col  int
}

// String renders the location as "line:col", matching common compiler
// diagnostic conventions.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Span is a half-open range [From, To) of source positions, covering one
// lexeme or one diagnostic's extent.
type Span struct {
	From Location
	To   Location
}

// String renders the span as "from-to", or just "from" when both ends
// coincide (an empty lexeme).
func (s Span) String() string {
	if s.From == s.To {
		return s.From.String()
	}
	return fmt.Sprintf("%s-%s", s.From, s.To)
}
