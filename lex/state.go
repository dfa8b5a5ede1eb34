package lex

import "github.com/dekarrin/lexgen/span"

// State is the mutable cursor a Lexer scans over: a byte slice plus the
// current byte offset and line/column. A single Lexer (the compiled,
// immutable rule set) can drive any number of independent States
// concurrently, each tracking its own position in its own input, per the
// concurrency model.
type State struct {
	input []byte
	pos   int
	line  int
	col   int
}

// NewState returns a fresh State positioned at the start of input.
func (lx *Lexer[T]) NewState(input []byte) *State {
	return &State{input: input, line: 1, col: 0}
}

// EOF reports whether every byte of the state's input has been consumed.
func (st *State) EOF() bool {
	return st.pos >= len(st.input)
}

// Location returns the state's current line and column.
func (st *State) Location() span.Location {
	return span.Location{Line: st.line, Col: st.col}
}

// advance moves the state's cursor past n bytes of input starting at the
// current position, tracking line/column the way the teacher's lex package
// tracks curLine/curPos: a newline resets the column to 0 and starts a new
// line, any other byte just advances the column by one. Counting is
// byte-wise, not rune-wise, like the rest of the byte-alphabet pipeline.
func (st *State) advance(n int) {
	for i := 0; i < n; i++ {
		if st.input[st.pos+i] == '\n' {
			st.line++
			st.col = 0
		} else {
			st.col++
		}
	}
	st.pos += n
}
