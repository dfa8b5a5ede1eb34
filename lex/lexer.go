package lex

import (
	"io"

	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/lexgen/span"
)

// Lexer is a compiled, immutable rule set: a minimized DFA plus, per branch
// id, whether it is a discard rule or which T value it produces. It holds no
// scanning position of its own — that lives in a State — so one Lexer can be
// shared across goroutines each driving their own State, per the
// concurrency model.
type Lexer[T any] struct {
	dfa      *automaton.DFA
	handlers map[automaton.BranchID]T
	discard  map[automaton.BranchID]bool
}

// NextToken scans the longest lexeme starting at st's current position,
// advances st past it, and returns the matched rule's value. If the longest
// match belongs to a discard rule, NextToken consumes it internally and
// keeps scanning rather than returning it to the caller, per §5. It returns
// io.EOF once st has no more input to offer (including when the only
// remaining input was itself consumed by a trailing discard match), and a
// *ScanError for any other scanning failure.
func (lx *Lexer[T]) NextToken(st *State) (value T, lexeme string, sp span.Span, err error) {
	for {
		if st.EOF() {
			var zero T
			return zero, "", span.Span{}, io.EOF
		}

		branch, length, ok := lx.longestMatch(st)
		if !ok {
			var zero T
			return zero, "", span.Span{}, lx.classifyFailure(st)
		}

		from := st.Location()
		lexemeBytes := st.input[st.pos : st.pos+length]
		st.advance(length)
		to := st.Location()

		if lx.discard[branch] {
			continue
		}

		return lx.handlers[branch], string(lexemeBytes), span.Span{From: from, To: to}, nil
	}
}

// longestMatch walks the DFA from st's current position, returning the
// lowest-numbered (highest-priority) branch id accepted by the longest
// matching prefix and its
// byte length. ok is false if no prefix of the remaining input is accepted
// by any rule.
func (lx *Lexer[T]) longestMatch(st *State) (branch automaton.BranchID, length int, ok bool) {
	cur := lx.dfa.Start
	pos := st.pos

	bestLen := -1
	var bestBranch automaton.BranchID

	if b, matched := lx.dfa.LowestBranch(cur); matched {
		bestLen = 0
		bestBranch = b
	}

	for pos < len(st.input) {
		next, stepped := lx.dfa.Step(cur, st.input[pos])
		if !stepped {
			break
		}
		cur = next
		pos++

		if b, matched := lx.dfa.LowestBranch(cur); matched {
			bestLen = pos - st.pos
			bestBranch = b
		}
	}

	if bestLen < 0 {
		return 0, 0, false
	}
	return bestBranch, bestLen, true
}

// classifyFailure distinguishes a true dead end (no rule accepts any prefix
// starting here) from running out of input partway through an otherwise
// live pattern.
func (lx *Lexer[T]) classifyFailure(st *State) error {
	cur := lx.dfa.Start
	pos := st.pos

	for pos < len(st.input) {
		next, stepped := lx.dfa.Step(cur, st.input[pos])
		if !stepped {
			return newNoMatchError(st.Location(), st.input[st.pos])
		}
		cur = next
		pos++
	}
	return newEndOfInputError(st.Location())
}
