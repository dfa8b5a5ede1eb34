package lex

import (
	"fmt"

	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/lexgen/internal/regexsyntax"
)

// BuilderError reports a problem registering a rule or building a Lexer: an
// unparsable pattern, or calling Build with no rules at all.
type BuilderError struct {
	msg string
	err error
}

func newBuilderError(msg string, wrapped error) *BuilderError {
	return &BuilderError{msg: msg, err: wrapped}
}

func (e *BuilderError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.err)
	}
	return e.msg
}

func (e *BuilderError) Unwrap() error {
	return e.err
}

type rule[T any] struct {
	branch  automaton.BranchID
	nfa     *automaton.NFA
	discard bool
	value   T
}

// Builder accumulates discard patterns and tokenizing rules, in priority
// order (first declared, highest priority), and compiles them into a single
// Lexer. T is the value associated with a non-discard rule — typically a
// token class, a constant, or a callback — returned by Lexer.NextToken when
// that rule produces the longest match.
type Builder[T any] struct {
	rules      []rule[T]
	hasDiscard bool
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Discard registers a pattern whose matches are dropped rather than
// returned: whitespace and comments are the usual case. Discard rules
// participate in longest-match and priority tie-breaking exactly like Rule
// patterns; since the discard pattern is always declared first, it wins ties
// against any overlapping Rule pattern.
//
// Branch id 0 is reserved for the discard rule, so Discard may be called at
// most once, and only before any call to Rule.
func (b *Builder[T]) Discard(pattern string) error {
	if b.hasDiscard {
		return newBuilderError("a discard pattern has already been registered", nil)
	}
	if len(b.rules) > 0 {
		return newBuilderError("discard pattern must be registered before any Rule", nil)
	}

	n, err := regexsyntax.Parse(pattern)
	if err != nil {
		return newBuilderError(fmt.Sprintf("discard pattern %q", pattern), err)
	}
	branch := automaton.BranchID(len(b.rules))
	n.SetBranch(branch)
	b.rules = append(b.rules, rule[T]{branch: branch, nfa: n, discard: true})
	b.hasDiscard = true
	return nil
}

// Rule registers a pattern that, when it produces the longest match at the
// scanner's current position, causes Lexer.NextToken to return value.
func (b *Builder[T]) Rule(pattern string, value T) error {
	n, err := regexsyntax.Parse(pattern)
	if err != nil {
		return newBuilderError(fmt.Sprintf("rule pattern %q", pattern), err)
	}
	branch := automaton.BranchID(len(b.rules))
	if !b.hasDiscard {
		// branch 0 stays reserved for the discard rule even when there is none
		branch++
	}
	n.SetBranch(branch)
	b.rules = append(b.rules, rule[T]{branch: branch, nfa: n, value: value})
	return nil
}

// Build compiles every registered rule into a single NFA (one Alternation
// branch per rule, each already tagged with its BranchID), converts it to a
// DFA via subset construction, and minimizes it, producing a Lexer ready to
// scan input.
func (b *Builder[T]) Build() (*Lexer[T], error) {
	if len(b.rules) == 0 {
		return nil, newBuilderError("cannot build a lexer with no rules", nil)
	}

	combined := b.rules[0].nfa
	for _, r := range b.rules[1:] {
		combined = automaton.Alternation(combined, r.nfa)
	}

	dfa := combined.ToDFA().Minimize()

	lx := &Lexer[T]{
		dfa:      dfa,
		handlers: make(map[automaton.BranchID]T, len(b.rules)),
		discard:  make(map[automaton.BranchID]bool),
	}
	for _, r := range b.rules {
		if r.discard {
			lx.discard[r.branch] = true
		} else {
			lx.handlers[r.branch] = r.value
		}
	}
	return lx, nil
}
