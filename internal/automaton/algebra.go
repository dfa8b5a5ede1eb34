package automaton

// FromByte constructs an NFA accepting exactly the single byte b.
func FromByte(b byte) *NFA {
	n := NewNFA()
	end := n.addState(true)
	n.addTransition(n.Start, int(b), end)
	return n
}

// FromBytes constructs an NFA accepting exactly the given byte sequence,
// concatenated left to right.
func FromBytes(bs []byte) *NFA {
	n := NewNFA()
	cur := n.Start
	for i, b := range bs {
		final := i == len(bs)-1
		next := n.addState(final)
		n.addTransition(cur, int(b), next)
		cur = next
	}
	if len(bs) == 0 {
		// empty string: the start state itself accepts.
		n.states[n.Start].final = true
	}
	return n
}

// FromString constructs an NFA accepting exactly the UTF-8 encoding of s.
func FromString(s string) *NFA {
	return FromBytes([]byte(s))
}

// Concat returns the concatenation a.b: every final state of a gets an
// epsilon edge to (a rebiased copy of) b's initial state; the result's final
// states are b's (rebiased) final states.
func Concat(a, b *NFA) *NFA {
	ret := a.clone()
	bias := ret.MaxStateID() + 1
	bNfa := b.rebias(bias)

	for _, f := range ret.FinalStates() {
		ret.states[f].final = false
	}
	ret.merge(bNfa)

	for _, f := range a.FinalStates() {
		ret.addEpsilon(f, bNfa.Start)
	}

	return ret
}

// Alternation returns a|b: a fresh initial state epsilon-branches to both a's
// and (a rebiased copy of) b's initial states; the result's final states are
// the union of both operands' final states.
func Alternation(a, b *NFA) *NFA {
	ret := a.clone()
	bias := ret.MaxStateID() + 1
	bNfa := b.rebias(bias)
	ret.merge(bNfa)

	newStart := ret.nextStateID
	ret.states[newStart] = newNFAState()
	ret.nextStateID++

	ret.addEpsilon(newStart, a.Start)
	ret.addEpsilon(newStart, bNfa.Start)
	ret.Start = newStart

	return ret
}

// ZeroOrMore returns a* : a loop-back epsilon edge from every final state of
// a to a's initial state, which becomes the sole final state (so the empty
// string is accepted).
func ZeroOrMore(a *NFA) *NFA {
	ret := a.clone()
	finals := ret.FinalStates()
	for _, f := range finals {
		ret.addEpsilon(f, ret.Start)
		ret.states[f].final = false
	}
	ret.states[ret.Start].final = true
	return ret
}

// OneOrMore returns a+, defined as a.a*.
func OneOrMore(a *NFA) *NFA {
	return Concat(a, ZeroOrMore(a.clone()))
}

// Optional returns a?: a fresh final state reachable both by completing a
// and by an epsilon edge straight from a's initial state (so the empty
// string is accepted without resurrecting a's own final states).
func Optional(a *NFA) *NFA {
	ret := a.clone()
	newFinal := ret.nextStateID
	ret.states[newFinal] = newNFAState()
	ret.states[newFinal].final = true
	ret.nextStateID++

	for _, f := range ret.FinalStates() {
		if f == newFinal {
			continue
		}
		ret.states[f].final = false
		ret.addEpsilon(f, newFinal)
	}
	ret.addEpsilon(ret.Start, newFinal)

	return ret
}

// FromRange constructs an NFA accepting exactly the UTF-8 encoding of every
// Unicode scalar value in [lo, hi], decomposed into the minimal set of
// byte-chains that share a common high-byte prefix per UTF-8 length, per
// §4.1.
func FromRange(lo, hi rune) *NFA {
	seqs := utf8Sequences(lo, hi)
	if len(seqs) == 0 {
		return NewNFA()
	}

	branches := make([]*NFA, len(seqs))
	for i, seq := range seqs {
		branches[i] = fromByteRangeChain(seq)
	}

	ret := branches[0]
	for _, b := range branches[1:] {
		ret = Alternation(ret, b)
	}
	return ret
}

// Complement returns an NFA accepting exactly the byte strings a does not,
// over the full byte alphabet. Supplemented from the Rust source's `not()`:
// convert to a DFA, complete it with a dead sink for every unhandled byte,
// flip accept/reject, then convert back to an NFA.
func Complement(a *NFA) *NFA {
	d := a.ToDFA()
	return d.complement().ToNFA()
}

// fromByteRangeChain builds a linear chain of byte-range transitions, one
// hop per utf8Range, accepting any byte sequence where hop i's byte falls in
// [ranges[i].lo, ranges[i].hi].
func fromByteRangeChain(ranges []byteRange) *NFA {
	n := NewNFA()
	cur := n.Start
	for i, r := range ranges {
		final := i == len(ranges)-1
		next := n.addState(final)
		for b := int(r.lo); b <= int(r.hi); b++ {
			n.addTransition(cur, b, next)
		}
		cur = next
	}
	return n
}
