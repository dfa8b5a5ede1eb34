package automaton

import "unicode/utf8"

// byteRange is one hop of a UTF-8 byte chain: any byte in [lo, hi] is
// accepted at that position.
type byteRange struct {
	lo, hi byte
}

type runeRange struct {
	lo, hi rune
}

const maxScalar rune = 0x10FFFF

// utf8Sequences decomposes [lo, hi] into the minimal set of UTF-8 byte-chains
// that together cover exactly the Unicode scalar values in the range, per
// §4.1. Each returned chain is a slice of byteRange, one per byte position of
// that chain's encoding length.
func utf8Sequences(lo, hi rune) [][]byteRange {
	if lo > hi {
		return nil
	}
	if hi > maxScalar {
		hi = maxScalar
	}

	var out [][]byteRange
	for _, sub := range splitValidScalarRanges(lo, hi) {
		out = append(out, utf8SequencesSameValidity(sub.lo, sub.hi)...)
	}
	return out
}

// splitValidScalarRanges removes the UTF-16 surrogate gap (D800-DFFF), which
// is not valid in a Unicode scalar value, from [lo, hi].
func splitValidScalarRanges(lo, hi rune) []runeRange {
	const surrLo, surrHi = 0xD800, 0xDFFF
	if lo > hi {
		return nil
	}
	if hi < surrLo || lo > surrHi {
		return []runeRange{{lo, hi}}
	}

	var out []runeRange
	if lo < surrLo {
		out = append(out, runeRange{lo, surrLo - 1})
	}
	if hi > surrHi {
		out = append(out, runeRange{surrHi + 1, hi})
	}
	return out
}

// utf8SequencesSameValidity splits [lo, hi] (already surrogate-free) at the
// boundaries where UTF-8 encoded length changes, then delegates each
// same-length segment to splitSameLength.
func utf8SequencesSameValidity(lo, hi rune) [][]byteRange {
	lengthBoundaries := []rune{0x7F, 0x7FF, 0xFFFF, maxScalar}

	var out [][]byteRange
	cur := lo
	for _, boundary := range lengthBoundaries {
		if cur > hi {
			break
		}
		if cur > boundary {
			continue
		}
		segHi := hi
		if segHi > boundary {
			segHi = boundary
		}

		loBuf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(loBuf, cur)
		hiBuf := make([]byte, utf8.UTFMax)
		m := utf8.EncodeRune(hiBuf, segHi)

		out = append(out, splitSameLength(loBuf[:n], hiBuf[:m])...)
		cur = boundary + 1
	}
	return out
}

// splitSameLength decomposes the inclusive byte-string range [lo, hi] (both
// the same length, encoding the endpoints of a single UTF-8-length segment)
// into byte-chains where each hop is a contiguous range and, beyond the
// first differing hop, every leaf shares a common prefix, per §4.1/§9.
func splitSameLength(lo, hi []byte) [][]byteRange {
	if len(lo) == 1 {
		return [][]byteRange{{{lo[0], hi[0]}}}
	}
	if lo[0] == hi[0] {
		var out [][]byteRange
		for _, tail := range splitSameLength(lo[1:], hi[1:]) {
			out = append(out, prepend(byteRange{lo[0], lo[0]}, tail))
		}
		return out
	}

	minCont := repeatByte(0x80, len(lo)-1)
	maxCont := repeatByte(0xBF, len(lo)-1)

	var out [][]byteRange

	lowHead, highHead := lo[0], hi[0]

	if !bytesEqual(lo[1:], minCont) {
		for _, tail := range splitSameLength(lo[1:], maxCont) {
			out = append(out, prepend(byteRange{lo[0], lo[0]}, tail))
		}
		lowHead++
	}

	rightPartial := !bytesEqual(hi[1:], maxCont)
	if rightPartial {
		highHead--
	}

	if lowHead <= highHead {
		chain := make([]byteRange, len(lo))
		chain[0] = byteRange{lowHead, highHead}
		for i := 1; i < len(lo); i++ {
			chain[i] = byteRange{0x80, 0xBF}
		}
		out = append(out, chain)
	}

	if rightPartial {
		for _, tail := range splitSameLength(minCont, hi[1:]) {
			out = append(out, prepend(byteRange{hi[0], hi[0]}, tail))
		}
	}

	return out
}

func prepend(head byteRange, tail []byteRange) []byteRange {
	chain := make([]byteRange, 0, len(tail)+1)
	chain = append(chain, head)
	chain = append(chain, tail...)
	return chain
}

func repeatByte(b byte, n int) []byte {
	bs := make([]byte, n)
	for i := range bs {
		bs[i] = b
	}
	return bs
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
