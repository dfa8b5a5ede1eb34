package automaton

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// chainMatches reports whether encoded, byte for byte, falls within every
// hop of chain.
func chainMatches(chain []byteRange, encoded []byte) bool {
	if len(chain) != len(encoded) {
		return false
	}
	for i, hop := range chain {
		if encoded[i] < hop.lo || encoded[i] > hop.hi {
			return false
		}
	}
	return true
}

func runeCoveredBy(seqs [][]byteRange, r rune) bool {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	encoded := buf[:n]
	for _, chain := range seqs {
		if chainMatches(chain, encoded) {
			return true
		}
	}
	return false
}

func Test_utf8Sequences_coversExactRange(t *testing.T) {
	testCases := []struct {
		name   string
		lo, hi rune
		cover  []rune
		reject []rune
	}{
		{
			name:   "single ASCII scalar",
			lo:     'a', hi: 'a',
			cover:  []rune{'a'},
			reject: []rune{'b', 0},
		},
		{
			name:   "ASCII range",
			lo:     '0', hi: '9',
			cover:  []rune{'0', '5', '9'},
			reject: []rune{'/', ':'},
		},
		{
			name:   "range spanning the 1-byte/2-byte boundary",
			lo:     0x7E, hi: 0x82,
			cover:  []rune{0x7E, 0x7F, 0x80, 0x81, 0x82},
			reject: []rune{0x7D, 0x83},
		},
		{
			name:   "range spanning the 2-byte/3-byte boundary",
			lo:     0x7FE, hi: 0x802,
			cover:  []rune{0x7FE, 0x7FF, 0x800, 0x801, 0x802},
			reject: []rune{0x7FD, 0x803},
		},
		{
			name:   "BMP private use area, all 3-byte",
			lo:     0xE000, hi: 0xE002,
			cover:  []rune{0xE000, 0xE001, 0xE002},
			reject: []rune{0xDFFF, 0xE003},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			assert := assert.New(t)

			// execute
			seqs := utf8Sequences(tc.lo, tc.hi)

			// assert
			for _, r := range tc.cover {
				assert.Truef(runeCoveredBy(seqs, r), "expected U+%04X to be covered", r)
			}
			for _, r := range tc.reject {
				assert.Falsef(runeCoveredBy(seqs, r), "expected U+%04X NOT to be covered", r)
			}
		})
	}
}

// encodeAsIfValid3Byte produces the 3-byte form a surrogate would take under the
// plain UTF-8 formula, bypassing unicode/utf8's refusal to encode it (it
// substitutes U+FFFD instead), so the test can check that no generated chain
// matches the bytes a surrogate "would" encode to.
func encodeAsIfValid3Byte(r rune) []byte {
	return []byte{
		byte(0xE0 | (r >> 12)),
		byte(0x80 | ((r >> 6) & 0x3F)),
		byte(0x80 | (r & 0x3F)),
	}
}

func Test_utf8Sequences_excludesSurrogates(t *testing.T) {
	// setup: a range entirely spanning the surrogate gap must not produce
	// any chain matching a surrogate code point's would-be encoding.
	assert := assert.New(t)

	seqs := utf8Sequences(0xD700, 0xE100)
	encoded := encodeAsIfValid3Byte(0xD800)

	// execute
	matched := false
	for _, chain := range seqs {
		if chainMatches(chain, encoded) {
			matched = true
			break
		}
	}

	// assert
	assert.False(matched)
	assert.True(runeCoveredBy(seqs, 0xD700))
	assert.True(runeCoveredBy(seqs, 0xE100))
}

func Test_utf8Sequences_emptyWhenInverted(t *testing.T) {
	// setup
	assert := assert.New(t)

	// execute
	seqs := utf8Sequences('z', 'a')

	// assert
	assert.Nil(seqs)
}
