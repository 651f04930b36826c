// Package bitap implements the bitap (shift-or) substring search
// algorithm: a rolling bitmask computed one corpus element at a time,
// with a resumable "hint" that lets the search continue across
// non-contiguous corpus chunks and find overlapping matches.
package bitap

import "github.com/pkg/errors"

// Width is the number of bits carried in a Hint. Patterns longer than
// Width cannot be searched for.
const Width = 64

// ErrPatternTooLong is returned when a pattern's length exceeds Width.
var ErrPatternTooLong = errors.New("bitap: pattern length exceeds bitmask width")

// Hint is the rolling match-state bitmask carried between search calls:
// bit i (0-based from the LSB) is set iff the suffix of length i+1
// ending at the current corpus position matches a prefix of the
// pattern. A zero Hint is the correct starting state for a fresh search.
type Hint = uint64

// Match is a half-open view into the corpus marking an occurrence of
// the pattern: always exactly the pattern's length wide when found.
// Begin == End == len(corpus) is the "not found" / end sentinel.
type Match struct {
	Begin, End int
}

// Empty reports whether m is the not-found sentinel.
func (m Match) Empty() bool { return m.Begin == m.End }

// rollingUpdate is bitap's one bit operation: shift left by one
// position (toward the match bit), set the new low bit, then mask
// against the current corpus element's pattern-position bitmask.
func rollingUpdate(hint, elementMask Hint) Hint {
	return ((hint << 1) | 1) & elementMask
}
