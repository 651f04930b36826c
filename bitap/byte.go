package bitap

// ByteMatcher is a bitap search engine over byte-alphabet corpora
// (including strings), backed by a dense 256-entry bitmask table — the
// fast path for single-byte elements, mirroring the source's
// std::array specialization of its bitmask table.
type ByteMatcher struct {
	table  [256]Hint
	length int
}

// NewByteMatcher builds a matcher for pattern. Returns ErrPatternTooLong
// if len(pattern) > Width.
func NewByteMatcher(pattern []byte) (*ByteMatcher, error) {
	if len(pattern) > Width {
		return nil, ErrPatternTooLong
	}
	m := &ByteMatcher{length: len(pattern)}
	indicator := Hint(1)
	for _, b := range pattern {
		m.table[b] |= indicator
		indicator <<= 1
	}
	return m, nil
}

// NewStringMatcher is NewByteMatcher over a string pattern.
func NewStringMatcher(pattern string) (*ByteMatcher, error) {
	return NewByteMatcher([]byte(pattern))
}

// Len returns the pattern's length.
func (m *ByteMatcher) Len() int { return m.length }

func (m *ByteMatcher) matchIndicator() Hint { return Hint(1) << uint(m.length-1) }

// FindFirst returns the first match of the pattern in corpus (scanning
// from the start) and the hint to resume search from. On no match, the
// returned Match is the end sentinel and the hint's value is
// unspecified.
func (m *ByteMatcher) FindFirst(corpus []byte) (Match, Hint) {
	return m.search(corpus, 0, 0)
}

// FindNext continues the search after prev, a match previously returned
// by FindFirst or FindNext over the same corpus, reusing hint. Scanning
// resumes at the element just past prev with the hint carried over, so
// overlapping matches are found. Returns the end sentinel once prev
// already reached the end of corpus.
func (m *ByteMatcher) FindNext(corpus []byte, prev Match, hint Hint) (Match, Hint) {
	if prev.End >= len(corpus) {
		return Match{Begin: len(corpus), End: len(corpus)}, hint
	}
	return m.search(corpus, prev.End, hint)
}

func (m *ByteMatcher) search(corpus []byte, start int, hint Hint) (Match, Hint) {
	indicator := m.matchIndicator()
	i := start
	for i < len(corpus) {
		hint = rollingUpdate(hint, m.table[corpus[i]])
		i++
		if hint&indicator != 0 {
			return Match{Begin: i - m.length, End: i}, hint
		}
	}
	return Match{Begin: len(corpus), End: len(corpus)}, hint
}

// AllMatches returns a lazy iterator over every, possibly overlapping,
// match of m in corpus.
func (m *ByteMatcher) AllMatches(corpus []byte) *ByteMatchIter {
	return &ByteMatchIter{m: m, corpus: corpus}
}

// ByteMatchIter is a resumable, lazy all-matches iterator over a byte
// corpus.
type ByteMatchIter struct {
	m       *ByteMatcher
	corpus  []byte
	cur     Match
	hint    Hint
	started bool
}

// Next advances to and returns the next match, or false once exhausted.
func (it *ByteMatchIter) Next() (Match, bool) {
	if !it.started {
		it.started = true
		it.cur, it.hint = it.m.FindFirst(it.corpus)
	} else {
		it.cur, it.hint = it.m.FindNext(it.corpus, it.cur, it.hint)
	}
	if it.cur.Empty() {
		return Match{}, false
	}
	return it.cur, true
}
