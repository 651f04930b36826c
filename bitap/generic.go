package bitap

// Matcher is a bitap search engine over an arbitrary comparable
// alphabet, backed by a map from symbol to pattern-position bitmask —
// the general case, used whenever the corpus element type isn't a
// single byte.
type Matcher[T comparable] struct {
	table  map[T]Hint
	length int
}

// New builds a matcher for pattern. Returns ErrPatternTooLong if
// len(pattern) > Width.
func New[T comparable](pattern []T) (*Matcher[T], error) {
	if len(pattern) > Width {
		return nil, ErrPatternTooLong
	}
	m := &Matcher[T]{table: make(map[T]Hint, len(pattern)), length: len(pattern)}
	indicator := Hint(1)
	for _, s := range pattern {
		m.table[s] |= indicator
		indicator <<= 1
	}
	return m, nil
}

// Len returns the pattern's length.
func (m *Matcher[T]) Len() int { return m.length }

func (m *Matcher[T]) matchIndicator() Hint { return Hint(1) << uint(m.length-1) }

// lookup returns the symbol's bitmask, or the zero mask for a symbol
// absent from the pattern — Go's zero-value map read does this for free.
func (m *Matcher[T]) lookup(s T) Hint { return m.table[s] }

// FindFirst returns the first match of the pattern in corpus and the
// hint to resume from. See ByteMatcher.FindFirst for the contract.
func (m *Matcher[T]) FindFirst(corpus []T) (Match, Hint) {
	return m.search(corpus, 0, 0)
}

// FindNext continues the search after prev. See ByteMatcher.FindNext for
// the contract.
func (m *Matcher[T]) FindNext(corpus []T, prev Match, hint Hint) (Match, Hint) {
	if prev.End >= len(corpus) {
		return Match{Begin: len(corpus), End: len(corpus)}, hint
	}
	return m.search(corpus, prev.End, hint)
}

func (m *Matcher[T]) search(corpus []T, start int, hint Hint) (Match, Hint) {
	indicator := m.matchIndicator()
	i := start
	for i < len(corpus) {
		hint = rollingUpdate(hint, m.lookup(corpus[i]))
		i++
		if hint&indicator != 0 {
			return Match{Begin: i - m.length, End: i}, hint
		}
	}
	return Match{Begin: len(corpus), End: len(corpus)}, hint
}

// AllMatches returns a lazy iterator over every, possibly overlapping,
// match of m in corpus.
func (m *Matcher[T]) AllMatches(corpus []T) *MatchIter[T] {
	return &MatchIter[T]{m: m, corpus: corpus}
}

// MatchIter is a resumable, lazy all-matches iterator over a generic
// corpus.
type MatchIter[T comparable] struct {
	m       *Matcher[T]
	corpus  []T
	cur     Match
	hint    Hint
	started bool
}

// Next advances to and returns the next match, or false once exhausted.
func (it *MatchIter[T]) Next() (Match, bool) {
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
