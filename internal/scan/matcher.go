package scan

// Matcher is a prefix-function automaton for a single marker. It consumes one
// byte at a time and keeps, as its state, the length of the longest suffix of
// everything consumed so far that is also a prefix of the marker. A mismatch
// falls back along the failure links instead of restarting, so overlapping
// partial matches such as 00 01 00 00 01 00 00 09 70 are not lost.
type Matcher struct {
	marker Marker
	fail   []int
	n      int
}

// NewMatcher builds the automaton for m. m must not be empty.
func NewMatcher(m Marker) *Matcher {
	fail := make([]int, len(m))
	k := 0
	for i := 1; i < len(m); i++ {
		for k > 0 && m[i] != m[k] {
			k = fail[k-1]
		}
		if m[i] == m[k] {
			k++
		}
		fail[i] = k
	}
	return &Matcher{marker: m, fail: fail}
}

// Step consumes b and reports whether it completed an occurrence of the marker.
// After a completed match the state keeps the longest proper border, so
// back-to-back occurrences are each reported.
func (m *Matcher) Step(b byte) bool {
	for m.n > 0 && b != m.marker[m.n] {
		m.n = m.fail[m.n-1]
	}
	if b == m.marker[m.n] {
		m.n++
	}
	if m.n == len(m.marker) {
		m.n = m.fail[m.n-1]
		return true
	}
	return false
}

// Partial returns how many bytes of the marker the most recent input matches.
func (m *Matcher) Partial() int { return m.n }

// Tail returns the retained suffix of the input: the bytes that would have to
// be carried into the next chunk for a split marker to be found.
func (m *Matcher) Tail() []byte { return m.marker[:m.n:m.n] }

// Marker returns the marker this automaton recognises.
func (m *Matcher) Marker() Marker { return m.marker }

// Reset forgets any partial match.
func (m *Matcher) Reset() { m.n = 0 }
