package scan

import (
	"errors"
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("scan: scanner closed")

// Phase identifies which variant of State is active.
type Phase int

const (
	// PhaseIdle: no candidate; looking for Start.
	PhaseIdle Phase = iota
	// PhasePending: a Start was seen; looking for Confirm, End or a newer Start.
	PhasePending
	// PhaseCapturing: the candidate is confirmed; only End is recognised.
	PhaseCapturing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseCapturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// State is the single scan state. Start and Buf are only meaningful outside
// PhaseIdle, where Buf holds exactly the stream bytes [Start, offset).
type State struct {
	Phase Phase
	Start int64
	Buf   []byte
}

// Block is one extracted schema document.
type Block struct {
	// Offset of the first Start byte in the stream.
	Offset int64
	// Data runs from the first Start byte through the last End byte.
	Data []byte
}

// Len returns the size of the block in bytes.
func (b Block) Len() int { return len(b.Data) }

// Stats counts how candidates were resolved. Rejections are not errors.
type Stats struct {
	Starts      int
	Confirmed   int
	Superseded  int // pending candidate replaced by a later Start
	Unconfirmed int // End reached before Confirm
	Truncated   int // still open at end of stream
	Oversized   int // dropped by WithMaxCandidate
}

// Rejected returns the number of candidates that produced no block.
func (s Stats) Rejected() int {
	return s.Superseded + s.Unconfirmed + s.Truncated + s.Oversized
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMaxCandidate drops a candidate once it has buffered more than n bytes
// without reaching End. n <= 0 leaves candidates unbounded.
func WithMaxCandidate(n int) Option {
	return func(s *Scanner) { s.maxCandidate = n }
}

const initialCandidateCap = 4 << 10

// Scanner is the extraction engine. Feed it the stream in order with Write,
// in chunks of any size, then call Close to obtain the extracted blocks.
// A Scanner holds the state of exactly one stream and is not safe for
// concurrent use; independent streams need independent Scanners.
type Scanner struct {
	start   *Matcher
	confirm *Matcher
	end     *Matcher

	state        State
	offset       int64
	blocks       []Block
	stats        Stats
	maxCandidate int
	closed       bool
}

// NewScanner returns a Scanner in PhaseIdle at offset 0.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		start:   NewMatcher(Start),
		confirm: NewMatcher(Confirm),
		end:     NewMatcher(End),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write consumes the next chunk of the stream. It never retains p.
func (s *Scanner) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	// seg is the first byte of p not yet copied into the candidate buffer.
	seg := 0
	for i, b := range p {
		switch s.state.Phase {
		case PhaseIdle:
			if s.start.Step(b) {
				s.open(s.offset + int64(i))
				seg = i + 1
			}

		case PhasePending:
			// The markers end in different bytes, so at most one completes here.
			started := s.start.Step(b)
			confirmed := s.confirm.Step(b)
			ended := s.end.Step(b)
			switch {
			case started:
				s.stats.Superseded++
				s.open(s.offset + int64(i))
				seg = i + 1
				continue
			case confirmed:
				s.stats.Confirmed++
				s.state.Phase = PhaseCapturing
			case ended:
				s.stats.Unconfirmed++
				s.discard()
				continue
			}
			if s.oversized(len(s.state.Buf) + i + 1 - seg) {
				s.discard()
			}

		case PhaseCapturing:
			if s.end.Step(b) {
				s.state.Buf = append(s.state.Buf, p[seg:i+1]...)
				s.emit()
				continue
			}
			if s.oversized(len(s.state.Buf) + i + 1 - seg) {
				s.discard()
			}
		}
	}

	if s.state.Phase != PhaseIdle {
		s.state.Buf = append(s.state.Buf, p[seg:]...)
	}
	s.offset += int64(len(p))
	return len(p), nil
}

// open starts a new candidate whose Start marker completed at stream offset
// last. Any previous candidate is dropped wholesale.
func (s *Scanner) open(last int64) {
	s.stats.Starts++
	buf := make([]byte, len(Start), initialCandidateCap)
	copy(buf, Start)
	s.state = State{
		Phase: PhasePending,
		Start: last + 1 - int64(len(Start)),
		Buf:   buf,
	}
	s.confirm.Reset()
	s.end.Reset()
}

func (s *Scanner) emit() {
	s.blocks = append(s.blocks, Block{Offset: s.state.Start, Data: s.state.Buf})
	s.idle()
}

func (s *Scanner) discard() {
	s.idle()
}

func (s *Scanner) idle() {
	s.state = State{}
	s.start.Reset()
	s.confirm.Reset()
	s.end.Reset()
}

func (s *Scanner) oversized(n int) bool {
	if s.maxCandidate <= 0 || n <= s.maxCandidate {
		return false
	}
	s.stats.Oversized++
	return true
}

// Close ends the stream. An open candidate is dropped silently. The returned
// blocks are in stream order.
func (s *Scanner) Close() []Block {
	if !s.closed {
		if s.state.Phase != PhaseIdle {
			s.stats.Truncated++
			s.discard()
		}
		s.closed = true
	}
	return s.blocks
}

// Blocks returns the blocks completed so far.
func (s *Scanner) Blocks() []Block { return s.blocks }

// State returns the current scan state. The buffer is shared with the Scanner.
func (s *Scanner) State() State { return s.state }

// Stats returns candidate counters.
func (s *Scanner) Stats() Stats { return s.stats }

// Offset returns the number of stream bytes consumed.
func (s *Scanner) Offset() int64 { return s.offset }

// CarryTail returns the most recent bytes that are still a valid prefix of an
// active marker. Every active matcher's partial match is a suffix of the same
// stream, so the longest one covers all of them.
func (s *Scanner) CarryTail() []byte {
	var tail []byte
	for _, m := range s.active() {
		if t := m.Tail(); len(t) > len(tail) {
			tail = t
		}
	}
	return append([]byte(nil), tail...)
}

func (s *Scanner) active() []*Matcher {
	switch s.state.Phase {
	case PhasePending:
		return []*Matcher{s.start, s.confirm, s.end}
	case PhaseCapturing:
		return []*Matcher{s.end}
	default:
		return []*Matcher{s.start}
	}
}
