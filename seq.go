package idable

import "sync/atomic"

// Seq is a bare atomic counter for callers that need process-local sequence
// numbers without a time component. The zero value is ready to use and
// starts at 0. Safe for concurrent use without external locking.
type Seq struct {
	n atomic.Uint64
}

// NewSeq returns a counter starting at 0.
func NewSeq() *Seq {
	return &Seq{}
}

// SeqFrom returns a counter whose next value is v.
func SeqFrom(v uint64) *Seq {
	s := &Seq{}
	s.n.Store(v)
	return s
}

// NextID returns the current value and advances the counter.
func (s *Seq) NextID() uint64 {
	return s.n.Add(1) - 1
}

// Reset rewinds the counter to 0.
func (s *Seq) Reset() {
	s.n.Store(0)
}
