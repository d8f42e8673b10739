package seqring

import "sync/atomic"

// slot holds one payload plus the seqlock version counter that guards it.
//
// version is even while the slot is quiescent (never written, or fully
// published) and odd only for the instant a writer is mid-publish. Padding
// keeps a slot's version away from its neighbors' cache lines, since the
// writer touches one slot's version on every push while readers poll many.
type slot[T any] struct {
	version atomic.Uint64
	_       [56]byte
	payload T
}

// beginWrite stamps the slot odd, announcing an in-progress publish for the
// sequence whose stable version is expectedEven.
func (s *slot[T]) beginWrite(expectedEven uint64) {
	s.version.Store(expectedEven + 1)
}

// finishWrite stamps the slot at the next even version. Callers must have
// written the payload before calling this — the store below is the release
// that makes those payload bytes visible to readers.
func (s *slot[T]) finishWrite(expectedEven uint64) {
	s.version.Store(expectedEven + 2)
}

// snapshotRead attempts a torn-free read of the payload, verifying with the
// expected even version for the sequence being read. It reports which of
// three outcomes occurred: ok (a clean read matching expected), lapped (the
// slot has moved on to a later, higher version — the writer has overwritten
// it), or neither (the read raced a concurrent write and should be retried,
// or the slot has not yet been written for the expected version).
func (s *slot[T]) snapshotRead(expectedEven uint64) (value T, ok bool, lapped bool) {
	v1 := s.version.Load()
	if v1&1 != 0 {
		return value, false, false
	}

	value = s.payload

	v2 := s.version.Load()
	if v1 != v2 || v1 == 0 {
		return value, false, false
	}
	if v1 > expectedEven {
		return value, false, true
	}
	if v1 < expectedEven {
		return value, false, false
	}
	return value, true, false
}
