package seqring

import (
	"runtime"
	"sync/atomic"
)

// maxSnapshotRetries bounds how many times PopFront re-attempts a
// snapshotRead on a slot whose version was torn or mid-write before giving
// up and reporting no value. Persistent failure past this bound is only
// reachable when the reader has fallen exactly CAP behind the writer, which
// is itself a lap.
const maxSnapshotRetries = 8

// ReadHandle is a consumer capability over a Ring. A ReadHandle used only by
// its owning goroutine behaves as an independent cursor; the same
// *ReadHandle shared across goroutines has them cooperatively steal
// messages via the same cursor, so each pushed value reaches at most one of
// them. Both modes share one representation: readIndex is always an atomic
// cell, claimed via compare-and-swap. With no contention a CAS degrades to
// an unconditional advance, so the same PopFront logic is correct whether
// the handle is private or shared — see DESIGN.md for the rationale.
type ReadHandle[T any] struct {
	ring      *Ring[T]
	readIndex atomic.Uint64
}

// PopFront returns the next unread value, or false if there is none right
// now — because the cursor has caught up to the writer, because this call
// lost a lap and skipped forward, or because a concurrent write on the
// claimed slot could not be observed cleanly within the retry bound. None
// of these are errors; they are all "nothing to return this time."
func (h *ReadHandle[T]) PopFront() (value T, ok bool) {
	for {
		w := h.ring.writeIndex.Load()
		r := h.readIndex.Load()
		if r >= w {
			return value, false
		}

		if !h.readIndex.CompareAndSwap(r, r+1) {
			// another reader sharing this handle claimed r first.
			continue
		}

		expected := versionFor(r, h.ring.capacity)
		s := &h.ring.slots[r&h.ring.mask]

		for attempt := 0; ; attempt++ {
			v, success, lapped := s.snapshotRead(expected)
			if success {
				h.ring.pops.Add(1)
				return v, true
			}
			if lapped {
				h.ring.lapped.Add(1)
				h.skipPastLap(w)
				return value, false
			}
			if attempt >= maxSnapshotRetries {
				// per spec.md §4.4 step 6, this is only reachable when the
				// reader has fallen exactly CAP behind — itself a lap, so it
				// is folded into the same counter as a version-mismatch lap.
				h.ring.retriesGivenUp.Add(1)
				h.ring.lapped.Add(1)
				return value, false
			}
			runtime.Gosched()
		}
	}
}

// skipPastLap advances readIndex to at least w, the canonical recovery for
// a detected lap: skip to the writer's current head instead of guessing at
// the oldest still-valid sequence. Uses a CAS loop so concurrent thieves
// that all detect the same lap never regress each other's cursor. Every
// sequence this jump swallows beyond the one already individually claimed
// and counted in PopFront is also lapped and is accounted for here, so
// Stats().Pops + Stats().Lapped sums to the number of sequences resolved
// one way or the other, per spec.md §8 scenario 3.
func (h *ReadHandle[T]) skipPastLap(w uint64) {
	for {
		cur := h.readIndex.Load()
		if cur >= w {
			return
		}
		if h.readIndex.CompareAndSwap(cur, w) {
			if swallowed := w - cur; swallowed > 0 {
				h.ring.lapped.Add(swallowed)
			}
			return
		}
	}
}

// Clone returns a new ReadHandle sharing this Ring but with an independent
// cursor snapshotted from the current one. Clones never coordinate with
// each other or with the handle they were cloned from.
func (h *ReadHandle[T]) Clone() *ReadHandle[T] {
	c := &ReadHandle[T]{ring: h.ring}
	c.readIndex.Store(h.readIndex.Load())
	return c
}
