package seqring

// WriteHandle is the ring's unique producer capability. At most one exists
// per Ring at any instant, enforced by Ring.writerLocked. Push never blocks
// and never fails: on a full ring it silently overwrites the oldest slot.
type WriteHandle[T any] struct {
	ring *Ring[T]
}

// Push publishes v as the next sequence number. The slot's version is
// stamped odd, the payload copied in, then the slot's version is stamped
// even again before write_index is advanced — the release on write_index
// pairs with a reader's acquire load of the same field.
func (w *WriteHandle[T]) Push(v T) {
	n := w.ring.writeIndex.Load()
	i := n & w.ring.mask
	even := versionFor(n, w.ring.capacity)

	s := &w.ring.slots[i]
	s.beginWrite(even - 2)
	s.payload = v
	s.finishWrite(even - 2)

	w.ring.writeIndex.Store(n + 1)
	w.ring.pushes.Add(1)
}

// Close releases the producer capability. A subsequent TryAcquireWriter on
// the same Ring may then succeed. Close is not guarded: calling it twice on
// the same handle releases the lock a second time, even if another
// WriteHandle has acquired it since, and is a caller error, same as
// double-unlocking a mutex.
func (w *WriteHandle[T]) Close() {
	w.ring.writerLocked.Store(false)
}
