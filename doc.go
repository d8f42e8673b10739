// Package seqring provides a fixed-capacity, seqlocked, single-producer /
// multi-consumer ring buffer.
//
// A single WriteHandle publishes values into the ring without ever
// blocking; when the ring is full, the oldest slot is silently
// overwritten. Any number of ReadHandles observe the published values
// concurrently, with no mutex: each read verifies a per-slot seqlock
// version instead of taking a lock. A ReadHandle used by a single
// goroutine behaves as an independent cursor over the whole stream; the
// same *ReadHandle shared across goroutines has them steal messages from
// one another, so each pushed value is delivered to exactly one thief.
//
// A reader that falls more than capacity-many pushes behind the writer has
// been lapped: the writer has already overwritten the slot the reader wanted.
// This is never surfaced as an error — PopFront simply reports no value
// and the reader's cursor is skipped forward to the writer's current
// position.
package seqring
