// Package handoff provides a bounded, thread-safe handoff channel with
// blocking Send/Recv and FIFO delivery, plus a helper that runs a unit of
// work on its own goroutine and hands back a joinable handle.
package handoff

// A slot holds either one payload or nothing. The unoccupied variant plays
// the role of a sentinel: it can never collide with a legitimate value of T,
// including the zero value, so occupancy is tracked per slot rather than by
// counting writes minus reads.
type slot[T any] struct {
	val T    // payload stored in this slot
	set bool // true while the slot holds a payload
}
