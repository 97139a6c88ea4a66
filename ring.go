package handoff

import "fmt"

var (
	ErrRingOverflow  = fmt.Errorf("ring overflow: push on a full buffer")
	ErrRingUnderflow = fmt.Errorf("ring underflow: pop on an empty buffer")
)

// ring is a fixed-capacity circular buffer with independent read and write
// cursors. The slot at the read cursor is unoccupied iff the ring is empty;
// the slot at the write cursor is occupied iff the ring is full. Per-slot
// occupancy keeps the two predicates unambiguous when the cursors coincide,
// both on the all-empty and the all-full side of a wrap-around.
type ring[T any] struct {
	slots []slot[T]
	read  int // next slot to pop
	write int // next slot to fill
}

// newRing creates a ring with the given fixed capacity.
// Capacity must be >= 1.
func newRing[T any](capacity int) *ring[T] {
	if capacity < 1 {
		panic("handoff: capacity must be >= 1")
	}
	return &ring[T]{slots: make([]slot[T], capacity)}
}

// empty reports whether the ring holds no payloads.
func (r *ring[T]) empty() bool {
	return !r.slots[r.read].set
}

// full reports whether every slot holds a payload.
func (r *ring[T]) full() bool {
	return r.slots[r.write].set
}

// cap returns the fixed capacity.
func (r *ring[T]) cap() int {
	return len(r.slots)
}

// push stores v at the write cursor and advances the cursor.
// The caller must have established that the ring is not full; a push on a
// full ring is a broken invariant and panics with ErrRingOverflow.
func (r *ring[T]) push(v T) {
	s := &r.slots[r.write]
	if s.set {
		panic(ErrRingOverflow)
	}
	s.val = v
	s.set = true
	r.write = (r.write + 1) % len(r.slots)
}

// pop returns the oldest payload, releases its slot and advances the read
// cursor. A pop on an empty ring is a broken invariant and panics with
// ErrRingUnderflow.
func (r *ring[T]) pop() T {
	s := &r.slots[r.read]
	if !s.set {
		panic(ErrRingUnderflow)
	}
	v := s.val
	var zero T
	s.val = zero // drop the reference so the payload can be collected
	s.set = false
	r.read = (r.read + 1) % len(r.slots)
	return v
}
