package handoff

import "sync"

// Chan is a bounded handoff point between goroutines. Send and Recv block
// until the operation can complete; values come out in the exact order they
// went in, regardless of which goroutines performed the calls. Any number of
// goroutines may send, receive, or wait on the same Chan concurrently.
//
// A Chan has no close or drain operation. A Send or Recv with no matching
// counterpart stays blocked; only the opposite operation on the same Chan
// can release it.
type Chan[T any] struct {
	mu          sync.Mutex
	spaceFreed  *sync.Cond // signaled after each pop
	valueStored *sync.Cond // signaled after each push
	buf         *ring[T]
}

// New creates a Chan of capacity 1. It behaves as a rendezvous: a sender
// cannot complete a second Send until some receiver has drained the first
// value.
func New[T any]() *Chan[T] {
	return NewBuffered[T](1)
}

// NewBuffered creates a Chan that buffers up to capacity values.
// Capacity must be >= 1 and is fixed for the life of the Chan.
func NewBuffered[T any](capacity int) *Chan[T] {
	c := &Chan[T]{buf: newRing[T](capacity)}
	c.spaceFreed = sync.NewCond(&c.mu)
	c.valueStored = sync.NewCond(&c.mu)
	return c
}

// Send stores v in the channel, blocking while the buffer is full.
func (c *Chan[T]) Send(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.buf.full() {
		// Re-check after every wake: another sender may have taken the
		// freed slot first, and condition waits can wake spuriously.
		c.spaceFreed.Wait()
	}
	c.buf.push(v)

	// One slot's worth of progress, so waking one receiver is enough.
	c.valueStored.Signal()
}

// Recv returns the oldest value in the channel, blocking while the buffer
// is empty.
func (c *Chan[T]) Recv() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.buf.empty() {
		c.valueStored.Wait()
	}
	v := c.buf.pop()

	c.spaceFreed.Signal()
	return v
}

// TrySend stores v without blocking.
// Returns false if the buffer is full.
func (c *Chan[T]) TrySend(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buf.full() {
		return false
	}
	c.buf.push(v)
	c.valueStored.Signal()
	return true
}

// TryRecv returns the oldest value without blocking.
// Returns (zero, false) if the buffer is empty.
func (c *Chan[T]) TryRecv() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buf.empty() {
		var zero T
		return zero, false
	}
	v := c.buf.pop()
	c.spaceFreed.Signal()
	return v, true
}

// Cap returns the fixed channel capacity.
func (c *Chan[T]) Cap() int {
	return c.buf.cap()
}
