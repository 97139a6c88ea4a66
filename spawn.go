package handoff

// Thread is a handle to one spawned unit of work.
type Thread struct {
	done chan struct{}
}

// Spawn runs task on a new goroutine and returns a handle to it without
// waiting for the task to start or finish. Every call spawns a fresh
// goroutine: no pooling, no reuse, and no bound on how many may be live at
// once, so the concurrency budget is the caller's to keep. No ordering is
// guaranteed between Spawn returning and the task beginning to execute.
func Spawn(task func()) *Thread {
	t := &Thread{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		task()
	}()
	return t
}

// Join blocks until the spawned task has returned.
// Safe to call from any number of goroutines; all of them unblock.
func (t *Thread) Join() {
	<-t.done
}
