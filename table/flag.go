package table

import "go.uber.org/atomic"

// Flag is the termination flag of a run. It goes from running to stopped
// exactly once and is never reset.
type Flag struct {
	stopped atomic.Bool
	done    chan struct{}
}

// NewFlag creates a Flag in the running state.
func NewFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

// Stop sets the flag. It returns true only for the call that set it.
func (f *Flag) Stop() bool {
	if !f.stopped.CompareAndSwap(false, true) {
		return false
	}
	close(f.done)
	return true
}

// Stopped reports whether the flag is set.
func (f *Flag) Stopped() bool { return f.stopped.Load() }

// Done returns a channel closed when the flag is set.
func (f *Flag) Done() <-chan struct{} { return f.done }
