package pulsetest

import (
	"sync"

	"github.com/vango-dev/pulse/pkg/pulse"
)

// Recorder records a stream's updates for tests and diagnostics.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
	stop   func()
}

// Record subscribes a new Recorder to s. Updates delivered after this call
// are recorded in order.
func Record[T any](s *pulse.Stream[T]) *Recorder[T] {
	r := &Recorder[T]{}
	r.stop = s.OnUpdate(func(v T) {
		r.mu.Lock()
		r.values = append(r.values, v)
		r.mu.Unlock()
	})
	return r
}

// Values returns a snapshot copy of the recorded updates, oldest first.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]T, len(r.values))
	copy(cp, r.values)
	return cp
}

// Len returns the number of recorded updates.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Last returns the most recent update and whether any update was recorded.
func (r *Recorder[T]) Last() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		var zero T
		return zero, false
	}
	return r.values[len(r.values)-1], true
}

// Reset clears the recorded updates without detaching.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.values = nil
	r.mu.Unlock()
}

// Close detaches the recorder from its stream.
func (r *Recorder[T]) Close() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}
