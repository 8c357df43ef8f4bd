package pulsex

import "github.com/vango-dev/pulse/pkg/pulse"

// RunBuffer keeps the n most recent values of input, oldest first, starting
// empty. With n <= 0 the sequence is always empty.
func RunBuffer[T any](n int, input *pulse.Stream[T]) *pulse.Stream[[]T] {
	return RunBufferFrom(nil, n, input)
}

// RunBufferFrom is RunBuffer with an explicit starting sequence. A starting
// sequence longer than n is re-bounded by dropping from the front. Emitted
// slices are never mutated afterwards and are safe to retain.
func RunBufferFrom[T any](initial []T, n int, input *pulse.Stream[T]) *pulse.Stream[[]T] {
	if n < 0 {
		n = 0
	}
	start := 0
	if len(initial) > n {
		start = len(initial) - n
	}
	seed := append([]T(nil), initial[start:]...)

	return pulse.Fold(func(v T, buf []T) []T {
		next := make([]T, 0, len(buf)+1)
		next = append(next, buf...)
		next = append(next, v)
		if len(next) > n {
			next = next[len(next)-n:]
		}
		return next
	}, seed, input)
}

// DelayRound lags input by exactly one round: on each round it emits the
// value held before that round's update. The initial value is seed, and the
// first update re-emits it.
func DelayRound[T any](seed T, input *pulse.Stream[T]) *pulse.Stream[T] {
	return FoldState(func(v, held T) (T, T) { return held, v }, seed, seed, input)
}
