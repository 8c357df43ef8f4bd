package pulsex

import "github.com/vango-dev/pulse/pkg/pulse"

// FairMerge behaves like a plain unbiased merge while left and right never
// update in the same round. When they do, it emits exactly one event
// carrying resolve(leftValue, rightValue) for that round — not two events
// and not zero. resolve is never invoked for non-colliding rounds. The
// initial value is left's.
//
// Collision is detected at delivery granularity: two sides updated by
// separate deliveries of an upstream colliding Merge count as distinct
// events and pass through unresolved, like a plain merge would deliver them.
func FairMerge[T any](resolve func(left, right T) T, left, right *pulse.Stream[T]) *pulse.Stream[T] {
	both := pulse.Coincide(left, right)
	return pulse.Map(func(c pulse.Coincidence[T, T]) T {
		switch {
		case c.LeftUpdated && c.RightUpdated:
			return resolve(c.Left, c.Right)
		case c.RightUpdated:
			return c.Right
		default:
			return c.Left
		}
	}, both)
}
