package pulsex

import "github.com/vango-dev/pulse/pkg/pulse"

// SwitchWhen continuously outputs onTrue while control is true and onFalse
// while it is false. At a control flip the newly selected side shows
// through only on its own next update; use SwitchSample for an active
// handoff.
func SwitchWhen[T any](control *pulse.Stream[bool], onTrue, onFalse *pulse.Stream[T]) *pulse.Stream[T] {
	return switchWith(pulse.KeepWhen[option[T]], control, onTrue, onFalse)
}

// SwitchSample is SwitchWhen with a sampling handoff: at the instant of a
// control flip the newly selected stream's current value is emitted
// regardless of whether that stream is updating.
func SwitchSample[T any](control *pulse.Stream[bool], onTrue, onFalse *pulse.Stream[T]) *pulse.Stream[T] {
	return switchWith(SampleWhen[option[T]], control, onTrue, onFalse)
}

// switchWith gates each side with the control and its round-coherent
// negation, so exactly one side is open in any given round, merges the
// gated union with a base selection computed from the three inputs' initial
// values, and unwraps. The base takes effect only until the first real
// selection event arrives.
func switchWith[T any](
	gate func(*pulse.Stream[bool], option[T], *pulse.Stream[option[T]]) *pulse.Stream[option[T]],
	control *pulse.Stream[bool],
	onTrue, onFalse *pulse.Stream[T],
) *pulse.Stream[T] {
	initial := onFalse.Value()
	if control.Value() {
		initial = onTrue.Value()
	}

	negated := pulse.Map(func(b bool) bool { return !b }, control)
	opened := gate(control, none[T](), pulse.Map(some[T], onTrue))
	closed := gate(negated, none[T](), pulse.Map(some[T], onFalse))

	base := pulse.Constant(control.Graph(), some(initial))
	selected := pulse.Merge(base, pulse.Merge(opened, closed))

	return pulse.Map(func(o option[T]) T {
		if v, ok := o.get(); ok {
			return v
		}
		return initial
	}, selected)
}
