package pulsex

import "github.com/vango-dev/pulse/pkg/pulse"

// SampleWhen passes source's updates through while control is true, and at
// the instant control transitions false to true it additionally emits
// source's current value, even if source is not updating that round. This
// is what distinguishes it from a plain gate, which only passes updates
// that happen to coincide with the control being true.
//
// Control transitions are detected on changes only: repeated deliveries of
// true are not re-triggers. A source update coinciding with the rising edge
// produces one event, not two.
//
// The initial value is source's when control starts true, def otherwise.
func SampleWhen[T any](control *pulse.Stream[bool], def T, source *pulse.Stream[T]) *pulse.Stream[T] {
	changes := pulse.DropRepeats(control)
	rising := pulse.KeepIf(func(b bool) bool { return b }, true, changes)
	passed := pulse.KeepWhen(changes, def, source)
	sampled := pulse.SampleOn(rising, source)
	return FairMerge(func(_, sampled T) T { return sampled }, passed, sampled)
}

// KeepThen shows signal's sampled value while control is true and reverts
// to the fixed base value the instant control becomes false.
func KeepThen[T any](control *pulse.Stream[bool], base T, signal *pulse.Stream[T]) *pulse.Stream[T] {
	return SwitchSample(control, signal, pulse.Constant(signal.Graph(), base))
}
