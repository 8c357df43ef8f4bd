package pulse

// KeepWhen passes s's updates through while control's current value is true.
// Updates arriving while control is false are suppressed, not queued. The
// initial value is s's when control starts true, def otherwise.
//
// Within a round, control settles before the gate is evaluated, so an update
// of s coinciding with a control change sees the new control value.
func KeepWhen[T any](control *Stream[bool], def T, s *Stream[T]) *Stream[T] {
	initial := def
	if control.value {
		initial = s.value
	}
	out := newStream(s.g, heightAfter(&control.streamCore, &s.streamCore), initial)
	out.run = func() {
		if control.value {
			out.emit(s.value)
		}
	}
	link(out, &s.streamCore)
	return out
}

// KeepIf passes through the updates of s whose value satisfies pred. The
// initial value is s's if it satisfies pred, def otherwise.
func KeepIf[T any](pred func(T) bool, def T, s *Stream[T]) *Stream[T] {
	initial := def
	if pred(s.value) {
		initial = s.value
	}
	out := newStream(s.g, heightAfter(&s.streamCore), initial)
	out.run = func() {
		if v := s.value; pred(v) {
			out.emit(v)
		}
	}
	link(out, &s.streamCore)
	return out
}

// DropRepeats suppresses updates that leave the value unchanged, so only
// genuine changes propagate. Control streams are deduplicated this way
// before transition detection.
func DropRepeats[T comparable](s *Stream[T]) *Stream[T] {
	return DropRepeatsFunc(func(a, b T) bool { return a == b }, s)
}

// DropRepeatsFunc is DropRepeats with a custom equality function, for value
// types that are not comparable or need looser equality.
func DropRepeatsFunc[T any](eq func(T, T) bool, s *Stream[T]) *Stream[T] {
	out := newStream(s.g, heightAfter(&s.streamCore), s.value)
	out.run = func() {
		if !eq(out.value, s.value) {
			out.emit(s.value)
		}
	}
	link(out, &s.streamCore)
	return out
}

// SampleOn re-emits source's current value at trigger's update moments.
// If source updates in the same delivery as trigger, the freshly computed
// value is sampled.
func SampleOn[A, B any](trigger *Stream[A], source *Stream[B]) *Stream[B] {
	out := newStream(source.g, heightAfter(&trigger.streamCore, &source.streamCore), source.value)
	out.run = func() { out.emit(source.value) }
	link(out, &trigger.streamCore)
	return out
}
