package pulse

// Fold accumulates state across the updates of s: each update a transitions
// the current value b to step(a, b). The current value starts at seed.
// Downstream of a colliding Merge, both deliveries of a round are folded.
func Fold[A, B any](step func(A, B) B, seed B, s *Stream[A]) *Stream[B] {
	out := newStream(s.g, heightAfter(&s.streamCore), seed)
	out.run = func() { out.emit(step(s.value, out.value)) }
	link(out, &s.streamCore)
	return out
}
