package pulse

// Constant returns a stream whose value is fixed at v and never updates.
func Constant[T any](g *Graph, v T) *Stream[T] {
	return newStream(g, 0, v)
}

// Map derives a stream by applying f to every update of s. The initial value
// is f applied to s's initial value.
func Map[A, B any](f func(A) B, s *Stream[A]) *Stream[B] {
	out := newStream(s.g, heightAfter(&s.streamCore), f(s.value))
	out.run = func() { out.emit(f(s.value)) }
	link(out, &s.streamCore)
	return out
}

// Map2 combines the latest values of two streams pairwise, firing once per
// delivery in which either input updates.
func Map2[A, B, C any](f func(A, B) C, a *Stream[A], b *Stream[B]) *Stream[C] {
	out := newStream(a.g, heightAfter(&a.streamCore, &b.streamCore), f(a.value, b.value))
	out.run = func() { out.emit(f(a.value, b.value)) }
	link(out, &a.streamCore, &b.streamCore)
	return out
}

// Map3 is Map2 for three inputs.
func Map3[A, B, C, D any](f func(A, B, C) D, a *Stream[A], b *Stream[B], c *Stream[C]) *Stream[D] {
	out := newStream(a.g, heightAfter(&a.streamCore, &b.streamCore, &c.streamCore), f(a.value, b.value, c.value))
	out.run = func() { out.emit(f(a.value, b.value, c.value)) }
	link(out, &a.streamCore, &b.streamCore, &c.streamCore)
	return out
}

// Map4 is Map2 for four inputs.
func Map4[A, B, C, D, E any](f func(A, B, C, D) E, a *Stream[A], b *Stream[B], c *Stream[C], d *Stream[D]) *Stream[E] {
	out := newStream(a.g, heightAfter(&a.streamCore, &b.streamCore, &c.streamCore, &d.streamCore), f(a.value, b.value, c.value, d.value))
	out.run = func() { out.emit(f(a.value, b.value, c.value, d.value)) }
	link(out, &a.streamCore, &b.streamCore, &c.streamCore, &d.streamCore)
	return out
}
