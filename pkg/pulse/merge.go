package pulse

// Merge is the unbiased two-way merge of update events. When only one input
// updates in a round, its value passes through unchanged. When both update
// in the same round, neither is dropped: the left update is delivered first
// and the right update follows as a second delivery within the same round,
// so every downstream consumer observes both. The initial value is left's.
func Merge[T any](left, right *Stream[T]) *Stream[T] {
	out := newStream(left.g, heightAfter(&left.streamCore, &right.streamCore), left.value)
	out.run = func() {
		l, r := left.fired(), right.fired()
		switch {
		case l && r:
			second := right.value
			out.g.collision()
			out.g.deferred = append(out.g.deferred, func() { out.emit(second) })
			out.emit(left.value)
		case l:
			out.emit(left.value)
		case r:
			out.emit(right.value)
		}
	}
	link(out, &left.streamCore, &right.streamCore)
	return out
}

// Coincidence reports which sides of a Coincide pair updated in a delivery,
// along with both sides' current values.
type Coincidence[A, B any] struct {
	Left         A
	Right        B
	LeftUpdated  bool
	RightUpdated bool
}

// Coincide fires once per delivery in which either input updates, reporting
// whether each side did. It answers "did both fire together?" directly,
// which is what resolved merges need to turn a collision into a single
// event instead of two.
func Coincide[A, B any](left *Stream[A], right *Stream[B]) *Stream[Coincidence[A, B]] {
	out := newStream(left.g,
		heightAfter(&left.streamCore, &right.streamCore),
		Coincidence[A, B]{Left: left.value, Right: right.value})
	out.run = func() {
		out.emit(Coincidence[A, B]{
			Left:         left.value,
			Right:        right.value,
			LeftUpdated:  left.fired(),
			RightUpdated: right.fired(),
		})
	}
	link(out, &left.streamCore, &right.streamCore)
	return out
}
