package pulsex

import "github.com/vango-dev/pulse/pkg/pulse"

// FoldFrom is a fold whose seed is derived from the input's initial value
// rather than supplied as a constant. The result's initial value is
// seed(initial value of input); thereafter every update a transitions state
// s to step(a, s).
//
// The fold state carries a sentinel distinguishing "no update folded yet"
// from any real accumulator value, so an update delivered in the same round
// that established the seed is still folded through step rather than being
// mistaken for the seed itself.
func FoldFrom[A, B any](step func(A, B) B, seed func(A) B, input *pulse.Stream[A]) *pulse.Stream[B] {
	first := seed(input.Value())
	acc := pulse.Fold(func(a A, st option[B]) option[B] {
		if b, ok := st.get(); ok {
			return some(step(a, b))
		}
		return some(step(a, first))
	}, none[B](), input)
	return pulse.Map(func(st option[B]) B {
		if b, ok := st.get(); ok {
			return b
		}
		return first
	}, acc)
}

// stateCell carries a fold's exposed output alongside its hidden state.
type stateCell[B, S any] struct {
	out    B
	hidden S
}

// FoldState is a fold with hidden state: step returns the exposed output
// and the next hidden state. Only the output is observable; the hidden
// state is owned by this fold instance and never surfaces.
func FoldState[A, B, S any](step func(A, S) (B, S), out0 B, state0 S, input *pulse.Stream[A]) *pulse.Stream[B] {
	acc := pulse.Fold(func(a A, c stateCell[B, S]) stateCell[B, S] {
		b, s := step(a, c.hidden)
		return stateCell[B, S]{out: b, hidden: s}
	}, stateCell[B, S]{out: out0, hidden: state0}, input)
	return pulse.Map(func(c stateCell[B, S]) B { return c.out }, acc)
}

// FoldStateFrom combines FoldState and FoldFrom: hidden state plus a seed
// pair derived from the input's initial value.
func FoldStateFrom[A, B, S any](step func(A, S) (B, S), seed func(A) (B, S), input *pulse.Stream[A]) *pulse.Stream[B] {
	out0, state0 := seed(input.Value())
	return FoldState(step, out0, state0, input)
}
