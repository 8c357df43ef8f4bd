package pulsex

// option distinguishes "no value yet" from a legitimate zero value inside
// derived computations. It never crosses the public combinator boundary.
type option[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) option[T] { return option[T]{value: v, ok: true} }

func none[T any]() option[T] { return option[T]{} }

func (o option[T]) get() (T, bool) { return o.value, o.ok }
