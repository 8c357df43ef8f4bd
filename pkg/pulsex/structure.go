package pulsex

import "github.com/vango-dev/pulse/pkg/pulse"

// Pair groups two streams' simultaneous values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple groups three streams' simultaneous values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad groups four streams' simultaneous values.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Zip2 pairs two streams, firing whenever either updates.
func Zip2[A, B any](a *pulse.Stream[A], b *pulse.Stream[B]) *pulse.Stream[Pair[A, B]] {
	return pulse.Map2(func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	}, a, b)
}

// Zip3 is Zip2 for three streams.
func Zip3[A, B, C any](a *pulse.Stream[A], b *pulse.Stream[B], c *pulse.Stream[C]) *pulse.Stream[Triple[A, B, C]] {
	return pulse.Map3(func(a A, b B, c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: a, Second: b, Third: c}
	}, a, b, c)
}

// Zip4 is Zip2 for four streams.
func Zip4[A, B, C, D any](a *pulse.Stream[A], b *pulse.Stream[B], c *pulse.Stream[C], d *pulse.Stream[D]) *pulse.Stream[Quad[A, B, C, D]] {
	return pulse.Map4(func(a A, b B, c C, d D) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}
	}, a, b, c, d)
}

// Unzip2 splits a paired stream into projections. Every projection shares
// the exact update rounds of the source: a projection fires even when its
// component of the tuple is unchanged.
func Unzip2[A, B any](p *pulse.Stream[Pair[A, B]]) (*pulse.Stream[A], *pulse.Stream[B]) {
	first := pulse.Map(func(p Pair[A, B]) A { return p.First }, p)
	second := pulse.Map(func(p Pair[A, B]) B { return p.Second }, p)
	return first, second
}

// Unzip3 is Unzip2 for triples.
func Unzip3[A, B, C any](t *pulse.Stream[Triple[A, B, C]]) (*pulse.Stream[A], *pulse.Stream[B], *pulse.Stream[C]) {
	first := pulse.Map(func(t Triple[A, B, C]) A { return t.First }, t)
	second := pulse.Map(func(t Triple[A, B, C]) B { return t.Second }, t)
	third := pulse.Map(func(t Triple[A, B, C]) C { return t.Third }, t)
	return first, second, third
}

// Unzip4 is Unzip2 for quads.
func Unzip4[A, B, C, D any](q *pulse.Stream[Quad[A, B, C, D]]) (*pulse.Stream[A], *pulse.Stream[B], *pulse.Stream[C], *pulse.Stream[D]) {
	first := pulse.Map(func(q Quad[A, B, C, D]) A { return q.First }, q)
	second := pulse.Map(func(q Quad[A, B, C, D]) B { return q.Second }, q)
	third := pulse.Map(func(q Quad[A, B, C, D]) C { return q.Third }, q)
	fourth := pulse.Map(func(q Quad[A, B, C, D]) D { return q.Fourth }, q)
	return first, second, third, fourth
}
