package pulse

// node is the scheduler's view of a stream.
type node interface {
	core() *streamCore
	recompute()
}

// streamCore is the type-erased part of every stream node: identity, graph
// membership, topology, and per-round firing bookkeeping. It is embedded in
// Stream[T] so the scheduler can work with heterogeneous value types.
type streamCore struct {
	g      *Graph
	id     uint64
	height int

	// children are the nodes scheduled when this stream fires.
	children []node

	firedRound  uint64
	firedWave   int
	queuedRound uint64
	queuedWave  int
}

func (c *streamCore) core() *streamCore { return c }

// ID returns the unique identifier for this stream within its graph.
func (c *streamCore) ID() uint64 { return c.id }

// Graph returns the graph this stream belongs to.
func (c *streamCore) Graph() *Graph { return c.g }

// fired reports whether this stream emitted in the current delivery wave.
func (c *streamCore) fired() bool {
	return c.firedRound == c.g.round && c.firedWave == c.g.wave
}

type observer[T any] struct {
	id uint64
	fn func(T)
}

// Stream is a discrete-event stream: a current value plus update events.
// Streams are built with the package-level combinators and owned by the
// Graph that created them.
type Stream[T any] struct {
	streamCore

	value T

	// run is the operator-specific recompute step; nil for inputs and
	// constants, which are never scheduled.
	run func()

	observers []observer[T]
}

func (s *Stream[T]) recompute() {
	if s.run != nil {
		s.run()
	}
}

// Value returns the stream's current value. Before the first update this is
// the stream's initial value.
func (s *Stream[T]) Value() T { return s.value }

// OnUpdate registers fn to be invoked with every update of s, after the
// round that produced the update has settled. The returned function removes
// the registration.
func (s *Stream[T]) OnUpdate(fn func(T)) (remove func()) {
	id := s.g.nextID()
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})
	return func() {
		for i := range s.observers {
			if s.observers[i].id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// emit records an update: it sets the current value, stamps the firing,
// queues observer notifications for delivery after the round, and schedules
// the children.
func (s *Stream[T]) emit(v T) {
	s.value = v
	s.firedRound = s.g.round
	s.firedWave = s.g.wave
	s.g.firings++
	for _, o := range s.observers {
		fn, val := o.fn, v
		s.g.pending = append(s.g.pending, func() { fn(val) })
	}
	for _, c := range s.children {
		s.g.schedule(c)
	}
}

func newStream[T any](g *Graph, height int, initial T) *Stream[T] {
	s := &Stream[T]{value: initial}
	s.streamCore = streamCore{g: g, id: g.nextID(), height: height}
	g.nodeCreated()
	return s
}

// link registers child to be scheduled whenever any of sources fire.
func link(child node, sources ...*streamCore) {
	for _, p := range sources {
		p.children = append(p.children, child)
	}
}

// heightAfter returns the topological height of a node reading the given
// parents: one more than the tallest of them.
func heightAfter(parents ...*streamCore) int {
	h := 0
	for _, p := range parents {
		if p.height >= h {
			h = p.height + 1
		}
	}
	return h
}

// Input is an external entry point into a graph. Emitting on an Input is
// what triggers propagation rounds.
type Input[T any] struct {
	s *Stream[T]
}

// NewInput creates an input stream with the given initial value.
func NewInput[T any](g *Graph, initial T) *Input[T] {
	return &Input[T]{s: newStream(g, 0, initial)}
}

// Stream returns the read side of the input.
func (in *Input[T]) Stream() *Stream[T] { return in.s }

// Value returns the input's current value.
func (in *Input[T]) Value() T { return in.s.value }

// Emit delivers v as one external event and runs the resulting propagation
// round to completion. Inside Graph.Batch, Emit only records the delivery;
// the shared round runs when the batch ends.
func (in *Input[T]) Emit(v T) {
	g := in.s.g
	if g.inRound {
		if g.batching {
			in.s.emit(v)
			return
		}
		panic("pulse: Emit during propagation")
	}
	g.beginRound()
	in.s.emit(v)
	g.finishRound()
}
