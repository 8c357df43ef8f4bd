package pulse

import (
	"container/heap"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Graph owns a propagation graph and schedules its rounds. A Graph and all
// streams built on it are confined to a single goroutine; see the package
// documentation.
type Graph struct {
	lastID uint64
	round  uint64
	wave   int

	inRound  bool
	batching bool

	queue fireQueue

	// deferred holds second deliveries of colliding merges, run as a
	// follow-up wave of the current round.
	deferred []func()

	// pending holds observer notifications collected during the round and
	// delivered once it has settled.
	pending []func()

	roundStart time.Time
	waves      int
	firings    int

	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Graph.
type Option func(*Graph)

// WithMetrics attaches engine collectors to the graph.
func WithMetrics(m *Metrics) Option {
	return func(g *Graph) { g.metrics = m }
}

// New creates an empty propagation graph.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) nextID() uint64 {
	g.lastID++
	return g.lastID
}

func (g *Graph) nodeCreated() {
	if g.metrics != nil {
		g.metrics.nodes.Inc()
	}
}

func (g *Graph) collision() {
	if g.metrics != nil {
		g.metrics.collisions.Inc()
	}
}

// Batch groups multiple input emissions into a single round, so that
// logically simultaneous external events propagate together.
func (g *Graph) Batch(fn func()) {
	if g.inRound {
		panic("pulse: Batch during propagation")
	}
	g.beginRound()
	g.batching = true
	fn()
	g.batching = false
	g.finishRound()
}

func (g *Graph) beginRound() {
	g.round++
	g.wave = 1
	g.waves = 1
	g.firings = 0
	g.inRound = true
	g.roundStart = time.Now()
}

// finishRound drains the scheduling queue in topological order, running
// follow-up waves until no deferred deliveries remain, then hands queued
// notifications to observers.
func (g *Graph) finishRound() {
	for {
		for g.queue.Len() > 0 {
			heap.Pop(&g.queue).(node).recompute()
		}
		if len(g.deferred) == 0 {
			break
		}
		fires := g.deferred
		g.deferred = nil
		g.wave++
		g.waves++
		for _, fire := range fires {
			fire()
		}
	}
	g.inRound = false
	g.observeRound()

	pending := g.pending
	g.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func (g *Graph) observeRound() {
	if g.metrics != nil {
		g.metrics.rounds.Inc()
		g.metrics.waves.Add(float64(g.waves))
		g.metrics.firings.Add(float64(g.firings))
		g.metrics.roundDuration.Observe(time.Since(g.roundStart).Seconds())
	}
	g.recordRoundSpan()
}

// schedule enqueues n for the current wave unless it is already queued.
func (g *Graph) schedule(n node) {
	c := n.core()
	if c.queuedRound == g.round && c.queuedWave == g.wave {
		return
	}
	c.queuedRound = g.round
	c.queuedWave = g.wave
	heap.Push(&g.queue, n)
}

// fireQueue orders dirty nodes by height, with creation order as the
// deterministic tie-break.
type fireQueue []node

func (q fireQueue) Len() int { return len(q) }

func (q fireQueue) Less(i, j int) bool {
	ci, cj := q[i].core(), q[j].core()
	if ci.height != cj.height {
		return ci.height < cj.height
	}
	return ci.id < cj.id
}

func (q fireQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *fireQueue) Push(x any) { *q = append(*q, x.(node)) }

func (q *fireQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}
