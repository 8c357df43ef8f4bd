// Package pulse implements a push-based engine for discrete-event reactive
// streams: values that hold a current state and emit a new state at discrete
// moments.
//
// # Streams and rounds
//
// A Stream[T] always has a current value, defined from the moment the stream
// is built (its initial value), plus an update event stream. Updates enter a
// Graph through Input values:
//
//	g := pulse.New()
//	clicks := pulse.NewInput(g, 0)
//	doubled := pulse.Map(func(n int) int { return n * 2 }, clicks.Stream())
//	clicks.Emit(3) // doubled.Value() == 6
//
// Each Emit runs one propagation round synchronously: every derived stream
// reachable from the input recomputes in topological order before Emit
// returns, and observers registered with OnUpdate are invoked only after the
// whole round has settled. Graph.Batch groups several emissions into a
// single round.
//
// # Same-round collisions
//
// Two streams update in the same round when both updates are caused by the
// same external event. Merge never drops one of two colliding updates: the
// left input's update is delivered first and the right input's follows as a
// second delivery within the same round, so a downstream Fold observes both.
// Coincide reports per-delivery simultaneity directly and is the primitive
// higher-level resolved merges are built on.
//
// # Update semantics
//
// Updates are events, not value changes: Map, Merge and friends re-fire even
// when the computed value equals the previous one. Only DropRepeats
// deduplicates consecutive equal values.
//
// # Confinement
//
// Propagation is single-threaded and cooperative. A Graph and all of its
// streams must be confined to one goroutine: build the graph, then emit and
// read from that goroutine only. Emitting from inside a stream function
// panics; emitting from an OnUpdate observer starts a new round and is
// allowed.
package pulse
