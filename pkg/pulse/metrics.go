package pulse

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the engine's Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pulse").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for round duration in seconds.
	// Rounds are typically far below a millisecond, so the default spans
	// 1µs to 10s exponentially.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the engine collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the round-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "pulse",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.ExponentialBuckets(1e-6, 10, 8),
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Metrics holds the engine collectors. One Metrics value may be shared by
// several graphs; counts aggregate across them.
type Metrics struct {
	rounds        prometheus.Counter
	waves         prometheus.Counter
	firings       prometheus.Counter
	collisions    prometheus.Counter
	roundDuration prometheus.Histogram
	nodes         prometheus.Gauge
}

// NewMetrics registers and returns the engine collectors. Attach them to a
// graph with WithMetrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)
	return &Metrics{
		rounds: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "rounds_total",
			Help:        "Propagation rounds processed.",
			ConstLabels: cfg.ConstLabels,
		}),
		waves: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "waves_total",
			Help:        "Delivery waves processed across all rounds.",
			ConstLabels: cfg.ConstLabels,
		}),
		firings: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "firings_total",
			Help:        "Stream update emissions across all rounds.",
			ConstLabels: cfg.ConstLabels,
		}),
		collisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "merge_collisions_total",
			Help:        "Merges whose inputs updated in the same round.",
			ConstLabels: cfg.ConstLabels,
		}),
		roundDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "round_duration_seconds",
			Help:        "Wall-clock duration of propagation rounds.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
		nodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "nodes",
			Help:        "Stream nodes created in attached graphs.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}
