package convert

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Transformer activity as prometheus instruments, grounded
// on the teacher's observability metrics module
// (pkg/observability/metrics.go) adapted from request/cache counters to
// conversion-pass counters. The atomic counters mirror the prometheus
// counters so callers (e.g. asttool) can read current values without
// scraping a registry.
type Metrics struct {
	passes      prometheus.Counter
	conversions prometheus.Counter
	capHits     prometheus.Counter

	passCount       atomic.Int64
	conversionCount atomic.Int64
	capHitCount     atomic.Int64
}

// NewMetrics registers and returns a Metrics bound to reg. Pass a fresh
// registry (or prometheus.NewRegistry()) per Transformer instance that
// should be measured independently.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "astcore",
			Subsystem: "convert",
			Name:      "passes_total",
			Help:      "Number of fixpoint passes executed by a Transformer.",
		}),
		conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "astcore",
			Subsystem: "convert",
			Name:      "conversions_total",
			Help:      "Number of successful converter applications.",
		}),
		capHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "astcore",
			Subsystem: "convert",
			Name:      "cap_hits_total",
			Help:      "Number of Transform calls that hit the pass cap before fixpoint.",
		}),
	}

	reg.MustRegister(m.passes, m.conversions, m.capHits)

	return m
}

// ObservePass records one fixpoint pass.
func (m *Metrics) ObservePass() {
	m.passes.Inc()
	m.passCount.Add(1)
}

// ObserveConversion records one successful converter application.
func (m *Metrics) ObserveConversion() {
	m.conversions.Inc()
	m.conversionCount.Add(1)
}

// ObserveCapHit records a Transform call that hit its pass cap.
func (m *Metrics) ObserveCapHit() {
	m.capHits.Inc()
	m.capHitCount.Add(1)
}

// Passes returns the number of fixpoint passes observed so far.
func (m *Metrics) Passes() int64 { return m.passCount.Load() }

// Conversions returns the number of successful converter applications
// observed so far.
func (m *Metrics) Conversions() int64 { return m.conversionCount.Load() }

// CapHits returns the number of Transform calls that hit their pass cap.
func (m *Metrics) CapHits() int64 { return m.capHitCount.Load() }
