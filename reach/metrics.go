package reach

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus-compatible metrics for tracker activity, in
// the teacher engine's PrometheusMetrics idiom (graph/metrics.go): gauges
// for point-in-time state, a histogram for call latency, and counters for
// cumulative totals, all namespaced "reach".
//
// Metrics exposed:
//
//  1. total_counts (gauge): the tracker's total_counts invariant (§3),
//     exported directly — the sum across all ports of their pointstamp
//     frontier cardinalities, set after each PropagateAll's Phase A. Zero
//     when no port holds a live capability; Tracker.TrackingAnything can
//     still report true then, while updates are buffered.
//  2. worklist_depth (gauge): work-list size sampled at the start of
//     PropagateAll's Phase B, before any pops.
//  3. propagate_duration_seconds (histogram): wall-clock duration of a
//     PropagateAll call.
//  4. pushed_changes_total (counter): cumulative count of (location, time)
//     frontier deltas pushed by PropagateAll.
//  5. cycle_diagnostics_total (counter): cumulative Builder.Build calls
//     that detected a default-cycle.
//
// Thread-safety: Metrics methods only ever observe/set already-thread-safe
// prometheus collectors; Metrics itself holds no additional mutable state.
type Metrics struct {
	totalCounts       prometheus.Gauge
	worklistDepth     prometheus.Gauge
	propagateDuration prometheus.Histogram
	pushedChanges     prometheus.Counter
	cycleDiagnostics  prometheus.Counter
}

// NewMetrics creates and registers every reach metric with registry. A nil
// registry uses prometheus.DefaultRegisterer, matching the teacher's
// NewPrometheusMetrics fallback.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		totalCounts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "reach",
			Name:      "total_counts",
			Help:      "Sum across all ports of their pointstamp frontier cardinalities.",
		}),
		worklistDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "reach",
			Name:      "worklist_depth",
			Help:      "Work-list size sampled at the start of a PropagateAll call's circulation phase.",
		}),
		propagateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reach",
			Name:      "propagate_duration_seconds",
			Help:      "Duration of PropagateAll calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		pushedChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reach",
			Name:      "pushed_changes_total",
			Help:      "Cumulative (location, time) implication-frontier deltas pushed by PropagateAll.",
		}),
		cycleDiagnostics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reach",
			Name:      "cycle_diagnostics_total",
			Help:      "Cumulative Builder.Build calls that detected a default-cycle.",
		}),
	}
}

func (m *Metrics) observePropagate(start time.Time, worklistDepthAtStart int, pushed int) {
	if m == nil {
		return
	}
	m.propagateDuration.Observe(time.Since(start).Seconds())
	m.worklistDepth.Set(float64(worklistDepthAtStart))
	m.pushedChanges.Add(float64(pushed))
}

func (m *Metrics) setTotalCounts(v int64) {
	if m == nil {
		return
	}
	m.totalCounts.Set(float64(v))
}

func (m *Metrics) observeCycleDetected() {
	if m == nil {
		return
	}
	m.cycleDiagnostics.Inc()
}
