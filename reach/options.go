package reach

// Option is a functional option for configuring a Builder, in the
// teacher engine's graph.Option idiom (graph/options.go): chainable,
// self-documenting, and optional.
//
// Example:
//
//	builder := reach.NewBuilder[inttime.Time, inttime.Summary](
//	    reach.WithDiagnostics(reach.NewLogDiagnostics(os.Stderr)),
//	    reach.WithMetrics(reach.NewMetrics(prometheus.DefaultRegisterer)),
//	    reach.WithTracer(reach.NewOTelTracer(otel.Tracer("reach"))),
//	)
type Option func(*config)

// config collects options before they are applied to a Builder and, via
// Build, to the Tracker it produces.
type config struct {
	diagnostics Diagnostics
	metrics     *Metrics
	tracer      Tracer
}

func newConfig(opts []Option) config {
	cfg := config{
		diagnostics: NullDiagnostics{},
		tracer:      noopTracer{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDiagnostics configures where Builder.Build sends Diagnostic events
// (cycle detection, today). Default: NullDiagnostics, discarding them.
func WithDiagnostics(d Diagnostics) Option {
	return func(cfg *config) {
		if d != nil {
			cfg.diagnostics = d
		}
	}
}

// WithMetrics attaches Prometheus-compatible metrics collection, in the
// teacher engine's WithMetrics/PrometheusMetrics idiom (graph/metrics.go).
// Default: nil, metrics disabled.
func WithMetrics(m *Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}

// WithTracer attaches an OpenTelemetry tracer used to span Builder.Build,
// Builder.IsAcyclic, and Tracker.PropagateAll calls. Default: a no-op
// tracer.
func WithTracer(t Tracer) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.tracer = t
		}
	}
}
