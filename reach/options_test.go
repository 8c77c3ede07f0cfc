package reach

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg := newConfig(nil)
	if cfg.metrics != nil {
		t.Fatalf("default metrics = %v, want nil", cfg.metrics)
	}
	if _, ok := cfg.diagnostics.(NullDiagnostics); !ok {
		t.Fatalf("default diagnostics = %T, want NullDiagnostics", cfg.diagnostics)
	}
	if _, ok := cfg.tracer.(noopTracer); !ok {
		t.Fatalf("default tracer = %T, want noopTracer", cfg.tracer)
	}
}

func TestWithDiagnosticsIgnoresNil(t *testing.T) {
	cfg := newConfig([]Option{WithDiagnostics(nil)})
	if _, ok := cfg.diagnostics.(NullDiagnostics); !ok {
		t.Fatalf("diagnostics after WithDiagnostics(nil) = %T, want unchanged NullDiagnostics", cfg.diagnostics)
	}
}

func TestWithMetricsAppliesNil(t *testing.T) {
	// Unlike WithDiagnostics/WithTracer, WithMetrics(nil) is a valid way to
	// explicitly disable metrics collection, mirroring the teacher's
	// WithMetrics(nil) no-op convention.
	cfg := newConfig([]Option{WithMetrics(nil)})
	if cfg.metrics != nil {
		t.Fatalf("metrics after WithMetrics(nil) = %v, want nil", cfg.metrics)
	}
}

func TestOptionsAppliedLeftToRight(t *testing.T) {
	var calls []string
	opt := func(name string) Option {
		return func(*config) { calls = append(calls, name) }
	}
	newConfig([]Option{opt("first"), opt("second")})
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("call order = %v, want [first second]", calls)
	}
}
