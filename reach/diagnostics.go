package reach

// Diagnostic describes a non-fatal condition detected while building a
// Tracker. Today the only diagnostic this package raises is a detected
// default-cycle (§4.4, §7 of the spec): Build still succeeds and returns a
// usable Tracker, but the caller is handed a liveness warning instead of
// the side-channel stdout print the original implementation used ("a
// structured callback is recommended in a re-implementation").
type Diagnostic struct {
	// Code identifies the diagnostic kind, e.g. DiagnosticDefaultCycle.
	Code string
	// Message is a human-readable description.
	Message string
	// Locations are the port locations implicated in the diagnostic, where
	// applicable (e.g. the unresolved locations left in the acyclicity
	// check's in-degree map).
	Locations []Location
}

// DiagnosticDefaultCycle is the Diagnostic.Code reported by Builder.Build
// when it finds a cycle among edges and default internal path summaries
// (the condition under which Builder.IsAcyclic returns false).
const DiagnosticDefaultCycle = "default_cycle"

// Diagnostics receives Diagnostic events raised during Builder.Build.
// Implementations must not block or panic; Emit is called synchronously
// from Build.
type Diagnostics interface {
	Emit(d Diagnostic)
}

// NullDiagnostics discards every diagnostic. It is the default when no
// Diagnostics is configured via WithDiagnostics.
type NullDiagnostics struct{}

// Emit implements Diagnostics by discarding d.
func (NullDiagnostics) Emit(d Diagnostic) {}

// DiagnosticsFunc adapts a plain function to the Diagnostics interface, the
// way the teacher engine adapts plain functions to Node via NodeFunc.
type DiagnosticsFunc func(d Diagnostic)

// Emit implements Diagnostics by calling f.
func (f DiagnosticsFunc) Emit(d Diagnostic) { f(d) }
