package reach

import "fmt"

// Violation is a structured error describing a topology precondition the
// Builder chose to detect and report rather than leave as programmer
// error. In this package that is exactly one situation: Builder.Build
// finding edges from more than one distinct Source feeding the same Target
// (repeated edges from the same Source are accepted; see the "at most one
// incoming edge per target" Open Question resolved in DESIGN.md). Every
// other precondition in the spec's error table (§7) remains an assertion,
// checked only by debugAssert, never returned.
type Violation struct {
	// Code is a machine-readable identifier for the violation kind.
	Code string
	// Location is the port the violation was detected at, if applicable.
	Location Location
	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("reach: %s at %s: %s", v.Code, locationString(v.Location), v.Message)
}

func locationString(l Location) string {
	return fmt.Sprintf("%s(%d,%d)", l.Port.Kind, l.Node, l.Port.Index)
}

// ErrCodeMultipleIncomingEdges identifies the Violation code reported when
// a target receives edges from more than one distinct source.
const ErrCodeMultipleIncomingEdges = "multiple_incoming_edges"

func newMultiFaninViolation(target Target, first, second Source) *Violation {
	return &Violation{
		Code:     ErrCodeMultipleIncomingEdges,
		Location: target.Location(),
		Message: fmt.Sprintf(
			"target already has an incoming edge from %s; rejecting a second from %s",
			locationString(first.Location()), locationString(second.Location()),
		),
	}
}
