package reach

import "context"

// Shape records how many input and output ports a node has.
type Shape struct {
	Inputs  int
	Outputs int
}

// SummaryTable is a node's internal path summaries, indexed
// [inputPort][outputPort]: SummaryTable[i][j] is the antichain of minimal,
// incomparable summaries a timestamp undergoes traveling internally from
// input port i to output port j. An empty antichain means no internal
// path connects that input to that output.
type SummaryTable[S PartialOrder[S]] [][]Antichain[S]

// Builder collects node shapes, internal path summaries, and edges, and
// compiles them into an immutable Tracker plus the scope-level
// input-to-output summary. It is the only place the graph's topology is
// mutable; once Build succeeds, the Tracker it returns never changes
// nodes or edges again.
//
// The zero value is not ready to use; construct with NewBuilder.
type Builder[T Timestamp[T], S Summary[S, T]] struct {
	nodes []SummaryTable[S]
	edges [][][]Target
	shape []Shape
	cfg   config
}

// NewBuilder returns an empty topology builder.
func NewBuilder[T Timestamp[T], S Summary[S, T]](opts ...Option) *Builder[T, S] {
	return &Builder[T, S]{cfg: newConfig(opts)}
}

// AddNode sets the shape and internal path-summary table for node index,
// extending internal storage as necessary. It overwrites any prior entry
// for index.
//
// Precondition (debug-asserted only, see §7): len(summary) == inputs, and
// every row of summary has length outputs.
func (b *Builder[T, S]) AddNode(index, inputs, outputs int, summary SummaryTable[S]) {
	debugAssert(len(summary) == inputs, "add_node: summary has %d rows, want %d inputs", len(summary), inputs)
	for _, row := range summary {
		debugAssert(len(row) == outputs, "add_node: summary row has %d columns, want %d outputs", len(row), outputs)
	}

	for len(b.nodes) <= index {
		b.nodes = append(b.nodes, nil)
		b.edges = append(b.edges, nil)
		b.shape = append(b.shape, Shape{})
	}

	b.nodes[index] = summary
	if len(b.edges[index]) != outputs {
		b.edges[index] = make([][]Target, outputs)
	}
	b.shape[index] = Shape{Inputs: inputs, Outputs: outputs}
}

// AddEdge appends an edge from source to target. Port existence is only
// checked in debug builds; references to missing nodes or ports are
// otherwise discovered by Build.
func (b *Builder[T, S]) AddEdge(source Source, target Target) {
	debugAssert(source.Node < len(b.shape) && source.Port < b.shape[source.Node].Outputs,
		"add_edge: source %v is out of range", source)
	debugAssert(target.Node < len(b.shape) && target.Port < b.shape[target.Node].Inputs,
		"add_edge: target %v is out of range", target)

	b.edges[source.Node][source.Port] = append(b.edges[source.Node][source.Port], target)
}

// IsAcyclic reports whether the graph contains no cycle of default
// (non-incrementing) path summaries: it treats every edge, and every
// default entry of every node's internal summary table, as a directed
// edge between port locations, and tests the resulting graph for
// acyclicity via repeated removal of zero-in-degree locations. Non-default
// summaries do not participate, since they are assumed to strictly
// advance time and so cannot themselves form a liveness hazard.
//
// A cycle here is a serious liveness hazard: a capability could reach
// itself without any timestamp progress. It is not, however, a build
// error (§7): Build still succeeds, and reports the cycle as a
// Diagnostic.
func (b *Builder[T, S]) IsAcyclic() bool {
	span := b.cfg.tracer.StartSpan(context.Background(), "reach.Builder.IsAcyclic")
	defer span.End()

	cyclic, _ := b.findDefaultCycle()
	return !cyclic
}

// findDefaultCycle runs the in-degree work-list reduction described in
// §4.4 and returns whether a cycle remains, along with the locations still
// stuck with nonzero in-degree (useful for the Diagnostic reported by
// Build).
func (b *Builder[T, S]) findDefaultCycle() (bool, []Location) {
	inDegree := make(map[Location]int)

	for node, outputs := range b.edges {
		for output, targets := range outputs {
			source := NewSourceLocation(node, output)
			if _, ok := inDegree[source]; !ok {
				inDegree[source] = 0
			}
			for _, target := range targets {
				inDegree[target.Location()]++
			}
		}
	}

	for node, table := range b.nodes {
		for input, row := range table {
			target := NewTargetLocation(node, input)
			if _, ok := inDegree[target]; !ok {
				inDegree[target] = 0
			}
			for output, antichain := range row {
				source := NewSourceLocation(node, output)
				for _, summary := range antichain.Elements() {
					if isDefault[S](summary) {
						inDegree[source]++
					}
				}
			}
		}
	}

	var worklist []Location
	for loc, deg := range inDegree {
		if deg == 0 {
			worklist = append(worklist, loc)
			delete(inDegree, loc)
		}
	}

	for len(worklist) > 0 {
		n := len(worklist) - 1
		loc := worklist[n]
		worklist = worklist[:n]

		switch loc.Port.Kind {
		case PortKindSource:
			for _, target := range b.edges[loc.Node][loc.Port.Index] {
				tloc := target.Location()
				inDegree[tloc]--
				if inDegree[tloc] == 0 {
					delete(inDegree, tloc)
					worklist = append(worklist, tloc)
				}
			}
		case PortKindTarget:
			for output, antichain := range b.nodes[loc.Node][loc.Port.Index] {
				source := NewSourceLocation(loc.Node, output)
				for _, summary := range antichain.Elements() {
					if isDefault[S](summary) {
						inDegree[source]--
						if inDegree[source] == 0 {
							delete(inDegree, source)
							worklist = append(worklist, source)
						}
					}
				}
			}
		}
	}

	if len(inDegree) == 0 {
		return false, nil
	}
	remaining := make([]Location, 0, len(inDegree))
	for loc := range inDegree {
		remaining = append(remaining, loc)
	}
	return true, remaining
}

// Build compiles the builder's current nodes and edges into a Tracker and
// the scope-level summary from each scope input to each scope output. If
// the graph has a default-cycle, Build still succeeds but reports a
// Diagnostic (see §7) through the Diagnostics configured with
// WithDiagnostics.
//
// Build returns a non-nil error only when it detects a target fed by more
// than one distinct source: a resolution of the spec's "at most one
// incoming edge per target" Open Question (DESIGN.md), upgrading the
// original's silently-overwriting reverse map into a reported conflict.
func (b *Builder[T, S]) Build() (*Tracker[T, S], [][]Antichain[S], error) {
	ctx := context.Background()
	span := b.cfg.tracer.StartSpan(ctx, "reach.Builder.Build")
	defer span.End()

	if cyclic, locs := b.findDefaultCycle(); cyclic {
		b.cfg.metrics.observeCycleDetected()
		b.cfg.diagnostics.Emit(Diagnostic{
			Code:      DiagnosticDefaultCycle,
			Message:   "default-cycle detected: a capability could reach itself without timestamp progress",
			Locations: locs,
		})
	}

	reverse, violation := buildReverseEdgeMap(b.edges)
	if violation != nil {
		span.RecordError(violation)
		return nil, nil, violation
	}

	return allocateFrom(b, reverse)
}

// buildReverseEdgeMap inverts edges into a target->source map, detecting
// (and reporting, rather than silently overwriting) a target fed by more
// than one distinct source.
func buildReverseEdgeMap(edges [][][]Target) (map[Location]Location, *Violation) {
	reverse := make(map[Location]Location)
	origin := make(map[Location]Source)

	for node, outputs := range edges {
		for output, targets := range outputs {
			source := Source{Node: node, Port: output}
			for _, target := range targets {
				tloc := target.Location()
				if prior, ok := origin[tloc]; ok && prior != source {
					return nil, newMultiFaninViolation(target, prior, source)
				}
				origin[tloc] = source
				reverse[tloc] = source.Location()
			}
		}
	}
	return reverse, nil
}
