package reach

import (
	"context"
	"sync"
	"time"
)

// PortInformation tracks one port's two layered frontiers — pointstamps,
// the raw capability counts reported at this port, and implications, what
// those pointstamps imply has been pushed forward from every other port —
// plus, for non-trivial ports, the antichain of minimal summaries from this
// port to each scope output (computed once by allocateFrom and immutable
// thereafter).
type PortInformation[T Timestamp[T], S Summary[S, T]] struct {
	pointstamps     *MutableAntichain[T]
	implications    *MutableAntichain[T]
	outputSummaries []Antichain[S]
}

func newPortInformation[T Timestamp[T], S Summary[S, T]](scopeOutputs int) PortInformation[T, S] {
	summaries := make([]Antichain[S], scopeOutputs)
	for i := range summaries {
		summaries[i] = NewAntichain[S]()
	}
	return PortInformation[T, S]{
		pointstamps:     NewMutableAntichain[T](),
		implications:    NewMutableAntichain[T](),
		outputSummaries: summaries,
	}
}

// Pointstamps returns the port's current raw-capability frontier.
func (p *PortInformation[T, S]) Pointstamps() []T { return p.pointstamps.Frontier() }

// Implications returns the port's current pushed-forward frontier: the
// times at or after which a capability held at this port, or at a port
// that reaches it, may still result in a timestamp here.
func (p *PortInformation[T, S]) Implications() []T { return p.implications.Frontier() }

// OutputSummaries returns, for each scope output, the antichain of minimal
// path summaries from this port to that output.
func (p *PortInformation[T, S]) OutputSummaries() []Antichain[S] { return p.outputSummaries }

// IsGlobal reports whether time, held as a capability at this port, could
// still be observed elsewhere in the graph: it is not dominated by a
// strictly lesser implication-frontier element (dominated), and this is
// not one of multiple coincident capabilities already accounting for
// time's visibility (redundant).
func (p *PortInformation[T, S]) IsGlobal(t T) bool {
	dominated := false
	for _, frontierTime := range p.implications.Frontier() {
		if frontierTime.LessEqual(t) && !t.LessEqual(frontierTime) {
			dominated = true
			break
		}
	}
	redundant := p.implications.CountFor(t) > 1
	return !dominated && !redundant
}

// PerOperator collects the PortInformation for every input (target) and
// output (source) port of one node.
type PerOperator[T Timestamp[T], S Summary[S, T]] struct {
	targets []PortInformation[T, S]
	sources []PortInformation[T, S]
}

// Targets returns the PortInformation for each of the node's input ports.
func (o *PerOperator[T, S]) Targets() []PortInformation[T, S] { return o.targets }

// Sources returns the PortInformation for each of the node's output ports.
func (o *PerOperator[T, S]) Sources() []PortInformation[T, S] { return o.sources }

type targetChangeKey[T Timestamp[T]] struct {
	Target Target
	Time   T
}

type sourceChangeKey[T Timestamp[T]] struct {
	Source Source
	Time   T
}

type locationTimeKey[T Timestamp[T]] struct {
	Location Location
	Time     T
}

// PushedChange is one discrete implication-frontier membership change
// reported by Tracker.Pushed: loc's implications gained (Delta == +1) or
// lost (Delta == -1) Time as a frontier element.
type PushedChange[T any] struct {
	Location Location
	Time     T
	Delta    int64
}

// OutputChange is one discrete frontier membership change at a scope
// output, reported by Tracker.PushedOutput.
type OutputChange[T any] struct {
	Output int
	Time   T
	Delta  int64
}

// Tracker is the online half of the package: it holds a fixed topology
// (built once by Builder.Build, never mutated afterward) and propagates
// buffered pointstamp changes into implication-frontier changes, both
// internally per-port and outward to the enclosing scope's outputs.
//
// A Tracker is safe for concurrent use: every exported method takes an
// internal, non-reentrant sync.Mutex. The non-reentrancy is deliberate —
// matching the teacher engine's single-owner state convention (see
// graph/state.go) — a Tracker method that calls back into another Tracker
// method on the same goroutine will deadlock rather than silently
// corrupting state, surfacing the misuse immediately instead of later.
//
// The zero value is not ready to use; obtain a Tracker from Builder.Build.
type Tracker[T Timestamp[T], S Summary[S, T]] struct {
	mu sync.Mutex

	nodes []SummaryTable[S]
	edges [][][]Target

	perOperator []PerOperator[T, S]

	targetChanges *ChangeBatch[targetChangeKey[T]]
	sourceChanges *ChangeBatch[sourceChangeKey[T]]

	worklist *worklist[T]

	pushedChanges *ChangeBatch[locationTimeKey[T]]
	outputChanges []*ChangeBatch[T]

	totalCounts int64

	cfg config
}

// allocateFrom compiles a Builder's nodes, edges, and shapes into a Tracker
// and the scope-level input-to-output summary, following the teacher's
// finding — adapted from the reachability algorithm's own Tracker::
// allocate_from — that node 0 is the distinguished meta-node: its target
// ports (Shape.Inputs) are the scope's outputs, its source ports
// (Shape.Outputs) are the scope's inputs.
func allocateFrom[T Timestamp[T], S Summary[S, T]](
	b *Builder[T, S],
	reverse map[Location]Location,
) (*Tracker[T, S], [][]Antichain[S], error) {
	scopeOutputs, scopeInputs := 0, 0
	if len(b.shape) > 0 {
		scopeOutputs = b.shape[0].Inputs
		scopeInputs = b.shape[0].Outputs
	}

	perOperator := make([]PerOperator[T, S], len(b.shape))
	for node, shape := range b.shape {
		targets := make([]PortInformation[T, S], shape.Inputs)
		for i := range targets {
			targets[i] = newPortInformation[T, S](scopeOutputs)
		}
		sources := make([]PortInformation[T, S], shape.Outputs)
		for i := range sources {
			sources[i] = newPortInformation[T, S](scopeOutputs)
		}
		perOperator[node] = PerOperator[T, S]{targets: targets, sources: sources}
	}

	summaries := summarizeOutputs[T, S](b.nodes, b.edges, reverse)

	scopeSummary := make([][]Antichain[S], scopeInputs)
	for i := range scopeSummary {
		scopeSummary[i] = make([]Antichain[S], scopeOutputs)
		for j := range scopeSummary[i] {
			scopeSummary[i][j] = NewAntichain[S]()
		}
	}

	for loc, row := range summaries {
		if loc.Node == 0 {
			if loc.IsTarget() {
				// Output-to-output summaries: trivial and discarded, as in
				// the reference algorithm.
				continue
			}
			for output, antichain := range row {
				if output < len(scopeSummary[loc.Port.Index]) {
					scopeSummary[loc.Port.Index][output] = antichain
				}
			}
			continue
		}

		var dst []Antichain[S]
		if loc.IsTarget() {
			dst = perOperator[loc.Node].targets[loc.Port.Index].outputSummaries
		} else {
			dst = perOperator[loc.Node].sources[loc.Port.Index].outputSummaries
		}
		for output, antichain := range row {
			if output < len(dst) {
				dst[output] = antichain
			}
		}
	}

	outputChanges := make([]*ChangeBatch[T], scopeOutputs)
	for i := range outputChanges {
		outputChanges[i] = NewChangeBatch[T]()
	}

	tracker := &Tracker[T, S]{
		nodes:         b.nodes,
		edges:         b.edges,
		perOperator:   perOperator,
		targetChanges: NewChangeBatch[targetChangeKey[T]](),
		sourceChanges: NewChangeBatch[sourceChangeKey[T]](),
		worklist:      newWorklist[T](),
		pushedChanges: NewChangeBatch[locationTimeKey[T]](),
		outputChanges: outputChanges,
		cfg:           b.cfg,
	}
	return tracker, scopeSummary, nil
}

// Update buffers a pointstamp delta at loc, applied by the next
// PropagateAll. It dispatches to UpdateTarget or UpdateSource by loc's
// port kind.
func (t *Tracker[T, S]) Update(loc Location, time T, delta int64) {
	if loc.IsTarget() {
		t.UpdateTarget(Target{Node: loc.Node, Port: loc.Port.Index}, time, delta)
	} else {
		t.UpdateSource(Source{Node: loc.Node, Port: loc.Port.Index}, time, delta)
	}
}

// UpdateTarget buffers a pointstamp delta at target, applied by the next
// PropagateAll.
func (t *Tracker[T, S]) UpdateTarget(target Target, time T, delta int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targetChanges.Update(targetChangeKey[T]{Target: target, Time: time}, delta)
}

// UpdateSource buffers a pointstamp delta at source, applied by the next
// PropagateAll.
func (t *Tracker[T, S]) UpdateSource(source Source, time T, delta int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sourceChanges.Update(sourceChangeKey[T]{Source: source, Time: time}, delta)
}

// TrackingAnything reports whether this Tracker still has any outstanding
// work: either buffered changes not yet folded in by PropagateAll, or a
// positive total_counts (the sum of frontier sizes across every port's
// pointstamps, nonzero exactly when some port still holds a live
// capability).
func (t *Tracker[T, S]) TrackingAnything() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.targetChanges.IsEmpty() || !t.sourceChanges.IsEmpty() || t.totalCounts > 0
}

// NodeState returns node n's per-port tracked state, or nil if n is out of
// range. Callers must not mutate the antichains or frontiers it exposes.
func (t *Tracker[T, S]) NodeState(n int) *PerOperator[T, S] {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 0 || n >= len(t.perOperator) {
		return nil
	}
	return &t.perOperator[n]
}

// IsGlobal reports whether time, held at loc, could still be observed
// elsewhere in the graph. See PortInformation.IsGlobal.
func (t *Tracker[T, S]) IsGlobal(loc Location, time T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if loc.IsTarget() {
		return t.perOperator[loc.Node].targets[loc.Port.Index].IsGlobal(time)
	}
	return t.perOperator[loc.Node].sources[loc.Port.Index].IsGlobal(time)
}

// NodeCount returns the number of nodes this Tracker was built with. This
// is not part of the reachability algorithm proper; it exists so callers
// (the reachdemo command, tests) can size a report without keeping the
// Builder's shape slice alongside the Tracker.
func (t *Tracker[T, S]) NodeCount() int {
	return len(t.perOperator)
}

// Pushed drains and returns every distinct (location, time) implication
// frontier change accumulated since the last call to Pushed, across every
// PropagateAll run in between. Each Delta is the net membership change: +1
// for newly entering the frontier, -1 for leaving it.
func (t *Tracker[T, S]) Pushed() []PushedChange[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	drained := t.pushedChanges.Drain()
	if len(drained) == 0 {
		return nil
	}
	out := make([]PushedChange[T], len(drained))
	for i, kd := range drained {
		out[i] = PushedChange[T]{Location: kd.Key.Location, Time: kd.Key.Time, Delta: kd.Delta}
	}
	return out
}

// PushedOutput drains and returns every frontier change at a scope output
// accumulated since the last call.
func (t *Tracker[T, S]) PushedOutput() []OutputChange[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []OutputChange[T]
	for port, batch := range t.outputChanges {
		for _, kd := range batch.Drain() {
			out = append(out, OutputChange[T]{Output: port, Time: kd.Key, Delta: kd.Delta})
		}
	}
	return out
}

// PropagateAll consumes every buffered Update/UpdateTarget/UpdateSource
// call and circulates its effect through the graph to a fixed point, in
// two phases:
//
// Phase A folds the buffered target and source changes into each port's
// pointstamp frontier. Each resulting frontier change is, first, projected
// through that port's pre-compiled output summaries straight into the
// matching scope output's OutputChange (this is what makes PushedOutput
// react immediately to a raw pointstamp change, without waiting for
// Phase B's slower implications layer to catch up), and second, pushed
// onto the work-list keyed by (time, location) to begin circulating.
//
// Phase B drains the work-list in (time, location) order, coalescing
// entries that share a key, folding each into that location's implication
// frontier, and recording any resulting change as pushed (Pushed). A
// pushed change at any target propagates across its node's own internal
// path summaries to that node's outputs; a pushed change at any source
// propagates along outgoing edges to downstream targets, unchanged. Node 0
// is not special here — it is an ordinary node whose ports happen to
// double as the enclosing scope's boundary; only the output-summary
// projection in Phase A treats scope outputs differently, and only
// because every port's compiled output summaries already account for the
// path from that port to each scope output.
func (t *Tracker[T, S]) PropagateAll() {
	ctx := context.Background()
	span := t.cfg.tracer.StartSpan(ctx, "reach.Tracker.PropagateAll")
	defer span.End()
	start := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, kd := range t.targetChanges.Drain() {
		target, at, delta := kd.Key.Target, kd.Key.Time, kd.Delta
		info := &t.perOperator[target.Node].targets[target.Port]
		for _, change := range info.pointstamps.UpdateIter([]TimeDelta[T]{{Time: at, Delta: delta}}) {
			t.totalCounts += change.Delta
			t.projectToOutputs(info, change)
			t.worklist.push(change.Time, target.Location(), change.Delta)
		}
	}
	for _, kd := range t.sourceChanges.Drain() {
		source, at, delta := kd.Key.Source, kd.Key.Time, kd.Delta
		info := &t.perOperator[source.Node].sources[source.Port]
		for _, change := range info.pointstamps.UpdateIter([]TimeDelta[T]{{Time: at, Delta: delta}}) {
			t.totalCounts += change.Delta
			t.projectToOutputs(info, change)
			t.worklist.push(change.Time, source.Location(), change.Delta)
		}
	}

	t.cfg.metrics.setTotalCounts(t.totalCounts)
	worklistDepthAtStart := t.worklist.len()
	pushedCount := 0

	for {
		at, loc, delta, ok := t.worklist.popCoalesced()
		if !ok {
			break
		}
		if delta == 0 {
			continue
		}

		switch loc.Port.Kind {
		case PortKindTarget:
			info := &t.perOperator[loc.Node].targets[loc.Port.Index]
			for _, change := range info.implications.UpdateIter([]TimeDelta[T]{{Time: at, Delta: delta}}) {
				table := t.nodes[loc.Node]
				if loc.Port.Index < len(table) {
					for output, antichain := range table[loc.Port.Index] {
						for _, summary := range antichain.Elements() {
							if result, ok := summary.ResultsIn(change.Time); ok {
								t.worklist.push(result, NewSourceLocation(loc.Node, output), change.Delta)
							}
						}
					}
				}
				t.pushedChanges.Update(locationTimeKey[T]{Location: loc, Time: change.Time}, change.Delta)
				pushedCount++
			}
		case PortKindSource:
			info := &t.perOperator[loc.Node].sources[loc.Port.Index]
			for _, change := range info.implications.UpdateIter([]TimeDelta[T]{{Time: at, Delta: delta}}) {
				for _, target := range t.edges[loc.Node][loc.Port.Index] {
					t.worklist.push(change.Time, target.Location(), change.Delta)
				}
				t.pushedChanges.Update(locationTimeKey[T]{Location: loc, Time: change.Time}, change.Delta)
				pushedCount++
			}
		}
	}

	t.cfg.metrics.observePropagate(start, worklistDepthAtStart, pushedCount)
}

// projectToOutputs records, for every scope output info's port has a
// compiled path summary to, the effect of a single pointstamp frontier
// change at that port.
func (t *Tracker[T, S]) projectToOutputs(info *PortInformation[T, S], change TimeDelta[T]) {
	for output, antichain := range info.outputSummaries {
		for _, summary := range antichain.Elements() {
			if outTime, ok := summary.ResultsIn(change.Time); ok {
				t.outputChanges[output].Update(outTime, change.Delta)
			}
		}
	}
}
