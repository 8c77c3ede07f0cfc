package main

import (
	"fmt"

	"github.com/dshills/reach/reach"
	"github.com/dshills/reach/reach/inttime"
)

// scenario names one of the topologies the reach package's own tests are
// built around (spec.md §8, Scenarios A-E). The demo command builds one of
// these from a flag, runs it through a real Builder and Tracker, and prints
// whatever the scenario's driver function chooses to push through it.
type scenario struct {
	name        string
	description string
	build       func(opts ...reach.Option) *reach.Builder[inttime.Time, inttime.Summary]
	drive       func(*reach.Tracker[inttime.Time, inttime.Summary])
}

var scenarios = map[string]scenario{
	"A": {
		name:        "A",
		description: "three-node cycle, one incrementing hop — acyclic, capability circulates and advances",
		build:       buildThreeNodeCycle,
		drive: func(t *reach.Tracker[inttime.Time, inttime.Summary]) {
			t.UpdateSource(reach.Source{Node: 0, Port: 0}, 17, 1)
		},
	},
	"B": {
		name:        "B",
		description: "single two-port node with a swap-shaped internal summary — acyclic",
		build:       buildSwapNode,
		drive: func(t *reach.Tracker[inttime.Time, inttime.Summary]) {
			t.UpdateTarget(reach.Target{Node: 0, Port: 0}, 5, 1)
		},
	},
	"C": {
		name:        "C",
		description: "Scenario A's topology with every hop default (non-incrementing) — a cycle is reported as a diagnostic",
		build:       buildDefaultCycle,
		drive: func(t *reach.Tracker[inttime.Time, inttime.Summary]) {
			t.UpdateSource(reach.Source{Node: 0, Port: 0}, 5, 1)
		},
	},
	"D": {
		name:        "D",
		description: "Scenario A driven, then PropagateAll called again with nothing buffered — idempotent, no further pushes",
		build:       buildThreeNodeCycle,
		drive: func(t *reach.Tracker[inttime.Time, inttime.Summary]) {
			t.UpdateSource(reach.Source{Node: 0, Port: 0}, 17, 1)
			t.PropagateAll()
			t.Pushed() // drain before the caller's own PropagateAll/Pushed pass
		},
	},
	"E": {
		name:        "E",
		description: "single node, no edges — a target-side capability pushes both its own target and its own source",
		build:       buildSingleNode,
		drive: func(t *reach.Tracker[inttime.Time, inttime.Summary]) {
			t.UpdateTarget(reach.Target{Node: 0, Port: 0}, 5, 1)
		},
	},
}

func defaultTable(inputs, outputs int) reach.SummaryTable[inttime.Summary] {
	table := make(reach.SummaryTable[inttime.Summary], inputs)
	for i := range table {
		table[i] = make([]reach.Antichain[inttime.Summary], outputs)
		for j := range table[i] {
			table[i][j] = reach.AntichainFromElem[inttime.Summary](0)
		}
	}
	return table
}

func incrementTable(inputs, outputs int, delta inttime.Summary) reach.SummaryTable[inttime.Summary] {
	table := make(reach.SummaryTable[inttime.Summary], inputs)
	for i := range table {
		table[i] = make([]reach.Antichain[inttime.Summary], outputs)
		for j := range table[i] {
			table[i][j] = reach.AntichainFromElem[inttime.Summary](delta)
		}
	}
	return table
}

func buildThreeNodeCycle(opts ...reach.Option) *reach.Builder[inttime.Time, inttime.Summary] {
	b := reach.NewBuilder[inttime.Time, inttime.Summary](opts...)
	b.AddNode(0, 1, 1, defaultTable(1, 1))
	b.AddNode(1, 1, 1, defaultTable(1, 1))
	b.AddNode(2, 1, 1, incrementTable(1, 1, 1))
	b.AddEdge(reach.Source{Node: 0, Port: 0}, reach.Target{Node: 1, Port: 0})
	b.AddEdge(reach.Source{Node: 1, Port: 0}, reach.Target{Node: 2, Port: 0})
	b.AddEdge(reach.Source{Node: 2, Port: 0}, reach.Target{Node: 0, Port: 0})
	return b
}

func buildSwapNode(opts ...reach.Option) *reach.Builder[inttime.Time, inttime.Summary] {
	b := reach.NewBuilder[inttime.Time, inttime.Summary](opts...)
	summary := reach.SummaryTable[inttime.Summary]{
		{reach.AntichainFromElem[inttime.Summary](0), reach.Antichain[inttime.Summary]{}},
		{reach.Antichain[inttime.Summary]{}, reach.AntichainFromElem[inttime.Summary](1)},
	}
	b.AddNode(0, 2, 2, summary)
	b.AddEdge(reach.Source{Node: 0, Port: 0}, reach.Target{Node: 0, Port: 1})
	b.AddEdge(reach.Source{Node: 0, Port: 1}, reach.Target{Node: 0, Port: 0})
	return b
}

func buildDefaultCycle(opts ...reach.Option) *reach.Builder[inttime.Time, inttime.Summary] {
	b := reach.NewBuilder[inttime.Time, inttime.Summary](opts...)
	b.AddNode(0, 1, 1, defaultTable(1, 1))
	b.AddNode(1, 1, 1, defaultTable(1, 1))
	b.AddNode(2, 1, 1, defaultTable(1, 1))
	b.AddEdge(reach.Source{Node: 0, Port: 0}, reach.Target{Node: 1, Port: 0})
	b.AddEdge(reach.Source{Node: 1, Port: 0}, reach.Target{Node: 2, Port: 0})
	b.AddEdge(reach.Source{Node: 2, Port: 0}, reach.Target{Node: 0, Port: 0})
	return b
}

func buildSingleNode(opts ...reach.Option) *reach.Builder[inttime.Time, inttime.Summary] {
	b := reach.NewBuilder[inttime.Time, inttime.Summary](opts...)
	b.AddNode(0, 1, 1, defaultTable(1, 1))
	return b
}

// lookupScenario resolves a flag value to its scenario, or an error listing
// the valid names.
func lookupScenario(name string) (scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return scenario{}, fmt.Errorf("unknown scenario %q (want one of A, B, C, D, E)", name)
	}
	return s, nil
}
