package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dshills/reach/reach"
	"github.com/dshills/reach/reach/inttime"
)

// locationString renders a Location the way reach's own error messages do
// (Kind(node,index)), since Location has no String method of its own — it
// is a pure data type, and this formatting is purely a CLI concern.
func locationString(l reach.Location) string {
	return fmt.Sprintf("%s(%d,%d)", l.Port.Kind, l.Node, l.Port.Index)
}

// renderTopology prints the acyclicity verdict in the codefang CLI's
// pass/fail color convention: green for an accepted topology, red for a
// reported default-cycle diagnostic.
func renderTopology(w io.Writer, acyclic bool, diagnostics []reach.Diagnostic) {
	if acyclic {
		color.New(color.FgGreen).Fprintf(w, "topology accepted: no default-cycle\n")
		return
	}
	color.New(color.FgRed).Fprintf(w, "topology has a default-cycle (liveness hazard, not a build error):\n")
	for _, d := range diagnostics {
		color.New(color.FgYellow).Fprintf(w, "  code=%s msg=%q\n", d.Code, d.Message)
	}
}

// renderPushed renders a scenario's Pushed() and PushedOutput() results as
// two go-pretty tables, in the collection-table idiom the retrieval pack's
// formatter.go uses: light style, no inner borders, a footer with the row
// count.
func renderPushed(w io.Writer, pushed []reach.PushedChange[inttime.Time], outputs []reach.OutputChange[inttime.Time]) {
	sort.Slice(pushed, func(i, j int) bool {
		if pushed[i].Time != pushed[j].Time {
			return pushed[i].Time < pushed[j].Time
		}
		return locationString(pushed[i].Location) < locationString(pushed[j].Location)
	})

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.AppendHeader(table.Row{"Location", "Time", "Delta"})
	for _, c := range pushed {
		tbl.AppendRow(table.Row{locationString(c.Location), int(c.Time), c.Delta})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d pushed", len(pushed))})
	fmt.Fprintln(w, "Pushed (implication frontier changes):")
	tbl.Render()

	sort.Slice(outputs, func(i, j int) bool {
		if outputs[i].Output != outputs[j].Output {
			return outputs[i].Output < outputs[j].Output
		}
		return outputs[i].Time < outputs[j].Time
	})

	outTbl := table.NewWriter()
	outTbl.SetOutputMirror(w)
	outTbl.SetStyle(table.StyleLight)
	outTbl.Style().Options.SeparateRows = false
	outTbl.AppendHeader(table.Row{"Output", "Time", "Delta"})
	for _, c := range outputs {
		outTbl.AppendRow(table.Row{c.Output, int(c.Time), c.Delta})
	}
	outTbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d pushed", len(outputs))})
	fmt.Fprintln(w, "PushedOutput (scope-output frontier changes):")
	outTbl.Render()
}
