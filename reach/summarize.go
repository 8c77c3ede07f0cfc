package reach

// outputWork is one pending step of the backward BFS in summarizeOutputs:
// location carries summary along paths yet to be discovered, as a
// contribution to the antichain of summaries reaching scope output.
type outputWork[S any] struct {
	location Location
	output   int
	summary  S
}

// summarizeOutputs computes, for every port location whose node is not the
// meta-node (or is a scope input), the antichain of minimal path summaries
// reaching each scope output, by backward BFS from the scope outputs
// (node 0's target ports).
//
// reverse maps each Target location to the unique Source location feeding
// it (Build has already rejected multi-fanin targets, so this is safe).
// Locations missing from reverse simply have no path to any scope output,
// and are silently absent from the result (§7).
func summarizeOutputs[T Timestamp[T], S Summary[S, T]](
	nodes []SummaryTable[S],
	edges [][][]Target,
	reverse map[Location]Location,
) map[Location][]Antichain[S] {
	results := make(map[Location][]Antichain[S])
	var work []outputWork[S]

	for _, outputs := range edges {
		for _, targets := range outputs {
			for _, target := range targets {
				if target.Node != 0 {
					continue
				}
				var zero S
				work = append(work, outputWork[S]{
					location: target.Location(),
					output:   target.Port,
					summary:  zero,
				})
			}
		}
	}

	ensureRow := func(loc Location, output int) []Antichain[S] {
		row := results[loc]
		for len(row) <= output {
			row = append(row, NewAntichain[S]())
		}
		results[loc] = row
		return row
	}

	for len(work) > 0 {
		item := work[0]
		work = work[1:]

		loc, output, summary := item.location, item.output, item.summary

		switch loc.Port.Kind {
		case PortKindSource:
			outputPort := loc.Port.Index
			table := nodes[loc.Node]
			for inputPort, row := range table {
				target := NewTargetLocation(loc.Node, inputPort)
				ensureRow(target, output)
				for _, opSummary := range row[outputPort].Elements() {
					combined, ok := opSummary.FollowedBy(summary)
					if !ok {
						continue
					}
					antichains := results[target]
					if antichains[output].Insert(combined) {
						results[target] = antichains
						work = append(work, outputWork[S]{location: target, output: output, summary: combined})
					}
				}
			}

		case PortKindTarget:
			source, ok := reverse[loc]
			if !ok {
				continue
			}
			ensureRow(source, output)
			antichains := results[source]
			if antichains[output].Insert(summary) {
				results[source] = antichains
				work = append(work, outputWork[S]{location: source, output: output, summary: summary})
			}
		}
	}

	return results
}
