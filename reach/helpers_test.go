package reach

// testTime and testSummary are the package's own internal test fixtures
// for the Timestamp/Summary algebra: plain int timestamps under their
// natural order, and "add n" summaries whose default element is
// testSummary(0). They mirror reach/inttime but live in-package so the
// core's white-box tests need not import a consumer package.

type testTime int

func (t testTime) LessEqual(other testTime) bool { return t <= other }
func (t testTime) Less(other testTime) bool      { return t < other }

type testSummary int

func (s testSummary) LessEqual(other testSummary) bool { return s <= other }

func (s testSummary) ResultsIn(t testTime) (testTime, bool) { return t + testTime(s), true }

func (s testSummary) FollowedBy(next testSummary) (testSummary, bool) { return s + next, true }

func defaultTable(inputs, outputs int) SummaryTable[testSummary] {
	table := make(SummaryTable[testSummary], inputs)
	for i := range table {
		row := make([]Antichain[testSummary], outputs)
		for j := range row {
			row[j] = AntichainFromElem[testSummary](0)
		}
		table[i] = row
	}
	return table
}

func incrementTable(inputs, outputs int, delta testSummary) SummaryTable[testSummary] {
	table := make(SummaryTable[testSummary], inputs)
	for i := range table {
		row := make([]Antichain[testSummary], outputs)
		for j := range row {
			row[j] = AntichainFromElem[testSummary](delta)
		}
		table[i] = row
	}
	return table
}
