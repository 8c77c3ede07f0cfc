// Package inttime provides the smallest concrete Timestamp/Summary pair
// that satisfies reach's external collaborator algebra: timestamps are
// plain non-negative ints under their natural order, and summaries are
// "add this many" deltas, with the default (identity) summary being
// "add 0". It exists for tests and the reachdemo command — the scenarios
// in the package's own tests use exactly this algebra — and is not itself
// part of the reachability core.
package inttime

import "fmt"

// Time is a logical timestamp: a plain int under its natural total order,
// which is also its partial order (every pair of ints is comparable).
type Time int

// LessEqual implements reach.PartialOrder.
func (t Time) LessEqual(other Time) bool { return t <= other }

// Less implements reach.Timestamp's total order. For Time it agrees
// exactly with LessEqual's partial order, since ints are totally ordered.
func (t Time) Less(other Time) bool { return t < other }

// Summary is a non-negative "add this many time units" path summary. The
// zero value, Summary(0), is the default (identity) summary.
type Summary int

// LessEqual implements reach.PartialOrder: smaller increments are "less",
// since they place fewer constraints on how far a timestamp must advance.
func (s Summary) LessEqual(other Summary) bool { return s <= other }

// ResultsIn implements reach.Summary: applying Summary(n) to t produces
// t+n. It never fails — every increment applies at every timestamp.
func (s Summary) ResultsIn(t Time) (Time, bool) { return t + Time(s), true }

// FollowedBy implements reach.Summary: increments compose by addition.
func (s Summary) FollowedBy(next Summary) (Summary, bool) { return s + next, true }

// String renders the summary as "+n", matching how the scenarios in the
// package's documentation describe them.
func (s Summary) String() string { return fmt.Sprintf("+%d", int(s)) }
