package reach

// TimeDelta is a signed count change at a timestamp: the unit both of the
// input to MutableAntichain.UpdateIter and of the frontier-membership
// changes it returns.
type TimeDelta[T any] struct {
	Time  T
	Delta int64
}

// MutableAntichain maintains a counted multiset M over T and derives its
// frontier: the antichain of minimal elements t with M(t) > 0. It is the
// online counterpart to Antichain, used for both a port's raw pointstamp
// counts and its propagated implication counts.
//
// The zero value is an empty MutableAntichain (no counts, empty frontier).
type MutableAntichain[T Timestamp[T]] struct {
	counts   map[T]int64
	frontier []T
}

// NewMutableAntichain returns an empty MutableAntichain.
func NewMutableAntichain[T Timestamp[T]]() *MutableAntichain[T] {
	return &MutableAntichain[T]{counts: make(map[T]int64)}
}

// CountFor returns the raw count M(t). It is chiefly useful at frontier
// elements, to detect redundancy (see PortInformation.IsGlobal).
func (m *MutableAntichain[T]) CountFor(t T) int64 {
	return m.counts[t]
}

// Frontier returns the antichain's current minimal elements. Callers must
// not mutate the returned slice.
func (m *MutableAntichain[T]) Frontier() []T {
	return m.frontier
}

// UpdateIter applies every (time, delta) pair in updates to M, then returns
// the resulting changes to the frontier F(M), expressed as signed,
// discrete membership updates: an element newly entering F(M) is reported
// as (t, +1), one leaving as (t, -1). Accumulating the returned deltas onto
// the prior frontier reconstructs the new one.
//
// Mid-batch negative counts are permitted; only the state after the whole
// batch is applied need be non-negative for any element that ends up in
// the frontier. Elements with M(t) == 0 are never part of the frontier.
func (m *MutableAntichain[T]) UpdateIter(updates []TimeDelta[T]) []TimeDelta[T] {
	if len(updates) == 0 {
		return nil
	}
	for _, u := range updates {
		next := m.counts[u.Time] + u.Delta
		if next == 0 {
			delete(m.counts, u.Time)
		} else {
			m.counts[u.Time] = next
		}
	}

	newFrontier := minimalPositive(m.counts)
	changes := frontierDiff(m.frontier, newFrontier)
	m.frontier = newFrontier
	return changes
}

// minimalPositive returns the minimal elements, under LessEqual, among the
// keys of counts with strictly positive count.
func minimalPositive[T Timestamp[T]](counts map[T]int64) []T {
	candidates := make([]T, 0, len(counts))
	for t, c := range counts {
		if c > 0 {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) <= 1 {
		return candidates
	}
	result := make([]T, 0, len(candidates))
	for i, t := range candidates {
		dominated := false
		for j, u := range candidates {
			if i == j {
				continue
			}
			if u.LessEqual(t) && !t.LessEqual(u) {
				dominated = true
				break
			}
		}
		if !dominated {
			result = append(result, t)
		}
	}
	return result
}

// frontierDiff computes the signed membership changes taking the set `old`
// to the set `new`: elements only in `new` are reported as +1, elements
// only in `old` as -1.
func frontierDiff[T comparable](old, next []T) []TimeDelta[T] {
	oldSet := make(map[T]struct{}, len(old))
	for _, t := range old {
		oldSet[t] = struct{}{}
	}
	nextSet := make(map[T]struct{}, len(next))
	for _, t := range next {
		nextSet[t] = struct{}{}
	}

	var diffs []TimeDelta[T]
	for _, t := range next {
		if _, ok := oldSet[t]; !ok {
			diffs = append(diffs, TimeDelta[T]{Time: t, Delta: +1})
		}
	}
	for _, t := range old {
		if _, ok := nextSet[t]; !ok {
			diffs = append(diffs, TimeDelta[T]{Time: t, Delta: -1})
		}
	}
	return diffs
}
