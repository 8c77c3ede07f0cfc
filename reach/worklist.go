package reach

import "container/heap"

// workEntry is one pending implication-frontier delta: location's
// implications change by delta at time, once all other entries sharing
// (time, location) are coalesced in.
//
// This is the online-propagation analogue of the teacher engine's
// WorkItem/workHeap pair (graph/scheduler.go): the same container/heap
// min-heap idiom, re-targeted from "schedule a node execution" to
// "schedule an implication-frontier delta".
type workEntry[T Timestamp[T]] struct {
	Time  T
	Loc   Location
	Delta int64
}

// workHeap orders entries by (Time, Location), ties on Location broken by
// Location.less. Time.Less must be a linear extension of the timestamp's
// partial order (see the Timestamp doc comment), which is what makes a pop
// order by this total order also time-nondecreasing in the partial order
// sense required by Tracker.PropagateAll's termination argument.
type workHeap[T Timestamp[T]] []workEntry[T]

func (h workHeap[T]) Len() int { return len(h) }

func (h workHeap[T]) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Time.Less(b.Time) {
		return true
	}
	if b.Time.Less(a.Time) {
		return false
	}
	return a.Loc.less(b.Loc)
}

func (h workHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *workHeap[T]) Push(x interface{}) {
	*h = append(*h, x.(workEntry[T]))
}

func (h *workHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// worklist wraps workHeap with the push/pop-and-coalesce behavior
// Tracker.PropagateAll's Phase B needs: popping an entry first drains and
// sums every other entry sharing its (Time, Location).
type worklist[T Timestamp[T]] struct {
	h workHeap[T]
}

func newWorklist[T Timestamp[T]]() *worklist[T] {
	w := &worklist[T]{}
	heap.Init(&w.h)
	return w
}

func (w *worklist[T]) push(t T, loc Location, delta int64) {
	heap.Push(&w.h, workEntry[T]{Time: t, Loc: loc, Delta: delta})
}

func (w *worklist[T]) len() int { return w.h.Len() }

// popCoalesced removes the minimal (Time, Location) entry along with every
// other entry sharing that key, returning their summed delta. ok is false
// when the worklist is empty.
func (w *worklist[T]) popCoalesced() (t T, loc Location, delta int64, ok bool) {
	if w.h.Len() == 0 {
		return t, loc, 0, false
	}
	first := heap.Pop(&w.h).(workEntry[T])
	t, loc, delta = first.Time, first.Loc, first.Delta
	for w.h.Len() > 0 && w.h[0].Time == t && w.h[0].Loc == loc {
		next := heap.Pop(&w.h).(workEntry[T])
		delta += next.Delta
	}
	return t, loc, delta, true
}
