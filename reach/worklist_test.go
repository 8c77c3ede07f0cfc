package reach

import "testing"

func TestWorklistPopsInTimeOrder(t *testing.T) {
	w := newWorklist[testTime]()
	w.push(5, NewTargetLocation(0, 0), 1)
	w.push(1, NewTargetLocation(1, 0), 1)
	w.push(3, NewTargetLocation(2, 0), 1)

	var order []testTime
	for {
		tm, _, _, ok := w.popCoalesced()
		if !ok {
			break
		}
		order = append(order, tm)
	}
	want := []testTime{1, 3, 5}
	for i, tm := range want {
		if order[i] != tm {
			t.Fatalf("pop order = %v, want %v", order, want)
		}
	}
}

func TestWorklistCoalescesSameTimeAndLocation(t *testing.T) {
	w := newWorklist[testTime]()
	loc := NewSourceLocation(0, 0)
	w.push(5, loc, 2)
	w.push(5, loc, 3)
	w.push(5, loc, -1)

	tm, gotLoc, delta, ok := w.popCoalesced()
	if !ok {
		t.Fatalf("popCoalesced() ok = false, want true")
	}
	if tm != 5 || gotLoc != loc || delta != 4 {
		t.Fatalf("popCoalesced() = (%v, %v, %v), want (5, %v, 4)", tm, gotLoc, delta, loc)
	}
	if _, _, _, ok := w.popCoalesced(); ok {
		t.Fatalf("popCoalesced() after drain ok = true, want false")
	}
}

func TestWorklistDistinctLocationsAtSameTimeDoNotCoalesce(t *testing.T) {
	w := newWorklist[testTime]()
	w.push(5, NewTargetLocation(0, 0), 1)
	w.push(5, NewTargetLocation(0, 1), 1)

	count := 0
	for {
		_, _, _, ok := w.popCoalesced()
		if !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Fatalf("got %d pops, want 2 (distinct locations must not coalesce)", count)
	}
}

func TestWorklistEmpty(t *testing.T) {
	w := newWorklist[testTime]()
	if _, _, _, ok := w.popCoalesced(); ok {
		t.Fatalf("popCoalesced() on empty worklist ok = true, want false")
	}
	if w.len() != 0 {
		t.Fatalf("len() = %d, want 0", w.len())
	}
}
