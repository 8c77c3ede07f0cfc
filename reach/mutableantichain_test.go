package reach

import (
	"reflect"
	"testing"
)

func TestMutableAntichainUpdateIterEmpty(t *testing.T) {
	m := NewMutableAntichain[testTime]()
	if changes := m.UpdateIter(nil); changes != nil {
		t.Fatalf("UpdateIter(nil) = %v, want nil", changes)
	}
}

func TestMutableAntichainFirstArrival(t *testing.T) {
	m := NewMutableAntichain[testTime]()
	changes := m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: 1}})
	want := []TimeDelta[testTime]{{Time: 5, Delta: 1}}
	if !reflect.DeepEqual(changes, want) {
		t.Fatalf("UpdateIter = %v, want %v", changes, want)
	}
	if got := m.Frontier(); !reflect.DeepEqual(got, []testTime{5}) {
		t.Fatalf("Frontier() = %v, want [5]", got)
	}
}

func TestMutableAntichainRetractToEmpty(t *testing.T) {
	m := NewMutableAntichain[testTime]()
	m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: 1}})
	changes := m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: -1}})
	want := []TimeDelta[testTime]{{Time: 5, Delta: -1}}
	if !reflect.DeepEqual(changes, want) {
		t.Fatalf("UpdateIter = %v, want %v", changes, want)
	}
	if len(m.Frontier()) != 0 {
		t.Fatalf("Frontier() = %v, want empty", m.Frontier())
	}
}

func TestMutableAntichainLaterArrivalDoesNotChangeFrontier(t *testing.T) {
	m := NewMutableAntichain[testTime]()
	m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: 1}})
	changes := m.UpdateIter([]TimeDelta[testTime]{{Time: 7, Delta: 1}})
	if changes != nil {
		t.Fatalf("UpdateIter at dominated time = %v, want no frontier change", changes)
	}
	if got := m.Frontier(); !reflect.DeepEqual(got, []testTime{5}) {
		t.Fatalf("Frontier() = %v, want [5]", got)
	}
}

func TestMutableAntichainRetractingEarlierExposesLater(t *testing.T) {
	m := NewMutableAntichain[testTime]()
	m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: 1}})
	m.UpdateIter([]TimeDelta[testTime]{{Time: 7, Delta: 1}})
	changes := m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: -1}})

	byTime := map[testTime]int64{}
	for _, c := range changes {
		byTime[c.Time] = c.Delta
	}
	if byTime[5] != -1 || byTime[7] != 1 {
		t.Fatalf("UpdateIter = %v, want 5:-1 and 7:+1", changes)
	}
	if got := m.Frontier(); !reflect.DeepEqual(got, []testTime{7}) {
		t.Fatalf("Frontier() = %v, want [7]", got)
	}
}

func TestMutableAntichainMidBatchNegativeIsFine(t *testing.T) {
	m := NewMutableAntichain[testTime]()
	m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: 1}})
	// Net effect over the batch is +1 at 5 even though it dips through -1.
	changes := m.UpdateIter([]TimeDelta[testTime]{{Time: 5, Delta: -1}, {Time: 5, Delta: 1}})
	if changes != nil {
		t.Fatalf("UpdateIter = %v, want nil (net zero change)", changes)
	}
	if m.CountFor(5) != 1 {
		t.Fatalf("CountFor(5) = %d, want 1", m.CountFor(5))
	}
}
