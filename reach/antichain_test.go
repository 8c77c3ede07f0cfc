package reach

import "testing"

func TestAntichainInsert(t *testing.T) {
	cases := []struct {
		name   string
		start  []int
		insert int
		want   []int
		added  bool
	}{
		{"into empty", nil, 5, []int{5}, true},
		{"dominated by existing", []int{3}, 5, []int{3}, false},
		{"dominates existing", []int{5}, 3, []int{3}, true},
		{"equal to existing is rejected", []int{3}, 3, []int{3}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Antichain[intOrder]{}
			for _, x := range tc.start {
				a.Insert(intOrder(x))
			}
			got := a.Insert(intOrder(tc.insert))
			if got != tc.added {
				t.Fatalf("Insert(%d) = %v, want %v", tc.insert, got, tc.added)
			}
			assertIntElements(t, a, tc.want)
		})
	}
}

func TestAntichainIncomparableElementsBothKept(t *testing.T) {
	a := Antichain[pairOrder]{}
	a.Insert(pairOrder{1, 0})
	a.Insert(pairOrder{0, 1})
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (incomparable pairs must both survive)", a.Len())
	}
}

func TestAntichainEvictsDominatedOnInsert(t *testing.T) {
	a := Antichain[pairOrder]{}
	a.Insert(pairOrder{1, 0})
	a.Insert(pairOrder{0, 1})
	if !a.Insert(pairOrder{0, 0}) {
		t.Fatalf("Insert((0,0)) should succeed, dominating both prior elements")
	}
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after (0,0) evicts both incomparable elements", a.Len())
	}
}

// intOrder and pairOrder are minimal PartialOrder test fixtures.

type intOrder int

func (i intOrder) LessEqual(other intOrder) bool { return i <= other }

type pairOrder struct{ a, b int }

func (p pairOrder) LessEqual(other pairOrder) bool { return p.a <= other.a && p.b <= other.b }

func assertIntElements(t *testing.T, a Antichain[intOrder], want []int) {
	t.Helper()
	got := a.Elements()
	if len(got) != len(want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	for i := range want {
		if int(got[i]) != want[i] {
			t.Fatalf("Elements() = %v, want %v", got, want)
		}
	}
}
