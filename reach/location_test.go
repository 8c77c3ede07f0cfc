package reach

import "testing"

func TestLocationConstructors(t *testing.T) {
	tgt := NewTargetLocation(2, 3)
	if !tgt.IsTarget() || tgt.IsSource() {
		t.Fatalf("NewTargetLocation(2,3) = %v, want a target location", tgt)
	}
	if tgt.Node != 2 || tgt.Port.Index != 3 {
		t.Fatalf("NewTargetLocation(2,3) = %v, want Node=2 Port.Index=3", tgt)
	}

	src := NewSourceLocation(4, 5)
	if !src.IsSource() || src.IsTarget() {
		t.Fatalf("NewSourceLocation(4,5) = %v, want a source location", src)
	}
}

func TestSourceTargetLocationRoundTrip(t *testing.T) {
	s := Source{Node: 1, Port: 2}
	if loc := s.Location(); loc != NewSourceLocation(1, 2) {
		t.Fatalf("Source.Location() = %v, want %v", loc, NewSourceLocation(1, 2))
	}

	tg := Target{Node: 3, Port: 4}
	if loc := tg.Location(); loc != NewTargetLocation(3, 4) {
		t.Fatalf("Target.Location() = %v, want %v", loc, NewTargetLocation(3, 4))
	}
}

func TestLocationLessOrdersByNodeThenKindThenIndex(t *testing.T) {
	a := NewTargetLocation(0, 0)
	b := NewTargetLocation(1, 0)
	if !a.less(b) {
		t.Fatalf("%v.less(%v) = false, want true (lower node first)", a, b)
	}

	c := NewTargetLocation(0, 1)
	d := NewSourceLocation(0, 0)
	if !c.less(d) {
		t.Fatalf("%v.less(%v) = false, want true (Target kind sorts before Source)", c, d)
	}
}
