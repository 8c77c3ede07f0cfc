package reach

import "testing"

func TestChangeBatchCoalesces(t *testing.T) {
	c := NewChangeBatch[string]()
	c.Update("a", 3)
	c.Update("a", -1)
	c.Update("b", 2)

	if c.IsEmpty() {
		t.Fatalf("IsEmpty() = true, want false")
	}

	drained := c.Drain()
	got := map[string]int64{}
	for _, kd := range drained {
		got[kd.Key] = kd.Delta
	}
	if got["a"] != 2 || got["b"] != 2 {
		t.Fatalf("Drain() = %v, want a:2 b:2", drained)
	}
}

func TestChangeBatchZeroNetDeltaDrops(t *testing.T) {
	c := NewChangeBatch[string]()
	c.Update("a", 5)
	c.Update("a", -5)

	if !c.IsEmpty() {
		t.Fatalf("IsEmpty() = false, want true after net-zero update")
	}
	if drained := c.Drain(); drained != nil {
		t.Fatalf("Drain() = %v, want nil", drained)
	}
}

func TestChangeBatchDrainClears(t *testing.T) {
	c := NewChangeBatch[string]()
	c.Update("a", 1)
	c.Drain()
	if !c.IsEmpty() {
		t.Fatalf("IsEmpty() = false after Drain, want true")
	}
	if drained := c.Drain(); drained != nil {
		t.Fatalf("second Drain() = %v, want nil", drained)
	}
}
