package types

import "testing"

func TestAllocatorFreshIsMonotonicAndUnique(t *testing.T) {
	a := NewAllocator()
	v0 := a.Fresh()
	v1 := a.Fresh()
	if v0.Name != "t0" || v1.Name != "t1" {
		t.Fatalf("expected t0, t1; got %s, %s", v0.Name, v1.Name)
	}
}

func TestAllocatorReset(t *testing.T) {
	a := NewAllocator()
	a.Fresh()
	a.Fresh()
	a.Reset()
	v := a.Fresh()
	if v.Name != "t0" {
		t.Fatalf("expected t0 after Reset, got %s", v.Name)
	}
}
