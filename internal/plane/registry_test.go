package plane

import "testing"

func TestRegistryCollapsesNearbyPoints(t *testing.T) {
	r := newRegistry(0.25)

	a := r.getOrInsert(1.0, 1.0)
	b := r.getOrInsert(1.1, 1.05)
	if a != b {
		t.Errorf("ids = %d, %d, want same node for points in one cell", a, b)
	}
	if r.len() != 1 {
		t.Errorf("len = %d, want 1", r.len())
	}
}

func TestRegistryKeepsDistantPointsApart(t *testing.T) {
	r := newRegistry(0.25)

	a := r.getOrInsert(1.0, 1.0)
	b := r.getOrInsert(1.3, 1.0)
	c := r.getOrInsert(1.0, 2.0)
	if a == b || a == c || b == c {
		t.Errorf("ids = %d, %d, %d, want three distinct nodes", a, b, c)
	}
}

func TestRegistryFirstPointWins(t *testing.T) {
	r := newRegistry(0.25)

	id := r.getOrInsert(2.0, 3.0)
	r.getOrInsert(2.1, 3.1)
	p := r.coords[id]
	if p.X != 2.0 || p.Y != 3.0 {
		t.Errorf("coords = (%v, %v), want first-seen (2, 3)", p.X, p.Y)
	}
}

func TestRegistryNegativeCoordinates(t *testing.T) {
	r := newRegistry(0.25)

	a := r.getOrInsert(-1.0, -1.0)
	b := r.getOrInsert(-0.95, -0.95)
	if a != b {
		t.Errorf("ids = %d, %d, want same node", a, b)
	}
	c := r.getOrInsert(0.05, 0.05)
	if c == a {
		t.Errorf("node across the origin collapsed into %d", a)
	}
}
