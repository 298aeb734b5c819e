package plane

import (
	"math"
	"testing"
)

func TestSegmentIntersectionCrossing(t *testing.T) {
	tv, u, ix, iy, ok := segmentIntersection(0, 0, 10, 10, 0, 10, 10, 0)
	if !ok {
		t.Fatal("crossing segments reported as not intersecting")
	}
	if math.Abs(ix-5) > 1e-9 || math.Abs(iy-5) > 1e-9 {
		t.Errorf("hit = (%v, %v), want (5, 5)", ix, iy)
	}
	if math.Abs(tv-0.5) > 1e-9 || math.Abs(u-0.5) > 1e-9 {
		t.Errorf("t, u = %v, %v, want 0.5, 0.5", tv, u)
	}
}

func TestSegmentIntersectionParallel(t *testing.T) {
	if _, _, _, _, ok := segmentIntersection(0, 0, 10, 0, 0, 5, 10, 5); ok {
		t.Error("parallel segments reported as intersecting")
	}
}

func TestSegmentIntersectionDisjoint(t *testing.T) {
	// The infinite lines cross, but outside both segments.
	if _, _, _, _, ok := segmentIntersection(0, 0, 1, 1, 5, 0, 5, 1); ok {
		t.Error("disjoint segments reported as intersecting")
	}
}

func TestCollectBreakPointsEndpoints(t *testing.T) {
	reg := newRegistry(0.25)
	lines := []Line{{0, 0, 10, 0}}
	perLine, crossings := collectBreakPoints(lines, reg)

	if len(perLine[0]) != 2 {
		t.Fatalf("break points = %d, want 2 endpoints", len(perLine[0]))
	}
	if len(crossings) != 0 {
		t.Errorf("crossings = %v, want none", crossings)
	}
	if reg.len() != 2 {
		t.Errorf("nodes = %d, want 2", reg.len())
	}
}

func TestCollectBreakPointsCrossing(t *testing.T) {
	reg := newRegistry(0.25)
	lines := []Line{
		{0, 0, 10, 10},
		{0, 10, 10, 0},
	}
	perLine, crossings := collectBreakPoints(lines, reg)

	if len(crossings) != 1 {
		t.Fatalf("crossings = %v, want one", crossings)
	}
	if len(perLine[0]) != 3 || len(perLine[1]) != 3 {
		t.Errorf("break points = %d, %d, want 3 each", len(perLine[0]), len(perLine[1]))
	}
	hit := reg.coords[crossings[0]]
	if math.Abs(hit.X-5) > 1e-9 || math.Abs(hit.Y-5) > 1e-9 {
		t.Errorf("crossing at (%v, %v), want (5, 5)", hit.X, hit.Y)
	}
}

func TestCollectBreakPointsSharedEndpoint(t *testing.T) {
	// Two lines meeting at an endpoint must share one node and must not
	// report an interior crossing.
	reg := newRegistry(0.25)
	lines := []Line{
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	perLine, crossings := collectBreakPoints(lines, reg)

	if len(crossings) != 0 {
		t.Errorf("crossings = %v, want none for a corner", crossings)
	}
	if reg.len() != 3 {
		t.Errorf("nodes = %d, want 3", reg.len())
	}
	if perLine[0][1].node != perLine[1][0].node {
		t.Error("corner endpoint did not collapse to one node")
	}
}

func TestCollectBreakPointsTJunction(t *testing.T) {
	// A vertical line whose endpoint lands in the interior of a horizontal
	// one. The interior hit snaps to the registry cell of the endpoint, so
	// only one node exists at the junction.
	reg := newRegistry(0.25)
	lines := []Line{
		{0, 0, 10, 0},
		{5, 0, 5, 10},
	}
	_, crossings := collectBreakPoints(lines, reg)

	// Endpoint-on-interior is t==0 on the vertical line, excluded from the
	// strict interior test, so the junction is not counted as a crossing.
	if len(crossings) != 0 {
		t.Errorf("crossings = %v, want none for a T-junction", crossings)
	}
	if reg.len() != 4 {
		t.Errorf("nodes = %d, want 4", reg.len())
	}
}
