package plane

import (
	"math"
	"testing"
)

// findNode returns the id of the node nearest (x, y), failing the test when
// nothing lies within the snap distance.
func findNode(t *testing.T, g *Graph, x, y float64) int {
	t.Helper()
	for id := 0; id < g.NodeCount(); id++ {
		p := g.Node(id)
		if math.Abs(p.X-x) < 0.5 && math.Abs(p.Y-y) < 0.5 {
			return id
		}
	}
	t.Fatalf("no node near (%v, %v)", x, y)
	return -1
}

func triangleLines() []Line {
	return []Line{
		{0, 0, 100, 0},
		{100, 0, 50, 100},
		{50, 100, 0, 0},
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil, DefaultConfig())
	if g.NodeCount() != 0 || g.SegmentCount() != 0 {
		t.Errorf("empty build has %d nodes, %d segments", g.NodeCount(), g.SegmentCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBuildSingleLine(t *testing.T) {
	g := Build([]Line{{0, 0, 10, 0}}, DefaultConfig())
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", g.NodeCount())
	}
	if g.SegmentCount() != 1 {
		t.Errorf("SegmentCount = %d, want 1", g.SegmentCount())
	}
	if g.Degree(0) != 1 || g.Degree(1) != 1 {
		t.Errorf("degrees = %d, %d, want 1, 1", g.Degree(0), g.Degree(1))
	}
}

func TestBuildCrossingSplitsBothLines(t *testing.T) {
	g := Build([]Line{
		{0, 0, 100, 100},
		{0, 100, 100, 0},
	}, DefaultConfig())

	if g.NodeCount() != 5 {
		t.Errorf("NodeCount = %d, want 5", g.NodeCount())
	}
	if g.SegmentCount() != 4 {
		t.Errorf("SegmentCount = %d, want 4", g.SegmentCount())
	}
	if len(g.Crossings()) != 1 {
		t.Fatalf("Crossings = %v, want one", g.Crossings())
	}
	hub := g.Crossings()[0]
	if g.Degree(hub) != 4 {
		t.Errorf("crossing degree = %d, want 4", g.Degree(hub))
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBuildTriangleSharesEndpoints(t *testing.T) {
	g := Build(triangleLines(), DefaultConfig())

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
	if g.SegmentCount() != 3 {
		t.Errorf("SegmentCount = %d, want 3", g.SegmentCount())
	}
	for id := 0; id < 3; id++ {
		if g.Degree(id) != 2 {
			t.Errorf("Degree(%d) = %d, want 2", id, g.Degree(id))
		}
	}
	if roots := g.ClosedComponents(); len(roots) != 1 {
		t.Errorf("ClosedComponents = %v, want one root", roots)
	}
}

func TestOutgoingSortedByAngle(t *testing.T) {
	// Four spokes from the origin. Outgoing order must follow atan2:
	// south (-pi/2), east (0), north (pi/2), west (pi).
	g := Build([]Line{
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{0, 0, -10, 0},
		{0, 0, 0, -10},
	}, DefaultConfig())

	center := findNode(t, g, 0, 0)
	want := []int{
		findNode(t, g, 0, -10),
		findNode(t, g, 10, 0),
		findNode(t, g, 0, 10),
		findNode(t, g, -10, 0),
	}
	out := g.outgoing[center]
	if len(out) != 4 {
		t.Fatalf("outgoing at center = %d half-edges, want 4", len(out))
	}
	for i, heID := range out {
		if got := g.halfEdges[heID].to; got != want[i] {
			t.Errorf("outgoing[%d] leads to node %d, want %d", i, got, want[i])
		}
	}
}

func TestStripLeavesRemovesDanglingChain(t *testing.T) {
	lines := append(triangleLines(),
		Line{50, 100, 50, 200},
		Line{50, 200, 120, 260},
	)
	g := Build(lines, DefaultConfig())

	apex := findNode(t, g, 50, 100)
	tail := findNode(t, g, 50, 200)
	tip := findNode(t, g, 120, 260)

	if g.allowed[tail] || g.allowed[tip] {
		t.Error("dangling chain nodes should be stripped")
	}
	if !g.allowed[apex] {
		t.Error("triangle apex should survive stripping")
	}
	if g.effDegree[apex] != 2 {
		t.Errorf("apex effective degree = %d, want 2", g.effDegree[apex])
	}
}

func TestStripLeavesClearsOpenSketch(t *testing.T) {
	g := Build([]Line{
		{0, 0, 100, 0},
		{100, 0, 100, 100},
	}, DefaultConfig())
	for id := 0; id < g.NodeCount(); id++ {
		if g.allowed[id] {
			t.Errorf("node %d survived stripping of an open chain", id)
		}
	}
}

func TestAuditGroupsNearDuplicates(t *testing.T) {
	// Two endpoints 1.7 apart: distinct dedup cells at eps 0.25, but the
	// same coarse audit cell, so they surface as a near-duplicate group.
	g := Build([]Line{
		{0.3, 0.3, 100, 0.3},
		{1.5, 1.5, 100, 80},
	}, DefaultConfig())

	groups := g.AuditGroups()
	if len(groups) != 1 {
		t.Fatalf("AuditGroups = %v, want one group", groups)
	}
	a := findNode(t, g, 0.3, 0.3)
	b := findNode(t, g, 1.5, 1.5)
	if len(groups[0]) != 2 || groups[0][0] != min(a, b) || groups[0][1] != max(a, b) {
		t.Errorf("group = %v, want [%d %d]", groups[0], min(a, b), max(a, b))
	}
}

func TestValidateBuiltGraph(t *testing.T) {
	lines := append(triangleLines(),
		Line{0, 50, 100, 50},
		Line{-20, -20, 120, 130},
	)
	g := Build(lines, DefaultConfig())
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
