package plane

import "testing"

func TestTrimmableLinesEmpty(t *testing.T) {
	g := Build(nil, DefaultConfig())
	if got := g.TrimmableLines(); got != nil {
		t.Errorf("TrimmableLines = %v, want nil", got)
	}
}

func TestTrimmableLinesDanglingStroke(t *testing.T) {
	lines := append(triangleLines(), Line{50, 100, 50, 200})
	g := Build(lines, DefaultConfig())

	got := g.TrimmableLines()
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("TrimmableLines = %v, want [3]", got)
	}
}

func TestTrimmableLinesOpenSketch(t *testing.T) {
	g := Build([]Line{
		{0, 0, 100, 0},
		{100, 0, 100, 100},
		{100, 100, 200, 100},
	}, DefaultConfig())

	got := g.TrimmableLines()
	if len(got) != 3 {
		t.Errorf("TrimmableLines = %v, want all three lines", got)
	}
}

func TestTrimmableLinesKeepsPartialOvershoot(t *testing.T) {
	// The divider overshoots the square on both ends. Its stub segments
	// peel away, but the middle segment closes two faces, so the line as a
	// whole must survive.
	g := Build([]Line{
		{0, 0, 200, 0},
		{200, 0, 200, 200},
		{200, 200, 0, 200},
		{0, 200, 0, 0},
		{100, -10, 100, 210},
	}, DefaultConfig())

	if got := g.TrimmableLines(); len(got) != 0 {
		t.Errorf("TrimmableLines = %v, want none", got)
	}
}

func TestTrimmableLinesChainReaction(t *testing.T) {
	// A two-stroke tail off a triangle vertex: peeling the tip exposes the
	// middle stroke, so both report trimmable.
	lines := append(triangleLines(),
		Line{50, 100, 50, 200},
		Line{50, 200, 120, 260},
	)
	g := Build(lines, DefaultConfig())

	got := g.TrimmableLines()
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("TrimmableLines = %v, want [3 4]", got)
	}
}

func TestTrimmableLinesIdempotent(t *testing.T) {
	lines := append(triangleLines(), Line{50, 100, 50, 200})
	g := Build(lines, DefaultConfig())

	kept := lines[:3]
	if got := g.TrimmableLines(); len(got) != 1 {
		t.Fatalf("first pass = %v, want one line", got)
	}
	g2 := Build(kept, DefaultConfig())
	if got := g2.TrimmableLines(); len(got) != 0 {
		t.Errorf("second pass = %v, want none", got)
	}
}
