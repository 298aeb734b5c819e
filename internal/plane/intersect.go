package plane

import (
	"math"
	"slices"
)

// segmentIntersection computes the intersection of segments (x1,y1)-(x2,y2)
// and (x3,y3)-(x4,y4). It returns the parametric positions on each segment
// and the hit point, with ok false for parallel or non-crossing pairs.
func segmentIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (t, u, ix, iy float64, ok bool) {
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-4 {
		return 0, 0, 0, 0, false
	}
	t = ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u = -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, 0, 0, false
	}
	ix = x1 + t*(x2-x1)
	iy = y1 + t*(y2-y1)
	return t, u, ix, iy, true
}

// breakPoint is a node pinned to a parametric position along one line.
type breakPoint struct {
	t    float64
	node int
}

// collectBreakPoints seeds every line with its endpoint nodes and then runs
// the O(n^2) pairwise intersection pass, appending a shared node for every
// strict interior crossing. Endpoint-coincident hits snap to the existing
// endpoint node through the registry grid instead of minting near-duplicate
// nodes, which keeps degree counts honest.
//
// It returns the per-line break point lists and the deduplicated, sorted
// list of intersection node ids.
func collectBreakPoints(lines []Line, reg *registry) (perLine [][]breakPoint, crossings []int) {
	perLine = make([][]breakPoint, len(lines))

	for i, ln := range lines {
		n0 := reg.getOrInsert(ln.X1, ln.Y1)
		n1 := reg.getOrInsert(ln.X2, ln.Y2)
		perLine[i] = append(perLine[i], breakPoint{t: 0, node: n0}, breakPoint{t: 1, node: n1})
	}

	seen := make(map[int]bool)
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			a, b := lines[i], lines[j]
			t, u, ix, iy, ok := segmentIntersection(
				a.X1, a.Y1, a.X2, a.Y2,
				b.X1, b.Y1, b.X2, b.Y2,
			)
			if !ok || t <= 0 || t >= 1 || u <= 0 || u >= 1 {
				continue
			}
			node := reg.getOrInsert(ix, iy)
			perLine[i] = append(perLine[i], breakPoint{t: t, node: node})
			perLine[j] = append(perLine[j], breakPoint{t: u, node: node})
			if !seen[node] {
				seen[node] = true
				crossings = append(crossings, node)
			}
		}
	}

	slices.Sort(crossings)
	return perLine, crossings
}
