package plane

import "math"

// FailReason classifies the outcome of a face trace. All failures are
// expected, recoverable results of a fill attempt, returned as values.
type FailReason int

const (
	// FailNone marks a successful trace.
	FailNone FailReason = iota
	// FailNoNearbyEdge: no eligible boundary segment within range of the
	// query point.
	FailNoNearbyEdge
	// FailStepLimit: the walk exceeded the configured step budget.
	FailStepLimit
	// FailDeadEnd: the walk ran out of usable candidates or oscillated
	// inside a tiny sub-loop.
	FailDeadEnd
	// FailPrematureCycle: the walk revisited a state other than the
	// legitimate closing edge.
	FailPrematureCycle
	// FailNoValidFace: one or both walks closed, but no candidate polygon
	// passed validation (area, containment, simplicity).
	FailNoValidFace
)

func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailNoNearbyEdge:
		return "no nearby edge"
	case FailStepLimit:
		return "step limit"
	case FailDeadEnd:
		return "dead end"
	case FailPrematureCycle:
		return "premature cycle"
	case FailNoValidFace:
		return "no valid face"
	default:
		return "unknown"
	}
}

// TraceResult is the outcome of one fill attempt. Boundary holds the face
// ring without a closing duplicate point. Steps, UniqueStates and MaxFanOut
// aggregate the work of both walk directions.
type TraceResult struct {
	Closed       bool
	Reason       FailReason
	Boundary     []Point
	Area         float64 // absolute area of the accepted face
	SignedArea   float64 // twice the signed area of the accepted ring
	Steps        int
	UniqueStates int
	MaxFanOut    int
}

// sideRule locks a walk to one side of the starting edge.
type sideRule int

const (
	keepLeft sideRule = iota
	keepRight
)

// angEps separates a genuine turn from numeric noise in side acceptance.
const angEps = 1e-3

// edgeKey identifies a directed walk state: the node arrived at together
// with the edge used to arrive. Virtual keys mark gap-bridging hops.
type edgeKey struct {
	from, to int
	seg      int // -1 for virtual hops
	virtual  bool
}

type candidate struct {
	next    int
	turn    float64
	absTurn float64
	virtual bool
	heID    int // -1 for virtual hops
	seg     int // -1 for virtual hops
	length  float64
	midDist float64
	dist2   float64
	onSide  bool
}

type sideTrace struct {
	closed bool
	reason FailReason
	points []Point
	steps  int
	unique int
	maxFan int
}

// TraceFace attempts to extract the innermost closed face around the query
// point. Both directions of the nearest eligible segment are walked
// independently; each closed result is validated and the best is returned.
func (g *Graph) TraceFace(ox, oy float64) TraceResult {
	startSeg, ok := g.nearestEligibleSegment(ox, oy)
	if !ok {
		return TraceResult{Reason: FailNoNearbyEdge}
	}

	seg := g.segments[startSeg]
	pa, pb := g.nodes[seg.A], g.nodes[seg.B]
	sideAB := keepRight
	if cross(pb.X-pa.X, pb.Y-pa.Y, ox-pa.X, oy-pa.Y) > 0 {
		sideAB = keepLeft
	}
	sideBA := keepRight
	if cross(pa.X-pb.X, pa.Y-pb.Y, ox-pb.X, oy-pb.Y) > 0 {
		sideBA = keepLeft
	}

	resAB := g.traceSide(seg.A, seg.B, startSeg, sideAB, ox, oy)
	resBA := g.traceSide(seg.B, seg.A, startSeg, sideBA, ox, oy)

	out := TraceResult{
		Steps:        resAB.steps + resBA.steps,
		UniqueStates: resAB.unique + resBA.unique,
		MaxFanOut:    max(resAB.maxFan, resBA.maxFan),
	}

	type scored struct {
		pts  []Point
		area float64
	}
	var qualified []scored
	anyClosed := false
	for _, st := range []sideTrace{resAB, resBA} {
		if !st.closed || len(st.points) < 3 {
			continue
		}
		anyClosed = true
		area := math.Abs(signedArea2x(st.points)) * 0.5
		if area <= g.cfg.MinArea {
			continue
		}
		if !pointInPolyEvenOdd(ox, oy, st.points) {
			continue
		}
		if !isSimpleRing(st.points) {
			continue
		}
		qualified = append(qualified, scored{pts: st.points, area: area})
	}

	if len(qualified) == 0 {
		if anyClosed {
			out.Reason = FailNoValidFace
		} else if resAB.steps >= resBA.steps {
			out.Reason = resAB.reason
		} else {
			out.Reason = resBA.reason
		}
		return out
	}

	best := qualified[0]
	for _, q := range qualified[1:] {
		if q.area < best.area {
			best = q
		}
	}
	out.Closed = true
	out.Reason = FailNone
	out.Boundary = best.pts
	out.Area = best.area
	out.SignedArea = signedArea2x(best.pts)
	return out
}

// nearestEligibleSegment finds the segment closest to the query among those
// whose endpoints both survive leaf stripping with effective degree >= 2.
// Dangling chains can never bound a face, so they are never a start edge.
func (g *Graph) nearestEligibleSegment(ox, oy float64) (int, bool) {
	bestID := -1
	bestD2 := math.Inf(1)
	for id, seg := range g.segments {
		if !g.allowed[seg.A] || !g.allowed[seg.B] {
			continue
		}
		if g.effDegree[seg.A] < 2 || g.effDegree[seg.B] < 2 {
			continue
		}
		a, b := g.nodes[seg.A], g.nodes[seg.B]
		_, _, _, d2 := pointSegmentNearest(ox, oy, a.X, a.Y, b.X, b.Y)
		if d2 < bestD2 {
			bestD2 = d2
			bestID = id
		}
	}
	if bestID < 0 || bestD2 > g.cfg.MaxStartDistance*g.cfg.MaxStartDistance {
		return -1, false
	}
	return bestID, true
}

// traceSide walks the half-edge graph from the directed start edge, always
// taking the flattest available turn on the locked side, until it arrives
// back on the start edge or a guard trips.
func (g *Graph) traceSide(startFrom, startTo, startSeg int, rule sideRule, ox, oy float64) sideTrace {
	startEdge := edgeKey{from: startFrom, to: startTo, seg: startSeg}

	visited := map[edgeKey]bool{startEdge: true}
	seenNodes := map[int]bool{startFrom: true, startTo: true}

	// Sliding window of recently visited nodes. Exact state repeats are
	// already fatal via the visited set, but parallel segments between a
	// handful of nodes can oscillate through fresh edge states; the node
	// window catches that before the step budget burns down.
	window := make([]int, 0, g.cfg.NoProgressWindow)

	points := []Point{g.nodes[startTo]}
	cur, prev := startTo, startFrom

	st := sideTrace{reason: FailDeadEnd}
	for {
		if st.steps >= g.cfg.StepLimit {
			st.reason = FailStepLimit
			st.unique = len(visited)
			return st
		}

		curPt := g.nodes[cur]
		prevPt := g.nodes[prev]
		vinx, viny, _ := normalizeWithLen(curPt.X-prevPt.X, curPt.Y-prevPt.Y)

		usable := g.edgeCandidates(cur, prev, vinx, viny, ox, oy, rule)
		if len(usable) == 0 {
			usable = g.gapCandidates(cur, prev, vinx, viny, ox, oy, rule, visited)
		}
		if len(usable) == 0 {
			st.reason = FailDeadEnd
			st.unique = len(visited)
			return st
		}
		if len(usable) > st.maxFan {
			st.maxFan = len(usable)
		}

		chosen := pickCandidate(usable)
		key := edgeKey{from: cur, to: chosen.next, seg: chosen.seg, virtual: chosen.virtual}

		if key == startEdge {
			if len(seenNodes) < 3 {
				// Back-and-forth over a dangling stub, not a face.
				st.reason = FailDeadEnd
				st.unique = len(visited)
				return st
			}
			st.closed = true
			st.reason = FailNone
			st.points = points
			st.steps++
			st.unique = len(visited)
			return st
		}
		if visited[key] {
			st.reason = FailPrematureCycle
			st.unique = len(visited)
			return st
		}
		visited[key] = true
		seenNodes[chosen.next] = true
		points = append(points, g.nodes[chosen.next])

		window = append(window, chosen.next)
		if len(window) > g.cfg.NoProgressWindow {
			window = window[1:]
		}
		if len(window) == g.cfg.NoProgressWindow && distinctNodes(window) <= g.cfg.NoProgressDistinct {
			st.reason = FailDeadEnd
			st.unique = len(visited)
			return st
		}

		prev, cur = cur, chosen.next
		st.steps++
	}
}

// edgeCandidates collects the usable outgoing half-edges at cur: the direct
// reverse is excluded, stripped or sub-degree-2 targets are excluded.
// Already-walked states stay in the pool; choosing one is the walk's own
// failure, detected by the caller as a premature cycle.
func (g *Graph) edgeCandidates(cur, prev int, vinx, viny, ox, oy float64, rule sideRule) []candidate {
	var usable []candidate
	curPt := g.nodes[cur]
	for _, heID := range g.outgoing[cur] {
		he := g.halfEdges[heID]
		next := he.to
		if next == prev {
			continue
		}
		if next >= len(g.allowed) || !g.allowed[next] || g.effDegree[next] <= 1 {
			continue
		}
		nextPt := g.nodes[next]
		voutx, vouty, voutLen := normalizeWithLen(nextPt.X-curPt.X, nextPt.Y-curPt.Y)
		if voutLen < 1e-6 {
			continue
		}
		turn := turnAngle(vinx, viny, voutx, vouty)
		midx := (curPt.X + nextPt.X) * 0.5
		midy := (curPt.Y + nextPt.Y) * 0.5
		usable = append(usable, candidate{
			next:    next,
			turn:    turn,
			absTurn: math.Abs(turn),
			heID:    heID,
			seg:     he.seg,
			length:  voutLen,
			midDist: math.Sqrt(distSq(ox, oy, midx, midy)),
			dist2:   voutLen * voutLen,
			onSide:  sideAccepts(rule, turn),
		})
	}
	return usable
}

// gapCandidates proposes virtual hops to nearby allowed nodes when the walk
// has no graph edge to follow. Only the nearest distance band within
// GapRadius is considered, so a walk jumps the smallest gap available.
func (g *Graph) gapCandidates(cur, prev int, vinx, viny, ox, oy float64, rule sideRule, visited map[edgeKey]bool) []candidate {
	curPt := g.nodes[cur]
	gapR2 := g.cfg.GapRadius * g.cfg.GapRadius

	var found []candidate
	bestD2 := math.Inf(1)
	for next := range g.nodes {
		if next == cur || next == prev {
			continue
		}
		if !g.allowed[next] || g.effDegree[next] < 2 {
			continue
		}
		nextPt := g.nodes[next]
		d2 := distSq(curPt.X, curPt.Y, nextPt.X, nextPt.Y)
		if d2 > gapR2 {
			continue
		}
		key := edgeKey{from: cur, to: next, seg: -1, virtual: true}
		if visited[key] {
			continue
		}
		voutx, vouty, voutLen := normalizeWithLen(nextPt.X-curPt.X, nextPt.Y-curPt.Y)
		if voutLen < 1e-6 {
			continue
		}
		if d2 < bestD2 {
			bestD2 = d2
		}
		turn := turnAngle(vinx, viny, voutx, vouty)
		midx := (curPt.X + nextPt.X) * 0.5
		midy := (curPt.Y + nextPt.Y) * 0.5
		found = append(found, candidate{
			next:    next,
			turn:    turn,
			absTurn: math.Abs(turn),
			virtual: true,
			heID:    -1,
			seg:     -1,
			length:  voutLen,
			midDist: math.Sqrt(distSq(ox, oy, midx, midy)),
			dist2:   d2,
			onSide:  sideAccepts(rule, turn),
		})
	}
	if len(found) == 0 || math.IsInf(bestD2, 1) {
		return nil
	}
	var band []candidate
	for _, c := range found {
		if c.dist2 <= bestD2+1e-3 {
			band = append(band, c)
		}
	}
	return band
}

func sideAccepts(rule sideRule, turn float64) bool {
	if rule == keepLeft {
		return turn > angEps
	}
	return turn < -angEps
}

// pickCandidate selects the flattest turn, preferring the locked side when
// any candidate lies on it. Ties break deterministically: real edge over
// virtual hop, shorter edge, midpoint closer to the query, lower node id,
// lower half-edge id.
func pickCandidate(cands []candidate) candidate {
	pool := cands[:0:0]
	for _, c := range cands {
		if c.onSide {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		pool = cands
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if candidateLess(c, best) {
			best = c
		}
	}
	return best
}

func candidateLess(a, b candidate) bool {
	if a.absTurn+1e-6 < b.absTurn {
		return true
	}
	if math.Abs(a.absTurn-b.absTurn) > 1e-6 {
		return false
	}
	if a.virtual != b.virtual {
		return !a.virtual
	}
	if a.length+1e-4 < b.length {
		return true
	}
	if math.Abs(a.length-b.length) > 1e-4 {
		return false
	}
	if a.midDist+1e-4 < b.midDist {
		return true
	}
	if math.Abs(a.midDist-b.midDist) > 1e-4 {
		return false
	}
	if a.next != b.next {
		return a.next < b.next
	}
	return a.heID < b.heID
}

func distinctNodes(window []int) int {
	seen := make(map[int]bool, len(window))
	for _, n := range window {
		seen[n] = true
	}
	return len(seen)
}
