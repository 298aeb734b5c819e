package plane

import (
	"fmt"
	"math"
	"slices"
)

// Segment is a maximal sub-segment of one drawn line between two
// consecutive break points.
type Segment struct {
	A, B int // node ids
	Line int // owning line index
}

// halfEdge is one directed traversal handle of a segment. Two exist per
// segment, one per direction.
type halfEdge struct {
	from, to int
	seg      int
}

// Graph is the planar graph derived from the current line list. It is
// rebuilt from scratch on every document mutation; only the embedded Store
// is populated incrementally during the build pass.
type Graph struct {
	cfg Config

	nodes     []Point
	segments  []Segment
	halfEdges []halfEdge
	outgoing  [][]int // node -> half-edge ids, sorted CCW by angle
	nodeSegs  [][]int // node -> incident segment ids (undirected)

	degree    []int
	allowed   []bool // false once leaf-stripped
	effDegree []int  // degree after iterative leaf stripping

	crossings []int   // intersection node ids, sorted
	lineSegs  [][]int // line index -> segment ids produced from it

	store *Store
	audit [][]int // groups of node ids sharing a snapped cell key
}

// Build constructs the full planar graph for the given lines.
func Build(lines []Line, cfg Config) *Graph {
	cfg = cfg.withDefaults()
	g := &Graph{cfg: cfg, store: NewStore()}

	if len(lines) == 0 {
		return g
	}

	reg := newRegistry(cfg.SnapEpsilon)
	perLine, crossings := collectBreakPoints(lines, reg)
	g.nodes = reg.coords
	g.crossings = crossings
	g.lineSegs = make([][]int, len(lines))

	for i := 0; i < reg.len(); i++ {
		g.store.MakeSet()
	}

	// Emit segments between consecutive break points on each line.
	for lineIdx, bps := range perLine {
		slices.SortFunc(bps, func(a, b breakPoint) int {
			switch {
			case a.t < b.t:
				return -1
			case a.t > b.t:
				return 1
			default:
				return 0
			}
		})

		// Collapse runs of identical node ids (endpoint-snapped hits).
		compact := bps[:0]
		for _, bp := range bps {
			if len(compact) == 0 || compact[len(compact)-1].node != bp.node {
				compact = append(compact, bp)
			}
		}

		for k := 0; k+1 < len(compact); k++ {
			a, b := compact[k].node, compact[k+1].node
			if a == b {
				continue
			}
			segID := len(g.segments)
			g.segments = append(g.segments, Segment{A: a, B: b, Line: lineIdx})
			g.lineSegs[lineIdx] = append(g.lineSegs[lineIdx], segID)
			g.store.InsertEdge(a, b)
		}
	}

	g.buildAdjacency()
	g.stripLeaves()
	g.buildAudit(reg)
	return g
}

// buildAdjacency creates the two half-edges per segment, the undirected
// incidence lists, and the per-node outgoing lists sorted by polar angle.
func (g *Graph) buildAdjacency() {
	n := len(g.nodes)
	g.outgoing = make([][]int, n)
	g.nodeSegs = make([][]int, n)
	g.degree = make([]int, n)

	for segID, seg := range g.segments {
		g.halfEdges = append(g.halfEdges,
			halfEdge{from: seg.A, to: seg.B, seg: segID},
			halfEdge{from: seg.B, to: seg.A, seg: segID},
		)
		g.nodeSegs[seg.A] = append(g.nodeSegs[seg.A], segID)
		g.nodeSegs[seg.B] = append(g.nodeSegs[seg.B], segID)
		g.degree[seg.A]++
		g.degree[seg.B]++
	}
	for heID, he := range g.halfEdges {
		g.outgoing[he.from] = append(g.outgoing[he.from], heID)
	}

	for node := range g.outgoing {
		origin := g.nodes[node]
		slices.SortFunc(g.outgoing[node], func(h1, h2 int) int {
			a1 := g.halfEdgeAngle(origin, h1)
			a2 := g.halfEdgeAngle(origin, h2)
			switch {
			case a1 < a2:
				return -1
			case a1 > a2:
				return 1
			default:
				// Collinear pair: keep ordering deterministic by id.
				return h1 - h2
			}
		})
	}
}

func (g *Graph) halfEdgeAngle(origin Point, heID int) float64 {
	to := g.nodes[g.halfEdges[heID].to]
	return math.Atan2(to.Y-origin.Y, to.X-origin.X)
}

// stripLeaves iteratively disallows nodes whose effective degree drops to
// one or below. The tracer consults the result so that walks never wander
// into dangling chains.
func (g *Graph) stripLeaves() {
	n := len(g.nodes)
	g.allowed = make([]bool, n)
	g.effDegree = make([]int, n)
	for i := range g.allowed {
		g.allowed[i] = true
		g.effDegree[i] = g.degree[i]
	}

	var queue []int
	for i, d := range g.effDegree {
		if d <= 1 {
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		node := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !g.allowed[node] {
			continue
		}
		g.allowed[node] = false
		for _, heID := range g.outgoing[node] {
			nb := g.halfEdges[heID].to
			if g.effDegree[nb] > 0 {
				g.effDegree[nb]--
				if g.effDegree[nb] <= 1 {
					queue = append(queue, nb)
				}
			}
		}
	}
}

// buildAudit records groups of nodes that land in the same coarse grid
// cell without having been merged by the registry. Such near-duplicates are
// the usual culprit when degree counts look wrong, so the report is exported
// for debug overlays. The audit grid is 8x the dedup grid.
func (g *Graph) buildAudit(reg *registry) {
	coarse := newRegistry(reg.eps * 8)
	byCell := make(map[cellKey][]int)
	for id, p := range g.nodes {
		key := coarse.keyFor(p.X, p.Y)
		byCell[key] = append(byCell[key], id)
	}
	for _, ids := range byCell {
		if len(ids) > 1 {
			slices.Sort(ids)
			g.audit = append(g.audit, ids)
		}
	}
	slices.SortFunc(g.audit, func(a, b []int) int { return a[0] - b[0] })
}

// NodeCount returns the number of deduplicated nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// SegmentCount returns the number of maximal sub-segments.
func (g *Graph) SegmentCount() int { return len(g.segments) }

// Node returns the coordinates of node id.
func (g *Graph) Node(id int) Point { return g.nodes[id] }

// Segments returns the segment table. Callers must not mutate it.
func (g *Graph) Segments() []Segment { return g.segments }

// Degree returns the undirected degree of node id.
func (g *Graph) Degree(id int) int { return g.degree[id] }

// Crossings returns the sorted intersection node ids.
func (g *Graph) Crossings() []int { return g.crossings }

// AuditGroups returns groups of node ids that share a snapped cell key.
func (g *Graph) AuditGroups() [][]int { return g.audit }

// ClosedComponents returns the component roots whose odd-degree count is
// zero. Advisory pre-filter only; see Store.
func (g *Graph) ClosedComponents() []int { return g.store.ClosedComponents() }

// Store exposes the incremental closed-component tracker.
func (g *Graph) Store() *Store { return g.store }

// Validate checks structural invariants: finite coordinates, index validity
// of segments, half-edges and outgoing lists, non-degenerate segments, and
// the Store's union-find and parity bookkeeping.
func (g *Graph) Validate() error {
	for id, p := range g.nodes {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("plane: node %d has non-finite coordinates (%v, %v)", id, p.X, p.Y)
		}
	}
	for id, seg := range g.segments {
		if seg.A < 0 || seg.A >= len(g.nodes) || seg.B < 0 || seg.B >= len(g.nodes) {
			return fmt.Errorf("plane: segment %d references invalid node (%d, %d)", id, seg.A, seg.B)
		}
		if seg.A == seg.B {
			return fmt.Errorf("plane: segment %d is degenerate at node %d", id, seg.A)
		}
	}
	for id, he := range g.halfEdges {
		if he.from < 0 || he.from >= len(g.nodes) || he.to < 0 || he.to >= len(g.nodes) {
			return fmt.Errorf("plane: half-edge %d references invalid node", id)
		}
		if he.seg < 0 || he.seg >= len(g.segments) {
			return fmt.Errorf("plane: half-edge %d references invalid segment %d", id, he.seg)
		}
	}
	for node, list := range g.outgoing {
		for _, heID := range list {
			if heID < 0 || heID >= len(g.halfEdges) {
				return fmt.Errorf("plane: node %d outgoing list references invalid half-edge %d", node, heID)
			}
			if g.halfEdges[heID].from != node {
				return fmt.Errorf("plane: node %d outgoing list holds half-edge %d from node %d", node, heID, g.halfEdges[heID].from)
			}
		}
	}
	if g.store != nil {
		return g.store.Validate()
	}
	return nil
}
