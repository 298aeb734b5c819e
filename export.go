package sketch

// Flat numeric export buffers for the host's rendering and debug overlays.
// Each call returns a fresh snapshot reflecting the state as of the last
// mutating call; the buffers impose no behavioral contract beyond that.

// Trace export point kinds.
const (
	traceKindOrigin  = 0.0
	traceKindStart   = 2.0
	traceKindChain   = 3.0
	traceKindClosure = 9.0
)

// ExportLines returns the line endpoints as x1, y1, x2, y2 per line.
func (d *Document) ExportLines() []float64 {
	buf := make([]float64, 0, len(d.lines)*4)
	for _, l := range d.lines {
		buf = append(buf, l.X1, l.Y1, l.X2, l.Y2)
	}
	return buf
}

// ExportFills returns, per fill polygon: point count, r, g, b, a, then the
// boundary points as x, y pairs.
func (d *Document) ExportFills() []float64 {
	var buf []float64
	for _, f := range d.fills {
		buf = append(buf, float64(len(f.Points)), f.Color.R, f.Color.G, f.Color.B, f.Color.A)
		for _, p := range f.Points {
			buf = append(buf, p.X, p.Y)
		}
	}
	return buf
}

// ExportIntersections returns the intersection point count followed by the
// points as x, y pairs, ordered by node id for determinism.
func (d *Document) ExportIntersections() []float64 {
	crossings := d.graph.Crossings()
	buf := make([]float64, 0, 1+len(crossings)*2)
	buf = append(buf, float64(len(crossings)))
	for _, id := range crossings {
		p := d.graph.Node(id)
		buf = append(buf, p.X, p.Y)
	}
	return buf
}

// ExportGraph returns the debug view of the derived graph: the segment
// count followed by ax, ay, bx, by, id per segment, then the node count
// followed by x, y, id per node.
func (d *Document) ExportGraph() []float64 {
	segs := d.graph.Segments()
	var buf []float64
	buf = append(buf, float64(len(segs)))
	for id, seg := range segs {
		a := d.graph.Node(seg.A)
		b := d.graph.Node(seg.B)
		buf = append(buf, a.X, a.Y, b.X, b.Y, float64(id))
	}
	buf = append(buf, float64(d.graph.NodeCount()))
	for id := 0; id < d.graph.NodeCount(); id++ {
		p := d.graph.Node(id)
		buf = append(buf, p.X, p.Y, float64(id))
	}
	return buf
}

// ExportTrace returns the last fill attempt as a point count followed by
// x, y, kind triples: the query origin, the start node, the walked chain,
// and a closure marker repeating the start node on success.
func (d *Document) ExportTrace() []float64 {
	if !d.hasTrace {
		return []float64{0}
	}
	var pts []float64
	pts = append(pts, d.lastOrigin.X, d.lastOrigin.Y, traceKindOrigin)
	if d.lastTrace.Closed && len(d.lastTrace.Boundary) > 0 {
		first := d.lastTrace.Boundary[0]
		pts = append(pts, first.X, first.Y, traceKindStart)
		for _, p := range d.lastTrace.Boundary[1:] {
			pts = append(pts, p.X, p.Y, traceKindChain)
		}
		pts = append(pts, first.X, first.Y, traceKindClosure)
	}
	buf := make([]float64, 0, 1+len(pts))
	buf = append(buf, float64(len(pts)/3))
	return append(buf, pts...)
}

// NodeAudit returns the duplicate-key report: the group count, then per
// group the node count followed by id, x, y per node. A non-empty report
// means distinct nodes landed within the coarse snap grid of each other,
// the usual suspect when degree counts misbehave.
func (d *Document) NodeAudit() []float64 {
	groups := d.graph.AuditGroups()
	buf := []float64{float64(len(groups))}
	for _, ids := range groups {
		buf = append(buf, float64(len(ids)))
		for _, id := range ids {
			p := d.graph.Node(id)
			buf = append(buf, float64(id), p.X, p.Y)
		}
	}
	return buf
}
