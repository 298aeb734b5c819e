package sketch

import (
	"github.com/gogpu/sketch/internal/plane"
)

// FailReason classifies the outcome of a fill attempt. Every failure is an
// expected, recoverable result returned as a value; a failed fill simply
// adds no polygon.
type FailReason int

const (
	// FailNone marks a successful fill.
	FailNone = FailReason(plane.FailNone)
	// FailNoNearbyEdge: no eligible boundary segment within range.
	FailNoNearbyEdge = FailReason(plane.FailNoNearbyEdge)
	// FailStepLimit: the face walk exceeded its step budget.
	FailStepLimit = FailReason(plane.FailStepLimit)
	// FailDeadEnd: the walk stalled or oscillated without closing.
	FailDeadEnd = FailReason(plane.FailDeadEnd)
	// FailPrematureCycle: the walk revisited a state before closing.
	FailPrematureCycle = FailReason(plane.FailPrematureCycle)
	// FailNoValidFace: a walk closed, but no polygon passed validation.
	FailNoValidFace = FailReason(plane.FailNoValidFace)
)

func (r FailReason) String() string {
	return plane.FailReason(r).String()
}

// TraceResult is the outcome of one fill attempt. Boundary holds the face
// ring without a closing duplicate point. The counters aggregate the work
// of both walk directions, for observability.
type TraceResult struct {
	Closed       bool
	Reason       FailReason
	Boundary     []Point
	Area         float64
	SignedArea   float64
	Steps        int
	UniqueStates int
	MaxFanOut    int
}

// FillPolygon is a committed fill: the traced boundary plus its color.
// It persists in the document until cleared or undone.
type FillPolygon struct {
	Points []Point
	Color  RGBA
}

// Document is one independent drawing surface: the line list, the fills,
// the derived planar graph, and the undo history. Operations are
// synchronous and run to completion; a Document must not be used from
// multiple goroutines concurrently.
type Document struct {
	cfg         plane.Config
	fillColor   RGBA
	debugChecks bool

	lines []Line
	fills []FillPolygon
	graph *plane.Graph

	history []command
	redo    []command

	lastTrace  TraceResult
	lastOrigin Point
	hasTrace   bool
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	o := defaultDocumentOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Document{
		cfg:         o.cfg,
		fillColor:   o.fillColor,
		debugChecks: o.debugChecks,
	}
	d.rebuild()
	return d
}

// rebuild derives the planar graph from the current line list. Called after
// every mutation; the graph is never patched incrementally.
func (d *Document) rebuild() {
	pl := make([]plane.Line, len(d.lines))
	for i, l := range d.lines {
		pl[i] = plane.Line{X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2}
	}
	d.graph = plane.Build(pl, d.cfg)
	if d.debugChecks {
		if err := d.graph.Validate(); err != nil {
			panic("sketch: graph integrity violation: " + err.Error())
		}
	}
	Logger().Debug("graph rebuilt",
		"lines", len(d.lines),
		"nodes", d.graph.NodeCount(),
		"segments", d.graph.SegmentCount(),
	)
}

// push records a fresh mutation, which invalidates the redo stack.
func (d *Document) push(c command) {
	d.history = append(d.history, c)
	d.redo = d.redo[:0]
}

func validLine(l Line) bool {
	return l.Finite() && l.LengthSquared() > 1e-12
}

// AddLine appends one line and rebuilds the graph. It returns false, with
// no state change, when a coordinate is non-finite or the line has zero
// length.
func (d *Document) AddLine(x1, y1, x2, y2 float64) bool {
	l := Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
	if !validLine(l) {
		Logger().Warn("rejected line", "x1", x1, "y1", y1, "x2", x2, "y2", y2)
		return false
	}
	d.lines = append(d.lines, l)
	d.push(command{kind: cmdAddLines, lines: []Line{l}})
	d.rebuild()
	return true
}

// AddFrame appends the four edges of a quadrilateral frame, corners in
// order, as a single undoable group.
func (d *Document) AddFrame(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	group := []Line{
		{X1: x1, Y1: y1, X2: x2, Y2: y2},
		{X1: x2, Y1: y2, X2: x3, Y2: y3},
		{X1: x3, Y1: y3, X2: x4, Y2: y4},
		{X1: x4, Y1: y4, X2: x1, Y2: y1},
	}
	return d.addGroup(group)
}

// AddPolyline appends the n-1 segments of a polyline as a single undoable
// group. At least two points are required.
func (d *Document) AddPolyline(pts []Point) bool {
	if len(pts) < 2 {
		return false
	}
	group := make([]Line, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		group = append(group, Line{X1: pts[i].X, Y1: pts[i].Y, X2: pts[i+1].X, Y2: pts[i+1].Y})
	}
	return d.addGroup(group)
}

func (d *Document) addGroup(group []Line) bool {
	for _, l := range group {
		if !validLine(l) {
			Logger().Warn("rejected line group", "lines", len(group))
			return false
		}
	}
	d.lines = append(d.lines, group...)
	d.push(command{kind: cmdAddLines, lines: group})
	d.rebuild()
	return true
}

// FillAt traces the innermost closed face around (x, y) and, on success,
// appends a fill polygon in the given color. The result is returned either
// way and kept for the trace export.
func (d *Document) FillAt(x, y float64, c RGBA) TraceResult {
	if !Pt(x, y).Finite() {
		Logger().Warn("rejected fill point", "x", x, "y", y)
		return TraceResult{Reason: FailNoNearbyEdge}
	}
	res := fromPlaneResult(d.graph.TraceFace(x, y))
	d.lastTrace = res
	if len(res.Boundary) > 0 {
		d.lastTrace.Boundary = append([]Point(nil), res.Boundary...)
	}
	d.lastOrigin = Pt(x, y)
	d.hasTrace = true

	if res.Closed {
		// Committed fills own their points; the caller is free to mutate
		// the returned boundary.
		fill := FillPolygon{
			Points: append([]Point(nil), res.Boundary...),
			Color:  c,
		}
		d.fills = append(d.fills, fill)
		d.push(command{kind: cmdAddFill, fill: fill})
	}
	Logger().Debug("fill attempt",
		"x", x, "y", y,
		"closed", res.Closed,
		"reason", res.Reason.String(),
		"steps", res.Steps,
	)
	return res
}

// Fill is FillAt with the document's current fill color.
func (d *Document) Fill(x, y float64) TraceResult {
	return d.FillAt(x, y, d.fillColor)
}

// SetFillColor sets the color used by Fill.
func (d *Document) SetFillColor(c RGBA) {
	d.fillColor = c
}

// FillColor returns the current fill color.
func (d *Document) FillColor() RGBA {
	return d.fillColor
}

// Undo reverts the most recent command and rebuilds the graph. It returns
// false when the history is empty.
func (d *Document) Undo() bool {
	if len(d.history) == 0 {
		return false
	}
	c := d.history[len(d.history)-1]
	d.history = d.history[:len(d.history)-1]
	c.revert(d)
	d.redo = append(d.redo, c)
	d.rebuild()
	return true
}

// Redo re-applies the most recently undone command. The redo stack is
// cleared by any fresh mutation.
func (d *Document) Redo() bool {
	if len(d.redo) == 0 {
		return false
	}
	c := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	c.apply(d)
	d.history = append(d.history, c)
	d.rebuild()
	return true
}

// Clear removes all lines and fills as one undoable command. Clearing an
// already-empty document is a no-op.
func (d *Document) Clear() {
	if len(d.lines) == 0 && len(d.fills) == 0 {
		return
	}
	c := command{
		kind:      cmdClear,
		prevLines: append([]Line(nil), d.lines...),
		prevFills: append([]FillPolygon(nil), d.fills...),
	}
	d.lines = d.lines[:0]
	d.fills = d.fills[:0]
	d.push(c)
	d.rebuild()
}

// TrimOverhangs removes every line that is not part of any closed
// structure, determined by iterative 2-core leaf stripping of the segment
// graph. It returns the removed line indices (into the pre-trim list) and
// pushes a single undoable command. Trimming an already-trimmed document
// removes nothing.
func (d *Document) TrimOverhangs() []int {
	removed := d.graph.TrimmableLines()
	if len(removed) == 0 {
		return nil
	}
	c := command{kind: cmdTrim, removed: make([]removedLine, 0, len(removed))}
	for _, idx := range removed {
		c.removed = append(c.removed, removedLine{index: idx, line: d.lines[idx]})
	}
	for i := len(removed) - 1; i >= 0; i-- {
		idx := removed[i]
		d.lines = append(d.lines[:idx], d.lines[idx+1:]...)
	}
	d.push(c)
	d.rebuild()
	Logger().Debug("overhangs trimmed", "removed", len(removed), "kept", len(d.lines))
	return removed
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int { return len(d.lines) }

// FillCount returns the number of committed fills.
func (d *Document) FillCount() int { return len(d.fills) }

// Lines returns a copy of the current line list.
func (d *Document) Lines() []Line {
	return append([]Line(nil), d.lines...)
}

// Fills returns a copy of the current fill list.
func (d *Document) Fills() []FillPolygon {
	out := make([]FillPolygon, len(d.fills))
	for i, f := range d.fills {
		out[i] = FillPolygon{
			Points: append([]Point(nil), f.Points...),
			Color:  f.Color,
		}
	}
	return out
}

// NodeCount returns the node count of the derived graph.
func (d *Document) NodeCount() int { return d.graph.NodeCount() }

// EdgeCount returns the segment count of the derived graph.
func (d *Document) EdgeCount() int { return d.graph.SegmentCount() }

// ClosedComponents returns the component roots whose nodes all have even
// degree. Advisory signal only: a figure-eight qualifies without being a
// simple cycle, so this never gates fill validity or trimming.
func (d *Document) ClosedComponents() []int {
	return d.graph.ClosedComponents()
}

// LastTrace returns the result of the most recent fill attempt. The boundary
// is a copy; mutating it does not affect the stored trace.
func (d *Document) LastTrace() TraceResult {
	out := d.lastTrace
	if len(out.Boundary) > 0 {
		out.Boundary = append([]Point(nil), d.lastTrace.Boundary...)
	}
	return out
}

// SetDebugChecks toggles integrity validation after every rebuild.
// A violation panics; see WithDebugChecks.
func (d *Document) SetDebugChecks(on bool) {
	d.debugChecks = on
}

func fromPlaneResult(r plane.TraceResult) TraceResult {
	out := TraceResult{
		Closed:       r.Closed,
		Reason:       FailReason(r.Reason),
		Area:         r.Area,
		SignedArea:   r.SignedArea,
		Steps:        r.Steps,
		UniqueStates: r.UniqueStates,
		MaxFanOut:    r.MaxFanOut,
	}
	if len(r.Boundary) > 0 {
		out.Boundary = make([]Point, len(r.Boundary))
		for i, p := range r.Boundary {
			out.Boundary[i] = Point{X: p.X, Y: p.Y}
		}
	}
	return out
}
