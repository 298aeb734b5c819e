// Package sketch provides a vector line-drawing surface with planar-graph
// flood fill.
//
// # Overview
//
// sketch maintains the planar graph induced by an incrementally drawn set
// of line segments: endpoints and crossings become deduplicated nodes,
// lines split into sub-segments at every intersection, and each node keeps
// its outgoing half-edges sorted by angle. On top of that graph it offers
// click-to-fill (tracing the innermost closed boundary around a point),
// overhang trimming (removing strokes that close nothing), and an undo
// history of atomic commands.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	doc := sketch.NewDocument()
//	doc.AddLine(0, 0, 100, 0)
//	doc.AddLine(100, 0, 50, 100)
//	doc.AddLine(50, 100, 0, 0)
//
//	res := doc.FillAt(50, 30, sketch.Hex("cc3344"))
//	if res.Closed {
//	    // res.Boundary holds the traced triangle
//	}
//
// # Robustness
//
// The face tracer is guarded rather than cancellable: a hard step limit,
// a sliding no-progress window, and exact repeat-state detection bound
// every walk, so a fill attempt always terminates even on degenerate or
// adversarial input. Failures are values (see [FailReason]), never panics.
//
// # Concurrency
//
// A Document is single-caller: operations are synchronous and must be
// serialized by the host. Independent documents are fully isolated.
//
// # Rendering
//
// The core is render-free. Hosts consume the Export* snapshots; see
// cmd/sketchdemo for a host that renders documents through gogpu/gg.
package sketch
