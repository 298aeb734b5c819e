package sketch

import "github.com/gogpu/sketch/internal/plane"

// Option configures a Document during creation.
// Use functional options to customize Document behavior.
//
// Example:
//
//	// Defaults tuned for interactive canvas scale
//	doc := sketch.NewDocument()
//
//	// Constrained host: tighter walk budget
//	doc := sketch.NewDocument(sketch.WithStepLimit(2048))
type Option func(*documentOptions)

// documentOptions holds optional configuration for Document creation.
type documentOptions struct {
	cfg         plane.Config
	fillColor   RGBA
	debugChecks bool
}

func defaultDocumentOptions() documentOptions {
	return documentOptions{
		cfg:       plane.DefaultConfig(),
		fillColor: DefaultFillColor,
	}
}

// WithSnapEpsilon sets the grid cell size used to collapse near-coincident
// points into one node. Construction and query share this tolerance.
func WithSnapEpsilon(eps float64) Option {
	return func(o *documentOptions) {
		if eps > 0 {
			o.cfg.SnapEpsilon = eps
		}
	}
}

// WithStepLimit bounds the number of steps a single face walk may take.
// The limit is a tunable safety net, not a correctness guarantee; lower it
// on constrained hosts.
func WithStepLimit(n int) Option {
	return func(o *documentOptions) {
		if n > 0 {
			o.cfg.StepLimit = n
		}
	}
}

// WithNoProgressGuard sets the sliding-window oscillation guard: a walk
// aborts when the last window visited nodes contain at most distinct
// different ones.
func WithNoProgressGuard(window, distinct int) Option {
	return func(o *documentOptions) {
		if window > 0 {
			o.cfg.NoProgressWindow = window
		}
		if distinct > 0 {
			o.cfg.NoProgressDistinct = distinct
		}
	}
}

// WithGapRadius sets the maximum length of a virtual bridging hop taken
// when a face walk reaches a node with no usable outgoing edge.
func WithGapRadius(r float64) Option {
	return func(o *documentOptions) {
		if r > 0 {
			o.cfg.GapRadius = r
		}
	}
}

// WithMinFillArea rejects traced faces at or below the given absolute area.
// Guards against degenerate slivers being filled.
func WithMinFillArea(area float64) Option {
	return func(o *documentOptions) {
		if area > 0 {
			o.cfg.MinArea = area
		}
	}
}

// WithMaxStartDistance fails a fill whose query point is farther than this
// from every eligible boundary segment.
func WithMaxStartDistance(d float64) Option {
	return func(o *documentOptions) {
		if d > 0 {
			o.cfg.MaxStartDistance = d
		}
	}
}

// WithFillColor sets the initial fill color.
func WithFillColor(c RGBA) Option {
	return func(o *documentOptions) {
		o.fillColor = c
	}
}

// WithDebugChecks enables integrity validation after every rebuild. A
// violation panics: it signals a programming error, never bad user input.
// Intended for tests and diagnostic builds.
func WithDebugChecks() Option {
	return func(o *documentOptions) {
		o.debugChecks = true
	}
}
