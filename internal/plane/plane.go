// Package plane builds and queries the planar graph induced by a set of
// drawn line segments: nodes at deduplicated endpoints and crossings,
// maximal sub-segments between consecutive break points, angle-sorted
// half-edge adjacency, an incremental closed-component tracker, a guarded
// face tracer for flood fill, and a 2-core overhang trimmer.
package plane

// Config carries the numeric policy shared by construction and query.
// The guard thresholds are tunables, not correctness guarantees; hosts on
// constrained budgets may lower them.
type Config struct {
	// SnapEpsilon is the grid cell size for node deduplication. Points
	// closer than this along each axis collapse to one node.
	SnapEpsilon float64

	// StepLimit aborts a face walk after this many steps.
	StepLimit int

	// NoProgressWindow is the length of the sliding window of recent
	// walk states inspected for oscillation.
	NoProgressWindow int

	// NoProgressDistinct aborts the walk when the full window holds at
	// most this many distinct states.
	NoProgressDistinct int

	// GapRadius is the maximum length of a virtual bridging hop taken
	// when a walk reaches a node with no usable outgoing edge.
	GapRadius float64

	// MinArea rejects traced faces with absolute area at or below this.
	MinArea float64

	// MaxStartDistance fails a trace whose query point is farther than
	// this from every eligible boundary segment.
	MaxStartDistance float64
}

// DefaultConfig returns the interactive-scale defaults.
func DefaultConfig() Config {
	return Config{
		SnapEpsilon:        0.25,
		StepLimit:          20000,
		NoProgressWindow:   12,
		NoProgressDistinct: 3,
		GapRadius:          12,
		MinArea:            50,
		MaxStartDistance:   512,
	}
}

// withDefaults fills zero-valued fields so that a partially populated
// Config stays usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SnapEpsilon <= 0 {
		c.SnapEpsilon = d.SnapEpsilon
	}
	if c.StepLimit <= 0 {
		c.StepLimit = d.StepLimit
	}
	if c.NoProgressWindow <= 0 {
		c.NoProgressWindow = d.NoProgressWindow
	}
	if c.NoProgressDistinct <= 0 {
		c.NoProgressDistinct = d.NoProgressDistinct
	}
	if c.GapRadius <= 0 {
		c.GapRadius = d.GapRadius
	}
	if c.MinArea <= 0 {
		c.MinArea = d.MinArea
	}
	if c.MaxStartDistance <= 0 {
		c.MaxStartDistance = d.MaxStartDistance
	}
	return c
}
