package sketch

// commandKind identifies an atomic, undoable document mutation.
type commandKind int

const (
	cmdAddLines commandKind = iota // one or more lines added as a group
	cmdAddFill                     // one fill polygon appended
	cmdClear                       // line and fill lists emptied
	cmdTrim                        // overhang lines removed
)

// removedLine remembers a trimmed line together with the index it occupied,
// so undo can reinsert it in place.
type removedLine struct {
	index int
	line  Line
}

// command carries enough state to revert and re-apply one mutation.
// Multi-segment additions (frames, polylines) are a single command so that
// undo reverts the whole group in one step.
type command struct {
	kind      commandKind
	lines     []Line        // cmdAddLines: the appended group
	fill      FillPolygon   // cmdAddFill
	prevLines []Line        // cmdClear
	prevFills []FillPolygon // cmdClear
	removed   []removedLine // cmdTrim, ascending index order
}

// revert undoes the command against the document's line/fill lists.
// The caller rebuilds the graph afterwards.
func (c command) revert(d *Document) {
	switch c.kind {
	case cmdAddLines:
		d.lines = d.lines[:len(d.lines)-len(c.lines)]
	case cmdAddFill:
		d.fills = d.fills[:len(d.fills)-1]
	case cmdClear:
		d.lines = append(d.lines[:0], c.prevLines...)
		d.fills = append(d.fills[:0], c.prevFills...)
	case cmdTrim:
		for _, r := range c.removed {
			d.lines = append(d.lines, Line{})
			copy(d.lines[r.index+1:], d.lines[r.index:])
			d.lines[r.index] = r.line
		}
	}
}

// apply re-applies the command, used by redo.
func (c command) apply(d *Document) {
	switch c.kind {
	case cmdAddLines:
		d.lines = append(d.lines, c.lines...)
	case cmdAddFill:
		d.fills = append(d.fills, c.fill)
	case cmdClear:
		d.lines = d.lines[:0]
		d.fills = d.fills[:0]
	case cmdTrim:
		for i := len(c.removed) - 1; i >= 0; i-- {
			idx := c.removed[i].index
			d.lines = append(d.lines[:idx], d.lines[idx+1:]...)
		}
	}
}
