package plane

// peelSegments runs the classic 2-core reduction over the segment graph:
// nodes of degree <= 1 are removed together with their incident segment,
// repeatedly, until every remaining node has degree >= 2. It returns the
// per-segment deletion marks.
func (g *Graph) peelSegments() []bool {
	degree := make([]int, len(g.nodes))
	for _, seg := range g.segments {
		degree[seg.A]++
		degree[seg.B]++
	}

	deleted := make([]bool, len(g.segments))

	var queue []int
	for node, d := range degree {
		if d <= 1 {
			queue = append(queue, node)
		}
	}
	for len(queue) > 0 {
		node := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if degree[node] != 1 {
			// Already isolated, or re-queued after gaining no edge.
			continue
		}
		for _, segID := range g.nodeSegs[node] {
			if deleted[segID] {
				continue
			}
			seg := g.segments[segID]
			other := seg.A
			if other == node {
				other = seg.B
			}
			deleted[segID] = true
			degree[node] = 0
			if degree[other] > 0 {
				degree[other]--
				if degree[other] <= 1 {
					queue = append(queue, other)
				}
			}
			break
		}
	}
	return deleted
}

// TrimmableLines returns the indices of lines that are not part of any
// closed structure: every sub-segment the line contributed was stripped by
// the 2-core peel. This is a structural degree-based guarantee, independent
// of the advisory odd-parity component filter, which makes it safe to feed
// destructive cleanup. Lines that produced no segments at all (shorter than
// the snap grid) are trimmable as well.
func (g *Graph) TrimmableLines() []int {
	if len(g.lineSegs) == 0 {
		return nil
	}
	deleted := g.peelSegments()

	var removed []int
	for lineIdx, segIDs := range g.lineSegs {
		kept := false
		for _, segID := range segIDs {
			if !deleted[segID] {
				kept = true
				break
			}
		}
		if !kept {
			removed = append(removed, lineIdx)
		}
	}
	return removed
}
