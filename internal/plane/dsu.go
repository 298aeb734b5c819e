package plane

import "fmt"

// Store is an incremental union-find over graph nodes, augmented with a
// per-component count of odd-degree nodes. A component whose odd count is
// zero has an Eulerian circuit through all of its edges, which is the cheap
// "closed" signal used to pre-filter fill candidates.
//
// The signal is advisory only: an all-even component need not be a single
// simple cycle (a figure-eight passes), so callers must never use it as a
// correctness gate. The face tracer enforces closedness independently.
type Store struct {
	parent   []int
	size     []int
	oddCount []int
	degree   []int
}

// NewStore returns an empty tracker.
func NewStore() *Store {
	return &Store{}
}

// MakeSet allocates a new singleton component and returns its node id.
func (s *Store) MakeSet() int {
	id := len(s.parent)
	s.parent = append(s.parent, id)
	s.size = append(s.size, 1)
	s.oddCount = append(s.oddCount, 0)
	s.degree = append(s.degree, 0)
	return id
}

// Len returns the number of nodes tracked.
func (s *Store) Len() int {
	return len(s.parent)
}

// Find returns the component root of x, compressing the path.
func (s *Store) Find(x int) int {
	if x < 0 || x >= len(s.parent) {
		return x
	}
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}
	return root
}

func (s *Store) union(x, y int) {
	rx := s.Find(x)
	ry := s.Find(y)
	if rx == ry {
		return
	}
	small, large := rx, ry
	if s.size[small] > s.size[large] {
		small, large = large, small
	}
	s.parent[small] = large
	s.size[large] += s.size[small]
	s.oddCount[large] += s.oddCount[small]
}

func (s *Store) bumpParity(node, delta int) {
	old := s.degree[node] % 2
	s.degree[node] += delta
	if s.degree[node] < 0 {
		s.degree[node] = 0
	}
	now := s.degree[node] % 2
	root := s.Find(node)
	if old == 0 && now == 1 {
		s.oddCount[root]++
	} else if old == 1 && now == 0 && s.oddCount[root] > 0 {
		s.oddCount[root]--
	}
}

// InsertEdge records an edge between a and b: degrees and odd-parity
// counters are updated, then the two components are merged.
func (s *Store) InsertEdge(a, b int) {
	s.bumpParity(a, 1)
	if a != b {
		s.bumpParity(b, 1)
		s.union(a, b)
	} else {
		// Self-loop: the second endpoint lands on the same node.
		s.bumpParity(a, 1)
	}
}

// RemoveEdge reverses the degree and parity bookkeeping of InsertEdge.
// Component membership is NOT split; the merge is irreversible until the
// next full rebuild, so connectivity stays conservative after removals.
func (s *Store) RemoveEdge(a, b int) {
	s.bumpParity(a, -1)
	if a != b {
		s.bumpParity(b, -1)
	} else {
		s.bumpParity(a, -1)
	}
}

// OddCount returns the odd-degree node count of x's component.
func (s *Store) OddCount(x int) int {
	return s.oddCount[s.Find(x)]
}

// ComponentSize returns the node count of x's component.
func (s *Store) ComponentSize(x int) int {
	return s.size[s.Find(x)]
}

// ClosedComponents returns the roots of components with at least one edge
// and zero odd-degree nodes.
func (s *Store) ClosedComponents() []int {
	var roots []int
	for i := range s.parent {
		if s.parent[i] != i {
			continue
		}
		if s.oddCount[i] == 0 && s.size[i] > 1 {
			roots = append(roots, i)
		}
	}
	return roots
}

// Validate checks structural invariants: root parents are self-referential,
// root sizes are positive, and tracked odd counts match a fresh recount.
func (s *Store) Validate() error {
	actualOdd := make(map[int]int)
	for node := range s.parent {
		root := s.Find(node)
		if root < 0 || root >= len(s.parent) {
			return fmt.Errorf("plane: dsu find(%d) returned invalid root %d", node, root)
		}
		if s.parent[root] != root {
			return fmt.Errorf("plane: dsu root %d has parent %d", root, s.parent[root])
		}
		if s.size[root] <= 0 {
			return fmt.Errorf("plane: dsu root %d has size %d", root, s.size[root])
		}
		if s.degree[node]%2 == 1 {
			actualOdd[root]++
		}
	}
	for root := range s.parent {
		if s.parent[root] != root {
			continue
		}
		if got, want := s.oddCount[root], actualOdd[root]; got != want {
			return fmt.Errorf("plane: component %d odd count mismatch: tracked=%d actual=%d", root, got, want)
		}
	}
	return nil
}
