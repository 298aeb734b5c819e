package plane

import "math"

// cellKey is a snapped grid coordinate used for node deduplication.
// Two points whose coordinates fall in the same SnapEpsilon-sized cell
// collapse to a single node id.
type cellKey struct {
	X, Y int64
}

// registry quantizes floating coordinates into stable node identities.
// It is append-only within one graph build; a rebuild starts fresh.
type registry struct {
	eps    float64
	byCell map[cellKey]int
	coords []Point
}

func newRegistry(eps float64) *registry {
	return &registry{
		eps:    eps,
		byCell: make(map[cellKey]int),
	}
}

func (r *registry) keyFor(x, y float64) cellKey {
	return cellKey{
		X: int64(math.Floor(x / r.eps)),
		Y: int64(math.Floor(y / r.eps)),
	}
}

// getOrInsert returns the node id for (x, y), allocating a new one if no
// point has been seen in the same grid cell. The first point to claim a
// cell defines the node's coordinates.
func (r *registry) getOrInsert(x, y float64) int {
	key := r.keyFor(x, y)
	if id, ok := r.byCell[key]; ok {
		return id
	}
	id := len(r.coords)
	r.coords = append(r.coords, Point{X: x, Y: y})
	r.byCell[key] = id
	return id
}

func (r *registry) len() int {
	return len(r.coords)
}
