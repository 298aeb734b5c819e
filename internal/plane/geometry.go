package plane

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Line is a raw drawn segment, addressed by its index in the document list.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func distSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// pointSegmentNearest projects p onto segment ab and returns the clamped
// parameter, the nearest point, and the squared distance to it.
func pointSegmentNearest(px, py, ax, ay, bx, by float64) (t, qx, qy, d2 float64) {
	abx := bx - ax
	aby := by - ay
	ab2 := abx*abx + aby*aby
	if ab2 < 1e-12 {
		return 0, ax, ay, distSq(px, py, ax, ay)
	}
	t = ((px-ax)*abx + (py-ay)*aby) / ab2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	qx = ax + t*abx
	qy = ay + t*aby
	return t, qx, qy, distSq(px, py, qx, qy)
}

// normalizeWithLen returns the unit direction and length of (dx, dy).
// Zero vectors yield a zero direction and zero length.
func normalizeWithLen(dx, dy float64) (ux, uy, length float64) {
	l2 := dx*dx + dy*dy
	if l2 < 1e-24 {
		return 0, 0, 0
	}
	length = math.Sqrt(l2)
	return dx / length, dy / length, length
}

// turnAngle returns the signed angle from the incoming direction to the
// outgoing direction, in (-pi, pi]. Positive is a counter-clockwise turn.
func turnAngle(vinx, viny, voutx, vouty float64) float64 {
	dot := vinx*voutx + viny*vouty
	crs := vinx*vouty - viny*voutx
	return math.Atan2(crs, dot)
}

// signedArea2x returns twice the signed area of the polygon ring.
// Positive for counter-clockwise winding.
func signedArea2x(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	area := 0.0
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return area
}

// pointInPolyEvenOdd reports whether (px, py) is strictly inside the ring
// under the even-odd rule. Points on or very near a vertex count as outside.
func pointInPolyEvenOdd(px, py float64, pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	const hitSlop = 1e-6
	crossings := 0
	j := len(pts) - 1
	for i := range pts {
		x0, y0 := pts[j].X, pts[j].Y
		x1, y1 := pts[i].X, pts[i].Y
		if math.Abs(x1-px) < hitSlop && math.Abs(y1-py) < hitSlop {
			return false
		}
		if (y0 > py) != (y1 > py) {
			xInt := (x1-x0)*(py-y0)/(y1-y0) + x0
			if px < xInt {
				crossings++
			}
		}
		j = i
	}
	return crossings%2 == 1
}

// isSimpleRing reports whether the polygon ring has no proper
// self-intersection between non-adjacent edges. O(n^2) pair test.
func isSimpleRing(pts []Point) bool {
	n := len(pts)
	if n < 4 {
		return true
	}
	for i := 0; i < n; i++ {
		a0 := pts[i]
		a1 := pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges sharing a vertex with edge i.
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b0 := pts[j]
			b1 := pts[(j+1)%n]
			if segmentsCrossProperly(a0, a1, b0, b1) {
				return false
			}
		}
	}
	return true
}

// segmentsCrossProperly reports whether the open segments a0a1 and b0b1
// intersect at a single interior point of both.
func segmentsCrossProperly(a0, a1, b0, b1 Point) bool {
	const eps = 1e-9
	d1 := cross(a1.X-a0.X, a1.Y-a0.Y, b0.X-a0.X, b0.Y-a0.Y)
	d2 := cross(a1.X-a0.X, a1.Y-a0.Y, b1.X-a0.X, b1.Y-a0.Y)
	d3 := cross(b1.X-b0.X, b1.Y-b0.Y, a0.X-b0.X, a0.Y-b0.Y)
	d4 := cross(b1.X-b0.X, b1.Y-b0.Y, a1.X-b0.X, a1.Y-b0.Y)
	return ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps))
}
