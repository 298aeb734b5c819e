package plane

import (
	"math"
	"testing"
)

func TestPointSegmentNearest(t *testing.T) {
	tests := []struct {
		name           string
		px, py         float64
		wantT          float64
		wantQx, wantQy float64
	}{
		{"projects onto interior", 5, 3, 0.5, 5, 0},
		{"clamps before start", -4, 1, 0, 0, 0},
		{"clamps past end", 14, 1, 1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tv, qx, qy, _ := pointSegmentNearest(tt.px, tt.py, 0, 0, 10, 0)
			if math.Abs(tv-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", tv, tt.wantT)
			}
			if math.Abs(qx-tt.wantQx) > 1e-9 || math.Abs(qy-tt.wantQy) > 1e-9 {
				t.Errorf("nearest = (%v, %v), want (%v, %v)", qx, qy, tt.wantQx, tt.wantQy)
			}
		})
	}
}

func TestTurnAngle(t *testing.T) {
	tests := []struct {
		name                     string
		vinx, viny, voutx, vouty float64
		want                     float64
	}{
		{"straight ahead", 1, 0, 1, 0, 0},
		{"left turn", 1, 0, 0, 1, math.Pi / 2},
		{"right turn", 1, 0, 0, -1, -math.Pi / 2},
		{"reversal", 1, 0, -1, 0, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := turnAngle(tt.vinx, tt.viny, tt.voutx, tt.vouty)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("turnAngle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignedArea2x(t *testing.T) {
	ccw := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if got := signedArea2x(ccw); math.Abs(got-200) > 1e-9 {
		t.Errorf("CCW square area2x = %v, want 200", got)
	}
	cw := []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	if got := signedArea2x(cw); math.Abs(got+200) > 1e-9 {
		t.Errorf("CW square area2x = %v, want -200", got)
	}
	if got := signedArea2x([]Point{{0, 0}, {1, 1}}); got != 0 {
		t.Errorf("degenerate ring area2x = %v, want 0", got)
	}
}

func TestPointInPolyEvenOdd(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	if !pointInPolyEvenOdd(5, 5, square) {
		t.Error("center should be inside")
	}
	if pointInPolyEvenOdd(15, 5, square) {
		t.Error("point right of the square should be outside")
	}
	if pointInPolyEvenOdd(10, 10, square) {
		t.Error("vertex should count as outside")
	}
}

func TestIsSimpleRing(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !isSimpleRing(square) {
		t.Error("square should be simple")
	}

	bowtie := []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}
	if isSimpleRing(bowtie) {
		t.Error("bowtie should not be simple")
	}

	triangle := []Point{{0, 0}, {10, 0}, {5, 10}}
	if !isSimpleRing(triangle) {
		t.Error("triangle should be simple")
	}
}
