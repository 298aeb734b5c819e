package sketch

import (
	"image/color"
	"math"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 || c.A != 1.0 {
		t.Errorf("RGB = %+v, want opaque (0.2, 0.4, 0.6)", c)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"ff0000", RGBA{1, 0, 0, 1}},
		{"#00ff00", RGBA{0, 1, 0, 1}},
		{"fff", RGBA{1, 1, 1, 1}},
		{"#000", RGBA{0, 0, 0, 1}},
		{"ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"747474", RGBA{0x74 / 255.0, 0x74 / 255.0, 0x74 / 255.0, 1}},
	}
	for _, tt := range tests {
		got := Hex(tt.hex)
		if math.Abs(got.R-tt.want.R) > 1e-9 ||
			math.Abs(got.G-tt.want.G) > 1e-9 ||
			math.Abs(got.B-tt.want.B) > 1e-9 ||
			math.Abs(got.A-tt.want.A) > 1e-9 {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestHexMalformed(t *testing.T) {
	gray := RGBA{0x74 / 255.0, 0x74 / 255.0, 0x74 / 255.0, 1}
	for _, s := range []string{"", "#", "12345", "zz"} {
		if got := Hex(s); got != gray {
			t.Errorf("Hex(%q) = %+v, want default gray", s, got)
		}
	}
}

func TestColorConversion(t *testing.T) {
	got := RGBA{1, 0.5, 0, 1}.Color()
	want := color.NRGBA{R: 255, G: 127, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestColorClamps(t *testing.T) {
	got := RGBA{2, -1, 0.5, 1}.Color()
	want := color.NRGBA{R: 255, G: 0, B: 127, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}
