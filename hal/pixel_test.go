package hal

import (
	"image"
	"testing"
)

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("round trip %v = (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestMaskRoundKeepsInscribedCircle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	maskRound(img)

	if c := img.RGBAAt(0, 0); c.R != 0x10 {
		t.Fatalf("corner = %v, want masked", c)
	}
	if c := img.RGBAAt(10, 10); c.R != 0xFF {
		t.Fatalf("centre = %v, want untouched", c)
	}
	if c := img.RGBAAt(10, 0); c.R != 0xFF {
		t.Fatalf("top edge = %v, want untouched", c)
	}
}

func TestParseDisplayShape(t *testing.T) {
	tests := []struct {
		in   string
		want DisplayShape
		ok   bool
	}{
		{"rect", ShapeRect, true},
		{"", ShapeRect, true},
		{"round", ShapeRound, true},
		{"hex", ShapeRect, false},
	}
	for _, tt := range tests {
		got, ok := ParseDisplayShape(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDisplayShape(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
