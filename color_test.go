package pltrs

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"opaque red", Red, 65535, 0, 0, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"50% alpha red", Color{R: 1, A: 0.5}, 32768, 0, 0, 32768},
		{"out of range clamps", Color{R: 2, G: -1, B: 0, A: 1}, 65535, 0, 0, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"f008", color.NRGBA{255, 0, 0, 136}},
		{"#1a334d", color.NRGBA{0x1a, 0x33, 0x4d, 255}},
		{"1A334D80", color.NRGBA{0x1a, 0x33, 0x4d, 0x80}},
		{"zz", color.NRGBA{0, 0, 0, 255}},
		{"", color.NRGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).NRGBA(); got != tt.want {
				t.Errorf("Hex(%q).NRGBA() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	if got := FromColor(in).NRGBA(); got != in {
		t.Errorf("FromColor(%v).NRGBA() = %v", in, got)
	}
}

func TestColor_Premultiply(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.Premultiply()
	want := [4]float32{0.5, 0.25, 0, 0.5}
	if got != want {
		t.Errorf("Premultiply() = %v, want %v", got, want)
	}
}

func TestColor_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if got != (Color{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Black.Lerp(White, 0.5) = %v", got)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
