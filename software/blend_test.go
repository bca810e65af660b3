package software

import (
	"math"
	"testing"

	"github.com/gogpu/orrery"
)

const colorEps = 1e-6

func rgbaNear(a, b orrery.RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.A-b.A) <= eps
}

func TestBlendPixel(t *testing.T) {
	red := orrery.RGBA{R: 1, A: 1}
	halfGreen := orrery.RGBA{G: 1, A: 0.5}
	gray := orrery.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}

	tests := []struct {
		name string
		mode orrery.BlendMode
		dst  orrery.RGBA
		src  orrery.RGBA
		want orrery.RGBA
	}{
		{"normal opaque replaces", orrery.BlendNormal, red, gray, gray},
		{"normal transparent src keeps dst", orrery.BlendNormal, red, orrery.Transparent, red},
		{"normal half mixes", orrery.BlendNormal, red, halfGreen,
			orrery.RGBA{R: 0.5, G: 0.5, A: 1}},
		{"multiply darkens", orrery.BlendMultiply, gray, gray,
			orrery.RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}},
		{"multiply by white is identity", orrery.BlendMultiply, gray, orrery.White, gray},
		{"screen lightens", orrery.BlendScreen, gray, gray,
			orrery.RGBA{R: 0.75, G: 0.75, B: 0.75, A: 1}},
		{"screen with black is identity", orrery.BlendScreen, gray, orrery.Black, gray},
		{"additive sums", orrery.BlendAdditive, gray, gray, orrery.White.WithAlpha(1)},
		{"additive clamps", orrery.BlendAdditive, orrery.White, orrery.White, orrery.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blendPixel(tt.mode, tt.dst, tt.src)
			if !rgbaNear(got, tt.want, colorEps) {
				t.Errorf("blendPixel(%v) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestSeparableBlendOverTransparent(t *testing.T) {
	// Blending onto a fully transparent destination must pass the
	// source through unchanged for every separable mode.
	src := orrery.RGBA{R: 0.3, G: 0.6, B: 0.9, A: 0.7}
	for _, mode := range []orrery.BlendMode{orrery.BlendMultiply, orrery.BlendScreen} {
		got := blendPixel(mode, orrery.Transparent, src)
		if !rgbaNear(got, src, colorEps) {
			t.Errorf("%v over transparent = %+v, want %+v", mode, got, src)
		}
	}
}

func TestSourceOverAlphaAccumulates(t *testing.T) {
	half := orrery.RGBA{R: 1, A: 0.5}
	got := sourceOver(half, half)
	if math.Abs(got.A-0.75) > colorEps {
		t.Errorf("stacked half alpha = %v, want 0.75", got.A)
	}
	if math.Abs(got.R-1) > colorEps {
		t.Errorf("R = %v, want 1", got.R)
	}
}
