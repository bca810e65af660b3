package software

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/orrery"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	c := orrery.RGBA{R: 1, G: 0.5, B: 0.25, A: 1}
	pm.SetPixel(2, 1, c)

	got := pm.GetPixel(2, 1)
	// One trip through 8-bit storage quantizes to 1/255 steps.
	if !rgbaNear(got, c, 1.0/255) {
		t.Errorf("GetPixel(2,1) = %+v, want %+v", got, c)
	}
	if got := pm.GetPixel(0, 0); got != orrery.Transparent {
		t.Errorf("untouched pixel = %+v, want transparent", got)
	}
}

func TestPixmapOutOfBoundsIgnored(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(-1, 0, orrery.White)
	pm.SetPixel(0, 5, orrery.White)
	if got := pm.GetPixel(-1, 0); got != orrery.Transparent {
		t.Errorf("out-of-bounds read = %+v, want transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.Clear(orrery.RGB(0.2, 0.4, 0.6))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got := pm.GetPixel(x, y)
			if !rgbaNear(got, orrery.RGB(0.2, 0.4, 0.6), 1.0/255) {
				t.Fatalf("pixel (%d,%d) = %+v after Clear", x, y, got)
			}
		}
	}
}

func TestPixmapWritePNG(t *testing.T) {
	pm := NewPixmap(8, 5)
	pm.Clear(orrery.RGB(0.1, 0.2, 0.3))

	var buf bytes.Buffer
	if err := pm.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 8 || b.Dy() != 5 {
		t.Errorf("decoded size = %dx%d, want 8x5", b.Dx(), b.Dy())
	}
}
