package main

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/gogpu/orrery"
	"github.com/gogpu/orrery/software"
)

const texSize = 128

// proceduralTextures builds a complete image set without any files on
// disk. The textures are deliberately simple; they exist so the
// command renders something sensible with no -assets directory.
func proceduralTextures() *orrery.ImageSet {
	set := orrery.NewImageSet()
	set.Set(orrery.ImageEarth, disc(color.NRGBA{R: 52, G: 120, B: 200, A: 255}, 0.92, 0))
	set.Set(orrery.ImageMoon, disc(color.NRGBA{R: 180, G: 180, B: 188, A: 255}, 0.9, 0))
	set.Set(orrery.ImageSun1, disc(color.NRGBA{R: 255, G: 220, B: 120, A: 255}, 0.75, 0))
	set.Set(orrery.ImageSun2, rays(color.NRGBA{R: 255, G: 170, B: 60, A: 200}, 7))
	set.Set(orrery.ImageSun3, rays(color.NRGBA{R: 255, G: 120, B: 40, A: 150}, 11))
	set.Set(orrery.ImageSun4, disc(color.NRGBA{R: 255, G: 240, B: 200, A: 90}, 1.0, 0.5))
	set.Set(orrery.ImageStars, nightSky())
	set.Set(orrery.ImageShadow, terminator())
	return set
}

// disc draws a filled circle with a soft edge. inner is the fully
// opaque radius as a fraction of the half texture; fade widens the
// falloff band.
func disc(c color.NRGBA, inner, fade float64) *software.Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, texSize, texSize))
	half := float64(texSize) / 2
	falloff := (1 - inner) + fade
	if falloff <= 0 {
		falloff = 0.05
	}
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			d := math.Hypot(dx, dy)
			a := 1.0
			if d > inner {
				a = 1 - (d-inner)/falloff
			}
			if a <= 0 {
				continue
			}
			px := c
			px.A = uint8(float64(c.A) * a)
			img.SetNRGBA(x, y, px)
		}
	}
	return software.FromImage(img)
}

// rays draws a spoked corona. The spoke count is odd so the texture
// is visibly asymmetric and the compositor's flip passes read as
// shimmer instead of a no-op.
func rays(c color.NRGBA, spokes int) *software.Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, texSize, texSize))
	half := float64(texSize) / 2
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			d := math.Hypot(dx, dy)
			if d > 1 || d < 0.2 {
				continue
			}
			ang := math.Atan2(dy, dx)
			lobe := 0.5 + 0.5*math.Cos(ang*float64(spokes))
			a := lobe * (1 - d)
			if a <= 0.02 {
				continue
			}
			px := c
			px.A = uint8(float64(c.A) * a)
			img.SetNRGBA(x, y, px)
		}
	}
	return software.FromImage(img)
}

// nightSky scatters white points over a dark blue field. The seed is
// fixed so every run produces the same backdrop.
func nightSky() *software.Bitmap {
	const size = 256
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 8, G: 10, B: 24, A: 255})
		}
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 160; i++ {
		x := rng.Intn(size)
		y := rng.Intn(size)
		v := uint8(140 + rng.Intn(116))
		img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
	}
	return software.FromImage(img)
}

// terminator is the day/night shadow overlay: transparent on the lit
// half, darkening smoothly across the middle of the disc.
func terminator() *software.Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, texSize, texSize))
	half := float64(texSize) / 2
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			if math.Hypot(dx, dy) > 1 {
				continue
			}
			// dx in [-1, 1]: lit side left, shadowed side right.
			t := (dx + 0.3) / 0.6
			if t < 0 {
				continue
			}
			if t > 1 {
				t = 1
			}
			img.SetNRGBA(x, y, color.NRGBA{A: uint8(200 * t)})
		}
	}
	return software.FromImage(img)
}
