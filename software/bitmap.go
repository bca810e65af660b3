package software

import (
	"image"

	"github.com/gogpu/orrery"
)

// Bitmap is an immutable decoded texture the software surface can
// sample directly. It implements orrery.Image.
type Bitmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, not premultiplied
}

var _ orrery.Image = (*Bitmap)(nil)

// FromImage converts a decoded image into a Bitmap.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	b := &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}

	// Fast path for the common decode result.
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		copy(b.data, nrgba.Pix)
		return b
	}

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := orrery.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			b.data[i+0] = clampByte(c.R * 255)
			b.data[i+1] = clampByte(c.G * 255)
			b.data[i+2] = clampByte(c.B * 255)
			b.data[i+3] = clampByte(c.A * 255)
			i += 4
		}
	}
	return b
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// ToImage converts the bitmap back to an image.NRGBA.
func (b *Bitmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// at returns the texel at (x, y), transparent outside the bitmap.
func (b *Bitmap) at(x, y int) orrery.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return orrery.Transparent
	}
	i := (y*b.width + x) * 4
	return orrery.RGBA{
		R: float64(b.data[i+0]) / 255,
		G: float64(b.data[i+1]) / 255,
		B: float64(b.data[i+2]) / 255,
		A: float64(b.data[i+3]) / 255,
	}
}

// sample performs bilinear interpolation at continuous texel
// coordinates (u, v), where (0, 0) is the center of the top-left
// texel. Samples past the edge fade to transparent.
func (b *Bitmap) sample(u, v float64) orrery.RGBA {
	x0 := int(floor(u))
	y0 := int(floor(v))
	fx := u - float64(x0)
	fy := v - float64(y0)

	c00 := b.at(x0, y0)
	c10 := b.at(x0+1, y0)
	c01 := b.at(x0, y0+1)
	c11 := b.at(x0+1, y0+1)

	top := lerpRGBA(c00, c10, fx)
	bot := lerpRGBA(c01, c11, fx)
	return lerpRGBA(top, bot, fy)
}

// lerpRGBA interpolates two colors channel-wise, weighting color
// channels by alpha so transparent texels do not bleed dark fringes.
func lerpRGBA(a, b orrery.RGBA, t float64) orrery.RGBA {
	ar, ag, ab := a.R*a.A, a.G*a.A, a.B*a.A
	br, bg, bb := b.R*b.A, b.G*b.A, b.B*b.A

	outA := a.A + (b.A-a.A)*t
	if outA <= 0 {
		return orrery.Transparent
	}
	return orrery.RGBA{
		R: (ar + (br-ar)*t) / outA,
		G: (ag + (bg-ag)*t) / outA,
		B: (ab + (bb-ab)*t) / outA,
		A: outA,
	}
}

// floor avoids the int conversion truncating toward zero for
// negative coordinates.
func floor(x float64) float64 {
	i := float64(int(x))
	if x < i {
		return i - 1
	}
	return i
}
