// Package software provides a CPU implementation of the orrery Surface.
//
// The surface rasterizes into a Pixmap, an RGBA pixel buffer that can
// be converted to an image.RGBA or written out as PNG. Image draws use
// inverse affine mapping with bilinear sampling; the four scene blend
// modes are implemented in floating point per channel.
package software

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/orrery"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c orrery.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = clampByte(c.R * 255)
	p.data[i+1] = clampByte(c.G * 255)
	p.data[i+2] = clampByte(c.B * 255)
	p.data[i+3] = clampByte(c.A * 255)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) orrery.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return orrery.Transparent
	}
	i := (y*p.width + x) * 4
	return orrery.RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c orrery.RGBA) {
	r := clampByte(c.R * 255)
	g := clampByte(c.G * 255)
	b := clampByte(c.B * 255)
	a := clampByte(c.A * 255)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// WritePNG encodes the pixmap as PNG to w.
func (p *Pixmap) WritePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("software: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("software: save png: %w", err)
	}
	if err := p.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// clampByte converts a [0, 255] float to a byte, clamping overflow.
func clampByte(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x + 0.5)
}
