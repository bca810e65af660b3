package software

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/orrery"
	"github.com/gogpu/orrery/internal/cache"
)

// sourceProvider is implemented by image handles that can expose
// their decoded pixels without depending on this package (see
// asset.Bitmap). Handles of any other concrete type cannot be drawn
// by this backend.
type sourceProvider interface {
	Source() image.Image
}

// scaleKey keys the minification cache by source handle and target
// pixel size.
type scaleKey struct {
	img orrery.Image
	px  int
}

// Surface is a CPU rasterizer for the orrery scene. It implements
// orrery.Surface over a Pixmap.
//
// A Surface is not safe for concurrent use, matching the scene's
// single-threaded frame contract.
type Surface struct {
	pm    *Pixmap
	clips []image.Rectangle

	// converted memoizes sourceProvider conversions; scaled memoizes
	// minified variants. A frame redraws the same eight textures, so
	// both stay hot after the first frame.
	converted *cache.Sharded[orrery.Image, *Bitmap]
	scaled    *cache.Sharded[scaleKey, *Bitmap]
}

var _ orrery.Surface = (*Surface)(nil)

// New creates a software surface with the given pixel dimensions.
func New(width, height int) *Surface {
	return &Surface{
		pm:        NewPixmap(width, height),
		converted: cache.NewSharded[orrery.Image, *Bitmap](16, imageHasher),
		scaled:    cache.NewSharded[scaleKey, *Bitmap](32, scaleKeyHasher),
	}
}

// imageHasher hashes an image handle by its dimensions. Collisions
// only affect shard distribution, not correctness.
func imageHasher(img orrery.Image) uint64 {
	return uint64(img.Width())<<32 | uint64(uint32(img.Height()))
}

// scaleKeyHasher folds the target size into the image hash.
func scaleKeyHasher(k scaleKey) uint64 {
	return imageHasher(k.img)*31 + uint64(k.px)
}

// Pixmap returns the underlying pixel buffer.
func (s *Surface) Pixmap() *Pixmap { return s.pm }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.pm.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.pm.Height() }

// Clear fills the whole buffer, ignoring the clip stack.
func (s *Surface) Clear(c orrery.RGBA) { s.pm.Clear(c) }

// clipRect returns the current clip in pixel coordinates.
func (s *Surface) clipRect() image.Rectangle {
	full := image.Rect(0, 0, s.pm.Width(), s.pm.Height())
	if len(s.clips) == 0 {
		return full
	}
	return s.clips[len(s.clips)-1]
}

// PushClip implements orrery.Surface. Clips nest: the effective clip
// is the intersection with all outer clips.
func (s *Surface) PushClip(r orrery.Rect) {
	next := s.clipRect().Intersect(rectToPixels(r))
	s.clips = append(s.clips, next)
}

// PopClip implements orrery.Surface.
func (s *Surface) PopClip() {
	if len(s.clips) == 0 {
		orrery.Logger().Warn("unbalanced PopClip on software surface")
		return
	}
	s.clips = s.clips[:len(s.clips)-1]
}

// rectToPixels converts a float rect to its covered pixel rectangle.
func rectToPixels(r orrery.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}

// FillRect implements orrery.Surface with source-over compositing.
func (s *Surface) FillRect(r orrery.Rect, c orrery.RGBA) {
	if c.A <= 0 {
		return
	}
	area := rectToPixels(r).Intersect(s.clipRect())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			s.pm.SetPixel(x, y, sourceOver(s.pm.GetPixel(x, y), c))
		}
	}
}

// FillCircle implements orrery.Surface. Edges are antialiased by
// per-pixel coverage of the circle boundary.
func (s *Surface) FillCircle(cx, cy, radius float64, c orrery.RGBA) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	bounds := image.Rect(
		int(math.Floor(cx-radius-1)),
		int(math.Floor(cy-radius-1)),
		int(math.Ceil(cx+radius+1)),
		int(math.Ceil(cy+radius+1)),
	).Intersect(s.clipRect())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx + dy*dy)

			cov := clamp01(radius - dist + 0.5)
			if cov <= 0 {
				continue
			}
			src := c
			src.A *= cov
			s.pm.SetPixel(x, y, sourceOver(s.pm.GetPixel(x, y), src))
		}
	}
}

// DrawImage implements orrery.Surface via inverse affine mapping:
// each destination pixel inside the rotated square maps back into the
// source texture and samples it bilinearly.
func (s *Surface) DrawImage(img orrery.Image, opts orrery.DrawImageOptions) {
	if img == nil || opts.Size <= 0 {
		return
	}
	bmp := s.resolve(img, opts.Size)
	if bmp == nil {
		orrery.Logger().Warn("software surface cannot sample image handle type")
		return
	}

	half := opts.Size / 2
	// The bounding box must cover the square at any rotation.
	br := half * math.Sqrt2
	bounds := image.Rect(
		int(math.Floor(opts.CenterX-br)),
		int(math.Floor(opts.CenterY-br)),
		int(math.Ceil(opts.CenterX+br)),
		int(math.Ceil(opts.CenterY+br)),
	).Intersect(s.clipRect())

	sin, cos := math.Sincos(opts.Rotation)
	opacity := opts.EffectiveOpacity()
	sw := float64(bmp.Width())
	sh := float64(bmp.Height())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - opts.CenterX
			dy := float64(y) + 0.5 - opts.CenterY

			// Inverse rotation back into the unrotated square.
			rx := dx*cos + dy*sin
			ry := -dx*sin + dy*cos
			if opts.FlipH {
				rx = -rx
			}
			if rx < -half || rx >= half || ry < -half || ry >= half {
				continue
			}

			u := (rx/opts.Size+0.5)*sw - 0.5
			v := (ry/opts.Size+0.5)*sh - 0.5
			src := bmp.sample(u, v)
			if opacity < 1 {
				src.A *= opacity
			}
			if src.A <= 0 {
				continue
			}
			s.pm.SetPixel(x, y, blendPixel(opts.Blend, s.pm.GetPixel(x, y), src))
		}
	}
}

// resolve produces a sampleable Bitmap for an image handle, caching
// conversions and heavily minified variants.
func (s *Surface) resolve(img orrery.Image, size float64) *Bitmap {
	bmp, ok := img.(*Bitmap)
	if !ok {
		sp, ok := img.(sourceProvider)
		if !ok {
			return nil
		}
		bmp = s.converted.GetOrCreate(img, func() *Bitmap {
			return FromImage(sp.Source())
		})
	}

	// Bilinear sampling aliases badly below half the source size;
	// pre-minify once with a proper filter and reuse the result.
	if px := int(math.Ceil(size)); px > 0 && px*2 < bmp.Width() {
		src := bmp
		bmp = s.scaled.GetOrCreate(scaleKey{img: img, px: px}, func() *Bitmap {
			return minify(src, px)
		})
	}
	return bmp
}

// minify rescales a bitmap so its width is px, preserving aspect.
func minify(src *Bitmap, px int) *Bitmap {
	h := px * src.Height() / src.Width()
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, px, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src.ToImage(), src.ToImage().Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
