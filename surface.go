package orrery

// Image is an opaque handle to a decoded, immutably shared bitmap.
// The core only needs its dimensions; backends may require a richer
// concrete type (see orrery/software and orrery/asset).
type Image interface {
	// Width returns the bitmap width in pixels.
	Width() int

	// Height returns the bitmap height in pixels.
	Height() int
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// DrawImageOptions specifies parameters for a single image draw pass.
// The image is scaled to a square of side Size, rotated by Rotation
// about its center, optionally mirrored horizontally, and composited
// with the given blend mode at (CenterX, CenterY).
type DrawImageOptions struct {
	// CenterX, CenterY locate the pivot of the draw in surface coordinates.
	CenterX, CenterY float64

	// Size is the side length of the destination square in pixels.
	Size float64

	// Rotation is the clockwise rotation about the pivot, in radians.
	Rotation float64

	// FlipH mirrors the source horizontally before rotation.
	FlipH bool

	// Blend specifies how source pixels combine with the destination.
	// Default is BlendNormal.
	Blend BlendMode

	// Opacity controls the overall transparency of the pass (0.0 to 1.0).
	// Zero is treated as fully opaque so the zero value draws normally.
	Opacity float64
}

// EffectiveOpacity returns the opacity with the zero value mapped to 1.
func (o DrawImageOptions) EffectiveOpacity() float64 {
	if o.Opacity == 0 {
		return 1
	}
	return o.Opacity
}

// Surface is the generic 2D drawing abstraction the compositor emits
// draw commands against. Implementations must apply commands in call
// order; later draws occlude or blend over earlier ones.
//
// The scene never retains a Surface across frames, and never calls it
// from more than one goroutine at a time.
type Surface interface {
	// FillRect fills a rectangle with a solid color (source-over).
	FillRect(r Rect, c RGBA)

	// FillCircle fills a circle with a solid color (source-over).
	FillCircle(cx, cy, radius float64, c RGBA)

	// DrawImage draws an image scaled, rotated and flipped about a pivot
	// with a blend mode, per opts.
	DrawImage(img Image, opts DrawImageOptions)

	// PushClip restricts subsequent draws to r intersected with the
	// current clip. Pops nest.
	PushClip(r Rect)

	// PopClip restores the clip in effect before the matching PushClip.
	PopClip()
}
