// Package starfield draws a real-sky background layer for the orrery
// scene: the built-in bright-star catalog projected around the north
// celestial pole at the viewport center, rotated by apparent sidereal
// time so the sky turns with the clock.
package starfield

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"

	"github.com/gogpu/orrery"
)

// Field projects a star catalog onto the viewport. It implements
// orrery.Background and is drawn between the stars texture and the
// sun.
//
// The projection is polar azimuthal: the north celestial pole sits at
// the viewport center, a star's distance from it grows with polar
// distance (90° minus declination), and the whole sky rotates by the
// local apparent sidereal time.
type Field struct {
	stars     []Star
	color     orrery.RGBA
	longitude float64 // radians, east positive
	maxMag    float64
	spread    float64
	pointSize float64
}

var _ orrery.Background = (*Field)(nil)

// Option configures a Field.
type Option func(*Field)

// WithCatalog replaces the built-in catalog.
func WithCatalog(stars []Star) Option {
	return func(f *Field) { f.stars = stars }
}

// WithColor sets the base star color. Per-star alpha still scales
// with magnitude.
func WithColor(c orrery.RGBA) Option {
	return func(f *Field) { f.color = c }
}

// WithLongitude sets the observer longitude in degrees, east
// positive. It shifts which stars face the viewport at a given
// instant.
func WithLongitude(deg float64) Option {
	return func(f *Field) { f.longitude = unit.AngleFromDeg(deg).Rad() }
}

// WithMaxMagnitude sets the faintest magnitude drawn.
func WithMaxMagnitude(mag float64) Option {
	return func(f *Field) { f.maxMag = mag }
}

// WithSpread scales the projection radius as a fraction of the half
// viewport. Values above 1 push the celestial equator past the edges
// so the visible disc stays dense.
func WithSpread(spread float64) Option {
	return func(f *Field) { f.spread = spread }
}

// New creates a Field with the built-in catalog and default styling.
func New(opts ...Option) *Field {
	f := &Field{
		stars:     Bright(),
		color:     orrery.RGBA{R: 0.92, G: 0.95, B: 1, A: 1},
		maxMag:    2.6,
		spread:    1.15,
		pointSize: 2.2,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// DrawBackground implements orrery.Background.
func (f *Field) DrawBackground(dst orrery.Surface, viewportW, viewportH float64, t time.Time) {
	lst := f.siderealAngle(t)
	cx := viewportW / 2
	cy := viewportH / 2
	// Radius per radian of polar distance: spread=1 puts the
	// celestial equator on the shorter viewport edge.
	scale := math.Min(viewportW, viewportH) / 2 * f.spread / (math.Pi / 2)

	for _, s := range f.stars {
		if s.Mag > f.maxMag {
			continue
		}
		theta := unit.AngleFromDeg(s.RA).Rad() - lst
		polar := math.Pi/2 - unit.AngleFromDeg(s.Dec).Rad()
		r := polar * scale

		x := cx + r*math.Cos(theta)
		y := cy - r*math.Sin(theta)
		if x < -4 || y < -4 || x > viewportW+4 || y > viewportH+4 {
			continue
		}

		radius, alpha := f.pointStyle(s.Mag)
		c := f.color
		c.A *= alpha
		dst.FillCircle(x, y, radius, c)
	}
}

// siderealAngle returns the local apparent sidereal time at t as an
// angle in radians.
func (f *Field) siderealAngle(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	return sidereal.Apparent(jd).Angle().Rad() + f.longitude
}

// pointStyle maps apparent magnitude to dot radius and alpha. Each
// magnitude step dims flux about 2.5x; the dot absorbs part of that
// as size and part as transparency so faint stars shrink and fade
// rather than vanish.
func (f *Field) pointStyle(mag float64) (radius, alpha float64) {
	flux := math.Pow(10, -0.4*mag)
	radius = f.pointSize * math.Pow(flux, 0.25)
	if radius < 0.6 {
		radius = 0.6
	}
	alpha = 0.35 + 0.65*math.Min(1, math.Sqrt(flux))
	return radius, alpha
}
