package orrery

import "math"

// Offset is a per-frame screen displacement from the viewport center,
// in pixels.
type Offset struct {
	X, Y float64
}

// Add returns the sum of two offsets. Orbit offsets compose
// additively: the moon's draw position is the earth offset plus the
// moon offset, not a nested rotation.
func (o Offset) Add(p Offset) Offset {
	return Offset{X: o.X + p.X, Y: o.Y + p.Y}
}

// OrbitOffset converts an orbit angle into a screen offset on an
// ellipse scaled by the viewport dimensions and per-axis ratios.
//
// angleOffset rotates the reference frame; with the default π/2,
// angle 0 lands at the top of the viewport so midnight reads as
// 12 o'clock. The ratios arrive pre-resolved (the sun's are
// multipliers, earth's and moon's are reciprocals of configured
// divisors); resolution is the caller's job via Config.
func OrbitOffset(angle, viewportW, viewportH, angleOffset, ratioX, ratioY float64) Offset {
	a := angle - angleOffset
	return Offset{
		X: math.Cos(a) * viewportW * ratioX,
		Y: math.Sin(a) * viewportH * ratioY,
	}
}

// ShadowAngle derives the rotation for a shadow overlay from a body's
// absolute position and the sun's absolute position. The angle points
// the overlay directly away from the sun; the π/2 correction accounts
// for the shadow texture being authored dark-side up.
func ShadowAngle(bodyX, bodyY, sunX, sunY float64) float64 {
	return math.Atan2(bodyY-sunY, bodyX-sunX) - math.Pi/2
}
