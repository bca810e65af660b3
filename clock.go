package orrery

import (
	"math"
	"time"
)

// Orbital periods, in milliseconds of wall-clock time.
const (
	// moonPeriodMillis is one full moon orbit: the seconds hand.
	moonPeriodMillis = 60 * 1000

	// earthPeriodMillis is one full earth orbit: the minutes hand.
	earthPeriodMillis = 60 * 60 * 1000

	// sunPeriodHours is one full sun circuit: the hours hand.
	sunPeriodHours = 12
)

// OrbitAngles holds the three periodic orbit angles for one frame,
// in radians. Values are created fresh from a timestamp each frame
// and never mutated.
//
// Angles are conceptually periodic in [0, 2π) but may arithmetically
// exceed that range; consumers must treat them as periodic rather
// than wrapping them.
type OrbitAngles struct {
	// Moon completes 2π every 60 seconds.
	Moon float64

	// Earth completes 2π every hour.
	Earth float64

	// Sun completes 2π every 12 hours.
	Sun float64
}

// AnglesAt maps a timestamp to the three orbit angles. It is a pure
// function of t: injecting a fixed instant renders a fixed frame.
//
// The Earth/12 term in the sun angle is required for continuity: the
// hour component advances in integer steps while the earth angle
// resets to zero at each hour boundary, and the two discontinuities
// cancel only when the fractional hour is folded into the sun angle.
// The result is monotonically increasing across hour boundaries.
func AnglesAt(t time.Time) OrbitAngles {
	hour, minute, second := t.Clock()
	millis := t.Nanosecond() / int(time.Millisecond)

	moonMillis := second*1000 + millis
	earthMillis := minute*60000 + moonMillis

	moon := float64(moonMillis%moonPeriodMillis) / moonPeriodMillis * 2 * math.Pi
	earth := float64(earthMillis%earthPeriodMillis) / earthPeriodMillis * 2 * math.Pi
	sun := float64(hour%sunPeriodHours)/sunPeriodHours*2*math.Pi + earth/sunPeriodHours

	return OrbitAngles{Moon: moon, Earth: earth, Sun: sun}
}
