// Package orrery renders a continuously animated celestial clock scene.
//
// # Overview
//
// orrery turns the current wall-clock time into the geometry of a small
// solar system: the moon completes one orbit per minute, the earth one
// orbit per hour, and the sun one circuit every twelve hours. The result
// reads as an analog clock face drawn with a sun, an earth, a moon and a
// rotating starfield.
//
// The library is deliberately split from pixel production. The core
// computes angles and offsets and emits an ordered sequence of draw
// commands against the Surface interface; what a Surface does with those
// commands is up to the backend (see orrery/software for a CPU pixmap
// backend and orrery/recording for a command recorder).
//
// # Quick Start
//
//	import "github.com/gogpu/orrery"
//
//	scene, err := orrery.New(orrery.ThemeDark, orrery.WithImageSet(images))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Once per display refresh:
//	scene.Render(surface, 1920, 1080, time.Now())
//
// # Architecture
//
// The per-frame pipeline runs in a fixed order:
//   - Clock: timestamp -> three periodic orbit angles (AnglesAt)
//   - Orbits: angle + theme ratios + viewport -> screen offsets (OrbitOffset)
//   - Shadows: body/sun positions -> shadow rotation (ShadowAngle)
//   - Compositor: ordered, blend-mode layered draw emission (Compose)
//
// Every step is a pure function of its inputs; the timestamp is an
// explicit parameter, so any instant can be rendered deterministically.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; orbit angle 0 places a body at 12 o'clock
//     after the theme's angle offset is applied
//
// # Accuracy
//
// The clock bodies are artistic, not astronomical: their angles are tuned
// so the scene reads as a clock. Only the optional starfield layer
// (orrery/starfield) uses real catalog positions.
package orrery

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
