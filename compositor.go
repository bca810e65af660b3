package orrery

import (
	"log/slog"
	"time"
)

// Background is an independently implemented layer drawn between the
// stars backdrop and the sun (see orrery/starfield for the catalog
// projection implementation).
type Background interface {
	// DrawBackground draws the layer onto dst for the given viewport
	// and instant.
	DrawBackground(dst Surface, viewportW, viewportH float64, t time.Time)
}

// Frame is the fully computed per-frame geometry: the three orbit
// angles, the screen offsets derived from them, and the moon's shadow
// rotation. Created fresh each frame, never mutated, discarded after
// compositing.
type Frame struct {
	// Time is the instant this frame represents.
	Time time.Time

	// Angles are the periodic orbit angles for Time.
	Angles OrbitAngles

	// SunOffset and EarthOffset displace those bodies from the
	// viewport center. MoonOffset displaces the moon from the earth;
	// the offsets compose additively.
	SunOffset   Offset
	EarthOffset Offset
	MoonOffset  Offset

	// MoonShadow is the moon shadow overlay rotation, derived from
	// the moon's and sun's absolute positions.
	MoonShadow float64
}

// ComputeFrame runs the time-to-geometry pipeline for one instant:
// clock angles, orbit offsets, then the moon shadow angle.
func ComputeFrame(t time.Time, viewportW, viewportH float64, cfg *Config) Frame {
	angles := AnglesAt(t)

	srx, sry := cfg.SunAxisRatios()
	erx, ery := cfg.EarthAxisRatios()
	mrx, mry := cfg.MoonAxisRatios()

	sun := OrbitOffset(angles.Sun, viewportW, viewportH, cfg.AngleOffset, srx, sry)
	earth := OrbitOffset(angles.Earth, viewportW, viewportH, cfg.AngleOffset, erx, ery)
	moon := OrbitOffset(angles.Moon, viewportW, viewportH, cfg.AngleOffset, mrx, mry)

	// Shadow angles work on absolute positions; both bodies share the
	// single sun position.
	moonAbs := earth.Add(moon)
	shadow := ShadowAngle(moonAbs.X, moonAbs.Y, sun.X, sun.Y)

	return Frame{
		Time:        t,
		Angles:      angles,
		SunOffset:   sun,
		EarthOffset: earth,
		MoonOffset:  moon,
		MoonShadow:  shadow,
	}
}

// sunPass pairs one flip state with one configured sun layer. The
// compositor precomputes the full pass list from the config instead
// of cycling a mutable counter across nested loops, so the parameters
// of pass N never depend on how many passes ran before it.
type sunPass struct {
	flip  bool
	layer SunLayer
}

// sunPassPlan expands the layer list into the ordered pass list:
// the flip states {false, true} form the outer cycle, the layers the
// inner cycle. Four layers yield exactly eight passes.
func sunPassPlan(layers []SunLayer) []sunPass {
	plan := make([]sunPass, 0, 2*len(layers))
	for _, flip := range [2]bool{false, true} {
		for _, layer := range layers {
			plan = append(plan, sunPass{flip: flip, layer: layer})
		}
	}
	return plan
}

// Compose emits the ordered draw sequence for one frame: backdrop,
// optional background layer, sun (base disc plus layered passes),
// earth with shadow, moon with shadow. Later draws occlude or blend
// over earlier ones.
//
// Compose assumes a ready image set; readiness gating belongs to the
// Scene. If an image is nonetheless absent its draw is skipped, never
// attempted against a nil handle.
func Compose(dst Surface, viewportW, viewportH float64, f Frame, images *ImageSet, cfg *Config, bg Background) {
	centerX := viewportW / 2
	centerY := viewportH / 2

	// 1. Stars backdrop: oversized so rotation never exposes a corner.
	drawNamed(dst, images, ImageStars, DrawImageOptions{
		CenterX:  centerX,
		CenterY:  centerY,
		Size:     viewportW + viewportH,
		Rotation: f.Angles.Earth * cfg.BackgroundSpeed,
		Blend:    BlendNormal,
	})

	// 2. Independent background layer, when configured.
	if bg != nil {
		bg.DrawBackground(dst, viewportW, viewportH, f.Time)
	}

	// 3. Sun: white base glow disc, then the layered repaint passes.
	sunX := centerX + f.SunOffset.X
	sunY := centerY + f.SunOffset.Y
	sunSize := viewportW * cfg.SunSize

	dst.FillCircle(sunX, sunY, sunSize*cfg.SunBaseSize/2, White)

	for _, pass := range sunPassPlan(cfg.SunLayers) {
		drawNamed(dst, images, pass.layer.Image, DrawImageOptions{
			CenterX:  sunX,
			CenterY:  sunY,
			Size:     sunSize,
			Rotation: f.Angles.Sun * pass.layer.Speed * cfg.SunSpeed,
			FlipH:    pass.flip != pass.layer.Flip,
			Blend:    pass.layer.Blend,
		})
	}

	// 4. Earth, then its shadow. The earth shadow tracks the sun's
	// orbital angle directly; only the moon uses the derived shadow
	// angle. The asymmetry is intentional.
	earthX := centerX + f.EarthOffset.X
	earthY := centerY + f.EarthOffset.Y
	earthSize := viewportW * cfg.EarthSize

	drawNamed(dst, images, ImageEarth, DrawImageOptions{
		CenterX:  earthX,
		CenterY:  earthY,
		Size:     earthSize,
		Rotation: f.Angles.Earth * cfg.EarthSpin,
		Blend:    BlendNormal,
	})
	drawNamed(dst, images, ImageShadow, DrawImageOptions{
		CenterX:  earthX,
		CenterY:  earthY,
		Size:     earthSize * cfg.EarthShadowShrink,
		Rotation: f.Angles.Sun,
		Blend:    BlendNormal,
	})

	// 5. Moon at earth+moon offset, then its shadow.
	moonX := earthX + f.MoonOffset.X
	moonY := earthY + f.MoonOffset.Y
	moonSize := viewportW * cfg.MoonSize

	drawNamed(dst, images, ImageMoon, DrawImageOptions{
		CenterX:  moonX,
		CenterY:  moonY,
		Size:     moonSize,
		Rotation: f.Angles.Earth * cfg.MoonSpin,
		Blend:    BlendNormal,
	})
	drawNamed(dst, images, ImageShadow, DrawImageOptions{
		CenterX:  moonX,
		CenterY:  moonY,
		Size:     moonSize * cfg.MoonShadowShrink,
		Rotation: f.MoonShadow,
		Blend:    BlendNormal,
	})
}

// drawNamed resolves a logical image and draws it, skipping the draw
// when the name does not resolve.
func drawNamed(dst Surface, images *ImageSet, name ImageName, opts DrawImageOptions) {
	img, ok := images.Get(name)
	if !ok {
		Logger().Warn("skipping draw for unresolved image", slog.String("image", string(name)))
		return
	}
	dst.DrawImage(img, opts)
}
