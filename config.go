package orrery

import (
	"fmt"
	"math"
)

// Theme selects one of the built-in visual tuning variants.
type Theme uint8

// Built-in themes.
const (
	// ThemeLight is the default daytime palette.
	ThemeLight Theme = iota

	// ThemeDark dims the backdrop and slows the background drift.
	ThemeDark
)

// themeNames maps Theme values to their string representation.
var themeNames = [...]string{
	ThemeLight: "Light",
	ThemeDark:  "Dark",
}

// String returns a human-readable name for the theme.
func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return "Unknown"
}

// SunLayer describes one textured repaint pass of the composite sun.
// Layers are constructed once as part of a Config and consumed many
// times per second by the compositor.
type SunLayer struct {
	// Image is the logical name of the texture for this pass.
	Image ImageName

	// Blend specifies how the pass composites over previous passes.
	Blend BlendMode

	// Flip mirrors the pass horizontally in addition to the
	// compositor's own flip cycle.
	Flip bool

	// Speed multiplies the sun orbit angle for this pass's rotation.
	// Negative values counter-rotate.
	Speed float64
}

// Config is the immutable set of numeric parameters for one theme
// variant. Construct one with ThemeConfig and treat it as read-only;
// the scene reads it concurrently across frames without locking.
type Config struct {
	// Theme records which variant produced this config.
	Theme Theme

	// SunSize, EarthSize, MoonSize are body diameters as ratios of the
	// viewport width.
	SunSize   float64
	EarthSize float64
	MoonSize  float64

	// SunBaseSize scales the solid white glow disc relative to SunSize.
	SunBaseSize float64

	// SunOrbitX, SunOrbitY are per-axis multipliers for the sun's
	// elliptical orbit around the viewport center.
	SunOrbitX float64
	SunOrbitY float64

	// EarthOrbitDivX, EarthOrbitDivY divide the viewport dimensions to
	// size the earth's orbit. Must be non-zero.
	EarthOrbitDivX float64
	EarthOrbitDivY float64

	// MoonOrbitDivX, MoonOrbitDivY divide the viewport dimensions to
	// size the moon's orbit around the earth. Must be non-zero.
	MoonOrbitDivX float64
	MoonOrbitDivY float64

	// AngleOffset rotates the orbit reference frame so that angle 0
	// renders at the top of the viewport. Default math.Pi / 2.
	AngleOffset float64

	// SunSpeed is the global rotation constant applied to every sun
	// layer pass on top of the per-layer Speed.
	SunSpeed float64

	// EarthSpin multiplies the earth orbit angle for the earth
	// texture's own rotation.
	EarthSpin float64

	// MoonSpin multiplies the earth orbit angle for the moon texture's
	// rotation.
	MoonSpin float64

	// BackgroundSpeed multiplies the earth orbit angle for the stars
	// backdrop rotation.
	BackgroundSpeed float64

	// EarthShadowShrink, MoonShadowShrink scale the shadow overlay
	// relative to its body. Must be positive.
	EarthShadowShrink float64
	MoonShadowShrink  float64

	// Placeholder is the fill color rendered while images load.
	Placeholder RGBA

	// SunLayers is the ordered list of sun repaint passes. The
	// compositor draws the list once per flip state.
	SunLayers []SunLayer
}

// defaultSunLayers returns the four-pass sun used by the built-in
// themes. Alternating screen/additive passes over the white base disc
// give the rim its flame texture; the counter-rotating passes keep the
// sun from reading as a single spinning sprite.
func defaultSunLayers() []SunLayer {
	return []SunLayer{
		{Image: ImageSun1, Blend: BlendScreen, Speed: 1.0},
		{Image: ImageSun2, Blend: BlendAdditive, Speed: 0.6},
		{Image: ImageSun3, Blend: BlendScreen, Speed: -0.8},
		{Image: ImageSun4, Blend: BlendAdditive, Speed: 0.45},
	}
}

// ThemeConfig constructs the config for a theme variant. Calling it
// twice with the same theme yields identical values; each call returns
// an independent copy, so one scene's config can never alias another's.
func ThemeConfig(t Theme) Config {
	// Base record; variants override individual fields below.
	cfg := Config{
		Theme:             t,
		SunSize:           0.25,
		EarthSize:         0.10,
		MoonSize:          0.045,
		SunBaseSize:       0.88,
		SunOrbitX:         0.34,
		SunOrbitY:         0.34,
		EarthOrbitDivX:    3.2,
		EarthOrbitDivY:    3.2,
		MoonOrbitDivX:     9.5,
		MoonOrbitDivY:     9.5,
		AngleOffset:       math.Pi / 2,
		SunSpeed:          1.0,
		EarthSpin:         -2.0,
		MoonSpin:          1.0,
		BackgroundSpeed:   0.25,
		EarthShadowShrink: 1.12,
		MoonShadowShrink:  1.10,
		Placeholder:       RGB(0.93, 0.91, 0.86),
		SunLayers:         defaultSunLayers(),
	}

	switch t {
	case ThemeDark:
		cfg.Placeholder = RGB(0.04, 0.05, 0.09)
		cfg.BackgroundSpeed = 0.15
		cfg.SunBaseSize = 0.82
		cfg.EarthShadowShrink = 1.18
		cfg.SunLayers[1].Blend = BlendScreen
		cfg.SunLayers[3].Speed = 0.3
	}

	return cfg
}

// SunAxisRatios returns the pre-resolved per-axis scalars for the sun
// orbit (multipliers).
func (c *Config) SunAxisRatios() (rx, ry float64) {
	return c.SunOrbitX, c.SunOrbitY
}

// EarthAxisRatios returns the pre-resolved per-axis scalars for the
// earth orbit (reciprocals of the configured divisors).
func (c *Config) EarthAxisRatios() (rx, ry float64) {
	return 1 / c.EarthOrbitDivX, 1 / c.EarthOrbitDivY
}

// MoonAxisRatios returns the pre-resolved per-axis scalars for the
// moon orbit (reciprocals of the configured divisors).
func (c *Config) MoonAxisRatios() (rx, ry float64) {
	return 1 / c.MoonOrbitDivX, 1 / c.MoonOrbitDivY
}

// Validate checks the configuration invariants. Zero orbit divisors
// would produce infinite offsets, so they are rejected here rather
// than surfacing as NaN geometry mid-frame.
func (c *Config) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"earth orbit divisor x", c.EarthOrbitDivX},
		{"earth orbit divisor y", c.EarthOrbitDivY},
		{"moon orbit divisor x", c.MoonOrbitDivX},
		{"moon orbit divisor y", c.MoonOrbitDivY},
	} {
		if p.v == 0 || math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return fmt.Errorf("orrery: config: %s must be a non-zero finite number, got %v", p.name, p.v)
		}
	}

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"sun size", c.SunSize},
		{"earth size", c.EarthSize},
		{"moon size", c.MoonSize},
		{"sun base size", c.SunBaseSize},
		{"earth shadow shrink", c.EarthShadowShrink},
		{"moon shadow shrink", c.MoonShadowShrink},
	} {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("orrery: config: %s must be a positive finite number, got %v", p.name, p.v)
		}
	}

	if math.IsNaN(c.AngleOffset) || math.IsInf(c.AngleOffset, 0) {
		return fmt.Errorf("orrery: config: angle offset must be finite, got %v", c.AngleOffset)
	}

	for i, layer := range c.SunLayers {
		if layer.Image == "" {
			return fmt.Errorf("orrery: config: sun layer %d has no image name", i)
		}
	}

	return nil
}
