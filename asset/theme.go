package asset

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/gogpu/orrery"
)

// Overrides is a partial scene configuration parsed from JSON. Nil
// fields keep the base config value, so a theme file only states what
// it changes.
type Overrides struct {
	SunSize         *float64 `json:"sunSize"`
	EarthSize       *float64 `json:"earthSize"`
	MoonSize        *float64 `json:"moonSize"`
	SunBaseSize     *float64 `json:"sunBaseSize"`
	AngleOffset     *float64 `json:"angleOffset"`
	SunSpeed        *float64 `json:"sunSpeed"`
	EarthSpin       *float64 `json:"earthSpin"`
	MoonSpin        *float64 `json:"moonSpin"`
	BackgroundSpeed *float64 `json:"backgroundSpeed"`

	// Placeholder is [r, g, b, a] in the 0..1 range.
	Placeholder *[4]float64 `json:"placeholder"`

	// SunLayers, when present, replaces the whole pass list.
	SunLayers []LayerOverride `json:"sunLayers"`
}

// LayerOverride describes one sun pass in a theme file.
type LayerOverride struct {
	Image string  `json:"image"`
	Blend string  `json:"blend"`
	Flip  bool    `json:"flip"`
	Speed float64 `json:"speed"`
}

// ParseOverrides decodes a theme override document.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := sonic.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("asset: parse theme overrides: %w", err)
	}
	return &o, nil
}

// Apply returns base with every present override applied. The result
// is not validated; callers pass it through Config.Validate (scene
// construction does this anyway).
func (o *Overrides) Apply(base orrery.Config) orrery.Config {
	cfg := base
	setIf(&cfg.SunSize, o.SunSize)
	setIf(&cfg.EarthSize, o.EarthSize)
	setIf(&cfg.MoonSize, o.MoonSize)
	setIf(&cfg.SunBaseSize, o.SunBaseSize)
	setIf(&cfg.AngleOffset, o.AngleOffset)
	setIf(&cfg.SunSpeed, o.SunSpeed)
	setIf(&cfg.EarthSpin, o.EarthSpin)
	setIf(&cfg.MoonSpin, o.MoonSpin)
	setIf(&cfg.BackgroundSpeed, o.BackgroundSpeed)

	if o.Placeholder != nil {
		p := *o.Placeholder
		cfg.Placeholder = orrery.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	if o.SunLayers != nil {
		layers := make([]orrery.SunLayer, 0, len(o.SunLayers))
		for _, l := range o.SunLayers {
			layers = append(layers, orrery.SunLayer{
				Image: orrery.ImageName(l.Image),
				Blend: parseBlend(l.Blend),
				Flip:  l.Flip,
				Speed: l.Speed,
			})
		}
		cfg.SunLayers = layers
	}
	return cfg
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// parseBlend maps a theme-file blend name to its mode. Unknown names
// fall back to normal blending rather than failing the whole theme.
func parseBlend(name string) orrery.BlendMode {
	switch strings.ToLower(name) {
	case "multiply":
		return orrery.BlendMultiply
	case "screen":
		return orrery.BlendScreen
	case "additive", "add":
		return orrery.BlendAdditive
	case "", "normal":
		return orrery.BlendNormal
	default:
		orrery.Logger().Warn("unknown blend name in theme overrides", "blend", name)
		return orrery.BlendNormal
	}
}

// LoadThemeConfig reads a theme override file and applies it to the
// named theme's defaults, validating the result.
func LoadThemeConfig(fsys fs.FS, p string, theme orrery.Theme) (orrery.Config, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return orrery.Config{}, fmt.Errorf("asset: read theme overrides: %w", err)
	}
	o, err := ParseOverrides(data)
	if err != nil {
		return orrery.Config{}, err
	}
	cfg := o.Apply(orrery.ThemeConfig(theme))
	if err := cfg.Validate(); err != nil {
		return orrery.Config{}, fmt.Errorf("asset: theme overrides produce invalid config: %w", err)
	}
	return cfg, nil
}
