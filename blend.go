package orrery

// BlendMode defines how source pixels are combined with destination pixels
// when a layer is drawn over existing content.
type BlendMode uint8

// Blend modes.
const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal BlendMode = iota

	// BlendMultiply multiplies source and destination colors.
	// Result is always darker or equal. Formula: dst * src
	BlendMultiply

	// BlendScreen performs inverse multiply for lighter results.
	// Formula: 1 - (1-dst) * (1-src)
	BlendScreen

	// BlendAdditive adds source to destination, clamped to white.
	// Formula: min(dst + src, 1)
	BlendAdditive
)

// blendModeNames maps BlendMode values to their string representation.
var blendModeNames = [...]string{
	BlendNormal:   "Normal",
	BlendMultiply: "Multiply",
	BlendScreen:   "Screen",
	BlendAdditive: "Additive",
}

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}
