package software

import "github.com/gogpu/orrery"

// blendPixel composites a source color over a destination color with
// the given blend mode. Colors are straight (not premultiplied)
// floats in [0, 1].
func blendPixel(mode orrery.BlendMode, dst, src orrery.RGBA) orrery.RGBA {
	switch mode {
	case orrery.BlendMultiply:
		return separableBlend(dst, src, func(s, d float64) float64 {
			return s * d
		})
	case orrery.BlendScreen:
		return separableBlend(dst, src, func(s, d float64) float64 {
			return s + d - s*d
		})
	case orrery.BlendAdditive:
		return additiveBlend(dst, src)
	default:
		return sourceOver(dst, src)
	}
}

// sourceOver is standard alpha compositing.
func sourceOver(dst, src orrery.RGBA) orrery.RGBA {
	sa := src.A
	if sa <= 0 {
		return dst
	}
	if sa >= 1 {
		return src
	}

	outA := sa + dst.A*(1-sa)
	if outA <= 0 {
		return orrery.Transparent
	}
	return orrery.RGBA{
		R: (src.R*sa + dst.R*dst.A*(1-sa)) / outA,
		G: (src.G*sa + dst.G*dst.A*(1-sa)) / outA,
		B: (src.B*sa + dst.B*dst.A*(1-sa)) / outA,
		A: outA,
	}
}

// separableBlend applies a per-channel blend function B using the
// standard compositing formula for straight colors:
//
//	out = (1-Sa)*D + (1-Da)*S + Sa*Da*B(Sc, Dc)
//
// per channel on premultiplied components, then unpremultiplies.
func separableBlend(dst, src orrery.RGBA, blendChan func(s, d float64) float64) orrery.RGBA {
	sa, da := src.A, dst.A
	if sa <= 0 {
		return dst
	}
	if da <= 0 {
		return src
	}

	outA := sa + da*(1-sa)
	if outA <= 0 {
		return orrery.Transparent
	}

	mix := func(s, d float64) float64 {
		pre := d*da*(1-sa) + s*sa*(1-da) + sa*da*blendChan(s, d)
		return pre / outA
	}
	return orrery.RGBA{
		R: clamp01(mix(src.R, dst.R)),
		G: clamp01(mix(src.G, dst.G)),
		B: clamp01(mix(src.B, dst.B)),
		A: outA,
	}
}

// additiveBlend implements the plus operator: premultiplied source
// and destination sum, clamped to opaque white.
func additiveBlend(dst, src orrery.RGBA) orrery.RGBA {
	outA := clamp01(src.A + dst.A)
	if outA <= 0 {
		return orrery.Transparent
	}
	return orrery.RGBA{
		R: clamp01((src.R*src.A + dst.R*dst.A) / outA),
		G: clamp01((src.G*src.A + dst.G*dst.A) / outA),
		B: clamp01((src.B*src.A + dst.B*dst.A) / outA),
		A: outA,
	}
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
