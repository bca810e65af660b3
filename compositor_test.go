package orrery

import (
	"math"
	"testing"
	"time"
)

// opKind discriminates captured surface calls.
type opKind uint8

const (
	opFillRect opKind = iota
	opFillCircle
	opDrawImage
	opPushClip
	opPopClip
)

// captureOp is one recorded surface call.
type captureOp struct {
	kind   opKind
	rect   Rect
	color  RGBA
	cx, cy float64
	radius float64
	img    Image
	opts   DrawImageOptions
}

// captureSurface records every call for order and parameter assertions.
type captureSurface struct {
	ops []captureOp
}

func (s *captureSurface) FillRect(r Rect, c RGBA) {
	s.ops = append(s.ops, captureOp{kind: opFillRect, rect: r, color: c})
}

func (s *captureSurface) FillCircle(cx, cy, radius float64, c RGBA) {
	s.ops = append(s.ops, captureOp{kind: opFillCircle, cx: cx, cy: cy, radius: radius, color: c})
}

func (s *captureSurface) DrawImage(img Image, opts DrawImageOptions) {
	s.ops = append(s.ops, captureOp{kind: opDrawImage, img: img, opts: opts})
}

func (s *captureSurface) PushClip(r Rect) {
	s.ops = append(s.ops, captureOp{kind: opPushClip, rect: r})
}

func (s *captureSurface) PopClip() {
	s.ops = append(s.ops, captureOp{kind: opPopClip})
}

// drawImages filters the recorded ops down to image draws.
func (s *captureSurface) drawImages() []captureOp {
	var draws []captureOp
	for _, op := range s.ops {
		if op.kind == opDrawImage {
			draws = append(draws, op)
		}
	}
	return draws
}

// fakeImage is a stand-in bitmap handle.
type fakeImage struct {
	name ImageName
	w, h int
}

func (f *fakeImage) Width() int  { return f.w }
func (f *fakeImage) Height() int { return f.h }

// readyImageSet builds a complete set of fake images.
func readyImageSet() *ImageSet {
	set := NewImageSet()
	for _, name := range ImageNames() {
		set.Set(name, &fakeImage{name: name, w: 64, h: 64})
	}
	return set
}

func TestSunPassPlanOrder(t *testing.T) {
	cfg := ThemeConfig(ThemeLight)
	plan := sunPassPlan(cfg.SunLayers)

	if len(plan) != 8 {
		t.Fatalf("len(plan) = %d, want 8 for a four-layer config", len(plan))
	}
	for i, pass := range plan {
		wantFlip := i >= 4
		if pass.flip != wantFlip {
			t.Errorf("pass %d: flip = %v, want %v", i, pass.flip, wantFlip)
		}
		wantLayer := cfg.SunLayers[i%4]
		if pass.layer != wantLayer {
			t.Errorf("pass %d: layer = %+v, want %+v", i, pass.layer, wantLayer)
		}
	}
}

func TestSunPassPlanEmptyLayers(t *testing.T) {
	if plan := sunPassPlan(nil); len(plan) != 0 {
		t.Errorf("len(plan) = %d, want 0 for no layers", len(plan))
	}
}

func TestComposeDrawSequence(t *testing.T) {
	cfg := ThemeConfig(ThemeLight)
	images := readyImageSet()
	dst := &captureSurface{}
	const w, h = 1920.0, 1080.0

	f := ComputeFrame(at(10, 9, 8, 700), w, h, &cfg)
	Compose(dst, w, h, f, images, &cfg, nil)

	// stars + sun disc + 8 sun passes + earth + shadow + moon + shadow
	if len(dst.ops) != 14 {
		t.Fatalf("len(ops) = %d, want 14", len(dst.ops))
	}

	// 1. Stars backdrop: oversized square, centered, background drift.
	stars := dst.ops[0]
	if stars.kind != opDrawImage {
		t.Fatalf("op 0 kind = %v, want DrawImage (stars)", stars.kind)
	}
	if got := stars.img.(*fakeImage).name; got != ImageStars {
		t.Errorf("op 0 image = %v, want %v", got, ImageStars)
	}
	if stars.opts.Size != w+h {
		t.Errorf("stars size = %v, want %v", stars.opts.Size, w+h)
	}
	if stars.opts.CenterX != w/2 || stars.opts.CenterY != h/2 {
		t.Errorf("stars center = (%v, %v), want viewport center", stars.opts.CenterX, stars.opts.CenterY)
	}
	if want := f.Angles.Earth * cfg.BackgroundSpeed; stars.opts.Rotation != want {
		t.Errorf("stars rotation = %v, want %v", stars.opts.Rotation, want)
	}

	// 2. Sun base disc: white, at the sun offset.
	disc := dst.ops[1]
	if disc.kind != opFillCircle {
		t.Fatalf("op 1 kind = %v, want FillCircle (sun disc)", disc.kind)
	}
	if disc.color != White {
		t.Errorf("sun disc color = %+v, want white", disc.color)
	}
	if want := w*cfg.SunSize*cfg.SunBaseSize/2; math.Abs(disc.radius-want) > 1e-9 {
		t.Errorf("sun disc radius = %v, want %v", disc.radius, want)
	}
	if disc.cx != w/2+f.SunOffset.X || disc.cy != h/2+f.SunOffset.Y {
		t.Errorf("sun disc center = (%v, %v), want sun position", disc.cx, disc.cy)
	}

	// 3. Eight sun passes: flips {false x4, true x4}, blend modes
	// cycling the configured list once per flip state.
	for i := 0; i < 8; i++ {
		op := dst.ops[2+i]
		if op.kind != opDrawImage {
			t.Fatalf("op %d kind = %v, want DrawImage (sun pass)", 2+i, op.kind)
		}
		layer := cfg.SunLayers[i%4]
		if got := op.img.(*fakeImage).name; got != layer.Image {
			t.Errorf("sun pass %d image = %v, want %v", i, got, layer.Image)
		}
		if op.opts.Blend != layer.Blend {
			t.Errorf("sun pass %d blend = %v, want %v", i, op.opts.Blend, layer.Blend)
		}
		if wantFlip := i >= 4; op.opts.FlipH != wantFlip {
			t.Errorf("sun pass %d flip = %v, want %v", i, op.opts.FlipH, wantFlip)
		}
		if want := f.Angles.Sun * layer.Speed * cfg.SunSpeed; op.opts.Rotation != want {
			t.Errorf("sun pass %d rotation = %v, want %v", i, op.opts.Rotation, want)
		}
		if op.opts.Size != w*cfg.SunSize {
			t.Errorf("sun pass %d size = %v, want %v", i, op.opts.Size, w*cfg.SunSize)
		}
	}

	// 4. Earth, then its shadow rotated by the raw sun angle.
	earth, earthShadow := dst.ops[10], dst.ops[11]
	if got := earth.img.(*fakeImage).name; got != ImageEarth {
		t.Errorf("op 10 image = %v, want %v", got, ImageEarth)
	}
	if want := f.Angles.Earth * cfg.EarthSpin; earth.opts.Rotation != want {
		t.Errorf("earth rotation = %v, want %v", earth.opts.Rotation, want)
	}
	if got := earthShadow.img.(*fakeImage).name; got != ImageShadow {
		t.Errorf("op 11 image = %v, want %v", got, ImageShadow)
	}
	if earthShadow.opts.Rotation != f.Angles.Sun {
		t.Errorf("earth shadow rotation = %v, want sun angle %v", earthShadow.opts.Rotation, f.Angles.Sun)
	}
	if want := w * cfg.EarthSize * cfg.EarthShadowShrink; earthShadow.opts.Size != want {
		t.Errorf("earth shadow size = %v, want %v", earthShadow.opts.Size, want)
	}
	if earthShadow.opts.CenterX != earth.opts.CenterX || earthShadow.opts.CenterY != earth.opts.CenterY {
		t.Error("earth shadow not drawn at the earth's position")
	}

	// 5. Moon at earth+moon offset, then its shadow using the derived
	// shadow angle, not the raw sun angle.
	moon, moonShadow := dst.ops[12], dst.ops[13]
	if got := moon.img.(*fakeImage).name; got != ImageMoon {
		t.Errorf("op 12 image = %v, want %v", got, ImageMoon)
	}
	wantX := w/2 + f.EarthOffset.X + f.MoonOffset.X
	wantY := h/2 + f.EarthOffset.Y + f.MoonOffset.Y
	if moon.opts.CenterX != wantX || moon.opts.CenterY != wantY {
		t.Errorf("moon center = (%v, %v), want (%v, %v)", moon.opts.CenterX, moon.opts.CenterY, wantX, wantY)
	}
	if want := f.Angles.Earth * cfg.MoonSpin; moon.opts.Rotation != want {
		t.Errorf("moon rotation = %v, want %v", moon.opts.Rotation, want)
	}
	if moonShadow.opts.Rotation != f.MoonShadow {
		t.Errorf("moon shadow rotation = %v, want derived angle %v", moonShadow.opts.Rotation, f.MoonShadow)
	}
	if moonShadow.opts.Rotation == f.Angles.Sun {
		t.Error("moon shadow must not reuse the earth shadow's sun-angle rotation")
	}
}

func TestComposeSkipsMissingImages(t *testing.T) {
	cfg := ThemeConfig(ThemeLight)
	images := readyImageSet()
	images.Set(ImageSun2, nil)
	images.Set(ImageMoon, nil)

	dst := &captureSurface{}
	f := ComputeFrame(at(1, 2, 3, 4), 800, 600, &cfg)
	Compose(dst, 800, 600, f, images, &cfg, nil)

	// sun_2 appears in two passes, the moon in one draw: three skipped.
	if len(dst.ops) != 11 {
		t.Errorf("len(ops) = %d, want 11 with three draws skipped", len(dst.ops))
	}
	for _, op := range dst.drawImages() {
		name := op.img.(*fakeImage).name
		if name == ImageSun2 || name == ImageMoon {
			t.Errorf("draw attempted for unresolved image %v", name)
		}
	}
}

// markerBackground draws a sentinel so ordering can be asserted.
type markerBackground struct {
	calls int
}

func (m *markerBackground) DrawBackground(dst Surface, w, h float64, _ time.Time) {
	m.calls++
	dst.FillRect(Rect{X: -1, Y: -1, W: 1, H: 1}, Black)
}

func TestComposeBackgroundLayerOrder(t *testing.T) {
	cfg := ThemeConfig(ThemeDark)
	images := readyImageSet()
	dst := &captureSurface{}
	bg := &markerBackground{}

	f := ComputeFrame(at(22, 15, 0, 0), 640, 480, &cfg)
	Compose(dst, 640, 480, f, images, &cfg, bg)

	if bg.calls != 1 {
		t.Fatalf("background drawn %d times, want 1", bg.calls)
	}
	// The sentinel must land after the stars draw and before the sun disc.
	if dst.ops[0].kind != opDrawImage {
		t.Errorf("op 0 = %v, want stars draw", dst.ops[0].kind)
	}
	if dst.ops[1].kind != opFillRect {
		t.Errorf("op 1 = %v, want background sentinel", dst.ops[1].kind)
	}
	if dst.ops[2].kind != opFillCircle {
		t.Errorf("op 2 = %v, want sun disc", dst.ops[2].kind)
	}
}

func TestComposeSunLayerOwnFlipCombines(t *testing.T) {
	cfg := ThemeConfig(ThemeLight)
	cfg.SunLayers = []SunLayer{{Image: ImageSun1, Blend: BlendScreen, Flip: true, Speed: 1}}
	images := readyImageSet()
	dst := &captureSurface{}

	f := ComputeFrame(at(0, 0, 0, 0), 100, 100, &cfg)
	Compose(dst, 100, 100, f, images, &cfg, nil)

	draws := dst.drawImages()
	// stars + one layer per flip state + earth/shadow/moon/shadow
	if len(draws) != 7 {
		t.Fatalf("len(draws) = %d, want 7", len(draws))
	}
	// The layer's own flip inverts the pass cycle: true, then false.
	if !draws[1].opts.FlipH || draws[2].opts.FlipH {
		t.Errorf("flips = (%v, %v), want (true, false) for a pre-flipped layer",
			draws[1].opts.FlipH, draws[2].opts.FlipH)
	}
}
