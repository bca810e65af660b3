package orrery

import (
	"errors"
	"math"
	"testing"
)

func TestNewSceneValidatesConfig(t *testing.T) {
	bad := ThemeConfig(ThemeLight)
	bad.EarthOrbitDivX = 0
	if _, err := New(ThemeLight, WithConfig(bad)); err == nil {
		t.Error("New with zero divisor config: err = nil, want error")
	}
}

func TestSceneStartsLoading(t *testing.T) {
	scene, err := New(ThemeLight)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if scene.Ready() {
		t.Error("scene with no images reports ready")
	}

	dst := &captureSurface{}
	scene.Render(dst, 800, 600, at(12, 0, 0, 0))

	if len(dst.ops) != 1 {
		t.Fatalf("len(ops) = %d, want 1 (placeholder fill)", len(dst.ops))
	}
	op := dst.ops[0]
	if op.kind != opFillRect {
		t.Fatalf("op kind = %v, want FillRect", op.kind)
	}
	if op.color != scene.Config().Placeholder {
		t.Errorf("placeholder color = %+v, want %+v", op.color, scene.Config().Placeholder)
	}
	if op.rect != (Rect{X: 0, Y: 0, W: 800, H: 600}) {
		t.Errorf("placeholder rect = %+v, want full viewport", op.rect)
	}
}

func TestSceneRendersWhenImageSetReady(t *testing.T) {
	scene, err := New(ThemeDark, WithImageSet(readyImageSet()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !scene.Ready() {
		t.Fatal("scene with complete image set not ready")
	}

	dst := &captureSurface{}
	scene.Render(dst, 1024, 768, at(3, 30, 30, 0))
	if len(dst.ops) != 14 {
		t.Errorf("len(ops) = %d, want full 14-op frame", len(dst.ops))
	}
}

func TestScenePartialImageSetStaysLoading(t *testing.T) {
	partial := readyImageSet()
	partial.Set(ImageShadow, nil)

	scene, err := New(ThemeLight, WithImageSet(partial))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if scene.Ready() {
		t.Error("scene with partial image set reports ready")
	}

	dst := &captureSurface{}
	scene.Render(dst, 800, 600, at(0, 0, 0, 0))
	if len(dst.ops) != 1 || dst.ops[0].kind != opFillRect {
		t.Error("partial set should render only the placeholder")
	}
}

func TestSceneSkipsFrameOnInvalidViewport(t *testing.T) {
	scene, err := New(ThemeLight, WithImageSet(readyImageSet()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"negative height", 800, -1},
		{"NaN width", math.NaN(), 600},
		{"infinite height", 800, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := &captureSurface{}
			scene.Render(dst, tt.w, tt.h, at(6, 0, 0, 0))
			if len(dst.ops) != 0 {
				t.Errorf("len(ops) = %d, want 0 (frame skipped)", len(dst.ops))
			}
		})
	}
}

func TestSceneObservesImageFutureOnce(t *testing.T) {
	ch := make(chan ImageResult, 1)
	scene, err := New(ThemeLight, WithImageFuture(ch))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Nothing delivered yet: placeholder.
	dst := &captureSurface{}
	scene.Render(dst, 400, 300, at(0, 0, 0, 0))
	if len(dst.ops) != 1 || dst.ops[0].kind != opFillRect {
		t.Fatal("frame before future resolution should be the placeholder")
	}

	ch <- ImageResult{Images: readyImageSet()}

	dst = &captureSurface{}
	scene.Render(dst, 400, 300, at(0, 0, 0, 0))
	if !scene.Ready() {
		t.Fatal("scene not ready after future delivered a complete set")
	}
	if len(dst.ops) != 14 {
		t.Errorf("len(ops) = %d, want full frame after transition", len(dst.ops))
	}
}

func TestSceneFutureErrorKeepsPlaceholder(t *testing.T) {
	ch := make(chan ImageResult, 1)
	ch <- ImageResult{Err: errors.New("decode failed")}

	scene, err := New(ThemeLight, WithImageFuture(ch))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		dst := &captureSurface{}
		scene.Render(dst, 400, 300, at(0, 0, 0, 0))
		if len(dst.ops) != 1 || dst.ops[0].kind != opFillRect {
			t.Fatalf("render %d after failed load: want placeholder only", i)
		}
	}
	if scene.Ready() {
		t.Error("scene became ready despite load failure")
	}
}

func TestSceneFutureClosedWithoutResult(t *testing.T) {
	ch := make(chan ImageResult)
	close(ch)

	scene, err := New(ThemeLight, WithImageFuture(ch))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dst := &captureSurface{}
	scene.Render(dst, 400, 300, at(0, 0, 0, 0))
	if scene.Ready() {
		t.Error("closed future must not make the scene ready")
	}
	if len(dst.ops) != 1 || dst.ops[0].kind != opFillRect {
		t.Error("want placeholder after closed future")
	}
}

func TestScenePlaceholderOverride(t *testing.T) {
	want := RGB(0.5, 0, 0.5)
	scene, err := New(ThemeLight, WithPlaceholder(want))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dst := &captureSurface{}
	scene.Render(dst, 100, 100, at(0, 0, 0, 0))
	if dst.ops[0].color != want {
		t.Errorf("placeholder color = %+v, want %+v", dst.ops[0].color, want)
	}
}

func TestSceneRenderDeterministicForFixedInstant(t *testing.T) {
	scene, err := New(ThemeLight, WithImageSet(readyImageSet()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	instant := at(9, 41, 0, 0)
	a := &captureSurface{}
	b := &captureSurface{}
	scene.Render(a, 800, 600, instant)
	scene.Render(b, 800, 600, instant)

	if len(a.ops) != len(b.ops) {
		t.Fatalf("op counts differ: %d vs %d", len(a.ops), len(b.ops))
	}
	for i := range a.ops {
		if a.ops[i].opts != b.ops[i].opts || a.ops[i].kind != b.ops[i].kind {
			t.Errorf("op %d differs between identical renders", i)
		}
	}
}
