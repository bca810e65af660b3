package orrery

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// ImageResult delivers a loaded image set, or the load failure, to a
// Scene. A loader sends exactly one value on the future channel (see
// asset.LoadAsync).
type ImageResult struct {
	Images *ImageSet
	Err    error
}

// Scene orchestrates the per-frame pipeline: clock, orbit offsets,
// shadow angles, compositor. An external frame driver calls Render
// once per display refresh; the Scene itself owns no thread or timer.
//
// A Scene starts in a loading state and renders a placeholder until
// its image set resolves. With WithImageFuture the transition is
// observed exactly once, when the future delivers; the set is never
// polled for completeness afterwards.
type Scene struct {
	cfg    Config
	images *ImageSet
	future <-chan ImageResult
	bg     Background
	ready  bool
}

// New constructs a Scene for a theme variant. The theme config is
// resolved once, validated, and read-only afterwards; independent
// scenes never share config state.
func New(theme Theme, opts ...Option) (*Scene, error) {
	o := sceneOptions{cfg: ThemeConfig(theme)}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("orrery: new scene: %w", err)
	}

	s := &Scene{
		cfg:    o.cfg,
		images: o.images,
		future: o.future,
		bg:     o.bg,
	}
	if o.placeholder != nil {
		s.cfg.Placeholder = *o.placeholder
	}

	if s.images != nil {
		if s.images.Ready() {
			s.ready = true
		} else {
			Logger().Warn("scene constructed with incomplete image set",
				slog.Any("missing", s.images.Missing()))
		}
	}
	return s, nil
}

// Config returns a copy of the scene's resolved configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Ready reports whether the image set has resolved and the scene is
// rendering frames rather than the placeholder.
func (s *Scene) Ready() bool {
	return s.ready
}

// Render draws one frame for the given viewport and instant. The
// timestamp is an explicit parameter so any instant can be rendered
// deterministically; the caller typically passes time.Now().
//
// Non-finite or non-positive viewport dimensions skip the frame
// entirely rather than feeding garbage into the trigonometry. While
// loading, the frame is a solid placeholder fill.
func (s *Scene) Render(dst Surface, viewportW, viewportH float64, t time.Time) {
	if !validViewport(viewportW, viewportH) {
		Logger().Warn("skipping frame: invalid viewport",
			slog.Float64("width", viewportW), slog.Float64("height", viewportH))
		return
	}

	if !s.ready {
		s.observeFuture()
	}
	if !s.ready {
		dst.FillRect(Rect{X: 0, Y: 0, W: viewportW, H: viewportH}, s.cfg.Placeholder)
		return
	}

	f := ComputeFrame(t, viewportW, viewportH, &s.cfg)
	Compose(dst, viewportW, viewportH, f, s.images, &s.cfg, s.bg)
}

// observeFuture performs the single non-blocking check for the image
// future. Once a result arrives, successful or not, the future is
// dropped: the transition fires at most once.
func (s *Scene) observeFuture() {
	if s.future == nil {
		return
	}
	select {
	case res, ok := <-s.future:
		s.future = nil
		if !ok {
			Logger().Warn("image future closed without a result")
			return
		}
		if res.Err != nil {
			Logger().Warn("image loading failed", slog.Any("error", res.Err))
			return
		}
		if !res.Images.Ready() {
			Logger().Warn("image future delivered an incomplete set",
				slog.Any("missing", res.Images.Missing()))
			return
		}
		s.images = res.Images
		s.ready = true
		Logger().Info("image set resolved, scene ready",
			slog.String("theme", s.cfg.Theme.String()))
	default:
		// Still loading; render the placeholder.
	}
}

// validViewport reports whether both dimensions are positive finite
// numbers.
func validViewport(w, h float64) bool {
	if math.IsNaN(w) || math.IsNaN(h) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return false
	}
	return w > 0 && h > 0
}
