package orrery

// Option configures a Scene during creation.
// Use functional options to customize Scene behavior.
//
// Example:
//
//	// Placeholder until the loader delivers:
//	scene, err := orrery.New(orrery.ThemeDark,
//	    orrery.WithImageFuture(ch),
//	    orrery.WithBackground(starfield.New()))
type Option func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	cfg         Config
	images      *ImageSet
	future      <-chan ImageResult
	bg          Background
	placeholder *RGBA
}

// WithImageSet provides an already resolved image set. The set must
// be complete; an incomplete set leaves the scene in its placeholder
// state permanently (the set is not re-checked per frame).
func WithImageSet(images *ImageSet) Option {
	return func(o *sceneOptions) {
		o.images = images
	}
}

// WithImageFuture provides a single-shot channel that delivers the
// image set once loading completes. The scene observes the channel
// without blocking and switches render paths exactly once.
//
// asset.LoadAsync produces a compatible channel.
func WithImageFuture(ch <-chan ImageResult) Option {
	return func(o *sceneOptions) {
		o.future = ch
	}
}

// WithBackground inserts an independent background layer between the
// stars backdrop and the sun (see orrery/starfield).
func WithBackground(bg Background) Option {
	return func(o *sceneOptions) {
		o.bg = bg
	}
}

// WithPlaceholder overrides the theme's loading-state fill color.
func WithPlaceholder(c RGBA) Option {
	return func(o *sceneOptions) {
		o.placeholder = &c
	}
}

// WithConfig replaces the theme config entirely, for callers that
// derived a custom config (for example via asset.ParseThemeOverrides).
// The config is validated by New.
func WithConfig(cfg Config) Option {
	return func(o *sceneOptions) {
		o.cfg = cfg
	}
}
