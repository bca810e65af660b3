// Command orreryrender renders the celestial clock scene to a PNG
// frame sequence using the software surface. Frames advance the scene
// clock by 1/fps each and are paced to the same rate in wall time, so
// the sequence plays back true to speed.
//
// With -assets it loads the eight scene textures from a directory;
// without it, built-in procedural textures are used so the command
// works out of the box.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/gogpu/orrery"
	"github.com/gogpu/orrery/asset"
	"github.com/gogpu/orrery/software"
	"github.com/gogpu/orrery/starfield"
)

func main() {
	var (
		themeName = flag.String("theme", "dark", "scene theme: light or dark")
		themeFile = flag.String("theme-file", "", "JSON theme overrides (optional)")
		assets    = flag.String("assets", "", "texture directory; procedural textures when empty")
		width     = flag.Int("width", 512, "frame width in pixels")
		height    = flag.Int("height", 512, "frame height in pixels")
		frames    = flag.Int("frames", 120, "number of frames to render")
		fps       = flag.Float64("fps", 30, "frames per second, both scene time and pacing")
		start     = flag.String("start", "", "scene start time, RFC3339; wall clock when empty")
		outDir    = flag.String("out", "frames", "output directory")
		stars     = flag.Bool("starfield", true, "draw the real-sky starfield layer")
		longitude = flag.Float64("longitude", 0, "observer longitude in degrees for the starfield")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		orrery.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(*themeName, *themeFile, *assets, *outDir, *start,
		*width, *height, *frames, *fps, *stars, *longitude); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
}

func run(themeName, themeFile, assets, outDir, start string,
	width, height, frames int, fps float64, stars bool, longitude float64) error {

	theme, err := parseTheme(themeName)
	if err != nil {
		return err
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %v", fps)
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	startAt := time.Now()
	if start != "" {
		startAt, err = time.Parse(time.RFC3339, start)
		if err != nil {
			return fmt.Errorf("parsing -start: %w", err)
		}
	}

	opts := []orrery.Option{}
	if themeFile != "" {
		dir, file := filepath.Split(themeFile)
		if dir == "" {
			dir = "."
		}
		cfg, err := asset.LoadThemeConfig(os.DirFS(dir), file, theme)
		if err != nil {
			return err
		}
		opts = append(opts, orrery.WithConfig(cfg))
		log.Info().Str("file", themeFile).Msg("theme overrides applied")
	}

	if assets != "" {
		set, err := asset.Load(context.Background(), os.DirFS(assets), ".")
		if err != nil {
			return err
		}
		opts = append(opts, orrery.WithImageSet(set))
		log.Info().Str("dir", assets).Msg("textures loaded")
	} else {
		opts = append(opts, orrery.WithImageSet(proceduralTextures()))
		log.Info().Msg("using procedural textures")
	}

	if stars {
		opts = append(opts, orrery.WithBackground(starfield.New(
			starfield.WithLongitude(longitude),
		)))
	}

	scene, err := orrery.New(theme, opts...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	frameDur := time.Duration(float64(time.Second) / fps)
	limiter := rate.NewLimiter(rate.Limit(fps), 1)
	surface := software.New(width, height)

	log.Info().
		Str("theme", themeName).
		Int("frames", frames).
		Float64("fps", fps).
		Str("size", fmt.Sprintf("%dx%d", width, height)).
		Time("start", startAt).
		Msg("rendering")

	renderStart := time.Now()
	for i := 0; i < frames; i++ {
		if err := limiter.Wait(context.Background()); err != nil {
			return err
		}

		surface.Clear(orrery.Transparent)
		sceneTime := startAt.Add(time.Duration(i) * frameDur)
		scene.Render(surface, float64(width), float64(height), sceneTime)

		name := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := surface.Pixmap().SavePNG(name); err != nil {
			return err
		}
		if (i+1)%30 == 0 {
			log.Info().Int("frame", i+1).Int("total", frames).Msg("progress")
		}
	}

	log.Info().
		Int("frames", frames).
		Dur("elapsed", time.Since(renderStart)).
		Str("dir", outDir).
		Msg("done")
	return nil
}

func parseTheme(name string) (orrery.Theme, error) {
	switch name {
	case "light":
		return orrery.ThemeLight, nil
	case "dark":
		return orrery.ThemeDark, nil
	default:
		return 0, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
}
