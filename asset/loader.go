// Package asset loads the scene's eight images from a filesystem and
// hands them to a Scene, either synchronously or as the single-shot
// future the Scene consumes while rendering its placeholder.
//
// PNG, JPEG and WebP sources are supported. Decoded pixels stay in
// their image.Image form; surface backends pull them through the
// Source method when they need to sample.
package asset

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/orrery"
)

// exts lists the file extensions tried for each logical image, in
// preference order.
var exts = []string{".png", ".webp", ".jpg", ".jpeg"}

// decodeConcurrency bounds parallel decodes; eight small textures do
// not justify a goroutine per CPU on large machines.
const decodeConcurrency = 4

// Bitmap is a decoded texture handle. It implements orrery.Image and
// exposes its pixels through Source for surface backends.
type Bitmap struct {
	name orrery.ImageName
	src  image.Image
}

var _ orrery.Image = (*Bitmap)(nil)

// Name returns the logical image name this bitmap was loaded for.
func (b *Bitmap) Name() orrery.ImageName { return b.name }

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.src.Bounds().Dx() }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.src.Bounds().Dy() }

// Source returns the decoded pixels.
func (b *Bitmap) Source() image.Image { return b.src }

// Load decodes the full image set from dir inside fsys. Each logical
// name resolves to the first of name.png, name.webp, name.jpg,
// name.jpeg present. Decoding runs concurrently; the first failure
// cancels the rest.
func Load(ctx context.Context, fsys fs.FS, dir string) (*orrery.ImageSet, error) {
	names := orrery.ImageNames()
	bitmaps := make([]*Bitmap, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(decodeConcurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := loadOne(fsys, dir, name)
			if err != nil {
				return err
			}
			bitmaps[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := orrery.NewImageSet()
	for i, name := range names {
		set.Set(name, bitmaps[i])
	}
	orrery.Logger().Debug("image set loaded", "dir", dir, "count", set.Len())
	return set, nil
}

// LoadAsync starts Load in the background and returns the future a
// Scene consumes via orrery.WithImageFuture. Exactly one result is
// sent, then the channel is closed.
func LoadAsync(ctx context.Context, fsys fs.FS, dir string) <-chan orrery.ImageResult {
	ch := make(chan orrery.ImageResult, 1)
	go func() {
		defer close(ch)
		set, err := Load(ctx, fsys, dir)
		ch <- orrery.ImageResult{Images: set, Err: err}
	}()
	return ch
}

// loadOne resolves and decodes a single logical image.
func loadOne(fsys fs.FS, dir string, name orrery.ImageName) (*Bitmap, error) {
	for _, ext := range exts {
		p := path.Join(dir, string(name)+ext)
		f, err := fsys.Open(p)
		if err != nil {
			continue
		}
		img, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("asset: decode %s: %w", p, err)
		}
		orrery.Logger().Debug("image decoded",
			"name", string(name), "format", format,
			"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		return &Bitmap{name: name, src: img}, nil
	}
	return nil, fmt.Errorf("asset: image %q not found under %s (tried %v)", name, dir, exts)
}
