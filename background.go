package backdrop

import (
	"fmt"
	"image"

	"github.com/rasterly/backdrop/cache"
)

// Background produces an image of a requested size to sit behind a
// composited screenshot. Implementations are small value-ish structs
// whose Name identifies their full configuration, so equal names mean
// pixel-identical output at any size.
type Background interface {
	// Prepare renders the background at the given size.
	// The returned image is owned by the caller and safe to mutate.
	Prepare(width, height int) (*image.RGBA, error)

	// Name returns a stable identifier for this configuration,
	// usable as a cache key component.
	Name() string
}

// gradientCacheLimit caps the number of rendered gradients kept in
// memory. Editors re-render the same handful of configurations at a
// handful of sizes, so a small cache absorbs nearly all repeat work.
const gradientCacheLimit = 100

var gradientCache = cache.New[string, *image.RGBA](gradientCacheLimit)

// ClearGradientCache drops all cached gradient renders.
func ClearGradientCache() {
	gradientCache.Clear()
}

// GradientCacheStats reports the gradient render cache statistics.
func GradientCacheStats() cache.Stats {
	return gradientCache.Stats()
}

// Name returns a stable identifier for the gradient configuration.
func (g LinearGradient) Name() string {
	return fmt.Sprintf("gradient-%s-%s-%g", g.Start.Hex(), g.End.Hex(), g.Angle.Degrees())
}

// Prepare renders the gradient at the given size, implementing
// Background. Renders are cached per configuration and size; the
// returned image is always a copy, so callers may draw over it.
func (g LinearGradient) Prepare(width, height int) (*image.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	key := fmt.Sprintf("%s-%dx%d", g.Name(), width, height)
	if img, ok := gradientCache.Get(key); ok {
		Logger().Debug("gradient cache hit", "key", key)
		return cloneRGBA(img), nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := g.Fill(img.Pix, width, height); err != nil {
		return nil, err
	}

	gradientCache.Set(key, cloneRGBA(img))
	return img, nil
}

// cloneRGBA returns a deep copy of an image.
func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
