package backdrop

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for LoadImage
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// ImageBackground uses a picture as the frame background. The picture
// is scaled to cover the requested size, preserving its aspect ratio,
// and center-cropped.
type ImageBackground struct {
	path string
	img  *image.RGBA
}

// NewImageBackground creates an image background from a file on disk.
func NewImageBackground(path string) (*ImageBackground, error) {
	b := &ImageBackground{}
	if err := b.Load(path); err != nil {
		return nil, err
	}
	return b, nil
}

// Load replaces the background picture with the image at path.
func (b *ImageBackground) Load(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("backdrop: decoding %s: %w", path, err)
	}

	Logger().Debug("image background loaded",
		"path", path, "format", format, "bounds", src.Bounds())

	b.path = path
	b.img = toRGBA(src)
	return nil
}

// Name returns a stable identifier for the image configuration.
func (b *ImageBackground) Name() string {
	if b.path == "" {
		return "image-none"
	}
	return "image-" + filepath.Base(b.path)
}

// Prepare scales the picture to cover width x height and center-crops
// the overhang, implementing Background. Returns ErrNoImage if no
// picture has been loaded.
func (b *ImageBackground) Prepare(width, height int) (*image.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if b == nil || b.img == nil {
		return nil, ErrNoImage
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dst, nil
	}

	// Cover-crop: scale a centered source window with the target's
	// aspect ratio onto the whole destination.
	sb := b.img.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	imgRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(width) / float64(height)

	window := sb
	if imgRatio > targetRatio {
		// Wider than target: crop left and right.
		w := int(float64(srcH) * targetRatio)
		x0 := sb.Min.X + (srcW-w)/2
		window = image.Rect(x0, sb.Min.Y, x0+w, sb.Max.Y)
	} else if imgRatio < targetRatio {
		// Taller than target: crop top and bottom.
		h := int(float64(srcW) / targetRatio)
		y0 := sb.Min.Y + (srcH-h)/2
		window = image.Rect(sb.Min.X, y0, sb.Max.X, y0+h)
	}

	xdraw.CatmullRom.Scale(dst, dst.Bounds(), b.img, window, xdraw.Src, nil)
	return dst, nil
}

// toRGBA converts any image to *image.RGBA without copying when the
// input already is one.
func toRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	dst := image.NewRGBA(src.Bounds())
	xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
	return dst
}
