package backdrop

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	// maxDimension caps the longer side of a loaded source image.
	maxDimension = 1440

	// textPadding insets captions from the frame edge, in pixels.
	textPadding = 10
)

// shadowOffset shifts the drop shadow down-right of the source.
var shadowOffset = image.Pt(10, 10)

// Processor composites a source screenshot over a Background with
// padding, rounded corners, a drop shadow, aspect-ratio framing, and
// an optional caption.
//
// A Processor is not safe for concurrent use; render pipelines should
// use one per goroutine.
type Processor struct {
	background     Background
	padding        int     // percent of the source's smaller dimension
	cornerRadius   int     // percent of the source's smaller dimension
	shadowStrength float64 // 0 disables, 1 is maximum
	aspectRatio    float64 // 0 keeps the natural padded size
	text           *Text

	source     *image.RGBA
	sourcePath string
}

// NewProcessor creates a processor with the default light framing:
// 5% padding, 2% corner radius, no shadow, no background.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		padding:      5,
		cornerRadius: 2,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadSource reads and decodes the source image at path, downscaling
// it so neither side exceeds maxDimension. Reloading the same path is
// a no-op.
func (p *Processor) LoadSource(path string) error {
	if path == p.sourcePath && p.source != nil {
		return nil
	}

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

	Logger().Debug("source loaded", "path", path, "format", format, "bounds", src.Bounds())

	p.source = downscale(toRGBA(src), maxDimension)
	p.sourcePath = path
	return nil
}

// SetSource uses an in-memory image as the source, downscaling it so
// neither side exceeds maxDimension.
func (p *Processor) SetSource(img image.Image) {
	p.source = downscale(toRGBA(img), maxDimension)
	p.sourcePath = ""
}

// Process runs the full pipeline and returns the framed image.
// Returns ErrNoSource if no source image has been set. The processor's
// own source is never modified, so Process can be called repeatedly
// with different settings applied between calls.
func (p *Processor) Process() (*image.RGBA, error) {
	if p.source == nil {
		return nil, ErrNoSource
	}

	src := cloneRGBA(p.source)
	if p.padding < 0 {
		src = cropCentered(src, -p.padding)
	}
	if p.cornerRadius > 0 {
		src = roundCorners(src, p.cornerRadius)
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	frameW, frameH := p.frameDimensions(w, h)

	Logger().Debug("processing",
		"source", fmt.Sprintf("%dx%d", w, h),
		"frame", fmt.Sprintf("%dx%d", frameW, frameH),
		"padding", p.padding, "radius", p.cornerRadius, "shadow", p.shadowStrength)

	final, err := p.prepareBackground(frameW, frameH)
	if err != nil {
		return nil, err
	}

	paste := p.pastePosition(w, h, frameW, frameH)

	if p.shadowStrength > 0 {
		shadow, anchor := dropShadow(src, shadowOffset, p.shadowStrength)
		compositeOver(final, shadow, paste.Sub(anchor))
	}
	compositeOver(final, src, paste)

	if err := p.text.Apply(final, textPadding); err != nil {
		return nil, err
	}
	return final, nil
}

// prepareBackground renders the configured background, or a fully
// transparent frame when none is set.
func (p *Processor) prepareBackground(width, height int) (*image.RGBA, error) {
	if p.background == nil {
		return image.NewRGBA(image.Rect(0, 0, width, height)), nil
	}
	return p.background.Prepare(width, height)
}

// frameDimensions grows the source size by the configured padding and
// then widens or heightens the frame to satisfy the aspect ratio.
func (p *Processor) frameDimensions(w, h int) (int, int) {
	if p.padding >= 0 {
		pad := percentOfSmaller(w, h, p.padding)
		w += pad * 2
		h += pad * 2
	}

	if p.aspectRatio > 0 && CheckAspectRatioBounds(p.aspectRatio) {
		current := float64(w) / float64(h)
		if current < p.aspectRatio {
			w = int(float64(h) * p.aspectRatio)
		} else if current > p.aspectRatio {
			h = int(float64(w) / p.aspectRatio)
		}
	}

	return w, h
}

// pastePosition centers the source in the frame; with negative padding
// the cropped source fills the frame from the origin.
func (p *Processor) pastePosition(w, h, frameW, frameH int) image.Point {
	if p.padding >= 0 {
		return image.Pt((frameW-w)/2, (frameH-h)/2)
	}
	return image.Point{}
}

// percentOfSmaller converts a percentage of the smaller dimension into
// pixels.
func percentOfSmaller(w, h, percent int) int {
	smaller := w
	if h < w {
		smaller = h
	}
	return smaller * percent / 100
}

// cropCentered crops percent of the smaller dimension off every edge,
// keeping at least one pixel each way.
func cropCentered(src *image.RGBA, percent int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pad := percentOfSmaller(w, h, percent)

	cropW := w - 2*pad
	if cropW < 1 {
		cropW = 1
	}
	cropH := h - 2*pad
	if cropH < 1 {
		cropH = 1
	}

	x0 := b.Min.X + (w-cropW)/2
	y0 := b.Min.Y + (h-cropH)/2

	dst := image.NewRGBA(image.Rect(0, 0, cropW, cropH))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(x0, y0), draw.Src)
	return dst
}

// roundCorners multiplies the source's alpha by an anti-aliased
// rounded-rectangle mask with radius percent of the smaller dimension.
// The pixels are premultiplied, so every channel is scaled by the mask
// coverage, not just alpha.
func roundCorners(src *image.RGBA, percent int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	radius := float64(percentOfSmaller(w, h, percent))
	if radius <= 0 {
		return src
	}

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	mask := toRGBA(dc.Image())

	out := cloneRGBA(src)
	for i := 0; i < len(out.Pix); i += 4 {
		m := uint32(mask.Pix[i+3])
		if m == 255 {
			continue
		}
		out.Pix[i+0] = uint8(uint32(out.Pix[i+0]) * m / 255)
		out.Pix[i+1] = uint8(uint32(out.Pix[i+1]) * m / 255)
		out.Pix[i+2] = uint8(uint32(out.Pix[i+2]) * m / 255)
		out.Pix[i+3] = uint8(uint32(out.Pix[i+3]) * m / 255)
	}
	return out
}

// dropShadow builds a blurred black silhouette of src shifted by
// offset. It returns the shadow canvas and the anchor point inside it
// that lines up with the source's top-left corner, so the silhouette
// lands offset pixels away when the canvas is composited. Strength in
// (0, 1] scales both the blur radius and the shadow opacity.
func dropShadow(src *image.RGBA, offset image.Point, strength float64) (*image.RGBA, image.Point) {
	if strength > 1 {
		strength = 1
	}
	blurRadius := int(10 * strength)
	opacity := uint32(150 * strength)

	b := src.Bounds()
	margin := blurRadius * 5
	canvasW := b.Dx() + abs(offset.X) + margin
	canvasH := b.Dy() + abs(offset.Y) + margin
	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))

	at := image.Pt(margin/2+max(offset.X, 0), margin/2+max(offset.Y, 0))

	// Black silhouette: alpha follows the source scaled by opacity,
	// color channels stay zero (premultiplied black).
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := canvas.PixOffset(at.X, at.Y+y)
		for x := 0; x < b.Dx(); x++ {
			a := uint32(src.Pix[si+3])
			canvas.Pix[di+3] = uint8(a * opacity / 255)
			si += 4
			di += 4
		}
	}

	if blurRadius > 0 {
		canvas = blur.Gaussian(canvas, float64(blurRadius))
	}
	return canvas, at.Sub(offset)
}

// compositeOver alpha-composites src onto dst with its top-left corner
// at the given point in dst space.
func compositeOver(dst *image.RGBA, src *image.RGBA, at image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// downscale shrinks img so neither dimension exceeds limit, preserving
// aspect ratio. Images already within the limit are returned as-is.
func downscale(img *image.RGBA, limit int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return img
	}

	var newW, newH int
	if w >= h {
		newW = limit
		newH = h * limit / w
	} else {
		newH = limit
		newW = w * limit / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	Logger().Debug("downscaling source", "from", fmt.Sprintf("%dx%d", w, h),
		"to", fmt.Sprintf("%dx%d", newW, newH))

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
