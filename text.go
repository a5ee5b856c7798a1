package backdrop

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Gravity anchors a text overlay to one of nine positions in the frame.
type Gravity int

const (
	GravityNorthWest Gravity = iota
	GravityNorth
	GravityNorthEast
	GravityWest
	GravityCenter
	GravityEast
	GravitySouthWest
	GravitySouth
	GravitySouthEast
)

var gravityNames = map[string]Gravity{
	"northwest": GravityNorthWest,
	"north":     GravityNorth,
	"northeast": GravityNorthEast,
	"west":      GravityWest,
	"center":    GravityCenter,
	"east":      GravityEast,
	"southwest": GravitySouthWest,
	"south":     GravitySouth,
	"southeast": GravitySouthEast,
}

// ParseGravity maps a gravity name like "southeast" to its constant.
// Unknown names fall back to GravitySouth, mirroring the lenient
// handling in screenshot annotation tools.
func ParseGravity(name string) Gravity {
	if g, ok := gravityNames[name]; ok {
		return g
	}
	return GravitySouth
}

// Text is a caption drawn over a processed image.
type Text struct {
	Content  string
	FontPath string  // empty uses the builtin bitmap face
	Color    Color   // fill color
	Size     float64 // point size for TTF fonts
	Gravity  Gravity
}

// NewText creates a white caption anchored to the bottom edge.
func NewText(content string) *Text {
	return &Text{
		Content: content,
		Color:   White,
		Size:    42,
		Gravity: GravitySouth,
	}
}

// Apply draws the caption onto img, inset by padding pixels from the
// anchored edges. Empty content is a no-op.
func (t *Text) Apply(img *image.RGBA, padding int) error {
	if t == nil || t.Content == "" {
		return nil
	}

	face, err := t.loadFace()
	if err != nil {
		return err
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.Color.NRGBA(255)),
		Face: face,
	}

	textW := d.MeasureString(t.Content).Ceil()
	metrics := face.Metrics()
	textH := (metrics.Ascent + metrics.Descent).Ceil()

	b := img.Bounds()
	x, y := anchor(t.Gravity, b.Dx(), b.Dy(), textW, textH, padding)
	d.Dot = fixed.P(b.Min.X+x, b.Min.Y+y+metrics.Ascent.Ceil())
	d.DrawString(t.Content)
	return nil
}

// loadFace opens the configured TTF font, falling back to the builtin
// bitmap face when no path is set or the file cannot be read.
func (t *Text) loadFace() (font.Face, error) {
	if t.FontPath == "" {
		return basicfont.Face7x13, nil
	}

	data, err := os.ReadFile(t.FontPath) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		Logger().Warn("font unavailable, using builtin face", "path", t.FontPath, "error", err)
		return basicfont.Face7x13, nil
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("backdrop: parsing font %s: %w", t.FontPath, err)
	}

	size := t.Size
	if size <= 0 {
		size = 42
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// anchor computes the top-left corner of a textW x textH box placed in
// a w x h frame according to gravity, inset by padding.
func anchor(g Gravity, w, h, textW, textH, padding int) (int, int) {
	var x int
	switch g {
	case GravityNorthWest, GravityWest, GravitySouthWest:
		x = padding
	case GravityNorth, GravityCenter, GravitySouth:
		x = (w - textW) / 2
	default: // east column
		x = w - textW - padding
	}

	var y int
	switch g {
	case GravityNorthWest, GravityNorth, GravityNorthEast:
		y = padding
	case GravityWest, GravityCenter, GravityEast:
		y = (h - textH) / 2
	default: // south row
		y = h - textH - padding
	}

	return x, y
}
