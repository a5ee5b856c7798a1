package backdrop

import (
	"fmt"
	"image"
	"image/draw"
)

// SolidBackground fills the frame with a single, possibly translucent
// color. Alpha is a fraction in [0, 1]; values outside are clamped.
type SolidBackground struct {
	Color Color
	Alpha float64
}

// NewSolidBackground creates an opaque solid background.
func NewSolidBackground(c Color) SolidBackground {
	return SolidBackground{Color: c, Alpha: 1}
}

// Name returns a stable identifier for the solid configuration.
func (s SolidBackground) Name() string {
	return fmt.Sprintf("solid-%s-%g", s.Color.Hex(), s.alpha())
}

func (s SolidBackground) alpha() float64 {
	a := s.Alpha
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Prepare renders the solid color at the given size, implementing
// Background.
func (s SolidBackground) Prepare(width, height int) (*image.RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	src := image.NewUniform(s.Color.NRGBA(uint8(s.alpha() * 255)))
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
	return img, nil
}
