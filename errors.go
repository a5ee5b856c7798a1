package backdrop

import "errors"

var (
	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("backdrop: invalid dimensions")

	// ErrBufferTooSmall is returned when a pixel buffer is shorter than
	// width*height*4 bytes. Nothing is written when this is returned.
	ErrBufferTooSmall = errors.New("backdrop: buffer too small")

	// ErrBadHexColor is returned for hex color strings that are not in
	// #RGB or #RRGGBB form.
	ErrBadHexColor = errors.New("backdrop: malformed hex color")

	// ErrBadAspectRatio is returned for aspect ratio strings that cannot
	// be parsed or have a zero denominator.
	ErrBadAspectRatio = errors.New("backdrop: malformed aspect ratio")

	// ErrPresetOutOfRange is returned by Preset for an unknown index.
	ErrPresetOutOfRange = errors.New("backdrop: gradient preset index out of range")

	// ErrNoImage is returned when an ImageBackground is used before an
	// image has been loaded.
	ErrNoImage = errors.New("backdrop: no image loaded")

	// ErrNoSource is returned by Processor.Process when no source image
	// has been set.
	ErrNoSource = errors.New("backdrop: no source image to process")
)
