// Package backdrop renders decorated backgrounds for screenshots and
// other captured images.
//
// # Overview
//
// backdrop is a pure Go rendering library built around a single fast
// primitive: filling an RGBA pixel buffer with a two-color linear
// gradient at an arbitrary angle. On top of that primitive it layers
// the pieces a screenshot tool needs: solid and image backgrounds, a
// compositing processor (padding, rounded corners, drop shadow,
// aspect-ratio framing), text overlays, and PNG/JPEG export.
//
// # Quick Start
//
//	import "github.com/rasterly/backdrop"
//
//	// Render a gradient into a pixel buffer
//	g := backdrop.NewLinearGradient(
//	    backdrop.MustParseHex("#36d1dc"),
//	    backdrop.MustParseHex("#5b86e5"),
//	    backdrop.Degrees(90),
//	)
//	pm := backdrop.NewPixmap(1920, 1080)
//	if err := g.FillPixmap(pm); err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("background.png")
//
//	// Or frame a screenshot over it
//	p := backdrop.NewProcessor(
//	    backdrop.WithBackground(g),
//	    backdrop.WithPadding(5),
//	    backdrop.WithCornerRadius(2),
//	    backdrop.WithShadow(0.6),
//	)
//	if err := p.LoadSource("shot.png"); err != nil {
//	    log.Fatal(err)
//	}
//	img, err := p.Process()
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Gradient angles in degrees, 0 is right, increases counter-clockwise
//
// # Buffers
//
// The gradient fill writes into caller-supplied byte slices laid out
// row-major, four bytes per pixel in R, G, B, A order. Dimensions and
// buffer length are validated before the first byte is written; the
// fill never reads the buffer's prior contents and always writes a
// fully opaque alpha channel.
package backdrop

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
