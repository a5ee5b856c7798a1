package backdrop

import (
	"fmt"
	"math"
	"runtime"

	"github.com/rasterly/backdrop/internal/parallel"
)

// LinearGradient is a two-color linear gradient at an arbitrary angle.
// The color varies along the direction vector (cos angle, sin angle)
// and is constant along the perpendicular, producing straight iso-color
// lines across the buffer. The start color sits at the corner with the
// minimum projection onto the direction vector, the end color at the
// maximum.
//
// Example:
//
//	g := backdrop.NewLinearGradient(backdrop.Black, backdrop.White, backdrop.Degrees(45))
//	buf := make([]uint8, 1920*1080*4)
//	if err := g.Fill(buf, 1920, 1080); err != nil {
//	    log.Fatal(err)
//	}
type LinearGradient struct {
	Start Color // Color at the minimum-projection corner
	End   Color // Color at the maximum-projection corner
	Angle Angle // Gradient direction
}

// NewLinearGradient creates a gradient running from start to end along
// the given angle.
func NewLinearGradient(start, end Color, angle Angle) LinearGradient {
	return LinearGradient{Start: start, End: end, Angle: angle}
}

// fillPlane holds the precomputed per-fill constants: the direction
// vector and the projection extent of the buffer's corners.
type fillPlane struct {
	cos, sin float64
	minProj  float64
	rng      float64
}

// plane computes the projection extent for a width x height buffer.
// The four corners (0,0), (w-1,0), (0,h-1), (w-1,h-1) bound the
// projection of every pixel; a zero extent (1x1 buffer, or zero
// direction) substitutes 1 so the per-pixel division is safe. In that
// case every pixel projects to minProj and t is 0 everywhere.
func (g LinearGradient) plane(width, height int) fillPlane {
	rad := g.Angle.Radians()
	cosA := math.Cos(rad)
	sinA := math.Sin(rad)

	w := float64(width-1) * cosA
	h := float64(height-1) * sinA
	corners := [4]float64{0, w, h, w + h}

	minProj, maxProj := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c < minProj {
			minProj = c
		}
		if c > maxProj {
			maxProj = c
		}
	}

	rng := maxProj - minProj
	if rng == 0 {
		rng = 1
	}
	return fillPlane{cos: cosA, sin: sinA, minProj: minProj, rng: rng}
}

// fillRows writes rows [y0, y1) of the gradient into dst.
// dst is indexed in the full-buffer coordinate space, so disjoint row
// ranges touch disjoint byte ranges and may run concurrently.
func (g LinearGradient) fillRows(dst []uint8, width int, p fillPlane, y0, y1 int) {
	sr := float64(g.Start.R)
	sg := float64(g.Start.G)
	sb := float64(g.Start.B)
	dr := float64(g.End.R) - sr
	dg := float64(g.End.G) - sg
	db := float64(g.End.B) - sb

	for y := y0; y < y1; y++ {
		i := y * width * 4
		for x := 0; x < width; x++ {
			t := (float64(x)*p.cos + float64(y)*p.sin - p.minProj) / p.rng
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}

			// Conversion truncates toward zero, matching the
			// documented narrowing of interpolated channels.
			dst[i+0] = uint8(sr + dr*t)
			dst[i+1] = uint8(sg + dg*t)
			dst[i+2] = uint8(sb + db*t)
			dst[i+3] = 255
			i += 4
		}
	}
}

// Fill writes the gradient into dst, an RGBA8 buffer of at least
// width*height*4 bytes laid out row-major. Exactly width*height pixels
// are written and the prior contents are never read; every written
// pixel is fully opaque.
//
// Dimensions and buffer length are validated before any write:
// a negative width or height returns ErrInvalidDimensions, a short
// buffer returns ErrBufferTooSmall. A zero width or height is a
// valid no-op.
func (g LinearGradient) Fill(dst []uint8, width, height int) error {
	if err := validateBuffer(dst, width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	g.fillRows(dst, width, g.plane(width, height), 0, height)
	return nil
}

// FillPixmap fills an entire pixmap with the gradient.
func (g LinearGradient) FillPixmap(pm *Pixmap) error {
	return g.Fill(pm.Data(), pm.Width(), pm.Height())
}

// parallelMinRows is the height below which FillParallel runs
// sequentially; the goroutine handoff costs more than the fill.
const parallelMinRows = 64

// FillParallel is Fill with the rows partitioned into bands across a
// worker pool. Pixels depend only on their own coordinates, so the
// output is byte-identical to Fill regardless of scheduling.
//
// workers <= 0 uses GOMAXPROCS. Small buffers fall back to the
// sequential path.
func (g LinearGradient) FillParallel(dst []uint8, width, height, workers int) error {
	if err := validateBuffer(dst, width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || height < parallelMinRows {
		g.fillRows(dst, width, g.plane(width, height), 0, height)
		return nil
	}

	p := g.plane(width, height)
	band := (height + workers - 1) / workers

	work := make([]func(), 0, workers)
	for y := 0; y < height; y += band {
		y0, y1 := y, y+band
		if y1 > height {
			y1 = height
		}
		work = append(work, func() {
			g.fillRows(dst, width, p, y0, y1)
		})
	}

	Logger().Debug("parallel gradient fill",
		"width", width, "height", height, "workers", workers, "bands", len(work))

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()
	pool.ExecuteAll(work)

	return nil
}

// validateBuffer checks fill preconditions without touching dst.
func validateBuffer(dst []uint8, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if need := width * height * 4; len(dst) < need {
		return fmt.Errorf("%w: %dx%d needs %d bytes, have %d",
			ErrBufferTooSmall, width, height, need, len(dst))
	}
	return nil
}
