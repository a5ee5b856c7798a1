package backdrop

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fillBuf(t *testing.T, g LinearGradient, w, h int) []uint8 {
	t.Helper()
	buf := make([]uint8, w*h*4)
	if err := g.Fill(buf, w, h); err != nil {
		t.Fatalf("Fill(%dx%d) failed: %v", w, h, err)
	}
	return buf
}

func pixelAt(buf []uint8, w, x, y int) [4]uint8 {
	i := (y*w + x) * 4
	return [4]uint8{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func TestFillAlphaAlwaysOpaque(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {2, 1}, {1, 2}, {3, 2}, {16, 16}, {5, 7},
	}
	angles := []float64{0, 33, 90, 135, 217.5, -45}

	g := LinearGradient{Start: Red, End: Blue}
	for _, size := range sizes {
		for _, deg := range angles {
			g.Angle = Degrees(deg)
			buf := fillBuf(t, g, size.w, size.h)
			for i := 3; i < len(buf); i += 4 {
				if buf[i] != 255 {
					t.Fatalf("size %dx%d angle %v: alpha at byte %d = %d, want 255",
						size.w, size.h, deg, i, buf[i])
				}
			}
		}
	}
}

func TestFillHorizontal(t *testing.T) {
	// Angle 0 varies only with x: the left column is the start color,
	// the right column the end color, and every row is identical.
	const w, h = 5, 3
	g := LinearGradient{Start: Black, End: White, Angle: 0}
	buf := fillBuf(t, g, w, h)

	for y := 0; y < h; y++ {
		if got := pixelAt(buf, w, 0, y); got != [4]uint8{0, 0, 0, 255} {
			t.Errorf("pixel(0,%d) = %v, want start color", y, got)
		}
		if got := pixelAt(buf, w, w-1, y); got != [4]uint8{255, 255, 255, 255} {
			t.Errorf("pixel(%d,%d) = %v, want end color", w-1, y, got)
		}

		// Monotonic non-decreasing across the row.
		prev := pixelAt(buf, w, 0, y)
		for x := 1; x < w; x++ {
			cur := pixelAt(buf, w, x, y)
			if cur[0] < prev[0] || cur[1] < prev[1] || cur[2] < prev[2] {
				t.Errorf("row %d not monotonic at x=%d: %v after %v", y, x, cur, prev)
			}
			prev = cur
		}

		// Rows are identical.
		if y > 0 {
			for x := 0; x < w; x++ {
				if pixelAt(buf, w, x, y) != pixelAt(buf, w, x, 0) {
					t.Errorf("pixel(%d,%d) differs from row 0", x, y)
				}
			}
		}
	}
}

func TestFillVertical(t *testing.T) {
	// Angle 90 is the transposed case: the gradient varies by row.
	// sin(90°) is exact but cos(90°) is a hair above zero, so rows are
	// compared with a one-step tolerance.
	const w, h = 4, 4
	g := LinearGradient{Start: Black, End: White, Angle: 90}
	buf := fillBuf(t, g, w, h)

	for x := 0; x < w; x++ {
		if got := pixelAt(buf, w, x, 0); got != [4]uint8{0, 0, 0, 255} {
			t.Errorf("pixel(%d,0) = %v, want start color", x, got)
		}
		if got := pixelAt(buf, w, x, h-1); got != [4]uint8{255, 255, 255, 255} {
			t.Errorf("pixel(%d,%d) = %v, want end color", x, h-1, got)
		}
	}

	for y := 0; y < h; y++ {
		first := pixelAt(buf, w, 0, y)
		for x := 1; x < w; x++ {
			cur := pixelAt(buf, w, x, y)
			for c := 0; c < 3; c++ {
				if d := int(cur[c]) - int(first[c]); d < -1 || d > 1 {
					t.Errorf("row %d not constant: pixel(%d,%d) = %v, row starts %v", y, x, y, cur, first)
				}
			}
		}
	}

	// Monotonic down each column.
	for x := 0; x < w; x++ {
		prev := pixelAt(buf, w, x, 0)
		for y := 1; y < h; y++ {
			cur := pixelAt(buf, w, x, y)
			if cur[0] < prev[0] {
				t.Errorf("column %d not monotonic at y=%d", x, y)
			}
			prev = cur
		}
	}
}

func TestFillReversedAngle(t *testing.T) {
	// Angle 180 runs right to left: the start color lands on the
	// right edge, which now has the minimum projection. sin(180°) is a
	// hair above zero, so the exact maximum-projection corner is the
	// bottom-left pixel; the rest of the left edge is within one step.
	const w, h = 4, 3
	g := LinearGradient{Start: Red, End: Blue, Angle: 180}
	buf := fillBuf(t, g, w, h)

	if got := pixelAt(buf, w, w-1, 0); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("pixel(%d,0) = %v, want start color on the right", w-1, got)
	}
	if got := pixelAt(buf, w, 0, h-1); got != [4]uint8{0, 0, 255, 255} {
		t.Errorf("pixel(0,%d) = %v, want end color on the left", h-1, got)
	}
	if got := pixelAt(buf, w, 0, 0); got[2] < 254 {
		t.Errorf("pixel(0,0) = %v, want blue within one step of 255", got)
	}
}

func TestFillSinglePixel(t *testing.T) {
	// A 1x1 buffer has zero projection extent; t evaluates to 0 and the
	// single pixel always takes the start color, at any angle.
	start := Color{10, 20, 30}
	for _, deg := range []float64{0, 45, 90, 123.4, 360, -90} {
		g := LinearGradient{Start: start, End: White, Angle: Degrees(deg)}
		buf := fillBuf(t, g, 1, 1)
		if got := pixelAt(buf, 1, 0, 0); got != [4]uint8{10, 20, 30, 255} {
			t.Errorf("angle %v: pixel = %v, want start color", deg, got)
		}
	}
}

func TestFillTwoPixelEndpoints(t *testing.T) {
	// width=2 projects x=0 to the minimum and x=1 to the maximum, so t
	// is exactly 0 and 1.
	g := LinearGradient{Start: Black, End: White, Angle: 0}
	buf := fillBuf(t, g, 2, 1)

	if got := pixelAt(buf, 2, 0, 0); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("pixel(0,0) = %v, want (0,0,0,255)", got)
	}
	if got := pixelAt(buf, 2, 1, 0); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("pixel(1,0) = %v, want (255,255,255,255)", got)
	}
}

func TestFillMidpoint(t *testing.T) {
	// Three equally spaced projections; the middle column sits at
	// t=0.5 exactly.
	g := LinearGradient{Start: Black, End: Color{200, 0, 0}, Angle: 0}
	buf := fillBuf(t, g, 3, 1)

	if got := pixelAt(buf, 3, 1, 0); got[0] != 100 {
		t.Errorf("pixel(1,0).R = %d, want 100", got[0])
	}
}

func TestFillChannelBounds(t *testing.T) {
	// No output channel may leave the closed range spanned by the
	// endpoint channels, in either direction.
	start := Color{200, 10, 90}
	end := Color{10, 200, 90}

	for _, deg := range []float64{0, 17, 45, 90, 133, 289} {
		g := LinearGradient{Start: start, End: end, Angle: Degrees(deg)}
		buf := fillBuf(t, g, 9, 6)
		for i := 0; i < len(buf); i += 4 {
			if buf[i] < 10 || buf[i] > 200 {
				t.Fatalf("angle %v: R=%d outside [10,200]", deg, buf[i])
			}
			if buf[i+1] < 10 || buf[i+1] > 200 {
				t.Fatalf("angle %v: G=%d outside [10,200]", deg, buf[i+1])
			}
			if buf[i+2] != 90 {
				t.Fatalf("angle %v: B=%d, want constant 90", deg, buf[i+2])
			}
		}
	}
}

func TestFillDeterministic(t *testing.T) {
	g := LinearGradient{Start: Color{12, 200, 7}, End: Color{250, 3, 128}, Angle: 33.3}

	a := fillBuf(t, g, 31, 17)
	b := fillBuf(t, g, 31, 17)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical fills differ (-first +second):\n%s", diff)
	}
}

func TestFillZeroDimensions(t *testing.T) {
	g := LinearGradient{Start: Black, End: White}

	if err := g.Fill(nil, 0, 0); err != nil {
		t.Errorf("Fill(0x0) = %v, want nil", err)
	}
	if err := g.Fill(nil, 0, 100); err != nil {
		t.Errorf("Fill(0x100) = %v, want nil", err)
	}
	if err := g.Fill(nil, 100, 0); err != nil {
		t.Errorf("Fill(100x0) = %v, want nil", err)
	}
}

func TestFillValidation(t *testing.T) {
	g := LinearGradient{Start: Black, End: White}

	tests := []struct {
		name    string
		buf     []uint8
		w, h    int
		wantErr error
	}{
		{"negative width", make([]uint8, 64), -1, 4, ErrInvalidDimensions},
		{"negative height", make([]uint8, 64), 4, -1, ErrInvalidDimensions},
		{"both negative", nil, -3, -3, ErrInvalidDimensions},
		{"short buffer", make([]uint8, 15), 2, 2, ErrBufferTooSmall},
		{"nil buffer", nil, 1, 1, ErrBufferTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Fill(tt.buf, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Fill() = %v, want %v", err, tt.wantErr)
			}
			// Validate-then-write: nothing may be written on error.
			for i, v := range tt.buf {
				if v != 0 {
					t.Fatalf("buffer modified at %d after error", i)
				}
			}
		})
	}
}

func TestFillParallelMatchesSequential(t *testing.T) {
	sizes := []struct{ w, h int }{
		{8, 8}, {128, 96}, {33, 200}, {301, 65},
	}
	angles := []float64{0, 45, 90, 135, 217.5}
	workerCounts := []int{0, 1, 2, 3, 8}

	g := LinearGradient{Start: Color{30, 60, 90}, End: Color{240, 120, 0}}
	for _, size := range sizes {
		for _, deg := range angles {
			g.Angle = Degrees(deg)
			want := fillBuf(t, g, size.w, size.h)

			for _, workers := range workerCounts {
				got := make([]uint8, size.w*size.h*4)
				if err := g.FillParallel(got, size.w, size.h, workers); err != nil {
					t.Fatalf("FillParallel(%dx%d, %d workers) failed: %v",
						size.w, size.h, workers, err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("%dx%d angle %v workers %d: parallel fill differs (-seq +par):\n%s",
						size.w, size.h, deg, workers, diff)
				}
			}
		}
	}
}

func TestFillParallelValidation(t *testing.T) {
	g := LinearGradient{Start: Black, End: White}
	if err := g.FillParallel(make([]uint8, 3), 10, 10, 4); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("FillParallel short buffer = %v, want ErrBufferTooSmall", err)
	}
	if err := g.FillParallel(nil, -1, 1, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FillParallel negative = %v, want ErrInvalidDimensions", err)
	}
}

func TestFillPixmap(t *testing.T) {
	g := LinearGradient{Start: Black, End: White, Angle: 0}
	pm := NewPixmap(4, 2)
	if err := g.FillPixmap(pm); err != nil {
		t.Fatalf("FillPixmap failed: %v", err)
	}

	if got := pm.ColorAt(0, 0); got != Black {
		t.Errorf("ColorAt(0,0) = %v, want black", got)
	}
	if got := pm.ColorAt(3, 1); got != White {
		t.Errorf("ColorAt(3,1) = %v, want white", got)
	}
	if got := pm.AlphaAt(2, 1); got != 255 {
		t.Errorf("AlphaAt(2,1) = %d, want 255", got)
	}
}

func TestAngleRadians(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := Degrees(tt.deg).Radians(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Degrees(%v).Radians() = %v, want %v", tt.deg, got, tt.want)
		}
	}
}
