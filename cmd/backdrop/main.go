// Command backdrop renders gradient backgrounds and framed screenshots.
//
//	# plain gradient
//	backdrop -width 1920 -height 1080 -start '#36d1dc' -end '#5b86e5' -angle 90 -o out.png
//
//	# framed screenshot over a preset background
//	backdrop -i shot.png -preset 1 -padding 5 -radius 2 -shadow 0.6 -o framed.png
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/rasterly/backdrop"
)

type flags struct {
	input  string
	output string

	width  int
	height int

	start  string
	end    string
	angle  float64
	preset int
	solid  string
	alpha  float64
	bgPath string

	padding int
	radius  int
	shadow  float64
	aspect  string

	text     string
	font     string
	textSize float64
	gravity  string

	workers int
	verbose bool
}

func main() {
	var f flags
	flag.StringVar(&f.input, "i", "", "source image to frame (omit to render the bare background)")
	flag.StringVar(&f.output, "o", "backdrop.png", "output PNG path")
	flag.IntVar(&f.width, "width", 1920, "output width (bare background only)")
	flag.IntVar(&f.height, "height", 1080, "output height (bare background only)")
	flag.StringVar(&f.start, "start", "#4a90e2", "gradient start color")
	flag.StringVar(&f.end, "end", "#50e3c2", "gradient end color")
	flag.Float64Var(&f.angle, "angle", 0, "gradient angle in degrees")
	flag.IntVar(&f.preset, "preset", -1, "gradient preset index (overrides -start/-end/-angle)")
	flag.StringVar(&f.solid, "solid", "", "solid background color (overrides gradient)")
	flag.Float64Var(&f.alpha, "alpha", 1, "solid background alpha")
	flag.StringVar(&f.bgPath, "bg-image", "", "image background path (overrides gradient and solid)")
	flag.IntVar(&f.padding, "padding", 5, "padding percent (negative crops)")
	flag.IntVar(&f.radius, "radius", 2, "corner radius percent")
	flag.Float64Var(&f.shadow, "shadow", 0, "shadow strength 0-1")
	flag.StringVar(&f.aspect, "aspect", "", "aspect ratio, e.g. 16:9")
	flag.StringVar(&f.text, "text", "", "caption text")
	flag.StringVar(&f.font, "font", "", "caption TTF font path")
	flag.Float64Var(&f.textSize, "text-size", 42, "caption point size")
	flag.StringVar(&f.gravity, "gravity", "south", "caption anchor (north, southeast, center, ...)")
	flag.IntVar(&f.workers, "workers", 0, "fill workers (0 = GOMAXPROCS)")
	flag.BoolVar(&f.verbose, "v", false, "verbose logging")
	flag.Parse()

	if f.verbose {
		backdrop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bg, err := background(&f)
	if err != nil {
		log.Fatalf("Invalid background: %v", err)
	}

	if f.input == "" {
		renderBackground(&f, bg)
		return
	}
	renderFramed(&f, bg)
}

// background builds the configured Background, most specific first.
func background(f *flags) (backdrop.Background, error) {
	if f.bgPath != "" {
		return backdrop.NewImageBackground(f.bgPath)
	}
	if f.solid != "" {
		c, err := backdrop.ParseHex(f.solid)
		if err != nil {
			return nil, err
		}
		return backdrop.SolidBackground{Color: c, Alpha: f.alpha}, nil
	}
	if f.preset >= 0 {
		g, err := backdrop.Preset(f.preset)
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	start, err := backdrop.ParseHex(f.start)
	if err != nil {
		return nil, err
	}
	end, err := backdrop.ParseHex(f.end)
	if err != nil {
		return nil, err
	}
	return backdrop.NewLinearGradient(start, end, backdrop.Degrees(f.angle)), nil
}

// renderBackground writes the bare background at the requested size.
// Gradients take the parallel fill path; everything else goes through
// Background.Prepare.
func renderBackground(f *flags, bg backdrop.Background) {
	if g, ok := bg.(backdrop.LinearGradient); ok {
		pm := backdrop.NewPixmap(f.width, f.height)
		if err := g.FillParallel(pm.Data(), f.width, f.height, f.workers); err != nil {
			log.Fatalf("Fill failed: %v", err)
		}
		if err := pm.SavePNG(f.output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Gradient saved to %s (%dx%d)", f.output, f.width, f.height)
		return
	}

	img, err := bg.Prepare(f.width, f.height)
	if err != nil {
		log.Fatalf("Background failed: %v", err)
	}
	if err := backdrop.SavePNG(f.output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Background saved to %s (%dx%d)", f.output, f.width, f.height)
}

// renderFramed runs the full processor pipeline over the input image.
func renderFramed(f *flags, bg backdrop.Background) {
	ratio, err := backdrop.ParseAspectRatio(f.aspect)
	if err != nil {
		log.Fatalf("Invalid aspect ratio: %v", err)
	}

	opts := []backdrop.Option{
		backdrop.WithBackground(bg),
		backdrop.WithPadding(f.padding),
		backdrop.WithCornerRadius(f.radius),
		backdrop.WithShadow(f.shadow),
		backdrop.WithAspectRatio(ratio),
	}
	if f.text != "" {
		t := backdrop.NewText(f.text)
		t.FontPath = f.font
		t.Size = f.textSize
		t.Gravity = backdrop.ParseGravity(f.gravity)
		opts = append(opts, backdrop.WithText(t))
	}

	p := backdrop.NewProcessor(opts...)
	if err := p.LoadSource(f.input); err != nil {
		log.Fatalf("Failed to load %s: %v", f.input, err)
	}

	img, err := p.Process()
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}
	if err := backdrop.SavePNG(f.output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := img.Bounds()
	log.Printf("Framed image saved to %s (%dx%d)", f.output, b.Dx(), b.Dy())
}
