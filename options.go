package backdrop

// Option configures a Processor during creation.
//
// Example:
//
//	p := backdrop.NewProcessor(
//	    backdrop.WithBackground(backdrop.NewSolidBackground(backdrop.White)),
//	    backdrop.WithPadding(5),
//	    backdrop.WithShadow(0.6),
//	)
type Option func(*Processor)

// WithBackground sets the background the source is composited over.
// Without a background the frame outside the source stays transparent.
func WithBackground(b Background) Option {
	return func(p *Processor) {
		p.background = b
	}
}

// WithPadding sets the frame padding as a percentage of the source's
// smaller dimension. Negative padding crops into the source instead of
// framing around it.
func WithPadding(percent int) Option {
	return func(p *Processor) {
		p.padding = percent
	}
}

// WithCornerRadius sets the source's corner rounding as a percentage
// of its smaller dimension. Zero disables rounding.
func WithCornerRadius(percent int) Option {
	return func(p *Processor) {
		p.cornerRadius = percent
	}
}

// WithShadow sets the drop shadow strength in [0, 1].
// Zero disables the shadow entirely.
func WithShadow(strength float64) Option {
	return func(p *Processor) {
		p.shadowStrength = strength
	}
}

// WithAspectRatio forces the final frame to a width/height ratio by
// growing the short side. Zero keeps the natural padded size; values
// outside [MinAspectRatio, MaxAspectRatio] are ignored.
func WithAspectRatio(ratio float64) Option {
	return func(p *Processor) {
		p.aspectRatio = ratio
	}
}

// WithText adds a caption drawn after compositing.
func WithText(t *Text) Option {
	return func(p *Processor) {
		p.text = t
	}
}
