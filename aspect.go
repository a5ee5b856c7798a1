package backdrop

import (
	"fmt"
	"strconv"
	"strings"
)

// Aspect ratio bounds accepted by the processor. Frames narrower than
// 1:5 or wider than 5:1 stop looking like screenshots framings and
// almost always indicate a typo.
const (
	MinAspectRatio = 0.2
	MaxAspectRatio = 5.0
)

// ParseAspectRatio parses an aspect ratio string of the form "16:9" or
// a plain decimal like "1.78". An empty string returns 0, meaning no
// ratio constraint.
func ParseAspectRatio(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	if num, denom, ok := strings.Cut(text, ":"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadAspectRatio, text)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(denom), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadAspectRatio, text)
		}
		if d == 0 {
			return 0, fmt.Errorf("%w: %q: zero denominator", ErrBadAspectRatio, text)
		}
		return n / d, nil
	}

	r, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAspectRatio, text)
	}
	return r, nil
}

// CheckAspectRatioBounds reports whether a ratio falls within the
// range the processor accepts.
func CheckAspectRatioBounds(ratio float64) bool {
	return ratio >= MinAspectRatio && ratio <= MaxAspectRatio
}
