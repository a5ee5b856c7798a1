package backdrop

import "math"

// Angle is a gradient direction in degrees, measured counter-clockwise
// from the positive x axis in pixel space. The explicit type keeps
// degree and radian values from being swapped at call sites.
type Angle float64

// Degrees creates an Angle from a value in degrees.
func Degrees(deg float64) Angle {
	return Angle(deg)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a)
}

// Radians returns the angle converted to radians.
func (a Angle) Radians() float64 {
	return float64(a) * math.Pi / 180
}
