package backdrop

import "fmt"

// presets are the built-in gradient configurations offered as
// one-click backgrounds.
var presets = []LinearGradient{
	{Start: Color{0x36, 0xd1, 0xdc}, End: Color{0x5b, 0x86, 0xe5}, Angle: 90},
	{Start: Color{0xff, 0x5f, 0x6d}, End: Color{0xff, 0xc3, 0x71}, Angle: 45},
	{Start: Color{0x45, 0x33, 0x83}, End: Color{0x54, 0x94, 0xe8}, Angle: 0},
	{Start: Color{0x00, 0xc6, 0xff}, End: Color{0x00, 0x72, 0xff}, Angle: 180},
	{Start: Color{0x8f, 0xf0, 0xa4}, End: Color{0x2e, 0xc2, 0x7e}, Angle: 135},
	{Start: Color{0xf6, 0xf5, 0xf4}, End: Color{0x5e, 0x5c, 0x64}, Angle: 135},
}

// Presets returns the built-in gradient configurations.
// The returned slice is a copy and safe to modify.
func Presets() []LinearGradient {
	out := make([]LinearGradient, len(presets))
	copy(out, presets)
	return out
}

// Preset returns the built-in gradient at the given index.
func Preset(i int) (LinearGradient, error) {
	if i < 0 || i >= len(presets) {
		return LinearGradient{}, fmt.Errorf("%w: %d (have %d)", ErrPresetOutOfRange, i, len(presets))
	}
	return presets[i], nil
}
