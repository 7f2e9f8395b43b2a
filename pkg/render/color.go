// pkg/render/color.go
package render

import "image/color"

// DarkenColor scales the RGB channels of c by factor, keeping alpha.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// LightenColor moves each RGB channel of c toward white by factor.
func LightenColor(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	mix := func(v uint8) uint8 {
		return v + uint8(float64(255-v)*factor)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
