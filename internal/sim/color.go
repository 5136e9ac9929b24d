package sim

import "image/color"

// fade scales the colour toward black by progress in [0,1].
func fade(c color.RGBA, progress float64) color.RGBA {
	k := 1 - progress
	if k < 0 {
		k = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// ClampChannel limits v to a valid 8-bit channel.
func ClampChannel(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// AddBrightness lifts every channel by value. Overflow on one channel is
// spread half-and-half onto the other two so saturated colours wash toward
// white instead of shifting hue.
func AddBrightness(c color.RGBA, value int) color.RGBA {
	r := int(c.R) + value
	g := int(c.G) + value
	b := int(c.B) + value
	if r > 255 {
		err := r - 255
		g += err / 2
		b += err / 2
	}
	if g > 255 {
		err := g - 255
		r += err / 2
		b += err / 2
	}
	if b > 255 {
		err := b - 255
		g += err / 2
		r += err / 2
	}
	return color.RGBA{R: ClampChannel(r), G: ClampChannel(g), B: ClampChannel(b), A: c.A}
}

// SubBrightness darkens every channel by value, clamping at zero.
func SubBrightness(c color.RGBA, value int) color.RGBA {
	return color.RGBA{
		R: ClampChannel(int(c.R) - value),
		G: ClampChannel(int(c.G) - value),
		B: ClampChannel(int(c.B) - value),
		A: c.A,
	}
}
