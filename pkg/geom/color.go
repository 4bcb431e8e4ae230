package geom

// Color is an RGB color with components nominally in [0, 1].
type Color struct {
	R, G, B float64
}

// White is the default appearance color.
var White = Color{1, 1, 1}

// Clamped returns the color with each component clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Lerp linearly interpolates between c and other. t should be in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		c.R + t*(other.R-c.R),
		c.G + t*(other.G-c.G),
		c.B + t*(other.B-c.B),
	}
}

// Scale returns the color with each component multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
