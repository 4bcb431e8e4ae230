package povray

import "github.com/KonboiOne/simulator-chrono-project/pkg/geom"

// falseColor maps v over [vmin, vmax] to a blue-cyan-green-yellow-red
// ramp. Values outside the range are clamped to its ends; a degenerate
// range yields the low-end color.
func falseColor(v, vmin, vmax float64) geom.Color {
	dv := vmax - vmin
	if dv <= 0 {
		return geom.Color{B: 1}
	}
	if v < vmin {
		v = vmin
	}
	if v > vmax {
		v = vmax
	}

	c := geom.Color{R: 1, G: 1, B: 1}
	switch {
	case v < vmin+0.25*dv:
		c.R = 0
		c.G = 4 * (v - vmin) / dv
	case v < vmin+0.5*dv:
		c.R = 0
		c.B = 1 + 4*(vmin+0.25*dv-v)/dv
	case v < vmin+0.75*dv:
		c.R = 4 * (v - vmin - 0.5*dv) / dv
		c.B = 0
	default:
		c.G = 1 + 4*(vmin+0.75*dv-v)/dv
		c.B = 0
	}
	return c
}
