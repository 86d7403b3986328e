package dither

import (
	"fmt"
	"strings"

	"stipple/pixel"
)

// Metric scores the local contrast of a pixel. Higher scores mark edges,
// which are preferred as starting points of the reveal.
type Metric uint8

const (
	// AlphaGradient is the larger of the vertical and horizontal central
	// differences of the alpha channel.
	AlphaGradient Metric = iota
	// ColorDeviation is the squared deviation of R, G, B and A from their
	// mean.
	ColorDeviation
)

func (m Metric) Score(img *pixel.Image, x, y int) uint32 {
	switch m {
	case ColorDeviation:
		c := img.At(x, y)
		r, g, b, a := float64(c.R), float64(c.G), float64(c.B), float64(c.A)
		avg := (r + g + b + a) / 4
		dev := (r-avg)*(r-avg) + (g-avg)*(g-avg) + (b-avg)*(b-avg) + (a-avg)*(a-avg)
		return uint32(dev)
	default:
		dy := absDiff(img.Alpha(x, y+1), img.Alpha(x, y-1))
		dx := absDiff(img.Alpha(x+1, y), img.Alpha(x-1, y))
		return uint32(max(dx, dy))
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func (m Metric) String() string {
	switch m {
	case AlphaGradient:
		return "alpha"
	case ColorDeviation:
		return "color"
	}
	return fmt.Sprintf("Metric(%d)", uint8(m))
}

func (m *Metric) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "alpha", "alpha-gradient":
		*m = AlphaGradient
	case "color", "colour", "color-deviation":
		*m = ColorDeviation
	default:
		return fmt.Errorf("unknown metric %q, should be alpha or color", text)
	}
	return nil
}
