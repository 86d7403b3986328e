package dither

import (
	"fmt"
	"math"
	"strings"
)

// Direction biases the reveal order spatially by adding an offset to every
// seed time. Pixels with a lower offset are revealed first.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
	BottomToTop
	FromCenter
	Unbiased
)

var directionNames = map[string]Direction{
	"rightwards":    LeftToRight,
	"left-to-right": LeftToRight,
	"leftwards":     RightToLeft,
	"right-to-left": RightToLeft,
	"downwards":     TopToBottom,
	"top-to-bottom": TopToBottom,
	"upwards":       BottomToTop,
	"bottom-to-top": BottomToTop,
	"outwards":      FromCenter,
	"from-center":   FromCenter,
	"none":          Unbiased,
	"unbiased":      Unbiased,
}

// Value returns the offset for the pixel at (x, y) of a width x height image.
func (d Direction) Value(x, y, width, height int) int {
	switch d {
	case LeftToRight:
		return x
	case RightToLeft:
		return width - x + 1
	case TopToBottom:
		return y
	case BottomToTop:
		return height - y + 1
	case FromCenter:
		dx := float64(x) - float64(width)/2
		dy := float64(y) - float64(height)/2
		return int(math.Sqrt(dx*dx + dy*dy))
	default:
		return 1
	}
}

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "rightwards"
	case RightToLeft:
		return "leftwards"
	case TopToBottom:
		return "downwards"
	case BottomToTop:
		return "upwards"
	case FromCenter:
		return "outwards"
	case Unbiased:
		return "none"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, ok := directionNames[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = v
	return nil
}
