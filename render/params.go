package render

import (
	"fmt"
	"image/color"
	"time"

	"stipple/dither"
	"stipple/player"
	"stipple/target"
)

// TransitionParams are the flags shared by every command that plays a
// transition.
type TransitionParams struct {
	Direction  dither.Direction `help:"Reveal direction (rightwards, leftwards, downwards, upwards, outwards, none)" default:"rightwards" group:"transition"`
	Metric     dither.Metric    `help:"Edge metric choosing where the reveal starts (alpha, color)" default:"alpha" group:"transition"`
	Seed       uint64           `help:"Random seed for reproducible output, 0 picks a random one" default:"0" group:"transition"`
	FPS        float64          `help:"Frames per second" default:"30" group:"playback"`
	Hold       time.Duration    `help:"How long the revealed content stays before hiding" default:"1s" group:"playback"`
	MaxFrames  int              `help:"Maximum number of frames per phase" default:"600" group:"playback"`
	RevealOnly bool             `help:"Stop once revealed, without hiding" default:"false" group:"playback"`
	Notes      bool             `help:"Render the presenter notes view" default:"false" group:"playback"`
	Backend    string           `help:"Render backend" enum:"raster,canvas" default:"raster"`
	Background string           `help:"Background color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#000"`

	BackgroundColor color.RGBA `kong:"-"`
}

// Check validates the flags and resolves the background color.
func (p *TransitionParams) Check() error {
	if p.FPS <= 0 {
		return fmt.Errorf("invalid frame rate: %v", p.FPS)
	}
	if p.MaxFrames < 0 {
		return fmt.Errorf("invalid frame limit: %d", p.MaxFrames)
	}
	c, err := ParseHexColor(p.Background)
	if err != nil {
		return err
	}
	p.BackgroundColor = c
	return nil
}

// DitherOptions returns the field builder options selected by the flags.
func (p *TransitionParams) DitherOptions() []dither.Option {
	opts := []dither.Option{
		dither.WithDirection(p.Direction),
		dither.WithMetric(p.Metric),
	}
	if p.Seed != 0 {
		opts = append(opts, dither.WithRand(dither.NewRand(p.Seed)))
	}
	return opts
}

func (p *TransitionParams) Script() player.Script {
	return player.Script{
		Hold:      p.Hold,
		MaxFrames: p.MaxFrames,
		SkipHide:  p.RevealOnly,
	}
}

// NewSurface creates the selected backend. The returned function releases it.
func (p *TransitionParams) NewSurface(width, height int) (player.Surface, func()) {
	if p.Backend == "canvas" {
		c := target.NewCanvas(width, height)
		c.Background = p.BackgroundColor
		return c, func() { _ = c.Close() }
	}
	r := target.NewRaster(width, height)
	r.Background = p.BackgroundColor
	return r, func() {}
}

// ParseHexColor reads #RGB, #RGBA, #RRGGBB and #RRGGBBAA colors.
func ParseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	var n int
	var err error
	switch len(s) {
	case 4:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A = 0xFF
	case 5:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		n, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		c.A = 0xFF
	case 9:
		n, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return c, fmt.Errorf("could not read color %q: %w", s, err)
	} else if n < 3 {
		return c, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}

	// Colors are premultiplied.
	c.R = uint8(uint16(c.R) * uint16(c.A) / 0xFF)
	c.G = uint8(uint16(c.G) * uint16(c.A) / 0xFF)
	c.B = uint8(uint16(c.B) * uint16(c.A) / 0xFF)
	return c, nil
}
