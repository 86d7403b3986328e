package dither

import (
	"fmt"
	"image"

	"stipple/drawable"
	"stipple/pixel"
)

// Tint recolors pixels in the notes view.
type Tint struct {
	R, G, B float64
}

var (
	TintIdle      = Tint{0.5, 0.5, 0.5}
	TintPreReveal = Tint{0.5, 1, 1}
	TintRevealed  = Tint{0.5, 1, 0.5}
	TintHiding    = Tint{1, 1, 0.5}
	TintOther     = Tint{1, 0.5, 0.5}
)

// Frame holds the clocks a frame is composited at.
type Frame struct {
	InElapsed  float64
	OutElapsed float64
	// Tint selects the notes view when set.
	Tint *Tint
}

// TimeScale speeds up playback of fields that would take longer than
// CeilingSeconds to reveal.
func TimeScale(maxTime uint32) float64 {
	return max(1, float64(maxTime)/(CeilingSeconds*FadeSpeed))
}

// Multiplier is the opacity of a pixel with the given reveal time.
func Multiplier(reveal uint32, in, out, tMult float64) float64 {
	diffOut := float64(reveal) - out*FadeSpeed*tMult
	alphaOut := clamp01(diffOut/AlphaFadeWidth + 1)

	diffIn := in*FadeSpeed*tMult - float64(reveal)
	alphaIn := clamp01(diffIn / AlphaFadeWidth)

	return alphaOut * alphaIn
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Compositor owns the frame buffer and the texture it is uploaded to.
type Compositor struct {
	cache  []uint8
	target drawable.Target
	tex    drawable.Texture
}

// Reset clears the frame buffer and resizes it for a width x height image.
func (c *Compositor) Reset(width, height int) {
	c.cache = make([]uint8, width*height*4)
	c.target = nil
	c.tex = nil
}

// Compose writes the frame for src into the frame buffer and returns it.
// The returned slice is reused by the next call.
func (c *Compositor) Compose(src *pixel.Image, f *Field, fr Frame) []uint8 {
	if len(c.cache) != len(src.Pix) {
		c.Reset(src.Width, src.Height)
	}

	tMult := TimeScale(f.MaxTime)
	data, out := src.Pix, c.cache
	for i, reveal := range f.Times {
		mult := Multiplier(reveal, fr.InElapsed, fr.OutElapsed, tMult)
		idx := i * 4

		if fr.Tint == nil {
			out[idx] = uint8(mult * float64(data[idx]))
			out[idx+1] = uint8(mult * float64(data[idx+1]))
			out[idx+2] = uint8(mult * float64(data[idx+2]))
			out[idx+3] = uint8(mult * float64(data[idx+3]))
			continue
		}

		k := mult*0.5 + 0.5
		avg := float64(data[idx]/3 + data[idx+1]/3 + data[idx+2]/3)
		out[idx] = uint8(255 - fr.Tint.R*(255-k*avg))
		out[idx+1] = uint8(255 - fr.Tint.G*(255-k*avg))
		out[idx+2] = uint8(255 - fr.Tint.B*(255-k*avg))
		out[idx+3] = uint8(k * float64(data[idx+3]))
	}
	return out
}

// Blit uploads the frame buffer of a width x height frame and draws it at dst.
func (c *Compositor) Blit(t drawable.Target, dst image.Rectangle, width, height int) error {
	if c.tex == nil || c.target != t {
		tex, err := t.NewTexture(width, height)
		if err != nil {
			return fmt.Errorf("could not create %dx%d texture: %w", width, height, err)
		}
		c.target, c.tex = t, tex
	}

	if err := c.tex.Update(c.cache, width*4); err != nil {
		return fmt.Errorf("could not update texture: %w", err)
	}
	if err := t.Copy(c.tex, dst); err != nil {
		return fmt.Errorf("could not copy texture to %v: %w", dst, err)
	}
	return nil
}
