// Package element provides leaf content: pictures, flat colour blocks and
// rasterized text. Content that fails to load draws a magenta placeholder
// instead of itself.
package element

import (
	"fmt"
	"image/color"

	"stipple/drawable"
)

const PlaceholderSize = 100

var Magenta = color.RGBA{R: 255, B: 255, A: 255}

// Placeholder marks the spot of content that could not be loaded.
func Placeholder(t drawable.Target, pos drawable.Position) error {
	dst := pos.Rect(PlaceholderSize, PlaceholderSize)
	if err := t.FillRect(dst, Magenta); err != nil {
		return fmt.Errorf("could not draw placeholder at %v: %w", dst, err)
	}
	return nil
}

// texture uploads a fixed pixel buffer once per target.
type texture struct {
	target drawable.Target
	tex    drawable.Texture
}

func (c *texture) draw(t drawable.Target, pos drawable.Position, pix []byte, width, height int) error {
	if c.tex == nil || c.target != t {
		tex, err := t.NewTexture(width, height)
		if err != nil {
			return fmt.Errorf("could not create %dx%d texture: %w", width, height, err)
		}
		if err := tex.Update(pix, width*4); err != nil {
			return fmt.Errorf("could not upload texture: %w", err)
		}
		c.target, c.tex = t, tex
	}

	dst := pos.Rect(width, height)
	if err := t.Copy(c.tex, dst); err != nil {
		return fmt.Errorf("could not copy texture to %v: %w", dst, err)
	}
	return nil
}
