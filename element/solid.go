package element

import (
	"fmt"
	"image/color"

	"stipple/drawable"
	"stipple/pixel"
)

// Solid is a flat rectangle of one colour.
type Solid struct {
	Width  int
	Height int
	Color  color.NRGBA

	img *pixel.Image
}

func NewSolid(width, height int, c color.NRGBA) *Solid {
	return &Solid{Width: width, Height: height, Color: c}
}

func (s *Solid) Register()             {}
func (s *Solid) Load()                 { s.img = pixel.Filled(s.Width, s.Height, s.Color) }
func (s *Solid) Step()                 {}
func (s *Solid) Update(float64)        {}
func (s *Solid) State() drawable.State { return drawable.Final }
func (s *Solid) Loaded() bool          { return s.img != nil }

func (s *Solid) Draw(t drawable.Target, pos drawable.Position, _ drawable.Settings) error {
	dst := pos.Rect(s.Width, s.Height)
	if dst.Empty() {
		return nil
	}
	fill := color.RGBAModel.Convert(s.Color).(color.RGBA)
	if err := t.FillRect(dst, fill); err != nil {
		return fmt.Errorf("could not fill %v: %w", dst, err)
	}
	return nil
}

func (s *Solid) Pixels() *pixel.Image {
	if s.img == nil {
		panic("element: solid pixels requested before load")
	}
	return s.img
}
