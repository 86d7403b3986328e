package dither

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"

	"stipple/drawable"
	"stipple/pixel"
)

func seeded(seed uint64) *rand.Rand {
	return NewRand(seed)
}

// fixedRand answers every IntN(2) with coin and every other IntN with 0.
type fixedRand struct {
	coin int
}

func (r fixedRand) IntN(n int) int {
	if n == 2 {
		return r.coin
	}
	return 0
}

// picture is a minimal Source over a fixed buffer.
type picture struct {
	img     *pixel.Image
	failed  bool
	loaded  bool
	steps   int
	regs    int
	drawErr error
}

func (p *picture) Register()             { p.regs++ }
func (p *picture) Load()                 { p.loaded = !p.failed }
func (p *picture) Step()                 { p.steps++ }
func (p *picture) Update(float64)        {}
func (p *picture) State() drawable.State { return drawable.Final }
func (p *picture) Loaded() bool          { return p.loaded }

func (p *picture) Pixels() *pixel.Image {
	if !p.loaded {
		panic("picture: pixels read before load")
	}
	return p.img
}

func (p *picture) Draw(t drawable.Target, pos drawable.Position, s drawable.Settings) error {
	if p.drawErr != nil {
		return p.drawErr
	}
	if !p.loaded {
		return t.FillRect(pos.Rect(100, 100), color.RGBA{R: 255, B: 255, A: 255})
	}
	tex, err := t.NewTexture(p.img.Width, p.img.Height)
	if err != nil {
		return err
	}
	if err := tex.Update(p.img.Pix, p.img.Stride()); err != nil {
		return err
	}
	return t.Copy(tex, pos.Rect(p.img.Width, p.img.Height))
}

type memTexture struct {
	w, h int
	pix  []byte
}

func (m *memTexture) Update(pix []byte, stride int) error {
	m.pix = make([]byte, m.w*m.h*4)
	for y := 0; y < m.h; y++ {
		copy(m.pix[y*m.w*4:(y+1)*m.w*4], pix[y*stride:])
	}
	return nil
}

// memTarget records what was drawn on it.
type memTarget struct {
	textures int
	copies   []image.Rectangle
	fills    []image.Rectangle
	last     []byte
	copyErr  error
}

func (m *memTarget) NewTexture(w, h int) (drawable.Texture, error) {
	m.textures++
	return &memTexture{w: w, h: h}, nil
}

func (m *memTarget) Copy(tex drawable.Texture, dst image.Rectangle) error {
	if m.copyErr != nil {
		return m.copyErr
	}
	mt, ok := tex.(*memTexture)
	if !ok {
		return errors.New("foreign texture")
	}
	m.copies = append(m.copies, dst)
	m.last = append([]byte(nil), mt.pix...)
	return nil
}

func (m *memTarget) FillRect(dst image.Rectangle, c color.RGBA) error {
	m.fills = append(m.fills, dst)
	return nil
}

func solid(w, h int, c color.NRGBA) *pixel.Image {
	return pixel.Filled(w, h, c)
}

var opaqueRed = color.NRGBA{R: 255, A: 255}
