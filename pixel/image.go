package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image is a tightly packed, non-premultiplied RGBA buffer.
// The pixel at (x, y) starts at Pix[(y*Width+x)*4].
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

func New(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromImage copies any image into a packed buffer, converting to
// non-premultiplied RGBA.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy())
	if img.Empty() {
		return img
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		rowLen := img.Stride()
		for y := 0; y < img.Height; y++ {
			start := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(img.Pix[y*rowLen:(y+1)*rowLen], nrgba.Pix[start:start+rowLen])
		}
		return img
	}

	draw.Draw(img.NRGBA(), image.Rect(0, 0, img.Width, img.Height), src, b.Min, draw.Src)
	return img
}

// Filled returns an image of the given size where every pixel is c.
func Filled(width, height int, c color.NRGBA) *Image {
	img := New(width, height)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func (img *Image) Empty() bool {
	return img.Width == 0 || img.Height == 0
}

func (img *Image) Stride() int {
	return img.Width * 4
}

// Offset returns the index of the first byte of the pixel at (x, y), with the
// coordinates clamped to the image.
func (img *Image) Offset(x, y int) int {
	x = min(max(x, 0), img.Width-1)
	y = min(max(y, 0), img.Height-1)
	return (y*img.Width + x) * 4
}

// Alpha returns the alpha channel at (x, y), clamped to the image bounds.
func (img *Image) Alpha(x, y int) uint8 {
	return img.Pix[img.Offset(x, y)+3]
}

// At returns the raw channels at (x, y), clamped to the image bounds.
func (img *Image) At(x, y int) color.NRGBA {
	i := img.Offset(x, y)
	return color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// NRGBA wraps the buffer without copying, so writes through the returned
// image land in Pix.
func (img *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Stride(),
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

func (img *Image) Clone() *Image {
	c := &Image{
		Width:  img.Width,
		Height: img.Height,
		Pix:    make([]uint8, len(img.Pix)),
	}
	copy(c.Pix, img.Pix)
	return c
}
