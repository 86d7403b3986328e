package element

import (
	"image"
	"log/slog"

	"stipple/drawable"
	"stipple/pixel"
)

// Picture is an image loaded from a file or handed over in memory.
type Picture struct {
	path string
	src  image.Image

	// MaxWidth and MaxHeight, when positive, shrink the picture at load time
	// to fit inside them.
	MaxWidth  int
	MaxHeight int

	img *pixel.Image
	tex texture
}

// NewPicture returns a picture that decodes path on Load.
func NewPicture(path string) *Picture {
	return &Picture{path: path}
}

// PictureOf returns a picture of an already decoded image.
func PictureOf(src image.Image) *Picture {
	return &Picture{src: src}
}

func (p *Picture) Register() {}

func (p *Picture) Load() {
	if p.src != nil {
		p.img = pixel.Fit(slog.Default(), pixel.FromImage(p.src), p.MaxWidth, p.MaxHeight)
		return
	}

	logger := slog.Default().With("file", p.path)
	img, err := pixel.Open(p.path)
	if err != nil {
		logger.Error("could not load picture", "error", err)
		return
	}
	p.img = pixel.Fit(logger, img, p.MaxWidth, p.MaxHeight)
}

func (p *Picture) Step()                 {}
func (p *Picture) Update(float64)        {}
func (p *Picture) State() drawable.State { return drawable.Final }

func (p *Picture) Draw(t drawable.Target, pos drawable.Position, _ drawable.Settings) error {
	if p.img == nil {
		return Placeholder(t, pos)
	}
	if p.img.Empty() {
		return nil
	}
	return p.tex.draw(t, pos, p.img.Pix, p.img.Width, p.img.Height)
}

func (p *Picture) Loaded() bool {
	return p.img != nil
}

func (p *Picture) Pixels() *pixel.Image {
	if p.img == nil {
		panic("element: picture pixels requested before a successful load")
	}
	return p.img
}
