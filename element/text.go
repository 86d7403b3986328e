package element

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"stipple/drawable"
	"stipple/pixel"
)

// Text is a block of text rasterized at load time. Register parses the font,
// Load lays out and draws the lines.
type Text struct {
	Content string
	// Size is the font size in pixels.
	Size  float64
	Color color.NRGBA
	// Font holds OpenType or TrueType data. Go Regular is used when empty.
	Font []byte

	face font.Face
	img  *pixel.Image
	tex  texture
}

func NewText(content string, size float64) *Text {
	return &Text{
		Content: content,
		Size:    size,
		Color:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

func (t *Text) Register() {
	data := t.Font
	if len(data) == 0 {
		data = goregular.TTF
	}

	f, err := opentype.Parse(data)
	if err != nil {
		slog.Error("could not parse font", "error", err)
		return
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    t.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		slog.Error("could not create font face", "size", t.Size, "error", err)
		return
	}
	t.face = face
}

func (t *Text) Load() {
	if t.face == nil {
		slog.Error("could not render text without a font", "text", t.Content)
		return
	}

	img, err := rasterize(t.face, t.Content, t.Color)
	if err != nil {
		slog.Error("could not render text", "text", t.Content, "error", err)
		return
	}
	t.img = img
}

func rasterize(face font.Face, content string, c color.NRGBA) (*pixel.Image, error) {
	lines := strings.Split(content, "\n")
	m := face.Metrics()
	lineHeight := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	if width == 0 {
		return nil, errors.New("text has no width")
	}
	height := lineHeight*(len(lines)-1) + ascent + m.Descent.Ceil()
	if height <= 0 {
		return nil, fmt.Errorf("invalid line height %d", lineHeight)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(0, ascent+i*lineHeight)
		d.DrawString(line)
	}
	return pixel.FromImage(dst), nil
}

func (t *Text) Step()                 {}
func (t *Text) Update(float64)        {}
func (t *Text) State() drawable.State { return drawable.Final }

func (t *Text) Draw(target drawable.Target, pos drawable.Position, _ drawable.Settings) error {
	if t.img == nil {
		return Placeholder(target, pos)
	}
	return t.tex.draw(target, pos, t.img.Pix, t.img.Width, t.img.Height)
}

func (t *Text) Loaded() bool {
	return t.img != nil
}

func (t *Text) Pixels() *pixel.Image {
	if t.img == nil {
		panic("element: text pixels requested before a successful load")
	}
	return t.img
}
