package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"stipple/element"
)

type TitleCmd struct {
	Text  string  `arg:"" help:"Text to reveal, \\n starts a new line"`
	Out   string  `help:"Output file" default:"title.png"`
	Size  float64 `help:"Font size in pixels" default:"64"`
	Color string  `help:"Text color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#FFF"`
	Font  string  `help:"TrueType or OpenType font file, Go Regular when empty" type:"existingfile"`

	TransitionParams `embed:""`
}

func (c *TitleCmd) Validate(kctx *kong.Context) error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("no text given")
	}
	if c.Size <= 0 {
		return fmt.Errorf("invalid font size: %v", c.Size)
	}
	if _, err := ParseHexColor(c.Color); err != nil {
		return err
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	return c.Check()
}

func (c *TitleCmd) Run() error {
	text := element.NewText(strings.ReplaceAll(c.Text, `\n`, "\n"), c.Size)

	premul, err := ParseHexColor(c.Color)
	if err != nil {
		return err
	}
	text.Color = color.NRGBAModel.Convert(premul).(color.NRGBA)

	if c.Font != "" {
		data, err := os.ReadFile(c.Font)
		if err != nil {
			return fmt.Errorf("could not read font %q: %w", c.Font, err)
		}
		text.Font = data
	}

	return c.record(slog.Default().With("text", c.Text), text, c.Out)
}
