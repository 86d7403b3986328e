// Package inspect exports reveal fields as images.
package inspect

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"stipple/dither"
	"stipple/pixel"
)

type CLICmd struct {
	File      string           `arg:"" help:"Image to build the reveal field of" type:"existingfile"`
	Out       string           `help:"Output PNG, defaults to <file>.field.png next to the image"`
	Width     int              `help:"Max width, 0 keeps the source width" default:"0" group:"resize"`
	Height    int              `help:"Max height, 0 keeps the source height" default:"0" group:"resize"`
	Direction dither.Direction `help:"Reveal direction (rightwards, leftwards, downwards, upwards, outwards, none)" default:"rightwards"`
	Metric    dither.Metric    `help:"Edge metric (alpha, color)" default:"alpha"`
	Seed      uint64           `help:"Random seed, 0 picks a random one" default:"0"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid resize dimensions: %dx%d", c.Width, c.Height)
	}
	if c.Out == "" {
		c.Out = strings.TrimSuffix(c.File, filepath.Ext(c.File)) + ".field.png"
	}
	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.File)

	img, err := pixel.Open(c.File)
	if err != nil {
		return err
	}
	img = pixel.Fit(logger, img, c.Width, c.Height)

	b := dither.Builder{
		Metric:    c.Metric,
		Direction: c.Direction,
		OnPass: func(pass int, maxTime uint32) {
			logger.Debug("spread pass", "pass", pass, "max_time", maxTime)
		},
	}
	if c.Seed != 0 {
		b.Rand = dither.NewRand(c.Seed)
	}
	field := b.Build(img)

	if err := save(c.Out, Heatmap(field)); err != nil {
		return err
	}

	logger.Info("field exported", "out", c.Out, "max_time", field.MaxTime,
		"reveal_seconds", float64(field.MaxTime)/dither.FadeSpeed,
		"time_scale", dither.TimeScale(field.MaxTime))
	return nil
}

// Heatmap renders a field in grayscale: pixels revealed first are white,
// the last ones dark gray and pixels never revealed black.
func Heatmap(f *dither.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	if f.MaxTime == 0 {
		return img
	}
	for i, t := range f.Times {
		if t == 0 {
			continue
		}
		img.Pix[i] = uint8(255 - uint64(t)*223/uint64(f.MaxTime))
	}
	return img
}

func save(path string, img image.Image) (err error) {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, closeErr)
		}
	}()

	if err := pixel.EncodePNG(outFile, img); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	return nil
}
