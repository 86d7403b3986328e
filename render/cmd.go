// Package render turns pictures and text into animated PNGs of their dithered
// reveal and hide.
package render

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"stipple/dither"
	"stipple/drawable"
	"stipple/element"
	"stipple/parallel"
	"stipple/player"
	"stipple/target"
)

type CLICmd struct {
	Scan   string `help:"Source folder to scan" default:"."`
	Dest   string `help:"Destination folder for animations. Relative to scan dir if not absolute." default:"stippled"`
	Width  int    `help:"Max width, 0 keeps the source width" default:"0" group:"resize"`
	Height int    `help:"Max height, 0 keeps the source height" default:"0" group:"resize"`

	TransitionParams `embed:""`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
	}

	return c.Check()
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	start := time.Now()
	for _, file := range files {
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
			continue
		}

		fileName := file.Name()
		pool.Do(func() error {
			filePath := filepath.Join(c.Scan, fileName)
			logger := slog.Default().With("file", filePath)
			if err := c.renderFile(logger, filePath); err != nil {
				logger.Error("could not render animation", "error", err)
				return err
			}
			return nil
		})
	}

	_ = pool.Wait()

	processed, errors := pool.Stats()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors, "took", time.Since(start))

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) renderFile(logger *slog.Logger, filePath string) error {
	pic := element.NewPicture(filePath)
	pic.MaxWidth = c.Width
	pic.MaxHeight = c.Height

	base := filepath.Base(filePath)
	dest := filepath.Join(c.Dest, strings.TrimSuffix(base, filepath.Ext(base))+".png")
	return c.record(logger, pic, dest)
}

// record plays the transition of src and saves it as an animated PNG at dest.
func (p *TransitionParams) record(logger *slog.Logger, src dither.Source, dest string) error {
	d := dither.New(src, p.DitherOptions()...)
	pl := player.New(d, drawable.TopLeft(image.Point{}))
	pl.FPS = p.FPS
	pl.Settings.Notes = p.Notes

	pl.Prepare()
	if !d.Loaded() {
		return fmt.Errorf("could not load content for %q", dest)
	}
	img := d.Pixels()
	if img.Empty() {
		return fmt.Errorf("nothing to animate for %q", dest)
	}

	surface, release := p.NewSurface(img.Width, img.Height)
	defer release()

	rec := target.Recorder{}
	err := pl.Play(surface, p.Script(), func(frame *image.RGBA, delay time.Duration) error {
		rec.Capture(frame, delay)
		return nil
	})
	if err != nil {
		return err
	}

	if err := rec.Save(dest); err != nil {
		return fmt.Errorf("could not save animation %q: %w", dest, err)
	}
	logger.Info("rendered", "dest", dest, "frames", rec.Len(), "duration", rec.Duration(),
		"max_time", d.Field().MaxTime)
	return nil
}
