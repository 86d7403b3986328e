package player

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"stipple/drawable"
)

// FrameFunc receives every rendered frame with the time it stays on screen.
// img is reused for the next frame.
type FrameFunc func(img *image.RGBA, d time.Duration) error

// Script plays a reveal, holds the revealed content and hides it again.
type Script struct {
	// Hold is how long the fully revealed frame stays on screen.
	Hold time.Duration
	// MaxFrames caps the reveal and the hide phase each. Zero means no cap.
	MaxFrames int
	// SkipHide stops after the hold.
	SkipHide bool
}

// Play runs script on p, rendering to s and handing every frame to emit.
// It returns the first draw or emit error.
func (p *Player) Play(s Surface, script Script, emit FrameFunc) error {
	p.Prepare()

	p.Step()
	n, err := p.playUntil(s, script.MaxFrames, emit, p.Revealed)
	if err != nil {
		return fmt.Errorf("could not play reveal: %w", err)
	}
	slog.Debug("reveal played", "frames", n)

	if script.Hold > 0 {
		if err := p.Render(s); err != nil {
			return err
		}
		if err := emit(s.Image(), script.Hold); err != nil {
			return err
		}
	}
	if script.SkipHide {
		return nil
	}

	p.Step()
	p.Advance()
	n, err = p.playUntil(s, script.MaxFrames, emit, func() bool {
		return p.State() == drawable.Hidden
	})
	if err != nil {
		return fmt.Errorf("could not play hide: %w", err)
	}
	slog.Debug("hide played", "frames", n)
	return nil
}

// playUntil renders and advances frames until done reports true after a
// rendered frame, or maxFrames frames were rendered.
func (p *Player) playUntil(s Surface, maxFrames int, emit FrameFunc, done func() bool) (int, error) {
	frame := p.FrameDuration()
	for n := 1; ; n++ {
		if err := p.Render(s); err != nil {
			return n, err
		}
		if err := emit(s.Image(), frame); err != nil {
			return n, err
		}
		if done() {
			return n, nil
		}
		if maxFrames > 0 && n >= maxFrames {
			slog.Warn("animation did not settle, cutting it short", "frames", n)
			return n, nil
		}
		p.Advance()
	}
}
