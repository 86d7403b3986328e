// Package player drives drawable content frame by frame at a fixed rate:
// register and load once, then step, update and draw.
package player

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"stipple/drawable"
)

const DefaultFPS = 30

// Surface is a render target that can be cleared between frames and read
// back.
type Surface interface {
	drawable.Target
	Clear()
	Image() *image.RGBA
}

// Revealer is content that reports when its reveal animation is complete.
type Revealer interface {
	FullyRevealed() bool
}

type Player struct {
	root     drawable.Drawable
	Pos      drawable.Position
	Settings drawable.Settings
	FPS      float64

	frames   int
	prepared bool
}

func New(root drawable.Drawable, pos drawable.Position) *Player {
	return &Player{
		root: root,
		Pos:  pos,
		FPS:  DefaultFPS,
	}
}

// Prepare registers and loads the content. Later calls do nothing.
func (p *Player) Prepare() {
	if p.prepared {
		return
	}
	start := time.Now()
	p.root.Register()
	p.root.Load()
	p.prepared = true
	slog.Debug("content loaded", "took", time.Since(start))
}

func (p *Player) Step() {
	p.root.Step()
}

// Advance moves the content clocks forward by one frame.
func (p *Player) Advance() {
	p.root.Update(1 / p.FPS)
	p.frames++
}

// Render clears s and draws the current frame onto it.
func (p *Player) Render(s Surface) error {
	s.Clear()
	if err := p.root.Draw(s, p.Pos, p.Settings); err != nil {
		return fmt.Errorf("could not draw frame %d: %w", p.frames, err)
	}
	return nil
}

// Tick renders the current frame and advances to the next one.
func (p *Player) Tick(s Surface) error {
	if err := p.Render(s); err != nil {
		return err
	}
	p.Advance()
	return nil
}

func (p *Player) State() drawable.State {
	return p.root.State()
}

// Frames is the number of frames advanced so far.
func (p *Player) Frames() int {
	return p.frames
}

func (p *Player) FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / p.FPS)
}

// Revealed reports whether the content finished revealing. Content that
// cannot tell counts as revealed once it reaches its final state.
func (p *Player) Revealed() bool {
	if r, ok := p.root.(Revealer); ok {
		return r.FullyRevealed()
	}
	return p.root.State() >= drawable.Final
}
