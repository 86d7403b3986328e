// Package preview plays a dithered transition in the terminal.
package preview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"stipple/dither"
	"stipple/drawable"
	"stipple/element"
	"stipple/player"
	"stipple/render"
	"stipple/target"
)

type CLICmd struct {
	File string `arg:"" help:"Image to preview" type:"existingfile"`

	render.TransitionParams `embed:""`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	return c.Check()
}

func (c *CLICmd) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("could not initialize terminal: %w", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	pic := element.NewPicture(c.File)
	pic.MaxWidth = w
	pic.MaxHeight = h * 2

	s := newSession(screen, pic, &c.TransitionParams)
	ticker := time.NewTicker(s.player.FrameDuration())
	defer ticker.Stop()
	return s.run(ticker.C)
}

// session ties a player to a terminal and its key bindings.
type session struct {
	screen tcell.Screen
	term   *target.Terminal
	dither *dither.Ditherer
	player *player.Player
}

// newSession loads src, centres it on screen and starts the reveal.
func newSession(screen tcell.Screen, src dither.Source, params *render.TransitionParams) *session {
	term := target.NewTerminal(screen)
	term.Background = params.BackgroundColor

	d := dither.New(src, params.DitherOptions()...)
	p := player.New(d, drawable.Within(term.Bounds()))
	p.FPS = params.FPS
	p.Settings.Notes = params.Notes
	p.Prepare()
	p.Step()

	return &session{screen: screen, term: term, dither: d, player: p}
}

// run draws a frame on every tick and handles input until the user quits or
// a frame fails to draw.
func (s *session) run(ticks <-chan time.Time) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !s.handle(ev) {
				return nil
			}
		case <-ticks:
			if err := s.frame(); err != nil {
				return err
			}
		}
	}
}

// handle reacts to one event and reports whether the preview goes on.
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if s.term.Sync() {
			s.player.Pos = drawable.Within(s.term.Bounds())
		}
		s.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter, tcell.KeyRight:
			s.step()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.step()
			case 'n':
				s.player.Settings.Notes = !s.player.Settings.Notes
			case 'r':
				s.dither.Restart()
				s.player.Step()
			}
		}
	}
	return true
}

func (s *session) step() {
	s.player.Step()
	slog.Debug("stepped", "phase", s.dither.Phase(), "state", s.player.State())
}

func (s *session) frame() error {
	if err := s.player.Tick(s.term); err != nil {
		return err
	}
	s.term.Present()
	return nil
}
