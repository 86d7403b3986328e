package drawable

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"
)

func TestPositionRect(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		w, h int
		want image.Rectangle
	}{
		{"top left", TopLeft(image.Pt(3, 4)), 10, 20, image.Rect(3, 4, 13, 24)},
		{"center", Center(image.Pt(50, 50)), 10, 20, image.Rect(45, 40, 55, 60)},
		{"within fits", Within(image.Rect(0, 0, 100, 100)), 10, 20, image.Rect(45, 40, 55, 60)},
		{"within too wide", Within(image.Rect(10, 10, 30, 30)), 40, 10, image.Rect(10, 15, 30, 25)},
		{"within too tall", Within(image.Rect(0, 0, 20, 20)), 10, 50, image.Rect(5, 0, 15, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.Rect(tt.w, tt.h); got != tt.want {
				t.Errorf("Rect(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestPositionRectUnbounded(t *testing.T) {
	pos := Within(image.Rect(10, 10, 30, 30))
	if got, want := pos.RectUnbounded(40, 10), image.Rect(10, 15, 50, 25); got != want {
		t.Errorf("RectUnbounded(40, 10) = %v, want %v", got, want)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Working: "working", Final: "final", Hidden: "hidden", State(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}

type probe struct {
	name  string
	log   *[]string
	state State
	err   error
}

func (p *probe) Register()         { *p.log = append(*p.log, p.name+".register") }
func (p *probe) Load()             { *p.log = append(*p.log, p.name+".load") }
func (p *probe) Step()             { *p.log = append(*p.log, p.name+".step") }
func (p *probe) Update(dt float64) { *p.log = append(*p.log, p.name+".update") }
func (p *probe) State() State      { return p.state }
func (p *probe) Draw(Target, Position, Settings) error {
	*p.log = append(*p.log, p.name+".draw")
	return p.err
}

type nopTarget struct{}

func (nopTarget) NewTexture(int, int) (Texture, error)       { return nil, nil }
func (nopTarget) Copy(Texture, image.Rectangle) error        { return nil }
func (nopTarget) FillRect(image.Rectangle, color.RGBA) error { return nil }

func TestGroupForwards(t *testing.T) {
	var log []string
	g := NewGroup(&probe{name: "a", log: &log}, &probe{name: "b", log: &log})

	g.Register()
	g.Load()
	g.Step()
	g.Update(0.1)
	if err := g.Draw(nopTarget{}, TopLeft(image.Point{}), Main); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	want := []string{
		"a.register", "b.register",
		"a.load", "b.load",
		"a.step", "b.step",
		"a.update", "b.update",
		"a.draw", "b.draw",
	}
	if !slices.Equal(log, want) {
		t.Errorf("call order = %v, want %v", log, want)
	}
}

func TestGroupState(t *testing.T) {
	var log []string
	tests := []struct {
		name   string
		states []State
		want   State
	}{
		{"empty", nil, Final},
		{"all hidden", []State{Hidden, Hidden}, Hidden},
		{"one working", []State{Hidden, Working, Final}, Working},
		{"final and hidden", []State{Final, Hidden}, Final},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGroup()
			for _, s := range tt.states {
				g.Children = append(g.Children, &probe{log: &log, state: s})
			}
			if got := g.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupDrawStopsOnError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	g := NewGroup(&probe{name: "a", log: &log, err: boom}, &probe{name: "b", log: &log})

	if err := g.Draw(nopTarget{}, TopLeft(image.Point{}), Main); !errors.Is(err, boom) {
		t.Errorf("Draw() error = %v, want %v", err, boom)
	}
	if slices.Contains(log, "b.draw") {
		t.Error("Draw() continued after a failing child")
	}
}
