package dither

import "stipple/drawable"

type Phase uint8

const (
	Idle Phase = iota
	RevealingIn
	HidingOut
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case RevealingIn:
		return "revealing"
	case HidingOut:
		return "hiding"
	}
	return "unknown"
}

// Transition tracks the animation phase and the seconds spent revealing and
// hiding. Both clocks stop once their animation has covered MaxTime.
type Transition struct {
	Phase      Phase
	InElapsed  float64
	OutElapsed float64
	MaxTime    uint32
}

func (t *Transition) FullyRevealed() bool {
	return t.InElapsed*FadeSpeed > float64(t.MaxTime)
}

func (t *Transition) FullyHidden() bool {
	return t.OutElapsed*FadeSpeed > float64(t.MaxTime)
}

// Advance moves the clocks of the current phase forward by dt seconds.
// A hide started before the reveal finished keeps the reveal running too.
func (t *Transition) Advance(dt float64) {
	if dt <= 0 {
		return
	}

	switch t.Phase {
	case RevealingIn:
		if !t.FullyRevealed() {
			t.InElapsed += dt
		}
	case HidingOut:
		if !t.FullyRevealed() {
			t.InElapsed += dt
		}
		if !t.FullyHidden() {
			t.OutElapsed += dt
		}
	}
}

// BeginReveal starts revealing an idle transition.
func (t *Transition) BeginReveal() {
	if t.Phase == Idle {
		t.Phase = RevealingIn
	}
}

// BeginHide starts hiding. Hiding is terminal.
func (t *Transition) BeginHide() {
	t.Phase = HidingOut
}

// Step moves to the next phase and reports whether it ended a reveal.
func (t *Transition) Step() bool {
	switch t.Phase {
	case Idle:
		t.Phase = RevealingIn
	case RevealingIn:
		t.Phase = HidingOut
		return true
	}
	return false
}

// Reset returns to Idle with both clocks at zero, keeping MaxTime.
func (t *Transition) Reset() {
	t.Phase = Idle
	t.InElapsed = 0
	t.OutElapsed = 0
}

func (t *Transition) State() drawable.State {
	switch t.Phase {
	case Idle:
		return drawable.Working
	case HidingOut:
		if t.FullyHidden() {
			return drawable.Hidden
		}
	}
	return drawable.Final
}
