// Package dither reveals and hides images pixel by pixel in a stipple
// pattern that follows local contrast, a directional sweep and random
// jitter.
//
// A Ditherer wraps any Source. At load time it builds a reveal Field from the
// source's pixels; afterwards every Update advances the Transition clocks and
// every Draw composites the source through the field.
package dither

import (
	"log/slog"

	"stipple/drawable"
	"stipple/pixel"
)

// Source is content whose pixels can be dithered.
type Source interface {
	drawable.Drawable
	Loaded() bool
	// Pixels returns the loaded pixel data. It panics before Load.
	Pixels() *pixel.Image
}

type Ditherer struct {
	inner   Source
	builder Builder
	field   *Field
	trans   Transition
	comp    Compositor
}

type Option func(*Ditherer)

func WithMetric(m Metric) Option {
	return func(d *Ditherer) { d.builder.Metric = m }
}

func WithDirection(dir Direction) Option {
	return func(d *Ditherer) { d.builder.Direction = dir }
}

// WithRand makes the field build reproducible.
func WithRand(rng Rand) Option {
	return func(d *Ditherer) { d.builder.Rand = rng }
}

// Shown starts the ditherer already revealed, so the first Step hides it.
func Shown() Option {
	return func(d *Ditherer) { d.trans.Phase = RevealingIn }
}

// New wraps inner. Unless Shown is given, the content stays invisible until
// the first Step.
func New(inner Source, opts ...Option) *Ditherer {
	d := &Ditherer{inner: inner}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Ditherer) Register() {
	d.inner.Register()
}

func (d *Ditherer) Load() {
	d.inner.Load()
	if !d.inner.Loaded() {
		slog.Warn("content failed to load, drawing it without transition")
		return
	}

	img := d.inner.Pixels()
	d.field = d.builder.Build(img)
	d.trans.MaxTime = d.field.MaxTime
	if d.trans.Phase == RevealingIn {
		d.trans.InElapsed = float64(d.field.MaxTime) * FadeSpeed
	}
	d.comp.Reset(img.Width, img.Height)
}

// Step reveals an idle ditherer and hides a revealing one. Ending the reveal
// also steps the wrapped content.
func (d *Ditherer) Step() {
	if d.trans.Step() {
		d.inner.Step()
	}
}

func (d *Ditherer) Update(dt float64) {
	d.trans.Advance(dt)
}

func (d *Ditherer) State() drawable.State {
	return d.trans.State()
}

func (d *Ditherer) Draw(t drawable.Target, pos drawable.Position, s drawable.Settings) error {
	if !s.Notes {
		switch {
		case d.trans.Phase == Idle:
			return nil
		case d.trans.Phase == RevealingIn && d.trans.FullyRevealed():
			return d.inner.Draw(t, pos, s)
		case d.trans.FullyHidden():
			return nil
		}
	}

	if d.field == nil {
		return d.inner.Draw(t, pos, s)
	}

	frame := Frame{InElapsed: d.trans.InElapsed, OutElapsed: d.trans.OutElapsed}
	if s.Notes {
		tint := d.tint()
		frame.Tint = &tint
	}

	img := d.inner.Pixels()
	d.comp.Compose(img, d.field, frame)
	if img.Empty() {
		return nil
	}
	return d.comp.Blit(t, pos.Rect(img.Width, img.Height), img.Width, img.Height)
}

func (d *Ditherer) tint() Tint {
	switch {
	case d.trans.Phase == Idle:
		return TintIdle
	case !d.trans.FullyRevealed():
		return TintPreReveal
	case d.trans.Phase == RevealingIn:
		return TintRevealed
	case d.trans.Phase == HidingOut:
		return TintHiding
	}
	return TintOther
}

func (d *Ditherer) BeginReveal() {
	d.trans.BeginReveal()
}

func (d *Ditherer) BeginHide() {
	d.trans.BeginHide()
}

// Restart returns to Idle so the transition can be played again on the same
// field.
func (d *Ditherer) Restart() {
	d.trans.Reset()
}

func (d *Ditherer) Phase() Phase {
	return d.trans.Phase
}

func (d *Ditherer) FullyRevealed() bool {
	return d.trans.FullyRevealed()
}

func (d *Ditherer) FullyHidden() bool {
	return d.trans.FullyHidden()
}

// Transition returns a copy of the current clocks.
func (d *Ditherer) Transition() Transition {
	return d.trans
}

// Field returns the reveal field, or nil before a successful Load.
func (d *Ditherer) Field() *Field {
	return d.field
}

func (d *Ditherer) Loaded() bool {
	return d.inner.Loaded()
}

func (d *Ditherer) Pixels() *pixel.Image {
	return d.inner.Pixels()
}
