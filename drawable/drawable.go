// Package drawable defines the lifecycle every piece of presentation content
// goes through and the render-target contract content draws onto.
//
// A driver calls Register once for every element, then Load, and only then
// starts the frame loop of Step (discrete phase changes on user input),
// Update (continuous clocks) and Draw.
package drawable

import (
	"image"
	"image/color"
)

// State reports how far an element has progressed through its animations.
// Values are ordered: Working < Final < Hidden.
type State uint8

const (
	// Working means the element is still settling and needs per-frame updates.
	Working State = iota
	// Final means the element has reached its resting appearance.
	Final
	// Hidden means the element has finished animating out.
	Hidden
)

func (s State) String() string {
	switch s {
	case Working:
		return "working"
	case Final:
		return "final"
	case Hidden:
		return "hidden"
	}
	return "unknown"
}

// Settings carries per-draw rendering options.
type Settings struct {
	// Notes selects the presenter notes visualization.
	Notes bool
}

var (
	Main      = Settings{Notes: false}
	NotesView = Settings{Notes: true}
)

type Drawable interface {
	Register()
	Load()
	Step()
	Update(dt float64)
	State() State
	Draw(t Target, pos Position, s Settings) error
}

// Texture is pixel storage owned by a Target.
type Texture interface {
	// Update replaces the texture contents with tightly packed or strided
	// non-premultiplied RGBA rows.
	Update(pix []byte, stride int) error
}

// Target is a render backend.
type Target interface {
	NewTexture(width, height int) (Texture, error)
	// Copy blends tex over the target, scaled to dst.
	Copy(tex Texture, dst image.Rectangle) error
	FillRect(dst image.Rectangle, c color.RGBA) error
}
