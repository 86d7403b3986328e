package drawable

import "image"

type anchor uint8

const (
	anchorTopLeft anchor = iota
	anchorCenter
	anchorRect
)

// Position tells an element where to draw itself.
type Position struct {
	anchor anchor
	point  image.Point
	rect   image.Rectangle
}

// TopLeft places content with its top-left corner at p.
func TopLeft(p image.Point) Position {
	return Position{anchor: anchorTopLeft, point: p}
}

// Center places content centered on p.
func Center(p image.Point) Position {
	return Position{anchor: anchorCenter, point: p}
}

// Within centers content inside r.
func Within(r image.Rectangle) Position {
	return Position{anchor: anchorRect, rect: r.Canon()}
}

// Rect returns where content of the given size lands. Content placed Within a
// rectangle never starts left of or above it, and a dimension that would
// overflow it is clamped to the rectangle's size.
func (p Position) Rect(width, height int) image.Rectangle {
	r := p.RectUnbounded(width, height)
	if p.anchor != anchorRect {
		return r
	}

	if r.Min.X+width > p.rect.Max.X {
		width = p.rect.Dx()
	}
	if r.Min.Y+height > p.rect.Max.Y {
		height = p.rect.Dy()
	}
	return image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Min.Y+height)
}

// RectUnbounded is like Rect but never shrinks the content.
func (p Position) RectUnbounded(width, height int) image.Rectangle {
	var origin image.Point
	switch p.anchor {
	case anchorTopLeft:
		origin = p.point
	case anchorCenter:
		origin = image.Pt(p.point.X-width/2, p.point.Y-height/2)
	case anchorRect:
		c := image.Pt(p.rect.Min.X+p.rect.Dx()/2, p.rect.Min.Y+p.rect.Dy()/2)
		origin = image.Pt(
			max(c.X-width/2, p.rect.Min.X),
			max(c.Y-height/2, p.rect.Min.Y),
		)
	}
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))}
}
