// Package position computes where a tooltip goes relative to its target.
//
// [Compute] is a pure function: it places the tooltip on the requested side
// of the target, clamps each axis independently so the tooltip stays
// EdgeMargin pixels inside the viewport, and converts the result to page
// coordinates by adding the scroll offsets. There is no flipping to the
// opposite side; a tooltip that does not fit is pinned to the edge and may
// cover its target.
package position

import (
	"fmt"

	"github.com/vango-dev/tooltips/pkg/dom"
)

// EdgeMargin is the gap kept between a clamped tooltip and the viewport edge.
const EdgeMargin = 10

// Placement is the side of the target the tooltip is anchored to.
type Placement string

const (
	Top    Placement = "top"
	Bottom Placement = "bottom"
	Left   Placement = "left"
	Right  Placement = "right"
)

// Valid reports whether p is one of the four sides.
func (p Placement) Valid() bool {
	switch p {
	case Top, Bottom, Left, Right:
		return true
	}
	return false
}

// Size is the rendered size of the tooltip.
type Size struct {
	Width  float64
	Height float64
}

// Input is everything Compute needs.
type Input struct {
	Target    dom.Rect
	Tooltip   Size
	Placement Placement
	Offset    float64
	Viewport  dom.Viewport
}

// Point is a position in page coordinates.
type Point struct {
	Top  float64
	Left float64
}

// String formats the point the way it is written to the style properties.
func (p Point) String() string {
	return fmt.Sprintf("top=%s left=%s", Px(p.Top), Px(p.Left))
}

// Compute returns the page position of the tooltip's top-left corner.
// An unknown placement is treated as Top.
func Compute(in Input) Point {
	t, w, h, o := in.Target, in.Tooltip.Width, in.Tooltip.Height, in.Offset

	var p Point
	switch in.Placement {
	case Bottom:
		p.Top = t.Bottom() + o
		p.Left = t.Left + t.Width/2 - w/2
	case Left:
		p.Top = t.Top + t.Height/2 - h/2
		p.Left = t.Left - w - o
	case Right:
		p.Top = t.Top + t.Height/2 - h/2
		p.Left = t.Right() + o
	default:
		p.Top = t.Top - h - o
		p.Left = t.Left + t.Width/2 - w/2
	}

	p.Left = clamp(p.Left, w, in.Viewport.Width)
	p.Top = clamp(p.Top, h, in.Viewport.Height)

	p.Top += in.Viewport.ScrollY
	p.Left += in.Viewport.ScrollX
	return p
}

// clamp keeps a span of length size starting at v inside [0, limit].
func clamp(v, size, limit float64) float64 {
	if v < 0 {
		return EdgeMargin
	}
	if v+size > limit {
		return limit - size - EdgeMargin
	}
	return v
}

// Px formats a coordinate as a CSS pixel length.
func Px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
