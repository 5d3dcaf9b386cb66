package floating

import "strings"

// Placement is the requested side of the reference element plus an optional
// alignment, e.g. "bottom" or "top-start".
type Placement string

const (
	Top         Placement = "top"
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	Right       Placement = "right"
	RightStart  Placement = "right-start"
	RightEnd    Placement = "right-end"
	Bottom      Placement = "bottom"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	Left        Placement = "left"
	LeftStart   Placement = "left-start"
	LeftEnd     Placement = "left-end"
)

// Side is one of the four sides of a box.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Alignment is the placement's alignment along the side.
type Alignment string

const (
	AlignCenter Alignment = ""
	AlignStart  Alignment = "start"
	AlignEnd    Alignment = "end"
)

// Axis is a coordinate axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Strategy is the CSS positioning strategy the coordinates are meant for.
type Strategy string

const (
	StrategyAbsolute Strategy = "absolute"
	StrategyFixed    Strategy = "fixed"
)

// Side returns the placement's side.
func (p Placement) Side() Side {
	side, _, _ := strings.Cut(string(p), "-")
	return Side(side)
}

// Alignment returns the placement's alignment, AlignCenter if none.
func (p Placement) Alignment() Alignment {
	_, align, _ := strings.Cut(string(p), "-")
	return Alignment(align)
}

// Opposite returns the placement on the opposite side with the same alignment.
func (p Placement) Opposite() Placement {
	return PlacementOf(p.Side().Opposite(), p.Alignment())
}

// PlacementOf joins a side and an alignment.
func PlacementOf(s Side, a Alignment) Placement {
	if a == AlignCenter {
		return Placement(s)
	}
	return Placement(string(s) + "-" + string(a))
}

// Valid returns true for the twelve known placements.
func (p Placement) Valid() bool {
	switch p.Side() {
	case SideTop, SideRight, SideBottom, SideLeft:
	default:
		return false
	}
	switch p.Alignment() {
	case AlignCenter, AlignStart, AlignEnd:
		return true
	}
	return false
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

// Axis returns the axis the side is measured along: y for top and bottom.
func (s Side) Axis() Axis {
	if s == SideTop || s == SideBottom {
		return AxisY
	}
	return AxisX
}

// Of returns the side's value from a SideObject.
func (s Side) Of(o SideObject) float64 {
	switch s {
	case SideTop:
		return o.Top
	case SideRight:
		return o.Right
	case SideBottom:
		return o.Bottom
	case SideLeft:
		return o.Left
	}
	return 0
}

// Opposite returns the other axis.
func (a Axis) Opposite() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// Of returns the axis component of p.
func (a Axis) Of(p Point) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// With returns p with the axis component replaced by v.
func (a Axis) With(p Point, v float64) Point {
	if a == AxisX {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Length returns the rect's extent along the axis.
func (a Axis) Length(r Rect) float64 {
	if a == AxisX {
		return r.Width
	}
	return r.Height
}

// computeCoordsFromPlacement returns the anchored top-left corner of the
// floating rect for placement before any middleware runs.
func computeCoordsFromPlacement(rects ElementRects, placement Placement, rtl bool) Point {
	ref, fl := rects.Reference, rects.Floating
	side := placement.Side()
	sideAxis := side.Axis()
	alignAxis := sideAxis.Opposite()
	isVertical := sideAxis == AxisY

	commonX := ref.X + ref.Width/2 - fl.Width/2
	commonY := ref.Y + ref.Height/2 - fl.Height/2
	commonAlign := alignAxis.Length(ref)/2 - alignAxis.Length(fl)/2

	var coords Point
	switch side {
	case SideTop:
		coords = Point{X: commonX, Y: ref.Y - fl.Height}
	case SideBottom:
		coords = Point{X: commonX, Y: ref.Bottom()}
	case SideRight:
		coords = Point{X: ref.Right(), Y: commonY}
	case SideLeft:
		coords = Point{X: ref.X - fl.Width, Y: commonY}
	default:
		coords = Point{X: ref.X, Y: ref.Y}
	}

	dir := 1.0
	if rtl && isVertical {
		dir = -1
	}
	switch placement.Alignment() {
	case AlignStart:
		coords = alignAxis.With(coords, alignAxis.Of(coords)-commonAlign*dir)
	case AlignEnd:
		coords = alignAxis.With(coords, alignAxis.Of(coords)+commonAlign*dir)
	}
	return coords
}
