package floating

import "github.com/grindlemire/go-floating/internal/geom"

// Re-export geometry types from internal/geom for public API.

// Rect represents an axis-aligned box in the shared coordinate space.
type Rect = geom.Rect

// SideObject holds signed per-side distances.
type SideObject = geom.SideObject

// Point represents an (X, Y) coordinate.
type Point = geom.Point

// ElementRects holds the measured reference and floating rects for a pass.
type ElementRects = geom.ElementRects

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// SideAll creates a SideObject with the same value on all sides.
func SideAll(n float64) SideObject {
	return geom.SideAll(n)
}

// SideTRBL creates a SideObject following CSS order: Top, Right, Bottom, Left.
func SideTRBL(t, r, b, l float64) SideObject {
	return geom.SideTRBL(t, r, b, l)
}
