package geom

// SideObject holds one value per side of a box.
// For overflow results, positive means the element extends past the boundary
// on that side and negative means clearance remains.
type SideObject struct {
	Top, Right, Bottom, Left float64
}

// SideAll creates a SideObject with the same value on all sides.
func SideAll(n float64) SideObject {
	return SideObject{Top: n, Right: n, Bottom: n, Left: n}
}

// SideTRBL creates a SideObject following CSS order: Top, Right, Bottom, Left.
func SideTRBL(t, r, b, l float64) SideObject {
	return SideObject{Top: t, Right: r, Bottom: b, Left: l}
}

// Add returns the per-side sum of s and other.
func (s SideObject) Add(other SideObject) SideObject {
	return SideObject{
		Top:    s.Top + other.Top,
		Right:  s.Right + other.Right,
		Bottom: s.Bottom + other.Bottom,
		Left:   s.Left + other.Left,
	}
}

// Vertical returns the sum of Top and Bottom.
func (s SideObject) Vertical() float64 {
	return s.Top + s.Bottom
}

// Horizontal returns the sum of Left and Right.
func (s SideObject) Horizontal() float64 {
	return s.Left + s.Right
}

// IsZero returns true if all side values are zero.
func (s SideObject) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Fits returns true if no side overflows.
func (s SideObject) Fits() bool {
	return s.Top <= 0 && s.Right <= 0 && s.Bottom <= 0 && s.Left <= 0
}
