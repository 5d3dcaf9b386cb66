package floating

import "testing"

func TestPlacement_Parts(t *testing.T) {
	type tc struct {
		placement Placement
		side      Side
		alignment Alignment
		opposite  Placement
		valid     bool
	}

	tests := map[string]tc{
		"bottom": {
			placement: Bottom,
			side:      SideBottom,
			alignment: AlignCenter,
			opposite:  Top,
			valid:     true,
		},
		"top-start": {
			placement: TopStart,
			side:      SideTop,
			alignment: AlignStart,
			opposite:  BottomStart,
			valid:     true,
		},
		"left-end": {
			placement: LeftEnd,
			side:      SideLeft,
			alignment: AlignEnd,
			opposite:  RightEnd,
			valid:     true,
		},
		"unknown side": {
			placement: "middle",
			side:      "middle",
			alignment: AlignCenter,
			opposite:  "middle",
			valid:     false,
		},
		"unknown alignment": {
			placement: "top-middle",
			side:      SideTop,
			alignment: "middle",
			opposite:  "bottom-middle",
			valid:     false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.placement.Side(); got != tt.side {
				t.Errorf("Side() = %q, want %q", got, tt.side)
			}
			if got := tt.placement.Alignment(); got != tt.alignment {
				t.Errorf("Alignment() = %q, want %q", got, tt.alignment)
			}
			if got := tt.placement.Opposite(); got != tt.opposite {
				t.Errorf("Opposite() = %q, want %q", got, tt.opposite)
			}
			if got := tt.placement.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestComputeCoordsFromPlacement(t *testing.T) {
	type tc struct {
		placement Placement
		rtl       bool
		want      Point
	}

	rects := ElementRects{
		Reference: NewRect(100, 100, 50, 20),
		Floating:  NewRect(0, 0, 30, 10),
	}

	tests := map[string]tc{
		"bottom":           {placement: Bottom, want: Point{X: 110, Y: 120}},
		"top":              {placement: Top, want: Point{X: 110, Y: 90}},
		"right":            {placement: Right, want: Point{X: 150, Y: 105}},
		"left":             {placement: Left, want: Point{X: 70, Y: 105}},
		"bottom-start":     {placement: BottomStart, want: Point{X: 100, Y: 120}},
		"bottom-end":       {placement: BottomEnd, want: Point{X: 120, Y: 120}},
		"bottom-start rtl": {placement: BottomStart, rtl: true, want: Point{X: 120, Y: 120}},
		"right-start":      {placement: RightStart, want: Point{X: 150, Y: 100}},
		"right-end":        {placement: RightEnd, want: Point{X: 150, Y: 110}},
		"right-start rtl":  {placement: RightStart, rtl: true, want: Point{X: 150, Y: 100}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := computeCoordsFromPlacement(rects, tt.placement, tt.rtl)
			if got != tt.want {
				t.Errorf("computeCoordsFromPlacement(%q) = %+v, want %+v", tt.placement, got, tt.want)
			}
		})
	}
}
