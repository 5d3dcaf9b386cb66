package floating

import "context"

// OffsetOptions configures the Offset middleware.
type OffsetOptions struct {
	// MainAxis is the distance along the placement's side axis (the gap).
	MainAxis float64
	// CrossAxis is the skid along the alignment axis.
	CrossAxis float64
	// AlignmentAxis overrides CrossAxis for aligned placements and is
	// inverted for end alignment.
	AlignmentAxis *float64
}

// OffsetData is reported by the Offset middleware.
type OffsetData struct {
	X, Y      float64
	Placement Placement
}

// OffsetValue is Offset with only a main axis distance.
func OffsetValue(v float64) Middleware {
	return Offset(OffsetOptions{MainAxis: v})
}

// Offset translates the floating element by a fixed per-axis delta.
func Offset(opts OffsetOptions) Middleware {
	return Middleware{
		Name: "offset",
		Fn: func(_ context.Context, state MiddlewareState) (MiddlewareReturn, error) {
			diff := offsetCoords(state, opts)
			return MiddlewareReturn{
				X:    Coord(state.X + diff.X),
				Y:    Coord(state.Y + diff.Y),
				Data: OffsetData{X: diff.X, Y: diff.Y, Placement: state.Placement},
			}, nil
		},
	}
}

// offsetCoords converts axis-relative offsets into an x/y delta.
func offsetCoords(state MiddlewareState, opts OffsetOptions) Point {
	side := state.Placement.Side()
	alignment := state.Placement.Alignment()
	isVertical := side.Axis() == AxisY

	mainMulti := 1.0
	if side == SideLeft || side == SideTop {
		mainMulti = -1
	}
	crossMulti := 1.0
	if state.RTL && isVertical {
		crossMulti = -1
	}

	mainAxis, crossAxis := opts.MainAxis, opts.CrossAxis
	if alignment != AlignCenter && opts.AlignmentAxis != nil {
		crossAxis = *opts.AlignmentAxis
		if alignment == AlignEnd {
			crossAxis = -crossAxis
		}
	}

	if isVertical {
		return Point{X: crossAxis * crossMulti, Y: mainAxis * mainMulti}
	}
	return Point{X: mainAxis * mainMulti, Y: crossAxis * crossMulti}
}
