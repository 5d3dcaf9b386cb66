package floating

import (
	"context"
	"math"
)

// FlipOptions configures the Flip middleware.
type FlipOptions struct {
	// FallbackPlacements are tried in order when the initial placement
	// overflows. Defaults to the opposite placement.
	FallbackPlacements []Placement
	// CrossAxis also treats overflow along the alignment axis as a reason
	// to flip.
	CrossAxis bool

	DetectOverflowOptions
}

// PlacementOverflow records the overflow seen for a tried placement.
type PlacementOverflow struct {
	Placement Placement
	Overflow  float64
}

// FlipData is reported by the Flip middleware.
type FlipData struct {
	Index int
	Tried []PlacementOverflow
}

// Flip switches to the first fallback placement that does not overflow its
// main side. When none fits, it settles on the placement with the least
// overflow.
func Flip(opts FlipOptions) Middleware {
	return Middleware{
		Name: "flip",
		Fn: func(ctx context.Context, state MiddlewareState) (MiddlewareReturn, error) {
			placements := []Placement{state.InitialPlacement}
			if len(opts.FallbackPlacements) > 0 {
				placements = append(placements, opts.FallbackPlacements...)
			} else {
				placements = append(placements, state.InitialPlacement.Opposite())
			}

			overflowOpts := opts.DetectOverflowOptions
			overflowOpts.ElementContext = ContextFloating
			overflow, err := DetectOverflow(ctx, state, overflowOpts)
			if err != nil {
				return MiddlewareReturn{}, err
			}

			side := state.Placement.Side()
			worst := side.Of(overflow)
			if opts.CrossAxis {
				if side.Axis() == AxisY {
					worst = max(worst, overflow.Left, overflow.Right)
				} else {
					worst = max(worst, overflow.Top, overflow.Bottom)
				}
			}

			prev, _ := state.MiddlewareData["flip"].(FlipData)
			tried := append(append([]PlacementOverflow(nil), prev.Tried...),
				PlacementOverflow{Placement: state.Placement, Overflow: worst})

			if worst <= 0 {
				return MiddlewareReturn{Data: FlipData{Index: prev.Index, Tried: tried}}, nil
			}

			nextIndex := prev.Index + 1
			if nextIndex < len(placements) {
				return MiddlewareReturn{
					Data:  FlipData{Index: nextIndex, Tried: tried},
					Reset: &Reset{Placement: placements[nextIndex]},
				}, nil
			}

			best := tried[0]
			for _, t := range tried[1:] {
				if t.Overflow < best.Overflow {
					best = t
				}
			}
			data := FlipData{Index: nextIndex, Tried: tried}
			if best.Placement != state.Placement {
				return MiddlewareReturn{Data: data, Reset: &Reset{Placement: best.Placement}}, nil
			}
			return MiddlewareReturn{Data: data}, nil
		},
	}
}

// ShiftOptions configures the Shift middleware.
type ShiftOptions struct {
	// DisableMainAxis stops clamping along the alignment axis.
	DisableMainAxis bool
	// CrossAxis also clamps along the side axis.
	CrossAxis bool

	DetectOverflowOptions
}

// ShiftData is reported by the Shift middleware.
type ShiftData struct {
	X, Y float64
}

// Shift clamps the floating element into the clipping rect.
func Shift(opts ShiftOptions) Middleware {
	return Middleware{
		Name: "shift",
		Fn: func(ctx context.Context, state MiddlewareState) (MiddlewareReturn, error) {
			overflowOpts := opts.DetectOverflowOptions
			overflowOpts.ElementContext = ContextFloating
			overflow, err := DetectOverflow(ctx, state, overflowOpts)
			if err != nil {
				return MiddlewareReturn{}, err
			}

			coords := Point{X: state.X, Y: state.Y}
			crossAxis := state.Placement.Side().Axis()
			mainAxis := crossAxis.Opposite()

			if !opts.DisableMainAxis {
				coords = clampAxis(coords, mainAxis, overflow)
			}
			if opts.CrossAxis {
				coords = clampAxis(coords, crossAxis, overflow)
			}

			return MiddlewareReturn{
				X:    Coord(coords.X),
				Y:    Coord(coords.Y),
				Data: ShiftData{X: coords.X - state.X, Y: coords.Y - state.Y},
			}, nil
		},
	}
}

// clampAxis moves the coordinate along axis so the overflow on both sides
// of that axis becomes non-positive where possible. The start side wins when
// the element is larger than the clipping rect.
func clampAxis(p Point, axis Axis, overflow SideObject) Point {
	minSide, maxSide := overflow.Left, overflow.Right
	if axis == AxisY {
		minSide, maxSide = overflow.Top, overflow.Bottom
	}
	v := axis.Of(p)
	lo := v + minSide
	hi := v - maxSide
	return axis.With(p, math.Max(lo, math.Min(v, hi)))
}

// SizeApplyState is passed to SizeOptions.Apply.
type SizeApplyState struct {
	MiddlewareState
	AvailableWidth  float64
	AvailableHeight float64
}

// SizeOptions configures the Size middleware.
type SizeOptions struct {
	// Apply receives the space available on the placement's side and
	// typically writes a max size to the floating element.
	Apply func(SizeApplyState)

	DetectOverflowOptions
}

// SizeData is reported by the Size middleware.
type SizeData struct {
	AvailableWidth  float64
	AvailableHeight float64
}

// Size reports the available space to Apply and remeasures once if Apply
// changed the floating element's size.
func Size(opts SizeOptions) Middleware {
	return Middleware{
		Name: "size",
		Fn: func(ctx context.Context, state MiddlewareState) (MiddlewareReturn, error) {
			overflowOpts := opts.DetectOverflowOptions
			overflowOpts.ElementContext = ContextFloating
			overflow, err := DetectOverflow(ctx, state, overflowOpts)
			if err != nil {
				return MiddlewareReturn{}, err
			}

			side := state.Placement.Side()
			alignment := state.Placement.Alignment()
			fl := state.Rects.Floating

			var heightSide, widthSide Side
			if side.Axis() == AxisY {
				heightSide = side
				widthSide = SideRight
				if (alignment == AlignEnd) != state.RTL && alignment != AlignCenter {
					widthSide = SideLeft
				}
			} else {
				widthSide = side
				heightSide = SideBottom
				if alignment == AlignEnd {
					heightSide = SideTop
				}
			}

			availableHeight := fl.Height - heightSide.Of(overflow)
			availableWidth := fl.Width - widthSide.Of(overflow)
			if _, shifted := state.MiddlewareData["shift"]; shifted && alignment == AlignCenter {
				if side.Axis() == AxisY {
					availableWidth = fl.Width - 2*max(overflow.Left, overflow.Right, 0)
				} else {
					availableHeight = fl.Height - 2*max(overflow.Top, overflow.Bottom, 0)
				}
			}
			availableWidth = max(0, availableWidth)
			availableHeight = max(0, availableHeight)

			if opts.Apply != nil {
				opts.Apply(SizeApplyState{
					MiddlewareState: state,
					AvailableWidth:  availableWidth,
					AvailableHeight: availableHeight,
				})
			}

			data := SizeData{AvailableWidth: availableWidth, AvailableHeight: availableHeight}
			next, err := state.Platform.ElementRects(ctx, state.Elements, state.Strategy)
			if err != nil {
				return MiddlewareReturn{}, err
			}
			if next.Floating.Width != fl.Width || next.Floating.Height != fl.Height {
				return MiddlewareReturn{Data: data, Reset: &Reset{Rects: true}}, nil
			}
			return MiddlewareReturn{Data: data}, nil
		},
	}
}
