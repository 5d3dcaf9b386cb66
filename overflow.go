package floating

import "context"

// ElementContext selects which element DetectOverflow measures.
type ElementContext uint8

const (
	ContextFloating ElementContext = iota
	ContextReference
)

// DetectOverflowOptions configures DetectOverflow.
type DetectOverflowOptions struct {
	// Boundary clips in addition to the root boundary. Nil means none.
	Boundary *Rect
	// RootBoundary replaces the platform's viewport. Nil means the viewport.
	RootBoundary *Rect
	// Padding shrinks the clipping rect on each side.
	Padding SideObject
	// ElementContext picks the floating (default) or the reference element.
	ElementContext ElementContext
}

// DetectOverflow returns how far the chosen element extends past each side of
// the clipping rect. Positive values overflow, zero or negative values are
// clearance. The floating rect is taken at (state.X, state.Y).
func DetectOverflow(ctx context.Context, state MiddlewareState, opts DetectOverflowOptions) (SideObject, error) {
	el := state.Elements.Floating
	rect := NewRect(state.X, state.Y, state.Rects.Floating.Width, state.Rects.Floating.Height)
	if opts.ElementContext == ContextReference {
		el = state.Elements.Reference
		rect = state.Rects.Reference
	}

	clip, err := state.Platform.ClippingRect(ctx, ClippingRectArgs{
		Element:      el,
		Boundary:     opts.Boundary,
		RootBoundary: opts.RootBoundary,
		Strategy:     state.Strategy,
	})
	if err != nil {
		return SideObject{}, err
	}

	pad := opts.Padding
	return SideObject{
		Top:    clip.Top() - rect.Top() + pad.Top,
		Bottom: rect.Bottom() - clip.Bottom() + pad.Bottom,
		Left:   clip.Left() - rect.Left() + pad.Left,
		Right:  rect.Right() - clip.Right() + pad.Right,
	}, nil
}

// withFloatingHeight returns a copy of state measuring the floating element
// at height h.
func withFloatingHeight(state MiddlewareState, h float64) MiddlewareState {
	state.Rects.Floating = state.Rects.Floating.WithHeight(h)
	return state
}
