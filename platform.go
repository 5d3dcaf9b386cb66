package floating

import (
	"context"
	"errors"
)

// ErrDetached is returned when an element needed for a pass is missing.
var ErrDetached = errors.New("floating: element detached")

// Elements holds the reference and floating element of a pass.
type Elements struct {
	Reference *Element
	Floating  *Element
}

// ClippingRectArgs describes a clipping rect query.
type ClippingRectArgs struct {
	Element      *Element
	Boundary     *Rect
	RootBoundary *Rect
	Strategy     Strategy
}

// Platform measures elements for the positioning pipeline.
type Platform interface {
	// ElementRects returns the reference rect in the shared coordinate
	// space and the floating element's size at the origin.
	ElementRects(ctx context.Context, elements Elements, strategy Strategy) (ElementRects, error)
	// ClippingRect returns the intersection of the boundary and the root
	// boundary for the element.
	ClippingRect(ctx context.Context, args ClippingRectArgs) (Rect, error)
}

// ViewportPlatform measures Elements directly and clips to a fixed viewport.
type ViewportPlatform struct {
	Viewport Rect
}

var _ Platform = ViewportPlatform{}

// ElementRects implements Platform.
func (p ViewportPlatform) ElementRects(_ context.Context, elements Elements, _ Strategy) (ElementRects, error) {
	if elements.Reference == nil || elements.Floating == nil {
		return ElementRects{}, ErrDetached
	}
	fl := elements.Floating.BoundingRect()
	return ElementRects{
		Reference: elements.Reference.BoundingRect(),
		Floating:  NewRect(0, 0, fl.Width, fl.Height),
	}, nil
}

// ClippingRect implements Platform.
func (p ViewportPlatform) ClippingRect(_ context.Context, args ClippingRectArgs) (Rect, error) {
	root := p.Viewport
	if args.RootBoundary != nil {
		root = *args.RootBoundary
	}
	if args.Boundary == nil {
		return root, nil
	}
	return root.Intersect(*args.Boundary), nil
}
