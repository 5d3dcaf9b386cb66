package floating

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// FallbackEpsilon is subtracted from the minimum visible list height before
// comparing it with the rendered height. It tolerates sub-pixel rounding of
// the rendered height and is kept at exactly one pixel.
const FallbackEpsilon = 1.0

// DefaultMinItemsVisible is the number of items that must fit before the
// inner strategy gives up.
const DefaultMinItemsVisible = 4

// InnerOptions configures the Inner middleware.
type InnerOptions struct {
	// List holds the item elements; Index selects the anchored item.
	List  *RefList
	Index int
	// Offset is the external offset number, fed back by the scroll controller.
	Offset float64
	// MinItemsVisible defaults to DefaultMinItemsVisible.
	MinItemsVisible int
	// ReferenceOverflowThreshold is the clearance the reference must keep
	// from the boundary for inner anchoring.
	ReferenceOverflowThreshold float64
	// OnFallbackChange receives true when the standard placement should be
	// used instead.
	OnFallbackChange func(fallback bool)
	// OverflowRef receives the final overflow of the floating element.
	// The inner middleware is its only writer.
	OverflowRef *Cell[SideObject]
	// ScrollRef points at an inner scroll element; nil means the floating
	// element scrolls itself.
	ScrollRef *Ref

	DetectOverflowOptions
}

// InnerData is reported by the Inner middleware.
type InnerData struct {
	Index     int
	MaxHeight float64
	ScrollTop float64
	Fallback  bool
}

// Inner positions the floating element so that the selected item is centered
// on the reference element, then clips the floating element to the boundary
// and scrolls its content so the item stays aligned.
func Inner(opts InnerOptions) Middleware {
	return Middleware{
		Name: "inner",
		Fn: func(ctx context.Context, state MiddlewareState) (MiddlewareReturn, error) {
			return innerFn(ctx, state, opts)
		},
	}
}

func innerFn(ctx context.Context, state MiddlewareState, opts InnerOptions) (MiddlewareReturn, error) {
	floating := state.Elements.Floating
	if floating == nil {
		return MiddlewareReturn{}, nil
	}
	scrollEl := floating
	if el := opts.ScrollRef.El(); el != nil {
		scrollEl = el
	}

	if state.Placement.Side() != SideBottom {
		debug.Warn("inner: placement side must be bottom", zap.String("placement", string(state.Placement)))
		return MiddlewareReturn{}, nil
	}

	// A max height left over from the previous pass would be measured as the
	// natural height. Drop it and remeasure first.
	if _, ok := scrollEl.MaxHeight(); ok {
		scrollEl.ClearMaxHeight()
		return MiddlewareReturn{Reset: &Reset{Rects: true}}, nil
	}

	item := opts.List.At(opts.Index)
	if item == nil {
		debug.Warn("inner: no list item at index",
			zap.Int("index", opts.Index),
			zap.Int("len", opts.List.Len()),
		)
		return MiddlewareReturn{}, nil
	}

	clientTop := floating.ClientTop()
	if clientTop == 0 {
		clientTop = scrollEl.ClientTop()
	}
	floatingIsBordered := floating.ClientTop() != 0
	scrollElIsBordered := scrollEl.ClientTop() != 0
	floatingIsScrollEl := floating == scrollEl

	shift := -item.OffsetTop() - floating.ClientTop() -
		state.Rects.Reference.Height/2 - item.OffsetHeight()/2 - opts.Offset
	moved, err := OffsetValue(shift).Fn(ctx, state)
	if err != nil {
		return MiddlewareReturn{}, err
	}
	next := state
	next.X, next.Y = *moved.X, *moved.Y

	overflowOpts := opts.DetectOverflowOptions
	overflowOpts.ElementContext = ContextFloating
	overflow, err := DetectOverflow(ctx,
		withFloatingHeight(next, scrollEl.ScrollHeight()+clientTop+floating.ClientTop()),
		overflowOpts)
	if err != nil {
		return MiddlewareReturn{}, err
	}
	refOpts := overflowOpts
	refOpts.ElementContext = ContextReference
	refOverflow, err := DetectOverflow(ctx, next, refOpts)
	if err != nil {
		return MiddlewareReturn{}, err
	}

	diffY := max(0, overflow.Top)
	nextY := next.Y + diffY

	border := 0.0
	if (floatingIsBordered && floatingIsScrollEl) || scrollElIsBordered {
		border = clientTop * 2
	}
	maxHeight := max(0, scrollEl.ScrollHeight()+border-diffY-max(0, overflow.Bottom))
	if !scrollEl.IsScrollable() {
		maxHeight = math.Round(maxHeight)
	}

	scrollEl.SetMaxHeight(maxHeight)
	scrollEl.SetScrollTop(diffY)

	fallback := false
	if opts.OnFallbackChange != nil {
		minVisible := opts.MinItemsVisible
		if minVisible <= 0 {
			minVisible = DefaultMinItemsVisible
		}
		threshold := opts.ReferenceOverflowThreshold
		// The scroll element carries the clip, so its height is the rendered
		// list height even when a ScrollRef sits inside the floating element.
		fallback = scrollEl.OffsetHeight() < item.OffsetHeight()*float64(min(minVisible, opts.List.Len()))-FallbackEpsilon ||
			refOverflow.Top >= -threshold ||
			refOverflow.Bottom >= -threshold
		opts.OnFallbackChange(fallback)
	}

	if opts.OverflowRef != nil {
		final := next
		final.Y = nextY
		finalOverflow, err := DetectOverflow(ctx,
			withFloatingHeight(final, scrollEl.OffsetHeight()+clientTop+floating.ClientTop()),
			overflowOpts)
		if err != nil {
			return MiddlewareReturn{}, err
		}
		opts.OverflowRef.Set(finalOverflow)
	}

	debug.Log("inner: index=%d y=%.2f diffY=%.2f maxHeight=%.2f fallback=%v",
		opts.Index, nextY, diffY, maxHeight, fallback)

	return MiddlewareReturn{
		Y: Coord(nextY),
		Data: InnerData{
			Index:     opts.Index,
			MaxHeight: maxHeight,
			ScrollTop: diffY,
			Fallback:  fallback,
		},
	}, nil
}
