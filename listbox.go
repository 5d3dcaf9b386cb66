package floating

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// ListboxOptions configures a Listbox.
type ListboxOptions struct {
	Reference *Element
	Floating  *Element
	Items     *RefList
	// ScrollRef points at an inner scroll element, if any.
	ScrollRef *Ref
	Index     int

	Platform  Platform
	Scheduler FrameScheduler
	Now       func() time.Time
	Gesture   GestureConfig

	MinItemsVisible            int
	ReferenceOverflowThreshold float64
	// Overflow sets the boundary and padding for every overflow check.
	Overflow DetectOverflowOptions

	// FallbackPlacement is used once inner anchoring does not fit.
	// Defaults to Bottom.
	FallbackPlacement Placement
	// FallbackGap is the distance between reference and floating element in
	// fallback mode.
	FallbackGap float64

	// OnPosition is called after every applied pass.
	OnPosition func(Result)
}

// Listbox anchors a floating list so its selected item sits on top of the
// reference element, and keeps wheel and touch scrolling in sync with the
// anchoring. When the list does not fit, it falls back to flip + shift + size
// placement until reopened.
//
// All methods must be called from the UI thread.
type Listbox struct {
	opts  ListboxOptions
	index int
	open  bool

	scope    *Scope
	offset   *State[float64]
	fallback *State[bool]
	overflow *Cell[SideObject]

	wheel *InnerOffsetController
	touch *TouchScroller

	last     Result
	hasLast  bool
	updating bool
}

// NewListbox creates a closed listbox.
func NewListbox(opts ListboxOptions) *Listbox {
	if opts.FallbackPlacement == "" {
		opts.FallbackPlacement = Bottom
	}
	scope := NewScope()
	l := &Listbox{
		opts:     opts,
		index:    opts.Index,
		scope:    scope,
		offset:   NewStateIn(scope, 0.0),
		fallback: NewStateIn(scope, false),
		overflow: NewCell[SideObject]("inner middleware"),
	}
	l.wheel = NewInnerOffsetController(InnerOffsetOptions{
		Floating:    opts.Floating,
		ScrollRef:   opts.ScrollRef,
		OverflowRef: l.overflow,
		Offset:      l.offset,
		Scheduler:   opts.Scheduler,
		Config:      opts.Gesture,
	})
	// A drag takes over from keyboard-driven scrolling.
	l.touch = NewTouchScroller(TouchScrollerOptions{
		Floating:    opts.Floating,
		ScrollRef:   opts.ScrollRef,
		OverflowRef: l.overflow,
		Offset:      l.offset,
		Scheduler:   opts.Scheduler,
		Now:         opts.Now,
		Config:      opts.Gesture,
		OnMove:      l.wheel.HandlePointerMove,
	})

	l.offset.Bind(func(float64) {
		if _, err := l.Update(context.Background()); err != nil {
			debug.Warn("listbox: update after offset change failed", zap.Error(err))
		}
	})
	l.fallback.Bind(func(fb bool) {
		l.wheel.SetEnabled(!fb)
		l.touch.SetEnabled(!fb)
	})
	return l
}

// Scope returns the scope the offset and fallback states batch with.
// Wheel and touch input flush the offset even inside a batch.
func (l *Listbox) Scope() *Scope { return l.scope }

// Offset returns the external offset state.
func (l *Listbox) Offset() *State[float64] { return l.offset }

// Fallback returns the fallback flag state.
func (l *Listbox) Fallback() *State[bool] { return l.fallback }

// Overflow returns the overflow cell written by the inner middleware.
func (l *Listbox) Overflow() *Cell[SideObject] { return l.overflow }

// Wheel returns the wheel and scroll controller.
func (l *Listbox) Wheel() *InnerOffsetController { return l.wheel }

// Touch returns the touch controller.
func (l *Listbox) Touch() *TouchScroller { return l.touch }

// Index returns the anchored item index.
func (l *Listbox) Index() int { return l.index }

// IsOpen reports whether the listbox is open.
func (l *Listbox) IsOpen() bool { return l.open }

// Last returns the last applied result.
func (l *Listbox) Last() (Result, bool) { return l.last, l.hasLast }

// Open resets the offset, the fallback flag and the gesture state, starts
// the controllers and runs the first pass.
func (l *Listbox) Open(ctx context.Context) (Result, error) {
	l.scope.Batch(func() {
		l.overflow.Clear()
		l.offset.Set(0)
		l.fallback.Set(false)
	})

	l.open = true
	l.wheel.SetOpen(true)
	l.touch.SetOpen(true)
	return l.Update(ctx)
}

// Close stops the controllers, cancelling every pending frame, and clears
// the overflow cell.
func (l *Listbox) Close() {
	l.open = false
	l.wheel.Close()
	l.touch.Close()
	l.overflow.Clear()
}

// SetIndex anchors another item and repositions.
func (l *Listbox) SetIndex(ctx context.Context, i int) (Result, error) {
	l.index = i
	return l.Update(ctx)
}

// Update runs one positioning pass and applies it to the floating element.
// A change of the fallback decision is applied immediately with one more
// pass in the other mode. Detached elements keep the last position.
func (l *Listbox) Update(ctx context.Context) (Result, error) {
	if !l.open || l.updating {
		return l.last, nil
	}
	l.updating = true
	defer func() { l.updating = false }()

	for n := 0; n < 2; n++ {
		current := l.fallback.Get()
		decided := current

		res, err := ComputePosition(ctx, l.opts.Reference, l.opts.Floating, Config{
			Placement:  l.placement(),
			Middleware: l.middleware(&decided),
			Platform:   l.opts.Platform,
		})
		if err != nil {
			if errors.Is(err, ErrDetached) {
				debug.Log("Listbox.Update: detached, keeping last position")
				return l.last, nil
			}
			return l.last, err
		}

		l.opts.Floating.SetPosition(res.X, res.Y)
		l.last, l.hasLast = res, true
		if l.opts.OnPosition != nil {
			l.opts.OnPosition(res)
		}

		if decided == current {
			break
		}
		l.fallback.Set(decided)
	}
	return l.last, nil
}

func (l *Listbox) placement() Placement {
	if l.fallback.Get() {
		return l.opts.FallbackPlacement
	}
	return Bottom
}

func (l *Listbox) middleware(decided *bool) []Middleware {
	if !l.fallback.Get() {
		return []Middleware{Inner(InnerOptions{
			List:                       l.opts.Items,
			Index:                      l.index,
			Offset:                     l.offset.Get(),
			MinItemsVisible:            l.opts.MinItemsVisible,
			ReferenceOverflowThreshold: l.opts.ReferenceOverflowThreshold,
			OnFallbackChange:           func(fb bool) { *decided = fb },
			OverflowRef:                l.overflow,
			ScrollRef:                  l.opts.ScrollRef,
			DetectOverflowOptions:      l.opts.Overflow,
		})}
	}

	scrollEl := l.opts.Floating
	if el := l.opts.ScrollRef.El(); el != nil {
		scrollEl = el
	}
	return []Middleware{
		OffsetValue(l.opts.FallbackGap),
		Flip(FlipOptions{DetectOverflowOptions: l.opts.Overflow}),
		Shift(ShiftOptions{DetectOverflowOptions: l.opts.Overflow}),
		Size(SizeOptions{
			DetectOverflowOptions: l.opts.Overflow,
			Apply: func(s SizeApplyState) {
				scrollEl.SetMaxHeight(s.AvailableHeight)
			},
		}),
	}
}
