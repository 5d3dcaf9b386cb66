package floating

import (
	"time"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// InnerOffsetOptions configures an InnerOffsetController.
type InnerOffsetOptions struct {
	// Floating is the floating element; ScrollRef, when set, points at the
	// element that actually scrolls.
	Floating  *Element
	ScrollRef *Ref
	// OverflowRef is read to find out whether the offset may still move.
	OverflowRef *Cell[SideObject]
	// Offset is the external offset. Every change is flushed so the next
	// event observes the recomputed overflow.
	Offset    *State[float64]
	Scheduler FrameScheduler
	Config    GestureConfig
}

// InnerOffsetController turns wheel and native scroll input over an
// inner-anchored list into changes of the external offset.
//
// All methods must be called from the UI thread. Input is ignored while the
// controller is closed or disabled.
type InnerOffsetController struct {
	opts InnerOffsetOptions
	cfg  GestureConfig

	open     bool
	disabled bool

	controlledScrolling bool
	prevScrollTop       float64
	hasPrevScrollTop    bool
	initialOverflow     SideObject
	hasInitialOverflow  bool

	frames map[FrameID]struct{}
}

// NewInnerOffsetController creates a closed controller.
func NewInnerOffsetController(opts InnerOffsetOptions) *InnerOffsetController {
	return &InnerOffsetController{
		opts:   opts,
		cfg:    opts.Config.withDefaults(),
		frames: make(map[FrameID]struct{}),
	}
}

func (c *InnerOffsetController) scrollEl() *Element {
	if el := c.opts.ScrollRef.El(); el != nil {
		return el
	}
	return c.opts.Floating
}

func (c *InnerOffsetController) active() bool {
	return c.open && !c.disabled
}

// SetOpen starts or stops listening. Opening captures the scroll baseline on
// the next frame, once the first position is applied; closing cancels every
// pending frame.
func (c *InnerOffsetController) SetOpen(open bool) {
	if open == c.open {
		return
	}
	c.open = open
	if !open {
		c.teardown()
		return
	}
	c.requestFrame(func(time.Time) {
		el := c.scrollEl()
		if el == nil {
			return
		}
		c.prevScrollTop = el.ScrollTop()
		c.hasPrevScrollTop = true
		if overflow, ok := c.opts.OverflowRef.Get(); ok {
			c.initialOverflow = overflow
			c.hasInitialOverflow = true
		}
	})
}

// SetEnabled turns the controller on or off, e.g. when the fallback
// placement takes over.
func (c *InnerOffsetController) SetEnabled(enabled bool) {
	c.disabled = !enabled
	if !enabled {
		c.cancelFrames()
	}
}

// Close stops listening and cancels pending frames.
func (c *InnerOffsetController) Close() {
	c.SetOpen(false)
}

// InitialOverflow returns the overflow captured right after opening.
func (c *InnerOffsetController) InitialOverflow() (SideObject, bool) {
	return c.initialOverflow, c.hasInitialOverflow
}

// HandleWheel moves the offset by the wheel delta while the floating element
// can still move in that direction, and prevents the native scroll. It
// returns true if the event was intercepted.
func (c *InnerOffsetController) HandleWheel(e *WheelEvent) bool {
	c.controlledScrolling = false
	if !c.active() || e.CtrlKey {
		return false
	}
	el := c.scrollEl()
	if el == nil {
		return false
	}
	overflow, ok := c.opts.OverflowRef.Get()
	if !ok {
		return false
	}
	if el.ScrollHeight() <= el.ClientHeight() {
		return false
	}

	dY := e.DeltaY
	eps := c.cfg.BoundaryEpsilon
	isAtTop := overflow.Top >= -eps
	isAtBottom := overflow.Bottom >= -eps
	remaining := el.ScrollHeight() - el.ClientHeight()

	// A side already at its boundary leaves the delta to the native scroll.
	if (!isAtTop && dY > 0) || (!isAtBottom && dY < 0) {
		e.PreventDefault()
		step := min(dY, remaining)
		if dY < 0 {
			step = max(dY, -remaining)
		}
		debug.Log("InnerOffsetController.HandleWheel: dY=%.2f step=%.2f", dY, step)
		c.opts.Offset.UpdateNow(func(d float64) float64 { return d + step })
		return true
	}

	if c.cfg.NudgeNativeScroll {
		el.SetScrollTop(el.ScrollTop() + dY)
	}
	return false
}

// HandleKeyDown enters controlled scrolling: native scroll caused by
// keyboard navigation is mirrored into the offset.
func (c *InnerOffsetController) HandleKeyDown() {
	c.controlledScrolling = true
}

// HandlePointerMove leaves controlled scrolling.
func (c *InnerOffsetController) HandlePointerMove() {
	c.controlledScrolling = false
}

// HandleScroll reconciles a native scroll of the list with the offset while
// in controlled scrolling.
func (c *InnerOffsetController) HandleScroll() {
	if !c.active() {
		return
	}
	el := c.scrollEl()
	overflow, ok := c.opts.OverflowRef.Get()
	if !ok || el == nil || !c.controlledScrolling {
		return
	}

	if c.hasPrevScrollTop {
		diff := el.ScrollTop() - c.prevScrollTop
		eps := c.cfg.BoundaryEpsilon
		if (overflow.Bottom < -eps && diff < -1) || (overflow.Top < -eps && diff > 1) {
			debug.Log("InnerOffsetController.HandleScroll: diff=%.2f", diff)
			c.opts.Offset.UpdateNow(func(d float64) float64 { return d + diff })
		}
	}

	// The clipped height settles on the next frame; take the baseline then.
	c.requestFrame(func(time.Time) {
		if el := c.scrollEl(); el != nil {
			c.prevScrollTop = el.ScrollTop()
			c.hasPrevScrollTop = true
		}
	})
}

// requestFrame schedules fn and tracks it for cancellation.
func (c *InnerOffsetController) requestFrame(fn FrameFunc) {
	if c.opts.Scheduler == nil {
		return
	}
	var id FrameID
	id = c.opts.Scheduler.RequestFrame(func(now time.Time) {
		delete(c.frames, id)
		if !c.active() {
			return
		}
		fn(now)
	})
	c.frames[id] = struct{}{}
}

func (c *InnerOffsetController) cancelFrames() {
	for id := range c.frames {
		c.opts.Scheduler.CancelFrame(id)
		delete(c.frames, id)
	}
}

func (c *InnerOffsetController) teardown() {
	c.cancelFrames()
	c.controlledScrolling = false
	c.hasPrevScrollTop = false
	c.prevScrollTop = 0
	c.hasInitialOverflow = false
	c.initialOverflow = SideObject{}
}
