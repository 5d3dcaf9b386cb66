package floating

import (
	"math"
	"time"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// GestureState is the touch controller's private state. Snapshot exposes a
// copy for inspection.
type GestureState struct {
	// Offset is the external offset at the last velocity sample.
	Offset    float64
	Velocity  float64
	Amplitude float64
	Target    float64
	Pressed   bool
	Cancelled bool
	// ReferenceY is the pointer y the next move is measured from.
	ReferenceY float64
	Timestamp  time.Time
}

// TouchScrollerOptions configures a TouchScroller.
type TouchScrollerOptions struct {
	Floating    *Element
	ScrollRef   *Ref
	OverflowRef *Cell[SideObject]
	Offset      *State[float64]
	Scheduler   FrameScheduler
	// Now defaults to time.Now.
	Now    func() time.Time
	Config GestureConfig
	// OnMove is called for every touch move of a pressed gesture.
	OnMove func()
}

// TouchScroller drags the external offset with touch input and continues
// with an exponentially decaying flick after release.
//
// All methods must be called from the UI thread.
type TouchScroller struct {
	opts TouchScrollerOptions
	cfg  GestureConfig

	open     bool
	disabled bool

	state       GestureState
	trackFrame  FrameID
	decayFrame  FrameID
	lastDecayDx float64
}

// NewTouchScroller creates a closed touch controller.
func NewTouchScroller(opts TouchScrollerOptions) *TouchScroller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &TouchScroller{opts: opts, cfg: opts.Config.withDefaults()}
}

// Snapshot returns a copy of the gesture state.
func (t *TouchScroller) Snapshot() GestureState {
	return t.state
}

// Animating reports whether a flick is in progress.
func (t *TouchScroller) Animating() bool {
	return t.decayFrame != 0
}

// SetOpen resets the gesture state on open and cancels frames on close.
func (t *TouchScroller) SetOpen(open bool) {
	t.cancelFrames()
	t.state = GestureState{}
	t.open = open
}

// SetEnabled turns the controller on or off.
func (t *TouchScroller) SetEnabled(enabled bool) {
	t.disabled = !enabled
	if !enabled {
		t.cancelFrames()
		t.state.Pressed = false
	}
}

// Close cancels every pending frame.
func (t *TouchScroller) Close() {
	t.SetOpen(false)
}

func (t *TouchScroller) active() bool {
	return t.open && !t.disabled
}

func (t *TouchScroller) scrollEl() *Element {
	if el := t.opts.ScrollRef.El(); el != nil {
		return el
	}
	return t.opts.Floating
}

// canMove reports whether the offset has room in either direction.
func (t *TouchScroller) canMove() bool {
	overflow, ok := t.opts.OverflowRef.Get()
	if !ok {
		return false
	}
	eps := t.cfg.BoundaryEpsilon
	return overflow.Top < -eps || overflow.Bottom < -eps
}

// HandleTouchStart records the contact point and starts velocity tracking.
func (t *TouchScroller) HandleTouchStart(e *TouchEvent) {
	if !t.active() {
		return
	}
	y, ok := e.clientY()
	if !ok {
		return
	}
	t.cancelFrames()

	offset := t.opts.Offset.Get()
	t.state = GestureState{
		Offset:     offset,
		Pressed:    true,
		Cancelled:  !t.canMove(),
		ReferenceY: y,
		Timestamp:  t.opts.Now(),
	}
	if t.state.Cancelled {
		debug.Log("TouchScroller.HandleTouchStart: no room, gesture cancelled")
		return
	}
	t.trackFrame = t.request(t.track)
}

// track samples the offset once per frame and smooths the velocity.
func (t *TouchScroller) track(now time.Time) {
	t.trackFrame = 0
	if !t.active() || !t.state.Pressed || t.scrollEl() == nil {
		return
	}
	elapsed := float64(now.Sub(t.state.Timestamp)) / float64(time.Millisecond)
	t.state.Timestamp = now

	offset := t.opts.Offset.Get()
	delta := offset - t.state.Offset
	t.state.Offset = offset

	v := 1000 * delta / (1 + elapsed)
	s := t.cfg.VelocitySmoothing
	t.state.Velocity = s*v + (1-s)*t.state.Velocity

	t.trackFrame = t.request(t.track)
}

// HandleTouchMove drags the offset by the finger travel, clamped to the room
// left before either boundary.
func (t *TouchScroller) HandleTouchMove(e *TouchEvent) {
	if !t.active() || !t.state.Pressed {
		return
	}
	if t.opts.OnMove != nil {
		t.opts.OnMove()
	}
	if t.state.Cancelled {
		return
	}
	y, ok := e.clientY()
	if !ok {
		return
	}

	delta := t.state.ReferenceY - y
	if math.Abs(delta) > t.cfg.MoveThreshold {
		t.state.ReferenceY = y
		t.applyClamped(delta)
	}

	if t.canMove() || t.scrollable() {
		e.PreventDefault()
		e.StopPropagation()
	}
}

// HandleTouchEnd stops tracking and starts a flick if the release was fast
// enough.
func (t *TouchScroller) HandleTouchEnd(*TouchEvent) {
	if !t.active() || !t.state.Pressed {
		return
	}
	t.state.Pressed = false
	if t.trackFrame != 0 {
		t.opts.Scheduler.CancelFrame(t.trackFrame)
		t.trackFrame = 0
	}
	if t.state.Cancelled {
		return
	}
	if math.Abs(t.state.Velocity) > t.cfg.MinFlickVelocity {
		t.Fling(t.state.Velocity)
	}
}

// Fling starts a decaying flick with the given release velocity.
func (t *TouchScroller) Fling(velocity float64) {
	if !t.active() {
		return
	}
	t.cancelFrames()
	t.state.Velocity = velocity
	t.state.Amplitude = t.cfg.AmplitudeFactor * velocity
	t.state.Target = math.Round(t.opts.Offset.Get() + t.state.Amplitude)
	t.state.Timestamp = t.opts.Now()
	t.lastDecayDx = math.Inf(1)
	debug.Log("TouchScroller.Fling: velocity=%.2f amplitude=%.2f target=%.2f",
		velocity, t.state.Amplitude, t.state.Target)
	t.decayFrame = t.request(t.decay)
}

// LastDecayDistance returns the remaining flick distance computed on the
// most recent frame.
func (t *TouchScroller) LastDecayDistance() float64 {
	return t.lastDecayDx
}

// decay advances the flick by one frame.
func (t *TouchScroller) decay(now time.Time) {
	t.decayFrame = 0
	if !t.active() || t.scrollEl() == nil {
		return
	}
	elapsed := float64(now.Sub(t.state.Timestamp)) / float64(t.cfg.TimeConstant)
	delta := -t.state.Amplitude * math.Exp(-elapsed)
	t.lastDecayDx = math.Abs(delta)

	offset := t.opts.Offset.Get()
	step := t.state.Target + delta - offset
	if math.Abs(delta) < t.cfg.StopDistance {
		step = t.state.Target - offset
	}

	if overflow, ok := t.opts.OverflowRef.Get(); ok {
		up, down := room(overflow)
		if step > up {
			t.flush(up)
			return
		}
		if step < -down {
			t.flush(-down)
			return
		}
	}

	t.flush(step)
	if math.Abs(delta) < t.cfg.StopDistance {
		return
	}
	t.decayFrame = t.request(t.decay)
}

// applyClamped moves the offset by delta within the remaining room.
func (t *TouchScroller) applyClamped(delta float64) {
	if overflow, ok := t.opts.OverflowRef.Get(); ok {
		up, down := room(overflow)
		delta = math.Max(-down, math.Min(delta, up))
	}
	t.flush(delta)
}

func (t *TouchScroller) flush(delta float64) {
	if delta == 0 {
		return
	}
	t.opts.Offset.UpdateNow(func(d float64) float64 { return d + delta })
}

func (t *TouchScroller) scrollable() bool {
	el := t.scrollEl()
	return el != nil && el.IsScrollable()
}

// request schedules fn, returning 0 without a scheduler.
func (t *TouchScroller) request(fn FrameFunc) FrameID {
	if t.opts.Scheduler == nil {
		return 0
	}
	return t.opts.Scheduler.RequestFrame(fn)
}

func (t *TouchScroller) cancelFrames() {
	if t.opts.Scheduler == nil {
		return
	}
	if t.trackFrame != 0 {
		t.opts.Scheduler.CancelFrame(t.trackFrame)
		t.trackFrame = 0
	}
	if t.decayFrame != 0 {
		t.opts.Scheduler.CancelFrame(t.decayFrame)
		t.decayFrame = 0
	}
}
