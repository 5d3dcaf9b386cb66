package floating

// WheelEvent is a wheel gesture over the floating element.
type WheelEvent struct {
	// DeltaY is positive when scrolling down.
	DeltaY float64
	// CtrlKey marks pinch-zoom gestures, which are never intercepted.
	CtrlKey bool

	prevented bool
}

// PreventDefault suppresses the host's native scrolling for this event.
func (e *WheelEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *WheelEvent) DefaultPrevented() bool {
	return e.prevented
}

// Touch is a single contact point.
type Touch struct {
	ClientY float64
}

// TouchEvent is a touch gesture over the floating element.
type TouchEvent struct {
	// TargetTouches are the contacts that started on the floating element.
	TargetTouches []Touch
	// Cancelable is false for events the host cannot suppress.
	Cancelable bool

	prevented bool
	stopped   bool
}

// PreventDefault suppresses page scrolling if the event is cancelable.
func (e *TouchEvent) PreventDefault() {
	if e.Cancelable {
		e.prevented = true
	}
}

// DefaultPrevented reports whether the default action was suppressed.
func (e *TouchEvent) DefaultPrevented() bool {
	return e.prevented
}

// StopPropagation stops the event from reaching ancestors.
func (e *TouchEvent) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *TouchEvent) PropagationStopped() bool {
	return e.stopped
}

// clientY returns the first target touch's y, if any.
func (e *TouchEvent) clientY() (float64, bool) {
	if e == nil || len(e.TargetTouches) == 0 {
		return 0, false
	}
	return e.TargetTouches[0].ClientY, true
}
