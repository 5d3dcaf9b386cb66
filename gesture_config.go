package floating

import "time"

// GestureConfig holds the constants of the wheel and touch controllers.
type GestureConfig struct {
	// TimeConstant is the decay time of a flick.
	TimeConstant time.Duration
	// VelocitySmoothing weights the newest velocity sample.
	VelocitySmoothing float64
	// AmplitudeFactor scales release velocity into flick distance.
	AmplitudeFactor float64
	// MinFlickVelocity is the release speed below which no flick starts.
	MinFlickVelocity float64
	// MoveThreshold is the finger travel ignored as jitter.
	MoveThreshold float64
	// StopDistance ends a flick once the remaining distance is below it.
	StopDistance float64
	// BoundaryEpsilon is the overflow at which a side counts as reached.
	BoundaryEpsilon float64
	// NudgeNativeScroll writes wheel deltas to the native scroll offset when
	// the inner offset is pinned at a boundary. Enable it for engines that
	// drop momentum scrolling once wheel events stop being prevented.
	NudgeNativeScroll bool
}

// DefaultGestureConfig returns the standard physics constants.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		TimeConstant:      325 * time.Millisecond,
		VelocitySmoothing: 0.8,
		AmplitudeFactor:   0.8,
		MinFlickVelocity:  5,
		MoveThreshold:     2,
		StopDistance:      0.5,
		BoundaryEpsilon:   0.5,
	}
}

// withDefaults fills zero fields from DefaultGestureConfig.
func (c GestureConfig) withDefaults() GestureConfig {
	d := DefaultGestureConfig()
	if c.TimeConstant <= 0 {
		c.TimeConstant = d.TimeConstant
	}
	if c.VelocitySmoothing <= 0 || c.VelocitySmoothing > 1 {
		c.VelocitySmoothing = d.VelocitySmoothing
	}
	if c.AmplitudeFactor <= 0 {
		c.AmplitudeFactor = d.AmplitudeFactor
	}
	if c.MinFlickVelocity <= 0 {
		c.MinFlickVelocity = d.MinFlickVelocity
	}
	if c.MoveThreshold <= 0 {
		c.MoveThreshold = d.MoveThreshold
	}
	if c.StopDistance <= 0 {
		c.StopDistance = d.StopDistance
	}
	if c.BoundaryEpsilon <= 0 {
		c.BoundaryEpsilon = d.BoundaryEpsilon
	}
	return c
}

// room returns how far the offset may grow (up) and shrink (down) before
// the floating element reaches the boundary, according to overflow.
func room(overflow SideObject) (up, down float64) {
	return max(0, -overflow.Top), max(0, -overflow.Bottom)
}
