package floating

import (
	"context"
	"fmt"

	"github.com/grindlemire/go-floating/pkg/debug"
)

// maxResets bounds the restarts of a single ComputePosition call.
const maxResets = 50

// MiddlewareState is the accumulating state threaded through the pipeline.
type MiddlewareState struct {
	X, Y             float64
	InitialPlacement Placement
	Placement        Placement
	Strategy         Strategy
	MiddlewareData   MiddlewareData
	Rects            ElementRects
	Elements         Elements
	Platform         Platform
	RTL              bool
}

// Reset asks the pipeline to restart from the first middleware.
type Reset struct {
	// Rects remeasures the elements before restarting.
	Rects bool
	// Placement, when set, replaces the current placement.
	Placement Placement
}

// MiddlewareReturn is a middleware's partial update. Nil coordinates leave
// the current value untouched.
type MiddlewareReturn struct {
	X, Y  *float64
	Data  any
	Reset *Reset
}

// Middleware is one positioning step.
type Middleware struct {
	Name string
	Fn   func(ctx context.Context, state MiddlewareState) (MiddlewareReturn, error)
}

// MiddlewareData holds the data each middleware reported, keyed by name.
// Data survives resets within one ComputePosition call.
type MiddlewareData map[string]any

// Coord boxes a coordinate for MiddlewareReturn.
func Coord(v float64) *float64 {
	return &v
}

// Config configures ComputePosition.
type Config struct {
	Placement  Placement
	Strategy   Strategy
	Middleware []Middleware
	Platform   Platform
	RTL        bool
}

// Result is the outcome of a positioning pass.
type Result struct {
	X, Y           float64
	Placement      Placement
	Strategy       Strategy
	MiddlewareData MiddlewareData
}

// ComputePosition computes the coordinates of floating relative to reference.
//
// Middleware run strictly in order; middleware N+1 starts only after N has
// returned. A reset discards the accumulated coordinates, optionally
// remeasures, and restarts from the first middleware. Errors come only from
// ctx and the platform; middleware problems degrade to empty updates.
func ComputePosition(ctx context.Context, reference, floating *Element, cfg Config) (Result, error) {
	if cfg.Placement == "" {
		cfg.Placement = Bottom
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyAbsolute
	}
	if cfg.Platform == nil {
		return Result{}, fmt.Errorf("compute position: no platform")
	}
	if !cfg.Placement.Valid() {
		return Result{}, fmt.Errorf("compute position: invalid placement %q", cfg.Placement)
	}

	elements := Elements{Reference: reference, Floating: floating}
	rects, err := cfg.Platform.ElementRects(ctx, elements, cfg.Strategy)
	if err != nil {
		return Result{}, fmt.Errorf("measure elements: %w", err)
	}

	placement := cfg.Placement
	coords := computeCoordsFromPlacement(rects, placement, cfg.RTL)
	data := MiddlewareData{}
	resets := 0

	for i := 0; i < len(cfg.Middleware); i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		mw := cfg.Middleware[i]
		ret, err := mw.Fn(ctx, MiddlewareState{
			X:                coords.X,
			Y:                coords.Y,
			InitialPlacement: cfg.Placement,
			Placement:        placement,
			Strategy:         cfg.Strategy,
			MiddlewareData:   data,
			Rects:            rects,
			Elements:         elements,
			Platform:         cfg.Platform,
			RTL:              cfg.RTL,
		})
		if err != nil {
			return Result{}, fmt.Errorf("middleware %s: %w", mw.Name, err)
		}
		if ret.X != nil {
			coords.X = *ret.X
		}
		if ret.Y != nil {
			coords.Y = *ret.Y
		}
		if ret.Data != nil {
			data[mw.Name] = ret.Data
		}

		if ret.Reset == nil {
			continue
		}
		if resets >= maxResets {
			debug.Log("ComputePosition: reset limit reached, ignoring reset from %s", mw.Name)
			continue
		}
		resets++
		if ret.Reset.Placement != "" {
			placement = ret.Reset.Placement
		}
		if ret.Reset.Rects {
			rects, err = cfg.Platform.ElementRects(ctx, elements, cfg.Strategy)
			if err != nil {
				return Result{}, fmt.Errorf("remeasure elements: %w", err)
			}
		}
		coords = computeCoordsFromPlacement(rects, placement, cfg.RTL)
		i = -1
	}

	return Result{
		X:              coords.X,
		Y:              coords.Y,
		Placement:      placement,
		Strategy:       cfg.Strategy,
		MiddlewareData: data,
	}, nil
}

// Inner returns the data reported by the Inner middleware.
func (d MiddlewareData) Inner() (InnerData, bool) {
	v, ok := d["inner"].(InnerData)
	return v, ok
}

// Offset returns the data reported by the Offset middleware.
func (d MiddlewareData) Offset() (OffsetData, bool) {
	v, ok := d["offset"].(OffsetData)
	return v, ok
}

// Flip returns the data reported by the Flip middleware.
func (d MiddlewareData) Flip() (FlipData, bool) {
	v, ok := d["flip"].(FlipData)
	return v, ok
}

// Shift returns the data reported by the Shift middleware.
func (d MiddlewareData) Shift() (ShiftData, bool) {
	v, ok := d["shift"].(ShiftData)
	return v, ok
}

// Size returns the data reported by the Size middleware.
func (d MiddlewareData) Size() (SizeData, bool) {
	v, ok := d["size"].(SizeData)
	return v, ok
}
