package floating

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

type touchFixture struct {
	overflow *Cell[SideObject]
	offset   *State[float64]
	sched    *ManualScheduler
	touch    *TouchScroller
}

func newTouchFixture(overflow SideObject) *touchFixture {
	f := &touchFixture{
		overflow: NewCell[SideObject]("inner middleware"),
		offset:   NewState(0.0),
		sched:    NewManualScheduler(epoch),
	}
	f.overflow.Set(overflow)
	f.touch = NewTouchScroller(TouchScrollerOptions{
		Floating:    NewElement(WithSize(200, 0), WithContentHeight(300), WithMaxHeight(100)),
		OverflowRef: f.overflow,
		Offset:      f.offset,
		Scheduler:   f.sched,
		Now:         f.sched.Now,
	})
	f.touch.SetOpen(true)
	return f
}

func touchAt(y float64) *TouchEvent {
	return &TouchEvent{TargetTouches: []Touch{{ClientY: y}}, Cancelable: true}
}

func TestTouchScroller_FlickDecays(t *testing.T) {
	f := newTouchFixture(SideObject{Top: -100, Bottom: -100})

	f.touch.Fling(10)
	snap := f.touch.Snapshot()
	assert.Equal(t, 8.0, snap.Amplitude)
	assert.Equal(t, 8.0, snap.Target)
	require.True(t, f.touch.Animating())

	// The remaining distance 8·e^(-t/325ms) drops below the stop distance
	// after this many frames.
	maxFrames := int(math.Ceil(325 * math.Log(8/0.5) / 16))

	var distances []float64
	for f.touch.Animating() && len(distances) <= maxFrames {
		f.sched.Step(frame)
		distances = append(distances, f.touch.LastDecayDistance())
	}

	require.False(t, f.touch.Animating(), "flick still running after %d frames", len(distances))
	assert.LessOrEqual(t, len(distances), maxFrames)
	for i := 1; i < len(distances); i++ {
		assert.Less(t, distances[i], distances[i-1], "frame %d", i)
	}
	assert.InDelta(t, 8.0, f.offset.Get(), 1e-9)
	assert.Equal(t, 0, f.sched.Pending())
}

func TestTouchScroller_FlickStopsAtBoundary(t *testing.T) {
	type tc struct {
		overflow   SideObject
		velocity   float64
		wantOffset float64
	}

	tests := map[string]tc{
		"upward room exhausted": {
			overflow:   SideObject{Top: -3, Bottom: -100},
			velocity:   100,
			wantOffset: 3,
		},
		"downward room exhausted": {
			overflow:   SideObject{Top: -100, Bottom: -2},
			velocity:   -100,
			wantOffset: -2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTouchFixture(tt.overflow)
			f.touch.Fling(tt.velocity)
			f.sched.Step(frame)

			assert.Equal(t, tt.wantOffset, f.offset.Get())
			assert.False(t, f.touch.Animating())
			assert.Equal(t, 0, f.sched.Pending())
		})
	}
}

func TestTouchScroller_Drag(t *testing.T) {
	type tc struct {
		overflow      SideObject
		moves         []float64
		wantOffset    float64
		wantReference float64
		wantPrevented bool
	}

	tests := map[string]tc{
		"finger up grows offset": {
			overflow:      SideObject{Top: -100, Bottom: -100},
			moves:         []float64{80},
			wantOffset:    20,
			wantReference: 80,
			wantPrevented: true,
		},
		"finger down shrinks offset": {
			overflow:      SideObject{Top: -100, Bottom: -100},
			moves:         []float64{130},
			wantOffset:    -30,
			wantReference: 130,
			wantPrevented: true,
		},
		"jitter below threshold ignored": {
			overflow:      SideObject{Top: -100, Bottom: -100},
			moves:         []float64{99},
			wantOffset:    0,
			wantReference: 100,
			wantPrevented: true,
		},
		"small moves accumulate past threshold": {
			overflow:      SideObject{Top: -100, Bottom: -100},
			moves:         []float64{99, 97},
			wantOffset:    3,
			wantReference: 97,
			wantPrevented: true,
		},
		"clamped to room": {
			overflow:      SideObject{Top: -5, Bottom: -100},
			moves:         []float64{80},
			wantOffset:    5,
			wantReference: 80,
			wantPrevented: true,
		},
		"cancelled at both boundaries": {
			overflow:      SideObject{Top: 0, Bottom: 0},
			moves:         []float64{80},
			wantOffset:    0,
			wantReference: 100,
			wantPrevented: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTouchFixture(tt.overflow)
			f.touch.HandleTouchStart(touchAt(100))

			var last *TouchEvent
			for _, y := range tt.moves {
				last = touchAt(y)
				f.touch.HandleTouchMove(last)
			}

			assert.Equal(t, tt.wantOffset, f.offset.Get())
			assert.Equal(t, tt.wantReference, f.touch.Snapshot().ReferenceY)
			assert.Equal(t, tt.wantPrevented, last.DefaultPrevented())
			assert.Equal(t, tt.wantPrevented, last.PropagationStopped())
		})
	}
}

func TestTouchScroller_ReleaseVelocity(t *testing.T) {
	type tc struct {
		move          float64
		wantAnimating bool
	}

	tests := map[string]tc{
		"fast release flicks":      {move: 80, wantAnimating: true},
		"no travel does not flick": {move: 100, wantAnimating: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTouchFixture(SideObject{Top: -1000, Bottom: -1000})
			f.touch.HandleTouchStart(touchAt(100))
			f.touch.HandleTouchMove(touchAt(tt.move))
			f.sched.Step(frame)
			f.touch.HandleTouchEnd(touchAt(tt.move))

			snap := f.touch.Snapshot()
			assert.False(t, snap.Pressed)
			assert.Equal(t, tt.wantAnimating, f.touch.Animating())
			if tt.wantAnimating {
				// 20px in 16ms, smoothed once from rest.
				wantVelocity := 0.8 * 1000 * 20 / 17
				assert.InDelta(t, wantVelocity, snap.Velocity, 1e-9)
				assert.InDelta(t, 0.8*wantVelocity, snap.Amplitude, 1e-9)
			}
		})
	}
}

func TestTouchScroller_NonCancelableMove(t *testing.T) {
	f := newTouchFixture(SideObject{Top: -100, Bottom: -100})
	f.touch.HandleTouchStart(touchAt(100))

	ev := touchAt(80)
	ev.Cancelable = false
	f.touch.HandleTouchMove(ev)

	assert.Equal(t, 20.0, f.offset.Get())
	assert.False(t, ev.DefaultPrevented())
	assert.True(t, ev.PropagationStopped())
}

func TestTouchScroller_CloseCancelsFrames(t *testing.T) {
	f := newTouchFixture(SideObject{Top: -100, Bottom: -100})
	f.touch.Fling(50)
	require.Equal(t, 1, f.sched.Pending())

	f.touch.Close()

	assert.Equal(t, 0, f.sched.Pending())
	assert.False(t, f.touch.Animating())
	assert.Equal(t, GestureState{}, f.touch.Snapshot())

	f.touch.Fling(50)
	assert.Equal(t, 0, f.sched.Pending())
}

func TestTouchScroller_TouchStartCancelsFlick(t *testing.T) {
	f := newTouchFixture(SideObject{Top: -100, Bottom: -100})
	f.touch.Fling(50)
	f.touch.HandleTouchStart(touchAt(100))

	assert.False(t, f.touch.Animating())
	assert.True(t, f.touch.Snapshot().Pressed)
	assert.Equal(t, 1, f.sched.Pending())
}

func TestTouchScroller_OnMove(t *testing.T) {
	tests := map[string]struct {
		overflow  SideObject
		wantCalls int
	}{
		"room to move": {
			overflow:  SideObject{Top: -100, Bottom: -100},
			wantCalls: 2,
		},
		"cancelled gesture still reports moves": {
			overflow:  SideObject{Top: 0, Bottom: 0},
			wantCalls: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTouchFixture(tt.overflow)
			calls := 0
			f.touch.opts.OnMove = func() { calls++ }

			// Moves without a pressed gesture are ignored.
			f.touch.HandleTouchMove(touchAt(290))

			f.touch.HandleTouchStart(touchAt(300))
			f.touch.HandleTouchMove(touchAt(290))
			f.touch.HandleTouchMove(touchAt(280))
			if calls != tt.wantCalls {
				t.Errorf("OnMove calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestTouchScroller_Disabled(t *testing.T) {
	f := newTouchFixture(SideObject{Top: -100, Bottom: -100})
	f.touch.SetEnabled(false)

	f.touch.HandleTouchStart(touchAt(100))
	f.touch.HandleTouchMove(touchAt(50))
	f.touch.Fling(50)

	assert.False(t, f.touch.Snapshot().Pressed)
	assert.Equal(t, 0.0, f.offset.Get())
	assert.Equal(t, 0, f.sched.Pending())
}
