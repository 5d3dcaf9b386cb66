package floating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPair() (*Element, *Element, Platform) {
	reference := NewElement(WithName("reference"), WithRect(100, 100, 50, 20))
	floating := NewElement(WithName("floating"), WithSize(30, 10))
	return reference, floating, ViewportPlatform{Viewport: NewRect(0, 0, 400, 400)}
}

func TestComputePosition_Config(t *testing.T) {
	type tc struct {
		cfg     func(p Platform) Config
		wantErr string
		want    Result
	}

	tests := map[string]tc{
		"defaults to bottom absolute": {
			cfg: func(p Platform) Config { return Config{Platform: p} },
			want: Result{
				X: 110, Y: 120,
				Placement:      Bottom,
				Strategy:       StrategyAbsolute,
				MiddlewareData: MiddlewareData{},
			},
		},
		"keeps fixed strategy": {
			cfg: func(p Platform) Config {
				return Config{Placement: Left, Strategy: StrategyFixed, Platform: p}
			},
			want: Result{
				X: 70, Y: 105,
				Placement:      Left,
				Strategy:       StrategyFixed,
				MiddlewareData: MiddlewareData{},
			},
		},
		"no platform": {
			cfg:     func(Platform) Config { return Config{} },
			wantErr: "no platform",
		},
		"invalid placement": {
			cfg:     func(p Platform) Config { return Config{Placement: "under", Platform: p} },
			wantErr: "invalid placement",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reference, floating, platform := newPair()
			got, err := ComputePosition(context.Background(), reference, floating, tt.cfg(platform))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePosition_ThreadsState(t *testing.T) {
	reference, floating, platform := newPair()

	var seenX float64
	var seenData any
	first := Middleware{
		Name: "first",
		Fn: func(_ context.Context, s MiddlewareState) (MiddlewareReturn, error) {
			return MiddlewareReturn{X: Coord(s.X + 5), Data: "first-data"}, nil
		},
	}
	second := Middleware{
		Name: "second",
		Fn: func(_ context.Context, s MiddlewareState) (MiddlewareReturn, error) {
			seenX = s.X
			seenData = s.MiddlewareData["first"]
			return MiddlewareReturn{}, nil
		},
	}

	res, err := ComputePosition(context.Background(), reference, floating, Config{
		Middleware: []Middleware{first, second},
		Platform:   platform,
	})
	require.NoError(t, err)

	assert.Equal(t, 115.0, seenX)
	assert.Equal(t, "first-data", seenData)
	assert.Equal(t, 115.0, res.X)
	assert.Equal(t, 120.0, res.Y)
	assert.NotContains(t, res.MiddlewareData, "second")
}

func TestComputePosition_ResetPlacement(t *testing.T) {
	reference, floating, platform := newPair()

	calls := 0
	flipOnce := Middleware{
		Name: "flip-once",
		Fn: func(_ context.Context, s MiddlewareState) (MiddlewareReturn, error) {
			calls++
			if s.Placement == Bottom {
				return MiddlewareReturn{Reset: &Reset{Placement: Top}}, nil
			}
			return MiddlewareReturn{Data: s.Placement}, nil
		},
	}

	res, err := ComputePosition(context.Background(), reference, floating, Config{
		Middleware: []Middleware{flipOnce},
		Platform:   platform,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, Top, res.Placement)
	assert.Equal(t, 90.0, res.Y)
	assert.Equal(t, Top, res.MiddlewareData["flip-once"])
}

func TestComputePosition_ResetRects(t *testing.T) {
	reference, floating, platform := newPair()

	var heights []float64
	grow := Middleware{
		Name: "grow",
		Fn: func(_ context.Context, s MiddlewareState) (MiddlewareReturn, error) {
			heights = append(heights, s.Rects.Floating.Height)
			if len(heights) == 1 {
				s.Elements.Floating.SetContentHeight(40)
				return MiddlewareReturn{Reset: &Reset{Rects: true}}, nil
			}
			return MiddlewareReturn{}, nil
		},
	}

	res, err := ComputePosition(context.Background(), reference, floating, Config{
		Placement:  Top,
		Middleware: []Middleware{grow},
		Platform:   platform,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 40}, heights)
	assert.Equal(t, 60.0, res.Y)
}

func TestComputePosition_ResetLimit(t *testing.T) {
	reference, floating, platform := newPair()

	calls := 0
	always := Middleware{
		Name: "always",
		Fn: func(context.Context, MiddlewareState) (MiddlewareReturn, error) {
			calls++
			return MiddlewareReturn{Reset: &Reset{Rects: true}}, nil
		},
	}

	_, err := ComputePosition(context.Background(), reference, floating, Config{
		Middleware: []Middleware{always},
		Platform:   platform,
	})
	require.NoError(t, err)
	assert.Equal(t, maxResets+1, calls)
}

func TestComputePosition_Cancellation(t *testing.T) {
	t.Run("cancelled before start", func(t *testing.T) {
		reference, floating, platform := newPair()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ComputePosition(ctx, reference, floating, Config{
			Middleware: []Middleware{OffsetValue(1)},
			Platform:   platform,
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancelled between middleware", func(t *testing.T) {
		reference, floating, platform := newPair()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		secondRan := false
		_, err := ComputePosition(ctx, reference, floating, Config{
			Middleware: []Middleware{
				{Name: "cancel", Fn: func(context.Context, MiddlewareState) (MiddlewareReturn, error) {
					cancel()
					return MiddlewareReturn{}, nil
				}},
				{Name: "second", Fn: func(context.Context, MiddlewareState) (MiddlewareReturn, error) {
					secondRan = true
					return MiddlewareReturn{}, nil
				}},
			},
			Platform: platform,
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, secondRan)
	})
}

func TestComputePosition_Errors(t *testing.T) {
	t.Run("detached floating element", func(t *testing.T) {
		reference, _, platform := newPair()
		_, err := ComputePosition(context.Background(), reference, nil, Config{Platform: platform})
		assert.ErrorIs(t, err, ErrDetached)
	})

	t.Run("middleware error is wrapped", func(t *testing.T) {
		reference, floating, platform := newPair()
		boom := errors.New("boom")
		_, err := ComputePosition(context.Background(), reference, floating, Config{
			Middleware: []Middleware{{Name: "broken", Fn: func(context.Context, MiddlewareState) (MiddlewareReturn, error) {
				return MiddlewareReturn{}, boom
			}}},
			Platform: platform,
		})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "middleware broken")
	})
}
