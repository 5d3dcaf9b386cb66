package floating

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDetectOverflow(t *testing.T) {
	type tc struct {
		x, y float64
		opts DetectOverflowOptions
		want SideObject
	}

	reference := NewElement(WithRect(40, 40, 20, 20))
	floating := NewElement(WithSize(20, 20))
	base := MiddlewareState{
		Placement: Bottom,
		Rects: ElementRects{
			Reference: reference.BoundingRect(),
			Floating:  NewRect(0, 0, 20, 20),
		},
		Elements: Elements{Reference: reference, Floating: floating},
		Platform: ViewportPlatform{Viewport: NewRect(0, 0, 100, 100)},
	}
	boundary := NewRect(10, 10, 50, 50)
	root := NewRect(0, 0, 200, 200)

	tests := map[string]tc{
		"inside": {
			x: 40, y: 40,
			want: SideObject{Top: -40, Right: -40, Bottom: -40, Left: -40},
		},
		"overflows top and right": {
			x: 90, y: -5,
			want: SideObject{Top: 5, Right: 10, Bottom: -85, Left: -90},
		},
		"padding grows every side": {
			x: 90, y: -5,
			opts: DetectOverflowOptions{Padding: SideAll(5)},
			want: SideObject{Top: 10, Right: 15, Bottom: -80, Left: -85},
		},
		"boundary intersects viewport": {
			x: 50, y: 50,
			opts: DetectOverflowOptions{Boundary: &boundary},
			want: SideObject{Top: -40, Right: 10, Bottom: 10, Left: -40},
		},
		"root boundary replaces viewport": {
			x: 90, y: -5,
			opts: DetectOverflowOptions{RootBoundary: &root},
			want: SideObject{Top: 5, Right: -90, Bottom: -185, Left: -90},
		},
		"reference context ignores coordinates": {
			x: 1000, y: 1000,
			opts: DetectOverflowOptions{ElementContext: ContextReference},
			want: SideObject{Top: -40, Right: -40, Bottom: -40, Left: -40},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			state := base
			state.X, state.Y = tt.x, tt.y
			got, err := DetectOverflow(context.Background(), state, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DetectOverflow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
