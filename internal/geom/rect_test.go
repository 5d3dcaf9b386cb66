package geom

import "testing"

func TestRect_Edges(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"fractional": {
			rect:   NewRect(0.5, 0.25, 10, 10),
			right:  10.5,
			bottom: 10.25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(50, 50, 100, 100),
			want: NewRect(50, 50, 50, 50),
		},
		"contained": {
			a:    NewRect(0, 0, 400, 400),
			b:    NewRect(10, 20, 30, 40),
			want: NewRect(10, 20, 30, 40),
		},
		"disjoint": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 20, 10, 10),
			want: Rect{},
		},
		"touching edges": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	got := r.Inset(SideTRBL(5, 10, 5, 10))
	want := NewRect(10, 5, 80, 40)
	if got != want {
		t.Errorf("Inset() = %+v, want %+v", got, want)
	}
}

func TestRect_Center(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if got := r.Center(); got != (Point{X: 25, Y: 40}) {
		t.Errorf("Center() = %+v, want {25 40}", got)
	}
}

func TestSideObject_Fits(t *testing.T) {
	type tc struct {
		sides SideObject
		fits  bool
	}

	tests := map[string]tc{
		"all clearance": {sides: SideAll(-3), fits: true},
		"touching":      {sides: SideObject{}, fits: true},
		"bottom over":   {sides: SideTRBL(-1, -1, 2, -1), fits: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.sides.Fits(); got != tt.fits {
				t.Errorf("Fits() = %v, want %v", got, tt.fits)
			}
		})
	}
}
