package floating

// scene is a listbox laid out in a viewport: a 200x30 reference at refY and
// count 20px items stacked inside the floating element.
type scene struct {
	viewport  Rect
	reference *Element
	floating  *Element
	items     *RefList
}

func newScene(viewportHeight, refY float64, count int) scene {
	return scene{
		viewport:  NewRect(0, 0, 800, viewportHeight),
		reference: NewElement(WithName("reference"), WithRect(100, refY, 200, 30)),
		floating:  NewElement(WithName("floating"), WithSize(200, 0), WithContentHeight(float64(count)*20)),
		items:     StackItems(200, 20, count),
	}
}

func (s scene) platform() ViewportPlatform {
	return ViewportPlatform{Viewport: s.viewport}
}

func (s scene) config(opts InnerOptions) Config {
	opts.List = s.items
	return Config{
		Placement:  Bottom,
		Middleware: []Middleware{Inner(opts)},
		Platform:   s.platform(),
	}
}

// itemCenter returns the on-screen vertical center of item i once res is
// applied.
func (s scene) itemCenter(res Result, i int) float64 {
	item := s.items.At(i)
	return res.Y + s.floating.ClientTop() + item.OffsetTop() - s.floating.ScrollTop() + item.OffsetHeight()/2
}
