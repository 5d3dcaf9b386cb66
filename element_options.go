package floating

// Option configures an Element.
type Option func(*Element)

// WithName sets a debug name used in diagnostics.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// WithRect sets the border-box position and natural size.
func WithRect(x, y, width, height float64) Option {
	return func(e *Element) {
		e.rect = NewRect(x, y, width, height)
	}
}

// WithSize sets the natural border-box size.
func WithSize(width, height float64) Option {
	return func(e *Element) {
		e.rect.Width = width
		e.rect.Height = height
	}
}

// WithContentHeight sets the height of the scrollable content.
func WithContentHeight(h float64) Option {
	return func(e *Element) {
		e.scrollHeight = h
	}
}

// WithBorder sets a uniform top and bottom border width.
func WithBorder(w float64) Option {
	return func(e *Element) {
		e.clientTop = w
	}
}

// WithOffsetTop sets the element's top offset within its scroll container.
func WithOffsetTop(v float64) Option {
	return func(e *Element) {
		e.offsetTop = v
	}
}

// WithMaxHeight sets an initial max-height style.
func WithMaxHeight(h float64) Option {
	return func(e *Element) {
		e.maxHeight = h
		e.hasMaxHeight = true
	}
}

// StackItems creates count items of equal height laid out top to bottom and
// returns them as a RefList, ready for the inner middleware.
func StackItems(width, itemHeight float64, count int) *RefList {
	items := make([]*Element, count)
	for i := range items {
		items[i] = NewElement(
			WithSize(width, itemHeight),
			WithOffsetTop(float64(i)*itemHeight),
		)
	}
	return NewRefList(items...)
}
