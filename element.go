package floating

import (
	"math"
	"sync"
)

// Element is the measurable node the positioning engine reads and writes.
//
// It models the box metrics a host exposes for a rendered node: a border-box
// rect, the height of its scrollable content, a uniform border width, its top
// offset inside the nearest scroll container, an optional max-height style and
// the current scroll offset. Hosts keep it in sync with their render tree; the
// engine writes only the max-height style, the scroll offset and, through the
// host, the final position. Thread-safe.
type Element struct {
	mu sync.RWMutex

	name string

	// rect is the border box; Height is the natural (unclipped) height.
	rect         Rect
	scrollHeight float64
	clientTop    float64
	offsetTop    float64

	maxHeight    float64
	hasMaxHeight bool
	scrollTop    float64
}

// NewElement creates an element configured by opts.
// When only one of height and content height is given, the other is derived
// from the border width.
func NewElement(opts ...Option) *Element {
	e := &Element{}
	for _, opt := range opts {
		opt(e)
	}
	if e.scrollHeight == 0 {
		e.scrollHeight = max(0, e.rect.Height-2*e.clientTop)
	}
	if e.rect.Height == 0 {
		e.rect.Height = e.scrollHeight + 2*e.clientTop
	}
	return e
}

// Name returns the debug name of the element.
func (e *Element) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name
}

// BoundingRect returns the rendered border box, with the max-height style applied.
func (e *Element) BoundingRect() Rect {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rect.WithHeight(e.offsetHeightLocked())
}

// SetPosition moves the element's top-left corner.
func (e *Element) SetPosition(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rect.X = x
	e.rect.Y = y
}

// SetContentHeight replaces the scrollable content height and the natural
// height derived from it.
func (e *Element) SetContentHeight(h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrollHeight = max(0, h)
	e.rect.Height = e.scrollHeight + 2*e.clientTop
	e.clampScrollLocked()
}

// OffsetHeight returns the rendered height including borders.
func (e *Element) OffsetHeight() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.offsetHeightLocked()
}

func (e *Element) offsetHeightLocked() float64 {
	h := e.rect.Height
	if e.hasMaxHeight && e.maxHeight < h {
		h = e.maxHeight
	}
	return max(0, h)
}

// ClientHeight returns the rendered height excluding borders.
func (e *Element) ClientHeight() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clientHeightLocked()
}

func (e *Element) clientHeightLocked() float64 {
	return max(0, e.offsetHeightLocked()-2*e.clientTop)
}

// ScrollHeight returns the height of the scrollable content, never less than
// the client height.
func (e *Element) ScrollHeight() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return max(e.scrollHeight, e.clientHeightLocked())
}

// ClientTop returns the top border width.
func (e *Element) ClientTop() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clientTop
}

// OffsetTop returns the element's top offset within its scroll container.
func (e *Element) OffsetTop() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.offsetTop
}

// MaxHeight returns the max-height style and whether one is set.
func (e *Element) MaxHeight() (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.maxHeight, e.hasMaxHeight
}

// SetMaxHeight sets the max-height style.
func (e *Element) SetMaxHeight(h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxHeight = max(0, h)
	e.hasMaxHeight = true
	e.clampScrollLocked()
}

// ClearMaxHeight removes the max-height style.
func (e *Element) ClearMaxHeight() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxHeight = 0
	e.hasMaxHeight = false
	e.clampScrollLocked()
}

// ScrollTop returns the vertical scroll offset.
func (e *Element) ScrollTop() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scrollTop
}

// SetScrollTop sets the vertical scroll offset, clamped to the scrollable range.
func (e *Element) SetScrollTop(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrollTop = v
	e.clampScrollLocked()
}

// MaxScrollTop returns the largest valid scroll offset.
func (e *Element) MaxScrollTop() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.maxScrollLocked()
}

func (e *Element) maxScrollLocked() float64 {
	return max(0, max(e.scrollHeight, e.clientHeightLocked())-e.clientHeightLocked())
}

func (e *Element) clampScrollLocked() {
	e.scrollTop = math.Max(0, math.Min(e.scrollTop, e.maxScrollLocked()))
}

// IsScrollable returns true if the content is taller than the client area.
func (e *Element) IsScrollable() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scrollHeight > e.clientHeightLocked()
}
