// Package floating positions floating elements (tooltips, dropdowns,
// listboxes) relative to a reference element while keeping them inside a
// clipping boundary.
//
// Positioning runs as a pipeline of middleware over a shared state; see
// [ComputePosition], [Offset], [Flip], [Shift], [Size] and [Inner]. The inner
// middleware anchors an item of a scrollable list on top of the reference
// element, the way native select menus open. [InnerOffsetController] and
// [TouchScroller] translate wheel, scroll and touch input into the external
// offset the inner middleware consumes, and [Listbox] wires all of it
// together for a host UI.
//
// The package is UI-thread oriented: apart from read accessors, calls must
// come from one goroutine. Per-frame work goes through a [FrameScheduler].
package floating
