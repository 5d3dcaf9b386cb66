package main

import (
	"fmt"
	"io"
	"time"

	floating "github.com/grindlemire/go-floating"
	"github.com/grindlemire/go-floating/internal/config"
)

// simulation is the scene described by the config: a reference element, a
// listbox of equal-height items and the viewport they live in.
type simulation struct {
	cfg       *config.Config
	platform  *floating.ViewportPlatform
	reference *floating.Element
	floating  *floating.Element
	items     *floating.RefList
	listbox   *floating.Listbox
}

func newSimulation(cfg *config.Config, sched floating.FrameScheduler, now func() time.Time) *simulation {
	sc := cfg.Scene
	s := &simulation{
		cfg: cfg,
		platform: &floating.ViewportPlatform{
			Viewport: floating.NewRect(0, 0, sc.ViewportWidth, sc.ViewportHeight),
		},
		reference: floating.NewElement(
			floating.WithName("reference"),
			floating.WithRect(sc.ReferenceX, sc.ReferenceY, sc.ReferenceWidth, sc.ReferenceHeight),
		),
		floating: floating.NewElement(
			floating.WithName("listbox"),
			floating.WithSize(sc.ReferenceWidth, 0),
			floating.WithContentHeight(float64(sc.Items)*sc.ItemHeight),
		),
		items: floating.StackItems(sc.ReferenceWidth, sc.ItemHeight, sc.Items),
	}
	s.listbox = floating.NewListbox(floating.ListboxOptions{
		Reference:                  s.reference,
		Floating:                   s.floating,
		Items:                      s.items,
		Index:                      sc.Index,
		Platform:                   s.platform,
		Scheduler:                  sched,
		Now:                        now,
		Gesture:                    cfg.Gesture.Floating(),
		MinItemsVisible:            cfg.Inner.MinItemsVisible,
		ReferenceOverflowThreshold: cfg.Inner.ReferenceOverflowThreshold,
		Overflow:                   cfg.Inner.Overflow(),
		FallbackGap:                cfg.Inner.FallbackGap,
	})
	return s
}

// itemY returns the on-screen top of item i.
func (s *simulation) itemY(i int) float64 {
	item := s.items.At(i)
	if item == nil {
		return 0
	}
	fl := s.floating.BoundingRect()
	return fl.Y + s.floating.ClientTop() + item.OffsetTop() - s.floating.ScrollTop()
}

// nativeScroll emulates the host scrolling the list when a wheel event is
// not intercepted.
func (s *simulation) nativeScroll(dy float64) {
	s.floating.SetScrollTop(s.floating.ScrollTop() + dy)
}

func (s *simulation) describe(w io.Writer, res floating.Result) {
	fl := s.floating.BoundingRect()
	fmt.Fprintf(w, "placement=%s x=%.1f y=%.1f height=%.1f scrollTop=%.1f offset=%.1f fallback=%v\n",
		res.Placement, res.X, res.Y, fl.Height, s.floating.ScrollTop(),
		s.listbox.Offset().Get(), s.listbox.Fallback().Get())
	if overflow, ok := s.listbox.Overflow().Get(); ok {
		fmt.Fprintf(w, "overflow top=%.1f right=%.1f bottom=%.1f left=%.1f\n",
			overflow.Top, overflow.Right, overflow.Bottom, overflow.Left)
	}
	if item := s.items.At(s.listbox.Index()); item != nil {
		center := s.itemY(s.listbox.Index()) + item.OffsetHeight()/2
		fmt.Fprintf(w, "item=%d center=%.1f reference center=%.1f\n",
			s.listbox.Index(), center, s.reference.BoundingRect().Center().Y)
	}
}
