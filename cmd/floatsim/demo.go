package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	floating "github.com/grindlemire/go-floating"
	"github.com/grindlemire/go-floating/internal/config"
	"github.com/grindlemire/go-floating/pkg/debug"
)

// colPx is the width of one terminal column in scene pixels. One row is one
// item high.
const colPx = 10.0

// flickVelocity is the release velocity the f/F keys simulate, in px/s.
const flickVelocity = 1500.0

var (
	styleReference = tcell.StyleDefault.Reverse(true)
	styleItem      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleActive    = tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorBlack)
	styleSelected  = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive terminal demo",
		Long: `Keys: up/down move the active item, enter selects it, space opens and
closes the listbox, pgup/pgdn and the mouse wheel scroll, f/F flick up/down,
q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), a.cfg)
		},
	}
}

type demo struct {
	screen tcell.Screen
	sim    *simulation
	rowPx  float64
	active int
}

func runDemo(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Frames run on the event loop as interrupts.
	sched := floating.NewTickerScheduler(cfg.Gesture.FrameInterval, func(fn func()) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(fn))
	})

	d := &demo{
		screen: screen,
		sim:    newSimulation(cfg, sched, time.Now),
		rowPx:  cfg.Scene.ItemHeight,
		active: cfg.Scene.Index,
	}
	d.resize(ctx)
	if _, err := d.sim.listbox.Open(ctx); err != nil {
		return fmt.Errorf("open listbox: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sched.Run(gctx) })

	loopErr := d.loop(ctx)
	cancel()
	d.sim.listbox.Close()
	return errors.Join(loopErr, g.Wait())
}

func (d *demo) loop(ctx context.Context) error {
	for {
		d.render()
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
			d.resize(ctx)
		case *tcell.EventInterrupt:
			if fn, ok := ev.Data().(func()); ok {
				fn()
			}
		case *tcell.EventMouse:
			d.handleMouse(ev)
		case *tcell.EventKey:
			quit, err := d.handleKey(ctx, ev)
			if err != nil || quit {
				return err
			}
		}
	}
}

// resize fits the viewport to the terminal, leaving the last row for status.
func (d *demo) resize(ctx context.Context) {
	w, h := d.screen.Size()
	d.sim.platform.Viewport = floating.NewRect(0, 0, float64(w)*colPx, float64(max(0, h-1))*d.rowPx)
	if _, err := d.sim.listbox.Update(ctx); err != nil {
		debug.Warn("demo: update after resize failed", zap.Error(err))
	}
}

func (d *demo) handleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	lb := d.sim.listbox
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyUp:
		d.moveActive(-1)
	case tcell.KeyDown:
		d.moveActive(1)
	case tcell.KeyEnter:
		if _, err := lb.SetIndex(ctx, d.active); err != nil {
			return false, err
		}
	case tcell.KeyPgUp:
		d.wheel(-3 * d.rowPx)
	case tcell.KeyPgDn:
		d.wheel(3 * d.rowPx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true, nil
		case ' ':
			if lb.IsOpen() {
				lb.Close()
				return false, nil
			}
			d.active = lb.Index()
			if _, err := lb.Open(ctx); err != nil {
				return false, err
			}
		case 'f':
			lb.Touch().Fling(flickVelocity)
		case 'F':
			lb.Touch().Fling(-flickVelocity)
		}
	}
	return false, nil
}

// moveActive moves keyboard focus and scrolls it into view natively, which
// the controller mirrors into the offset.
func (d *demo) moveActive(step int) {
	lb := d.sim.listbox
	if !lb.IsOpen() {
		return
	}
	d.active = max(0, min(d.sim.items.Len()-1, d.active+step))
	item := d.sim.items.At(d.active)
	if item == nil {
		return
	}

	lb.Wheel().HandleKeyDown()
	el := d.sim.floating
	top := item.OffsetTop()
	bottom := top + item.OffsetHeight()
	switch {
	case top < el.ScrollTop():
		el.SetScrollTop(top)
	case bottom > el.ScrollTop()+el.ClientHeight():
		el.SetScrollTop(bottom - el.ClientHeight())
	default:
		return
	}
	lb.Wheel().HandleScroll()
}

func (d *demo) handleMouse(ev *tcell.EventMouse) {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		d.wheel(-d.rowPx)
	case ev.Buttons()&tcell.WheelDown != 0:
		d.wheel(d.rowPx)
	default:
		d.sim.listbox.Wheel().HandlePointerMove()
	}
}

func (d *demo) wheel(dy float64) {
	ev := &floating.WheelEvent{DeltaY: dy}
	d.sim.listbox.Wheel().HandleWheel(ev)
	if !ev.DefaultPrevented() {
		d.sim.nativeScroll(dy)
	}
}

func (d *demo) row(y float64) int {
	return int(math.Round(y / d.rowPx))
}

func col(x float64) int {
	return int(math.Round(x / colPx))
}

func (d *demo) render() {
	s := d.screen
	s.Clear()
	_, h := s.Size()
	lb := d.sim.listbox

	ref := d.sim.reference.BoundingRect()
	label := "select an item"
	if item := d.sim.items.At(lb.Index()); item != nil {
		label = fmt.Sprintf("item %02d", lb.Index())
	}
	d.text(col(ref.X), d.row(ref.Y), col(ref.Width), " "+label, styleReference)

	if lb.IsOpen() {
		fl := d.sim.floating.BoundingRect()
		for i, n := 0, d.sim.items.Len(); i < n; i++ {
			y := d.sim.itemY(i)
			if y < fl.Y-0.5 || y+d.rowPx > fl.Bottom()+0.5 {
				continue
			}
			style := styleItem
			switch i {
			case d.active:
				style = styleActive
			case lb.Index():
				style = styleSelected
			}
			d.text(col(fl.X), d.row(y), col(fl.Width), fmt.Sprintf(" item %02d", i), style)
		}
	}

	status := fmt.Sprintf(" offset=%.0f fallback=%v scrollTop=%.0f  [space] open/close [enter] select [f/F] flick [q] quit",
		lb.Offset().Get(), lb.Fallback().Get(), d.sim.floating.ScrollTop())
	w, _ := s.Size()
	d.text(0, h-1, w, status, styleStatus)
	s.Show()
}

func (d *demo) text(x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	for i := 0; i < width; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}
