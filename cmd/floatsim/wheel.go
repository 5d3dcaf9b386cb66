package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	floating "github.com/grindlemire/go-floating"
)

func newWheelCmd(a *app) *cobra.Command {
	var deltas []float64

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Replay wheel deltas against the open listbox",
		Long: `Opens the listbox and feeds each --delta as a wheel event. Deltas the
controller does not intercept scroll the list natively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(deltas) == 0 {
				return fmt.Errorf("at least one --delta is required")
			}

			sched := floating.NewManualScheduler(time.Now())
			sim := newSimulation(a.cfg, sched, sched.Now)
			res, err := sim.listbox.Open(cmd.Context())
			if err != nil {
				return fmt.Errorf("open listbox: %w", err)
			}
			defer sim.listbox.Close()
			sched.Step(a.cfg.Gesture.FrameInterval)

			out := cmd.OutOrStdout()
			sim.describe(out, res)
			for _, d := range deltas {
				ev := &floating.WheelEvent{DeltaY: d}
				intercepted := sim.listbox.Wheel().HandleWheel(ev)
				if !ev.DefaultPrevented() {
					sim.nativeScroll(d)
				}
				sched.Step(a.cfg.Gesture.FrameInterval)

				last, _ := sim.listbox.Last()
				fmt.Fprintf(out, "delta=%.1f intercepted=%v offset=%.1f y=%.1f height=%.1f scrollTop=%.1f\n",
					d, intercepted, sim.listbox.Offset().Get(), last.Y,
					sim.floating.OffsetHeight(), sim.floating.ScrollTop())
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVarP(&deltas, "delta", "d", nil, "wheel delta in px, positive scrolls down (repeatable)")
	return cmd
}
