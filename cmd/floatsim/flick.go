package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	floating "github.com/grindlemire/go-floating"
)

func newFlickCmd(a *app) *cobra.Command {
	var (
		velocity  float64
		maxFrames int
	)

	cmd := &cobra.Command{
		Use:   "flick",
		Short: "Run a touch flick frame by frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval := a.cfg.Gesture.FrameInterval
			sched := floating.NewManualScheduler(time.Now())
			sim := newSimulation(a.cfg, sched, sched.Now)
			if _, err := sim.listbox.Open(cmd.Context()); err != nil {
				return fmt.Errorf("open listbox: %w", err)
			}
			defer sim.listbox.Close()
			sched.Step(interval)

			out := cmd.OutOrStdout()
			touch := sim.listbox.Touch()
			touch.Fling(velocity)
			if !touch.Animating() {
				fmt.Fprintln(out, "flick ignored: listbox is in fallback placement")
				return nil
			}
			snap := touch.Snapshot()
			fmt.Fprintf(out, "velocity=%.1f amplitude=%.1f target=%.1f\n", snap.Velocity, snap.Amplitude, snap.Target)

			frames := 0
			for touch.Animating() && frames < maxFrames {
				sched.Step(interval)
				frames++
				last, _ := sim.listbox.Last()
				fmt.Fprintf(out, "frame=%d t=%s offset=%.2f remaining=%.2f y=%.1f\n",
					frames, time.Duration(frames)*interval, sim.listbox.Offset().Get(),
					touch.LastDecayDistance(), last.Y)
			}
			if touch.Animating() {
				a.log.Warn("flick still running", zap.Int("frames", frames))
			}
			fmt.Fprintf(out, "done after %d frames, offset=%.2f\n", frames, sim.listbox.Offset().Get())
			return nil
		},
	}
	cmd.Flags().Float64Var(&velocity, "velocity", 1000, "release velocity in px/s, positive moves the list up")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 600, "stop after this many frames")
	return cmd
}
