package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	floating "github.com/grindlemire/go-floating"
)

func newPlaceCmd(a *app) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Open the listbox once and print the placement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("index") {
				a.cfg.Scene.Index = index
			}

			sched := floating.NewManualScheduler(time.Now())
			sim := newSimulation(a.cfg, sched, sched.Now)
			res, err := sim.listbox.Open(cmd.Context())
			if err != nil {
				return fmt.Errorf("open listbox: %w", err)
			}
			defer sim.listbox.Close()

			a.log.Info("placed listbox",
				zap.Int("index", sim.listbox.Index()),
				zap.Float64("y", res.Y),
				zap.Bool("fallback", sim.listbox.Fallback().Get()),
			)
			sim.describe(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "selected item, overrides scene.index")
	return cmd
}
