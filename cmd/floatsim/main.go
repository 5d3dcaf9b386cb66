// Package main provides floatsim, a command line driver for the floating
// positioning engine.
//
// Usage:
//
//	floatsim place [--index N]         Open the listbox once and print the placement
//	floatsim wheel --delta D [...]     Replay wheel deltas against the open listbox
//	floatsim flick [--velocity V]      Run a touch flick frame by frame
//	floatsim demo                      Interactive terminal demo
//
// Every command reads the scene and physics from --config (YAML) and
// FLOATING_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-floating/internal/config"
	"github.com/grindlemire/go-floating/pkg/debug"
)

const version = "0.1.0"

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "floatsim",
		Short:         "Simulate an inner-anchored floating listbox",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			// The demo owns the terminal; its logs only go to the file.
			var console zapcore.WriteSyncer
			if cmd.Name() != "demo" {
				console = zapcore.AddSync(cmd.ErrOrStderr())
			}
			a.log = newLogger(cfg.Logger, console)
			debug.SetLogger(a.log)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
			debug.SetLogger(nil)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newPlaceCmd(a),
		newWheelCmd(a),
		newFlickCmd(a),
		newDemoCmd(a),
	)
	return root
}
