//go:build !tinygo

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"elitewatch/app"
	"elitewatch/hal"
	"elitewatch/internal/buildinfo"
	"elitewatch/internal/hostcfg"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 2 * time.Second

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := hostcfg.Defaults()
	var hcfg hal.HeadlessConfig
	var headless bool

	cmd := &cobra.Command{
		Use:   "elitewatch",
		Short: "elitewatch runs the Elite watchface in a desktop simulator",
		Long: `elitewatch runs the Elite watchface in a desktop simulator.

In the window, Up/Down change the simulated charge and B toggles the phone link.
Every flag can also be set with a WATCHFACE_* environment variable or an env file.`,
		Version:      buildinfo.Short(),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return hostcfg.LoadEnv(cmd.Flags(), opts.EnvFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := hostcfg.NewLogger(opts.LogLevel)
			if err != nil {
				return err
			}
			cfg, err := opts.HostConfig(log)
			if err != nil {
				return err
			}
			acfg, err := opts.AppConfig()
			if err != nil {
				return err
			}

			var sys *app.System
			newApp := func(h hal.HAL) func() error {
				sys = app.Start(h, acfg)
				return func() error { return nil }
			}

			if headless {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				err = hal.RunHeadless(ctx, cfg, newApp, hcfg)
				if errors.Is(err, context.Canceled) {
					err = nil
				}
			} else {
				err = hal.RunWindow(cfg, newApp)
			}
			stopSystem(log, sys)
			return err
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&headless, "headless", false, "Run without a window.")
	fs.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	fs.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	opts.Bind(fs)

	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	return cmd
}

func stopSystem(log *logrus.Logger, sys *app.System) {
	if sys == nil {
		return
	}
	if err := sys.Shutdown(shutdownTimeout); err != nil {
		log.WithError(err).Warn("watchface shutdown")
		return
	}
	log.Debug("watchface stopped")
}
