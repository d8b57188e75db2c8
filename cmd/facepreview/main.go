//go:build !tinygo

// Command facepreview renders one watchface frame to a PNG.
package main

import (
	"context"
	"image/png"
	"os"
	"time"

	"elitewatch/app"
	"elitewatch/hal"
	"elitewatch/internal/hostcfg"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const startTimeout = 2 * time.Second

// timeLayouts are accepted by --time, most specific first.
var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "15:04"}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := hostcfg.Defaults()
	opts.Battery = 80
	var out, at string

	cmd := &cobra.Command{
		Use:          "facepreview",
		Short:        "Render one watchface frame to a PNG",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return hostcfg.LoadEnv(cmd.Flags(), opts.EnvFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := hostcfg.NewLogger(opts.LogLevel)
			if err != nil {
				return err
			}
			now, err := parseTime(at, time.Now())
			if err != nil {
				return err
			}
			if opts.Battery < 0 {
				return errors.New("facepreview needs a fixed --battery")
			}
			cfg, err := opts.HostConfig(log)
			if err != nil {
				return err
			}
			cfg.Now = func() time.Time { return now }
			acfg, err := opts.AppConfig()
			if err != nil {
				return err
			}
			return render(cmd.Context(), log, cfg, acfg, out)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&out, "out", "o", "face.png", "Output PNG path.")
	fs.StringVar(&at, "time", "", "Time to show: RFC 3339, \"2006-01-02 15:04\" or \"15:04\" (default now).")
	opts.Bind(fs)
	return cmd
}

func render(ctx context.Context, log *logrus.Logger, cfg hal.HostConfig, acfg app.Config, out string) error {
	var sys *app.System
	newApp := func(h hal.HAL) func() error {
		sys = app.Start(h, acfg)
		return func() error { return nil }
	}

	done := func(h hal.HAL) error {
		select {
		case <-sys.Started():
		case <-time.After(startTimeout):
			return errors.New("watchface did not draw a frame")
		}
		img := hal.SnapshotRGBA(h.Display().Framebuffer())
		if img == nil {
			return errors.New("framebuffer snapshot unavailable")
		}

		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return errors.Wrap(err, "encode png")
		}
		log.WithField("path", out).Info("wrote preview")
		return sys.Shutdown(startTimeout)
	}

	return hal.RunHeadless(ctx, cfg, newApp, hal.HeadlessConfig{Hz: 1000, Ticks: 20, Done: done})
}

// parseTime reads s in one of timeLayouts in the local zone. A bare clock time
// takes its date from today.
func parseTime(s string, today time.Time) (time.Time, error) {
	if s == "" {
		return today, nil
	}
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, today.Location())
		if err != nil {
			continue
		}
		if layout == "15:04" {
			y, m, d := today.Date()
			t = time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, today.Location())
		}
		return t, nil
	}
	return time.Time{}, errors.Errorf("unrecognised --time %q", s)
}
