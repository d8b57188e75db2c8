//go:build !tinygo

package hal

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// Done runs once the tick budget is spent, before RunHeadless returns.
	Done func(HAL) error
}

// RunHeadless runs the OS without opening a window.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error, hcfg HeadlessConfig) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return errors.Errorf("invalid headless hz: %d", hcfg.Hz)
	}

	h := New(cfg).(*hostHAL)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return errors.Wrap(err, "headless step")
				}
			}
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				if hcfg.Done != nil {
					return hcfg.Done(h)
				}
				return nil
			}
		}
	}
}
