//go:build !tinygo

package hal

import "time"

// hostTickPeriod is the length of one kernel tick on the host.
const hostTickPeriod = time.Millisecond

// hostTime turns wall time into the kernel tick stream. The kernel only needs
// the newest sequence number, so a slow reader sees ticks coalesced rather
// than queued.
type hostTime struct {
	ch    chan uint64
	now   func() time.Time
	start time.Time
	seq   uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the tick count elapsed since the first step. Every call
// advances at least one tick.
func (t *hostTime) step() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	seq := uint64(now.Sub(t.start) / hostTickPeriod)
	if seq <= t.seq {
		seq = t.seq + 1
	}
	t.seq = seq
	t.publish(seq)
}

func (t *hostTime) publish(seq uint64) {
	for {
		select {
		case t.ch <- seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}

type hostClock struct {
	now   func() time.Time
	is24h bool
}

func (c *hostClock) Now() time.Time { return c.now() }
func (c *hostClock) Is24Hour() bool { return c.is24h }
