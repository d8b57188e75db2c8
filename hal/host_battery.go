//go:build !tinygo

package hal

import (
	"math"
	"sync"
	"time"

	"github.com/distatus/battery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	hostBatteryRefresh = 30 * time.Second
	hostBatterySim     = 80
)

// hostBattery reads the machine battery, falling back to a simulated charge on
// machines without one.
type hostBattery struct {
	mu  sync.Mutex
	log *logrus.Logger

	read func() ([]*battery.Battery, error)
	now  func() time.Time

	// override pins the reported charge when >= 0.
	override int

	last     BatteryChargeState
	lastRead time.Time
	warned   bool
}

func newHostBattery(override int, log *logrus.Logger) *hostBattery {
	if override > 100 {
		override = 100
	}
	return &hostBattery{
		log:      log,
		read:     battery.GetAll,
		now:      time.Now,
		override: override,
	}
}

func (b *hostBattery) ChargeState() BatteryChargeState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.override >= 0 {
		return BatteryChargeState{Percent: uint8(b.override)}
	}

	now := b.now()
	if !b.lastRead.IsZero() && now.Sub(b.lastRead) < hostBatteryRefresh {
		return b.last
	}
	b.lastRead = now

	bats, err := b.read()
	if len(bats) == 0 || bats[0] == nil {
		if err == nil {
			err = errors.New("no batteries found")
		}
		if !b.warned && b.log != nil {
			b.log.WithError(errors.Wrap(err, "read host battery")).Warnf("using simulated charge of %d%%", hostBatterySim)
			b.warned = true
		}
		b.last = BatteryChargeState{Percent: hostBatterySim}
		return b.last
	}
	if err != nil && b.log != nil {
		b.log.WithError(err).Debug("partial host battery read")
	}

	b.last = chargeStateFromBattery(bats[0])
	return b.last
}

// adjust moves the simulated charge by delta, pinning it from then on.
func (b *hostBattery) adjust(delta int) BatteryChargeState {
	b.mu.Lock()
	cur := b.override
	if cur < 0 {
		cur = int(b.last.Percent)
	}
	cur += delta
	if cur < 0 {
		cur = 0
	}
	if cur > 100 {
		cur = 100
	}
	b.override = cur
	b.mu.Unlock()
	return b.ChargeState()
}

func chargeStateFromBattery(bat *battery.Battery) BatteryChargeState {
	var pct float64
	if bat.Full > 0 {
		pct = bat.Current / bat.Full * 100
	}
	if math.IsNaN(pct) || pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return BatteryChargeState{
		Percent:  uint8(math.Round(pct)),
		Charging: bat.State == battery.Charging,
		Plugged:  bat.State == battery.Charging || bat.State == battery.Full,
	}
}

type hostConnection struct {
	mu        sync.Mutex
	connected bool
}

func newHostConnection(connected bool) *hostConnection {
	return &hostConnection{connected: connected}
}

func (c *hostConnection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *hostConnection) toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = !c.connected
	return c.connected
}
