//go:build !tinygo

package hal

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/distatus/battery"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestChargeStateFromBattery(t *testing.T) {
	tests := []struct {
		name string
		bat  battery.Battery
		want BatteryChargeState
	}{
		{
			name: "discharging half",
			bat:  battery.Battery{State: battery.Discharging, Current: 25, Full: 50},
			want: BatteryChargeState{Percent: 50},
		},
		{
			name: "charging rounds",
			bat:  battery.Battery{State: battery.Charging, Current: 2, Full: 3},
			want: BatteryChargeState{Percent: 67, Charging: true, Plugged: true},
		},
		{
			name: "full clamps",
			bat:  battery.Battery{State: battery.Full, Current: 51, Full: 50},
			want: BatteryChargeState{Percent: 100, Plugged: true},
		},
		{
			name: "unknown capacity",
			bat:  battery.Battery{State: battery.Unknown},
			want: BatteryChargeState{Percent: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bat := tt.bat
			if got := chargeStateFromBattery(&bat); got != tt.want {
				t.Fatalf("chargeStateFromBattery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHostBatteryFallsBackWithoutBattery(t *testing.T) {
	b := newHostBattery(-1, quietLogger())
	b.read = func() ([]*battery.Battery, error) { return nil, errors.New("no sysfs") }

	got := b.ChargeState()
	if got.Percent != hostBatterySim {
		t.Fatalf("Percent = %d, want %d", got.Percent, hostBatterySim)
	}
}

func TestHostBatteryCachesReads(t *testing.T) {
	now := time.Unix(1000, 0)
	reads := 0
	b := newHostBattery(-1, quietLogger())
	b.now = func() time.Time { return now }
	b.read = func() ([]*battery.Battery, error) {
		reads++
		return []*battery.Battery{{State: battery.Discharging, Current: float64(reads * 10), Full: 100}}, nil
	}

	if got := b.ChargeState().Percent; got != 10 {
		t.Fatalf("first read = %d, want 10", got)
	}
	now = now.Add(hostBatteryRefresh / 2)
	if got := b.ChargeState().Percent; got != 10 {
		t.Fatalf("cached read = %d, want 10", got)
	}
	now = now.Add(hostBatteryRefresh)
	if got := b.ChargeState().Percent; got != 20 {
		t.Fatalf("refreshed read = %d, want 20", got)
	}
	if reads != 2 {
		t.Fatalf("reads = %d, want 2", reads)
	}
}

func TestHostBatteryAdjustPinsAndClamps(t *testing.T) {
	b := newHostBattery(95, quietLogger())
	if got := b.adjust(10).Percent; got != 100 {
		t.Fatalf("adjust(+10) = %d, want 100", got)
	}
	if got := b.adjust(-105).Percent; got != 0 {
		t.Fatalf("adjust(-105) = %d, want 0", got)
	}
}

func TestHostConnectionToggle(t *testing.T) {
	c := newHostConnection(true)
	if c.toggle() {
		t.Fatal("toggle() = true, want false")
	}
	if c.Connected() {
		t.Fatal("Connected() = true after toggle")
	}
}
