//go:build tinygo && baremetal && pinetime

package hal

import (
	"sync/atomic"

	"tinygo.org/x/bluetooth"
)

const bleLocalName = "elitewatch"

// bleLink tracks the phone connection and serves the battery level over GATT.
type bleLink struct {
	connected atomic.Bool
	level     bluetooth.Characteristic
	ready     atomic.Bool
}

func newBLELink() (*bleLink, error) {
	l := &bleLink{}
	adapter := bluetooth.DefaultAdapter

	adapter.SetConnectHandler(func(_ bluetooth.Device, connected bool) {
		l.connected.Store(connected)
	})

	if err := adapter.Enable(); err != nil {
		return l, err
	}

	if err := adapter.AddService(&bluetooth.Service{
		UUID: bluetooth.ServiceUUIDBattery,
		Characteristics: []bluetooth.CharacteristicConfig{
			{
				Handle: &l.level,
				UUID:   bluetooth.CharacteristicUUIDBatteryLevel,
				Value:  []byte{0},
				Flags:  bluetooth.CharacteristicReadPermission | bluetooth.CharacteristicNotifyPermission,
			},
		},
	}); err != nil {
		return l, err
	}

	adv := adapter.DefaultAdvertisement()
	if err := adv.Configure(bluetooth.AdvertisementOptions{
		LocalName:    bleLocalName,
		ServiceUUIDs: []bluetooth.UUID{bluetooth.ServiceUUIDBattery},
	}); err != nil {
		return l, err
	}
	if err := adv.Start(); err != nil {
		return l, err
	}
	l.ready.Store(true)
	return l, nil
}

func (l *bleLink) Connected() bool {
	if l == nil {
		return false
	}
	return l.connected.Load()
}

func (l *bleLink) publishBattery(percent uint8) {
	if l == nil || !l.ready.Load() {
		return
	}
	_, _ = l.level.Write([]byte{percent})
}
