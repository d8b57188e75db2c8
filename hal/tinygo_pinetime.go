//go:build tinygo && baremetal && pinetime

package hal

import (
	"machine"
	"sync"
)

type pineTimeHAL struct {
	logger *serialLogger
	fb     Framebuffer
	t      *tinyGoTime
	bat    *pineTimeBattery
	link   *bleLink
}

// New returns a PineTime HAL implementation.
//
// Display: ST7789 240x240 on SPI0. Battery: ADC on P0.31 behind a 1:2 divider.
// Connection: BLE peripheral advertising the standard battery service.
func New() HAL {
	logger := &serialLogger{out: machine.Serial}

	fb, err := newPineTimeDisplay()
	if err != nil {
		logger.WriteLineString("hal: display: " + err.Error())
		fb = newNullPanel(240, 240)
	}

	bat := newPineTimeBattery()
	link, err := newBLELink()
	if err != nil {
		logger.WriteLineString("hal: ble: " + err.Error())
	}
	bat.onChange = link.publishBattery

	return &pineTimeHAL{
		logger: logger,
		fb:     fb,
		t:      newTinyGoTime(),
		bat:    bat,
		link:   link,
	}
}

func (h *pineTimeHAL) Logger() Logger         { return h.logger }
func (h *pineTimeHAL) Display() Display       { return tinyGoDisplay{fb: h.fb, shape: ShapeRect} }
func (h *pineTimeHAL) Time() Time             { return h.t }
func (h *pineTimeHAL) Clock() Clock           { return tinyGoClock{} }
func (h *pineTimeHAL) Battery() Battery       { return h.bat }
func (h *pineTimeHAL) Connection() Connection { return h.link }

const (
	batteryEmptyMV = 3450
	batteryFullMV  = 4180
	adcRefMV       = 3600
)

type pineTimeBattery struct {
	mu       sync.Mutex
	adc      machine.ADC
	last     uint8
	onChange func(percent uint8)
}

func newPineTimeBattery() *pineTimeBattery {
	machine.InitADC()
	adc := machine.ADC{Pin: machine.BATTERY}
	adc.Configure(machine.ADCConfig{})

	// Both indication lines are open-drain, active low.
	machine.CHARGE_INDICATION.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	machine.POWER_PRESENCE.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	return &pineTimeBattery{adc: adc}
}

func (b *pineTimeBattery) ChargeState() BatteryChargeState {
	mv := uint32(b.adc.Get()) * adcRefMV * 2 / 0xFFFF
	st := BatteryChargeState{
		Percent:  percentFromMillivolts(mv),
		Charging: !machine.CHARGE_INDICATION.Get(),
		Plugged:  !machine.POWER_PRESENCE.Get(),
	}

	b.mu.Lock()
	changed := st.Percent != b.last
	b.last = st.Percent
	fn := b.onChange
	b.mu.Unlock()

	if changed && fn != nil {
		fn(st.Percent)
	}
	return st
}

func percentFromMillivolts(mv uint32) uint8 {
	if mv <= batteryEmptyMV {
		return 0
	}
	if mv >= batteryFullMV {
		return 100
	}
	return uint8((mv - batteryEmptyMV) * 100 / (batteryFullMV - batteryEmptyMV))
}
