//go:build tinygo && !baremetal

package hal

import (
	"time"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *MemFramebuffer
	t      *tinyGoHostTime
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// Battery and connection read as a full, linked device.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     NewMemFramebuffer(144, 168),
		t:      newTinyGoHostTime(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHostHAL) Display() Display       { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Time() Time             { return h.t }
func (h *tinyGoHostHAL) Clock() Clock           { return tinyGoHostClock{} }
func (h *tinyGoHostHAL) Battery() Battery       { return tinyGoHostBattery{} }
func (h *tinyGoHostHAL) Connection() Connection { return tinyGoHostConnection{} }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d tinyGoHostDisplay) Shape() DisplayShape      { return ShapeRect }

type tinyGoHostTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoHostTime() *tinyGoHostTime {
	t := &tinyGoHostTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoHostTime) Ticks() <-chan uint64 { return t.ch }

type tinyGoHostClock struct{}

func (tinyGoHostClock) Now() time.Time { return time.Now() }
func (tinyGoHostClock) Is24Hour() bool { return true }

type tinyGoHostBattery struct{}

func (tinyGoHostBattery) ChargeState() BatteryChargeState {
	return BatteryChargeState{Percent: 100, Plugged: true}
}

type tinyGoHostConnection struct{}

func (tinyGoHostConnection) Connected() bool { return true }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
