//go:build !tinygo

package hal

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// HostConfig selects the simulated device for the host HAL.
type HostConfig struct {
	Width  int
	Height int
	Shape  DisplayShape

	// Clock24h overrides the clock style; nil means 24h.
	Clock24h *bool

	// BatteryPercent pins the simulated charge; negative reads the machine battery.
	BatteryPercent int

	// Connected is the initial simulated phone link state.
	Connected bool

	// Now overrides the wall clock; nil uses time.Now.
	Now func() time.Time

	Log *logrus.Logger
}

// DefaultHostConfig returns a 144x168 rectangular device with a live battery reading.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Width:          144,
		Height:         168,
		Shape:          ShapeRect,
		BatteryPercent: -1,
		Connected:      true,
	}
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	shape  DisplayShape
	t      *hostTime
	clock  *hostClock
	bat    *hostBattery
	conn   *hostConnection
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultHostConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	log := cfg.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stdout)
	}
	is24h := true
	if cfg.Clock24h != nil {
		is24h = *cfg.Clock24h
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := &hostLogger{entry: log.WithField("src", "watch")}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		shape:  cfg.Shape,
		t:      newHostTime(),
		clock:  &hostClock{now: now, is24h: is24h},
		bat:    newHostBattery(cfg.BatteryPercent, log),
		conn:   newHostConnection(cfg.Connected),
	}
}

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) Display() Display       { return hostDisplay{fb: h.fb, shape: h.shape} }
func (h *hostHAL) Time() Time             { return h.t }
func (h *hostHAL) Clock() Clock           { return h.clock }
func (h *hostHAL) Battery() Battery       { return h.bat }
func (h *hostHAL) Connection() Connection { return h.conn }

type hostDisplay struct {
	fb    *hostFramebuffer
	shape DisplayShape
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) Shape() DisplayShape      { return d.shape }

type hostLogger struct {
	mu    sync.Mutex
	entry *logrus.Entry
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Info(s)
}

func (l *hostLogger) WriteLevelLine(level, s string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Log(lvl, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
