package hal

import "time"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LevelLogger is a Logger that keeps a severity with each line. Level is one
// of "debug", "info", "warn" or "error".
type LevelLogger interface {
	Logger
	WriteLevelLine(level, s string)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// DisplayShape selects the panel geometry class.
type DisplayShape uint8

const (
	ShapeRect DisplayShape = iota
	ShapeRound
)

func (s DisplayShape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeRound:
		return "round"
	default:
		return "unknown"
	}
}

// ParseDisplayShape maps "rect"/"round" to a DisplayShape.
func ParseDisplayShape(s string) (DisplayShape, bool) {
	switch s {
	case "rect", "rectangular", "":
		return ShapeRect, true
	case "round", "circular":
		return ShapeRound, true
	default:
		return ShapeRect, false
	}
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	Shape() DisplayShape
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// Clock provides wall-clock time and the user's clock style.
type Clock interface {
	Now() time.Time
	Is24Hour() bool
}

// BatteryChargeState is one battery reading.
type BatteryChargeState struct {
	// Percent is in [0, 100].
	Percent  uint8
	Charging bool
	Plugged  bool
}

// Battery reports the current charge state.
type Battery interface {
	ChargeState() BatteryChargeState
}

// Connection reports whether the companion phone link is up.
type Connection interface {
	Connected() bool
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Time() Time
	Clock() Clock
	Battery() Battery
	Connection() Connection
}
