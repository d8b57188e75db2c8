// Package app wires the kernel, the services and the watchface task.
package app

import (
	"fmt"
	"time"

	"elitewatch/hal"
	"elitewatch/internal/buildinfo"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
	batterysvc "elitewatch/sparkos/services/battery"
	connsvc "elitewatch/sparkos/services/connection"
	"elitewatch/sparkos/services/logger"
	"elitewatch/sparkos/services/sensor"
	"elitewatch/sparkos/services/ticktimer"
	"elitewatch/sparkos/tasks/watchface"

	"github.com/pkg/errors"
)

type Config struct {
	Monochrome bool

	// Clock24h overrides the HAL clock style when set.
	Clock24h *bool

	// PollTicks is the clock and sensor polling period in kernel ticks.
	// Zero uses each service's default.
	PollTicks uint64

	// LogLevel drops in-kernel log lines below it. The zero value keeps all.
	LogLevel proto.LogLevel
}

// System is a running watch.
type System struct {
	k     *kernel.Kernel
	inbox kernel.Capability
	face  *watchface.Task
	done  chan struct{}
}

// New initializes and starts the OS with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig starts the OS and returns the per-frame step used by the host
// runners.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	_ = Start(h, cfg)
	return func() error { return nil }
}

// Run starts the OS and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg Config) {
	_ = Start(h, cfg)
	select {}
}

// Start builds the kernel, starts every task and feeds it the HAL tick stream.
func Start(h hal.HAL, cfg Config) *System {
	bootStep(h, "kernel")
	installPanicHandler(h)
	k := kernel.New()

	newEP := func() kernel.Capability { return k.NewEndpoint(kernel.RightSend | kernel.RightRecv) }
	logEP := newEP()
	tickEP := newEP()
	batEP := newEP()
	connEP := newEP()
	faceEP := newEP()

	clockPoll := cfg.PollTicks
	sensorPoll := cfg.PollTicks
	if clockPoll == 0 {
		clockPoll = ticktimer.DefaultPollTicks
	}
	if sensorPoll == 0 {
		sensorPoll = sensor.DefaultPollTicks
	}

	bootStep(h, "services")
	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv), cfg.LogLevel))
	k.AddTask(ticktimer.New(h.Clock(), tickEP.Restrict(kernel.RightRecv), clockPoll))
	k.AddTask(batterysvc.New(h.Battery(), batEP.Restrict(kernel.RightRecv), sensorPoll))
	k.AddTask(connsvc.New(h.Connection(), connEP.Restrict(kernel.RightRecv), sensorPoll))

	bootStep(h, "watchface")
	face := watchface.New(h.Display(), h.Clock(), watchface.Caps{
		Inbox:      faceEP,
		Log:        logEP.Restrict(kernel.RightSend),
		TickTimer:  tickEP.Restrict(kernel.RightSend),
		Battery:    batEP.Restrict(kernel.RightSend),
		Connection: connEP.Restrict(kernel.RightSend),
	}, watchface.Config{
		Monochrome: cfg.Monochrome,
		Clock24h:   cfg.Clock24h,
	})
	s := &System{k: k, inbox: faceEP.Restrict(kernel.RightSend), face: face, done: make(chan struct{})}
	k.AddTask(&doneTask{t: face, done: s.done})

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	if l := h.Logger(); l != nil {
		shape := hal.ShapeRect
		if d := h.Display(); d != nil {
			shape = d.Shape()
		}
		l.WriteLineString(fmt.Sprintf("elitewatch %s started: shape=%s mono=%v", buildinfo.Short(), shape, cfg.Monochrome))
	}
	bootStep(h, "running")
	return s
}

// Started is closed once the face has drawn its first frame.
func (s *System) Started() <-chan struct{} { return s.face.Started() }

// Done is closed when the watchface task has returned.
func (s *System) Done() <-chan struct{} { return s.done }

// Shutdown asks the watchface to stop and waits up to timeout for it to
// release its resources.
func (s *System) Shutdown(timeout time.Duration) error {
	if kernel.InPanicMode() {
		return errors.New("watchface panicked; panic screen is up")
	}
	ctx := kernel.NewContext(s.k)
	res := ctx.SendToCapResult(s.inbox, uint16(proto.MsgAppShutdown), nil, kernel.Capability{})
	if res != kernel.SendOK {
		return errors.Errorf("send shutdown: %s", res)
	}
	select {
	case <-s.done:
		return nil
	case <-time.After(timeout):
		return errors.Errorf("watchface did not stop within %s", timeout)
	}
}

// Face returns the watchface task. Its Face is only safe to inspect once Done
// is closed.
func (s *System) Face() *watchface.Task { return s.face }

type doneTask struct {
	t    kernel.Task
	done chan struct{}
}

func (d *doneTask) Run(ctx *kernel.Context) {
	defer close(d.done)
	d.t.Run(ctx)
}
