package watchface

import (
	"sync"

	"elitewatch/hal"
	batteryclient "elitewatch/sparkos/client/battery"
	connclient "elitewatch/sparkos/client/connection"
	logclient "elitewatch/sparkos/client/logger"
	tickclient "elitewatch/sparkos/client/ticktimer"
	"elitewatch/sparkos/gfx"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
	"elitewatch/sparkos/ui"
)

// Caps are the endpoints the watchface talks to. Inbox needs both rights.
type Caps struct {
	Inbox      kernel.Capability
	Log        kernel.Capability
	TickTimer  kernel.Capability
	Battery    kernel.Capability
	Connection kernel.Capability
}

type Config struct {
	Monochrome bool

	// Clock24h overrides the clock's own style when set.
	Clock24h *bool

	// PeekTimeout bounds the startup battery and connection peeks, in ticks.
	PeekTimeout uint64
}

type Task struct {
	disp  hal.Display
	clock hal.Clock
	caps  Caps
	cfg   Config

	face  *Face
	stack *ui.WindowStack

	// started is closed once OnStart has run and the subscriptions are in
	// place, or when Run returns early.
	started     chan struct{}
	startedOnce sync.Once
}

func New(disp hal.Display, clock hal.Clock, caps Caps, cfg Config) *Task {
	if cfg.PeekTimeout == 0 {
		cfg.PeekTimeout = batteryclient.PeekTimeout
	}
	return &Task{disp: disp, clock: clock, caps: caps, cfg: cfg, started: make(chan struct{})}
}

// Face returns the running face. It is only safe to inspect after Run returns.
func (t *Task) Face() *Face { return t.face }

// Started is closed once the face is on screen and subscribed. It is also
// closed when the task cannot start, in which case Face may be nil.
func (t *Task) Started() <-chan struct{} { return t.started }

func (t *Task) markStarted() { t.startedOnce.Do(func() { close(t.started) }) }

func (t *Task) Run(ctx *kernel.Context) {
	defer t.markStarted()
	ch, ok := ctx.RecvChan(t.caps.Inbox)
	if !ok {
		return
	}
	if t.disp == nil || t.clock == nil {
		return
	}
	fb := t.disp.Framebuffer()
	if fb == nil {
		return
	}

	is24h := t.clock.Is24Hour()
	if t.cfg.Clock24h != nil {
		is24h = *t.cfg.Clock24h
	}
	t.stack = ui.NewWindowStack(gfx.NewFramebufferDisplay(fb))
	t.face = NewFace(t.stack, ProfileFor(t.disp.Shape(), t.cfg.Monochrome), is24h)

	st := StartState{Now: t.clock.Now()}
	if bat, err := batteryclient.Peek(ctx, t.caps.Battery, t.cfg.PeekTimeout); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	} else {
		st.Battery = bat
	}
	if up, err := connclient.Peek(ctx, t.caps.Connection, t.cfg.PeekTimeout); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	} else {
		st.Connected = up
	}

	if err := t.face.OnStart(st); err != nil {
		t.logf(ctx, proto.LogError, "watchface: start: %v", err)
		return
	}
	t.render(ctx)

	reply := t.caps.Inbox.Restrict(kernel.RightSend)
	if err := tickclient.Subscribe(ctx, t.caps.TickTimer, reply, proto.MinuteUnit); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
	if err := batteryclient.Subscribe(ctx, t.caps.Battery, reply); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
	if err := connclient.Subscribe(ctx, t.caps.Connection, reply); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
	t.markStarted()
	t.logf(ctx, proto.LogDebug, "watchface: up, battery %d%%, link %v", st.Battery.Percent, st.Connected)

	for msg := range ch {
		if proto.Kind(msg.Kind) == proto.MsgAppShutdown {
			t.shutdown(ctx, reply)
			return
		}
		t.dispatch(ctx, msg)
		t.render(ctx)
	}
	t.shutdown(ctx, reply)
}

// dispatch hands one message to its handler.
func (t *Task) dispatch(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgTick:
		now, units, ok := proto.DecodeTickPayload(msg.Payload())
		if !ok {
			return
		}
		t.face.OnTick(now, units)

	case proto.MsgBatteryState:
		_, st, ok := proto.DecodeBatteryStatePayload(msg.Payload())
		if !ok {
			return
		}
		t.face.OnBatteryChange(st)

	case proto.MsgConnectionState:
		_, up, ok := proto.DecodeConnectionStatePayload(msg.Payload())
		if !ok {
			return
		}
		t.face.OnConnectionChange(up)

	case proto.MsgError:
		e, ok := proto.DecodeErrorPayload(msg.Payload())
		if !ok {
			return
		}
		t.logf(ctx, proto.LogWarn, "watchface: %v", e)
	}
}

func (t *Task) render(ctx *kernel.Context) {
	if _, err := t.stack.Render(); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
}

func (t *Task) shutdown(ctx *kernel.Context, reply kernel.Capability) {
	if err := batteryclient.Unsubscribe(ctx, t.caps.Battery, reply); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
	if err := tickclient.Unsubscribe(ctx, t.caps.TickTimer, reply); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
	if err := connclient.Unsubscribe(ctx, t.caps.Connection, reply); err != nil {
		t.logf(ctx, proto.LogWarn, "watchface: %v", err)
	}
	if err := t.face.OnStop(); err != nil {
		t.logf(ctx, proto.LogError, "watchface: stop: %v", err)
	}
	for _, leak := range t.face.Ledger().Leaks() {
		t.logf(ctx, proto.LogError, "watchface: leaked %s", leak)
	}
}

func (t *Task) logf(ctx *kernel.Context, level proto.LogLevel, format string, args ...any) {
	if !t.caps.Log.Valid() {
		return
	}
	_ = logclient.Logf(ctx, t.caps.Log, level, format, args...)
}
