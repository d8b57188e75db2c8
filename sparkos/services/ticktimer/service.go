// Package ticktimer delivers calendar-unit tick notifications.
//
// The service polls the wall clock every few kernel ticks and, when a second,
// minute, hour, day, month or year boundary has been crossed, sends a MsgTick
// to each subscriber whose unit mask includes one of the changed units.
package ticktimer

import (
	"time"

	"elitewatch/hal"
	"elitewatch/sparkos/internal/subs"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
)

// DefaultPollTicks is the clock polling period in kernel ticks.
const DefaultPollTicks = 100

type Service struct {
	clock hal.Clock
	ep    kernel.Capability
	poll  uint64

	subs subs.Table
	last time.Time
}

func New(clock hal.Clock, ep kernel.Capability, pollTicks uint64) *Service {
	if pollTicks == 0 {
		pollTicks = DefaultPollTicks
	}
	return &Service{clock: clock, ep: ep, poll: pollTicks}
}

func (s *Service) Run(ctx *kernel.Context) {
	if s.clock == nil {
		return
	}
	for {
		msg, res := ctx.RecvWithin(s.ep, s.poll)
		switch res {
		case kernel.RecvClosed:
			return
		case kernel.RecvOK:
			s.handle(ctx, msg)
		}
		s.pollClock(ctx)
	}
}

func (s *Service) handle(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgTickSubscribe:
		units, ok := proto.DecodeTickSubscribePayload(msg.Payload())
		if !ok || !msg.Cap.Valid() {
			s.replyError(ctx, msg.Cap, proto.Error{Code: proto.ErrBadMessage, Ref: proto.MsgTickSubscribe, Detail: "missing units mask"})
			return
		}
		if !s.subs.Add(msg.Cap, uint8(units)) {
			s.replyError(ctx, msg.Cap, proto.Error{Code: proto.ErrOverflow, Ref: proto.MsgTickSubscribe, Detail: "subscriber table full"})
		}

	case proto.MsgTickUnsubscribe:
		s.subs.Remove(msg.Cap)
	}
}

func (s *Service) pollClock(ctx *kernel.Context) {
	now := s.clock.Now().Truncate(time.Second)
	if s.last.IsZero() {
		s.last = now
		return
	}
	units := proto.ChangedUnits(s.last, now)
	if units == 0 {
		return
	}
	s.last = now

	payload := proto.TickPayload(now, units)
	s.subs.Each(uint8(units), func(c kernel.Capability) {
		_ = ctx.SendToCapResult(c, uint16(proto.MsgTick), payload, kernel.Capability{})
	})
}

func (s *Service) replyError(ctx *kernel.Context, to kernel.Capability, e proto.Error) {
	if !to.Valid() {
		return
	}
	_ = ctx.SendToCapResult(to, uint16(proto.MsgError), proto.ErrorPayload(e), kernel.Capability{})
}
