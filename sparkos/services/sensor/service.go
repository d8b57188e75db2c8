// Package sensor implements the poll-and-notify service shared by the battery
// and connection services.
package sensor

import (
	"elitewatch/sparkos/internal/subs"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
)

// DefaultPollTicks is the sensor polling period in kernel ticks.
const DefaultPollTicks = 250

// Kinds names the message kinds one sensor speaks.
type Kinds struct {
	Subscribe   proto.Kind
	Unsubscribe proto.Kind
	Peek        proto.Kind
	State       proto.Kind
}

// Service polls read and notifies subscribers when the value changes. A new
// subscriber is sent the current value at once. A notification that finds the
// subscriber's queue full is retried on later polls with the value current
// then. Peek requests are answered with a fresh reading.
type Service[T comparable] struct {
	ep     kernel.Capability
	poll   uint64
	kinds  Kinds
	read   func() T
	encode func(requestID uint32, v T) []byte

	subs subs.Table
	last T
	have bool
}

func New[T comparable](
	ep kernel.Capability,
	pollTicks uint64,
	kinds Kinds,
	read func() T,
	encode func(requestID uint32, v T) []byte,
) *Service[T] {
	if pollTicks == 0 {
		pollTicks = DefaultPollTicks
	}
	return &Service[T]{ep: ep, poll: pollTicks, kinds: kinds, read: read, encode: encode}
}

func (s *Service[T]) Run(ctx *kernel.Context) {
	if s.read == nil || s.encode == nil {
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
		s.sample()
		s.flush(ctx)
	}
}

func (s *Service[T]) handle(ctx *kernel.Context, msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case s.kinds.Subscribe:
		// Existing subscribers are flagged for any change first, so the new
		// one is owed exactly the value it is about to get.
		s.sample()
		if !s.subs.Add(msg.Cap, 1) {
			s.replyError(ctx, msg.Cap, proto.Error{Code: proto.ErrOverflow, Ref: s.kinds.Subscribe, Detail: "subscriber table full"})
			return
		}
		s.subs.MarkOne(msg.Cap)

	case s.kinds.Unsubscribe:
		s.subs.Remove(msg.Cap)

	case s.kinds.Peek:
		id, ok := proto.DecodePeekPayload(msg.Payload())
		if !ok {
			s.replyError(ctx, msg.Cap, proto.Error{Code: proto.ErrBadMessage, Ref: s.kinds.Peek, Detail: "missing request id"})
			return
		}
		if !msg.Cap.Valid() {
			return
		}
		_ = ctx.SendToCapResult(msg.Cap, uint16(s.kinds.State), s.encode(id, s.read()), kernel.Capability{})
	}
}

// sample reads the sensor and flags every subscriber when the value changed.
func (s *Service[T]) sample() {
	v := s.read()
	if s.have && v == s.last {
		return
	}
	s.last, s.have = v, true
	s.subs.Mark(1)
}

func (s *Service[T]) flush(ctx *kernel.Context) {
	payload := s.encode(0, s.last)
	s.subs.Flush(func(c kernel.Capability) bool {
		return ctx.SendToCapResult(c, uint16(s.kinds.State), payload, kernel.Capability{}) != kernel.SendErrQueueFull
	})
}

func (s *Service[T]) replyError(ctx *kernel.Context, to kernel.Capability, e proto.Error) {
	if !to.Valid() {
		return
	}
	_ = ctx.SendToCapResult(to, uint16(proto.MsgError), proto.ErrorPayload(e), kernel.Capability{})
}
