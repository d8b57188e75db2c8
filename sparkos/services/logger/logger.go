// Package logger drains MsgLogLine messages into the HAL logger.
package logger

import (
	"elitewatch/hal"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
)

type Service struct {
	log hal.Logger
	ep  kernel.Capability
	min proto.LogLevel
}

// New returns a logger service that drops lines below min.
func New(log hal.Logger, ep kernel.Capability, min proto.LogLevel) *Service {
	return &Service{log: log, ep: ep, min: min}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}
	for msg := range ch {
		if s.log == nil || proto.Kind(msg.Kind) != proto.MsgLogLine {
			continue
		}
		level, line, ok := proto.DecodeLogLinePayload(msg.Payload())
		if !ok || level < s.min {
			continue
		}
		s.write(level, line)
	}
}

func (s *Service) write(level proto.LogLevel, line string) {
	if ll, ok := s.log.(hal.LevelLogger); ok {
		ll.WriteLevelLine(level.String(), line)
		return
	}
	if level != proto.LogInfo {
		line = level.String() + ": " + line
	}
	s.log.WriteLineString(line)
}
