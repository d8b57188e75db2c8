// Package logger sends log lines to the logger service.
package logger

import (
	"fmt"

	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"

	"github.com/pkg/errors"
)

// retryLimit bounds how many ticks LogRetry waits for queue space.
const retryLimit = 8

// Log sends one line. It drops the line when the logger queue is full.
func Log(ctx *kernel.Context, logCap kernel.Capability, level proto.LogLevel, line string) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrInvalidFromCap
	}
	return ctx.SendToCapResult(logCap, uint16(proto.MsgLogLine), proto.LogLinePayload(level, line), kernel.Capability{})
}

func Logf(ctx *kernel.Context, logCap kernel.Capability, level proto.LogLevel, format string, args ...any) kernel.SendResult {
	return Log(ctx, logCap, level, fmt.Sprintf(format, args...))
}

// LogRetry sends a line, waiting a tick at a time while the logger queue is
// full.
func LogRetry(ctx *kernel.Context, logCap kernel.Capability, level proto.LogLevel, line string) error {
	if ctx == nil {
		return errors.New("logger retry: nil context")
	}
	payload := proto.LogLinePayload(level, line)
	res := ctx.SendToCapRetry(logCap, uint16(proto.MsgLogLine), payload, kernel.Capability{}, retryLimit)
	if res != kernel.SendOK {
		return errors.Errorf("logger send: %s", res)
	}
	return nil
}
