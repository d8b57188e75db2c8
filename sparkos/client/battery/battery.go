// Package battery is the client side of the battery service.
package battery

import (
	"elitewatch/sparkos/client/internal/request"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"

	"github.com/pkg/errors"
)

// PeekTimeout is the default peek deadline in kernel ticks.
const PeekTimeout = 500

const retryLimit = 8

var peeker = request.NewPeeker("battery")

// Peek returns the current charge state.
func Peek(ctx *kernel.Context, batCap kernel.Capability, timeout uint64) (proto.BatteryState, error) {
	b, err := peeker.Peek(ctx, batCap, proto.MsgBatteryPeek, proto.MsgBatteryState, timeout, func(p []byte) (uint32, bool) {
		id, _, ok := proto.DecodeBatteryStatePayload(p)
		return id, ok
	})
	if err != nil {
		return proto.BatteryState{}, err
	}
	_, st, _ := proto.DecodeBatteryStatePayload(b)
	return st, nil
}

// Subscribe asks the battery service to send MsgBatteryState to reply on
// every change, starting with the current state.
func Subscribe(ctx *kernel.Context, batCap, reply kernel.Capability) error {
	if ctx == nil {
		return errors.New("battery subscribe: nil context")
	}
	res := ctx.SendToCapRetry(batCap, uint16(proto.MsgBatterySubscribe), nil, reply, retryLimit)
	if res != kernel.SendOK {
		return errors.Errorf("battery subscribe: %s", res)
	}
	return nil
}

// Unsubscribe removes reply from the battery service.
func Unsubscribe(ctx *kernel.Context, batCap, reply kernel.Capability) error {
	if ctx == nil {
		return errors.New("battery unsubscribe: nil context")
	}
	res := ctx.SendToCapRetry(batCap, uint16(proto.MsgBatteryUnsubscribe), nil, reply, retryLimit)
	if res != kernel.SendOK && res != kernel.SendErrNoEndpoint {
		return errors.Errorf("battery unsubscribe: %s", res)
	}
	return nil
}
