// Package ticktimer is the client side of the tick timer service.
package ticktimer

import (
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"

	"github.com/pkg/errors"
)

const retryLimit = 8

// Subscribe asks the tick timer to send MsgTick to reply whenever one of units
// changes.
func Subscribe(ctx *kernel.Context, timerCap, reply kernel.Capability, units proto.TimeUnits) error {
	if ctx == nil {
		return errors.New("tick subscribe: nil context")
	}
	if units == 0 {
		return errors.New("tick subscribe: empty unit mask")
	}
	res := ctx.SendToCapRetry(timerCap, uint16(proto.MsgTickSubscribe), proto.TickSubscribePayload(units), reply, retryLimit)
	if res != kernel.SendOK {
		return errors.Errorf("tick subscribe: %s", res)
	}
	return nil
}

// Unsubscribe removes reply from the tick timer.
func Unsubscribe(ctx *kernel.Context, timerCap, reply kernel.Capability) error {
	if ctx == nil {
		return errors.New("tick unsubscribe: nil context")
	}
	res := ctx.SendToCapRetry(timerCap, uint16(proto.MsgTickUnsubscribe), nil, reply, retryLimit)
	if res != kernel.SendOK && res != kernel.SendErrNoEndpoint {
		return errors.Errorf("tick unsubscribe: %s", res)
	}
	return nil
}
