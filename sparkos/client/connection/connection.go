// Package connection is the client side of the phone link service.
package connection

import (
	"elitewatch/sparkos/client/internal/request"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"

	"github.com/pkg/errors"
)

const PeekTimeout = 500

const retryLimit = 8

var peeker = request.NewPeeker("connection")

// Peek reports whether the phone link is currently up.
func Peek(ctx *kernel.Context, connCap kernel.Capability, timeout uint64) (bool, error) {
	b, err := peeker.Peek(ctx, connCap, proto.MsgConnectionPeek, proto.MsgConnectionState, timeout, func(p []byte) (uint32, bool) {
		id, _, ok := proto.DecodeConnectionStatePayload(p)
		return id, ok
	})
	if err != nil {
		return false, err
	}
	_, up, _ := proto.DecodeConnectionStatePayload(b)
	return up, nil
}

func Subscribe(ctx *kernel.Context, connCap, reply kernel.Capability) error {
	if ctx == nil {
		return errors.New("connection subscribe: nil context")
	}
	res := ctx.SendToCapRetry(connCap, uint16(proto.MsgConnectionSubscribe), nil, reply, retryLimit)
	if res != kernel.SendOK {
		return errors.Errorf("connection subscribe: %s", res)
	}
	return nil
}

func Unsubscribe(ctx *kernel.Context, connCap, reply kernel.Capability) error {
	if ctx == nil {
		return errors.New("connection unsubscribe: nil context")
	}
	res := ctx.SendToCapRetry(connCap, uint16(proto.MsgConnectionUnsubscribe), nil, reply, retryLimit)
	if res != kernel.SendOK && res != kernel.SendErrNoEndpoint {
		return errors.Errorf("connection unsubscribe: %s", res)
	}
	return nil
}
