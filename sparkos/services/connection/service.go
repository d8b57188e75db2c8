// Package connection serves phone-link peeks and change notifications.
package connection

import (
	"elitewatch/hal"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
	"elitewatch/sparkos/services/sensor"
)

func New(c hal.Connection, ep kernel.Capability, pollTicks uint64) *sensor.Service[bool] {
	return sensor.New(ep, pollTicks, sensor.Kinds{
		Subscribe:   proto.MsgConnectionSubscribe,
		Unsubscribe: proto.MsgConnectionUnsubscribe,
		Peek:        proto.MsgConnectionPeek,
		State:       proto.MsgConnectionState,
	}, c.Connected, proto.ConnectionStatePayload)
}
