// Package battery serves charge-state peeks and change notifications.
package battery

import (
	"elitewatch/hal"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
	"elitewatch/sparkos/services/sensor"
)

var kinds = sensor.Kinds{
	Subscribe:   proto.MsgBatterySubscribe,
	Unsubscribe: proto.MsgBatteryUnsubscribe,
	Peek:        proto.MsgBatteryPeek,
	State:       proto.MsgBatteryState,
}

func New(b hal.Battery, ep kernel.Capability, pollTicks uint64) *sensor.Service[hal.BatteryChargeState] {
	return sensor.New(ep, pollTicks, kinds, b.ChargeState, encode)
}

func encode(requestID uint32, st hal.BatteryChargeState) []byte {
	return proto.BatteryStatePayload(requestID, proto.BatteryState(st))
}
