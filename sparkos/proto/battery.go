package proto

import "encoding/binary"

const (
	batteryFlagCharging = 1 << iota
	batteryFlagPlugged
)

// BatteryState mirrors hal.BatteryChargeState on the wire.
type BatteryState struct {
	Percent  uint8
	Charging bool
	Plugged  bool
}

// PeekPayload encodes a MsgBatteryPeek or MsgConnectionPeek request.
//
// Layout (little-endian):
//   - u32: requestID
func PeekPayload(requestID uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, requestID)
	return buf
}

// DecodePeekPayload decodes a PeekPayload.
func DecodePeekPayload(b []byte) (requestID uint32, ok bool) {
	if len(b) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// BatteryStatePayload encodes a MsgBatteryState message.
// requestID is 0 for change notifications.
//
// Layout (little-endian):
//   - u32: requestID
//   - u8:  percent
//   - u8:  flags (bit0 charging, bit1 plugged)
func BatteryStatePayload(requestID uint32, st BatteryState) []byte {
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	buf[4] = st.Percent
	if st.Charging {
		buf[5] |= batteryFlagCharging
	}
	if st.Plugged {
		buf[5] |= batteryFlagPlugged
	}
	return buf
}

// DecodeBatteryStatePayload decodes a BatteryStatePayload.
func DecodeBatteryStatePayload(b []byte) (requestID uint32, st BatteryState, ok bool) {
	if len(b) < 6 {
		return 0, BatteryState{}, false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	st = BatteryState{
		Percent:  b[4],
		Charging: b[5]&batteryFlagCharging != 0,
		Plugged:  b[5]&batteryFlagPlugged != 0,
	}
	return requestID, st, true
}
