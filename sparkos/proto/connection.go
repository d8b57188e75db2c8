package proto

import "encoding/binary"

// ConnectionStatePayload encodes a MsgConnectionState message.
// requestID is 0 for change notifications.
//
// Layout (little-endian):
//   - u32: requestID
//   - u8:  connected (0/1)
func ConnectionStatePayload(requestID uint32, connected bool) []byte {
	buf := make([]byte, 5)
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	if connected {
		buf[4] = 1
	}
	return buf
}

// DecodeConnectionStatePayload decodes a ConnectionStatePayload.
func DecodeConnectionStatePayload(b []byte) (requestID uint32, connected bool, ok bool) {
	if len(b) < 5 {
		return 0, false, false
	}
	return binary.LittleEndian.Uint32(b[0:4]), b[4] != 0, true
}
