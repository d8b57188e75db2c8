package proto

import (
	"encoding/binary"
	"fmt"
)

// Error is the body of a MsgError reply. It satisfies the error interface so
// clients can return it as is.
type Error struct {
	Code ErrCode
	// Ref is the request kind that failed.
	Ref    Kind
	Detail string
}

func (e Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Ref, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Ref, e.Code, e.Detail)
}

// ErrorPayload encodes e as u16 code, u16 ref kind, then the detail text.
// Detail is cut so the payload stays within a message.
func ErrorPayload(e Error) []byte {
	detail := e.Detail
	if len(detail) > MaxLogText-4 {
		detail = detail[:MaxLogText-4]
	}
	buf := make([]byte, 4+len(detail))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(e.Code))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(e.Ref))
	copy(buf[4:], detail)
	return buf
}

func DecodeErrorPayload(payload []byte) (Error, bool) {
	if len(payload) < 4 {
		return Error{}, false
	}
	return Error{
		Code:   ErrCode(binary.LittleEndian.Uint16(payload[0:2])),
		Ref:    Kind(binary.LittleEndian.Uint16(payload[2:4])),
		Detail: string(payload[4:]),
	}, true
}
