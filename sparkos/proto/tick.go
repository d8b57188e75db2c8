package proto

import (
	"encoding/binary"
	"time"
)

// TimeUnits is a bitmask of calendar units that changed between two ticks.
type TimeUnits uint8

const (
	SecondUnit TimeUnits = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit
)

// ChangedUnits returns the units that differ between prev and now, cascading
// upward: a new minute also reports a new second, a new day a new hour, etc.
// A zero prev reports every unit.
func ChangedUnits(prev, now time.Time) TimeUnits {
	all := SecondUnit | MinuteUnit | HourUnit | DayUnit | MonthUnit | YearUnit
	if prev.IsZero() {
		return all
	}
	var u TimeUnits
	switch {
	case prev.Year() != now.Year():
		u = all
	case prev.Month() != now.Month():
		u = all &^ YearUnit
	case prev.Day() != now.Day():
		u = SecondUnit | MinuteUnit | HourUnit | DayUnit
	case prev.Hour() != now.Hour():
		u = SecondUnit | MinuteUnit | HourUnit
	case prev.Minute() != now.Minute():
		u = SecondUnit | MinuteUnit
	case prev.Second() != now.Second():
		u = SecondUnit
	}
	return u
}

// TickSubscribePayload encodes a MsgTickSubscribe request.
// The reply capability travels in the message Cap field.
//
// Layout:
//   - u8: units mask
func TickSubscribePayload(units TimeUnits) []byte {
	return []byte{byte(units)}
}

// DecodeTickSubscribePayload decodes a TickSubscribePayload.
func DecodeTickSubscribePayload(b []byte) (units TimeUnits, ok bool) {
	if len(b) < 1 {
		return 0, false
	}
	return TimeUnits(b[0]), true
}

// TickPayload encodes a MsgTick notification.
//
// Layout (little-endian):
//   - i64: unix seconds
//   - i32: zone offset seconds east of UTC
//   - u8:  units changed
func TickPayload(now time.Time, units TimeUnits) []byte {
	_, off := now.Zone()
	buf := make([]byte, 13)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(now.Unix()))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(off)))
	buf[12] = byte(units)
	return buf
}

// DecodeTickPayload decodes a TickPayload. The returned time carries a fixed
// zone with the sender's offset, so wall-clock fields match the sender.
func DecodeTickPayload(b []byte) (now time.Time, units TimeUnits, ok bool) {
	if len(b) < 13 {
		return time.Time{}, 0, false
	}
	sec := int64(binary.LittleEndian.Uint64(b[0:8]))
	off := int32(binary.LittleEndian.Uint32(b[8:12]))
	now = time.Unix(sec, 0).In(time.FixedZone("", int(off)))
	return now, TimeUnits(b[12]), true
}
