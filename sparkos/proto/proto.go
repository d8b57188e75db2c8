package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgError
	MsgAppShutdown
	MsgTickSubscribe
	MsgTickUnsubscribe
	MsgTick
	MsgBatterySubscribe
	MsgBatteryUnsubscribe
	MsgBatteryPeek
	MsgBatteryState
	MsgConnectionSubscribe
	MsgConnectionUnsubscribe
	MsgConnectionPeek
	MsgConnectionState
)

// ErrCode is a generic error category for MsgError responses.
type ErrCode uint16

const (
	ErrUnknown ErrCode = iota
	ErrBadMessage
	ErrNotFound
	ErrOverflow
	ErrInternal
)

func (c ErrCode) String() string {
	switch c {
	case ErrUnknown:
		return "unknown"
	case ErrBadMessage:
		return "bad_message"
	case ErrNotFound:
		return "not_found"
	case ErrOverflow:
		return "overflow"
	case ErrInternal:
		return "internal"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgError:
		return "error"
	case MsgAppShutdown:
		return "app_shutdown"
	case MsgTickSubscribe:
		return "tick_subscribe"
	case MsgTickUnsubscribe:
		return "tick_unsubscribe"
	case MsgTick:
		return "tick"
	case MsgBatterySubscribe:
		return "battery_subscribe"
	case MsgBatteryUnsubscribe:
		return "battery_unsubscribe"
	case MsgBatteryPeek:
		return "battery_peek"
	case MsgBatteryState:
		return "battery_state"
	case MsgConnectionSubscribe:
		return "connection_subscribe"
	case MsgConnectionUnsubscribe:
		return "connection_unsubscribe"
	case MsgConnectionPeek:
		return "connection_peek"
	case MsgConnectionState:
		return "connection_state"
	default:
		return "unknown"
	}
}
