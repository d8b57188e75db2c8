package proto

import (
	"strings"
	"unicode/utf8"
)

// LogLevel is the severity carried in a MsgLogLine payload.
type LogLevel uint8

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// MaxLogText is the longest log text that fits a message after the level byte.
const MaxLogText = 127

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel accepts the names String returns, plus "warning".
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LogDebug, true
	case "info", "":
		return LogInfo, true
	case "warn", "warning":
		return LogWarn, true
	case "error":
		return LogError, true
	}
	return LogInfo, false
}

// LogLinePayload encodes a MsgLogLine: u8 level, then UTF-8 text without a
// trailing newline, cut to MaxLogText bytes on a rune boundary.
func LogLinePayload(level LogLevel, line string) []byte {
	line = strings.TrimRight(line, "\r\n")
	if len(line) > MaxLogText {
		cut := MaxLogText
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		line = line[:cut]
	}
	b := make([]byte, 0, 1+len(line))
	b = append(b, byte(level))
	return append(b, line...)
}

func DecodeLogLinePayload(b []byte) (level LogLevel, line string, ok bool) {
	if len(b) < 1 {
		return 0, "", false
	}
	return LogLevel(b[0]), string(b[1:]), true
}
