package logger

import (
	"sync"
	"testing"
	"time"

	"elitewatch/hal"
	logclient "elitewatch/sparkos/client/logger"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
)

const testTimeout = 1 * time.Second

type lineSink struct {
	mu    sync.Mutex
	lines []string
	seen  chan struct{}
}

func newLineSink() *lineSink { return &lineSink{seen: make(chan struct{}, 16)} }

func (l *lineSink) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
	l.seen <- struct{}{}
}

func (l *lineSink) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

type levelSink struct {
	*lineSink
}

func (l levelSink) WriteLevelLine(level, s string) { l.WriteLineString(level + "|" + s) }

func startLogger(t *testing.T, sink hal.Logger, min proto.LogLevel) (*kernel.Context, kernel.Capability) {
	t.Helper()
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(New(sink, ep.Restrict(kernel.RightRecv), min))
	return kernel.NewContext(k), ep.Restrict(kernel.RightSend)
}

func waitLines(t *testing.T, sink *lineSink, n int) []string {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-sink.seen:
		case <-time.After(testTimeout):
			t.Fatalf("got %d lines, want %d", i, n)
		}
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	return append([]string(nil), sink.lines...)
}

func TestFiltersAndPrefixes(t *testing.T) {
	sink := newLineSink()
	ctx, logCap := startLogger(t, sink, proto.LogInfo)

	logclient.Log(ctx, logCap, proto.LogDebug, "dropped")
	logclient.Log(ctx, logCap, proto.LogInfo, "started")
	logclient.Logf(ctx, logCap, proto.LogWarn, "battery %d%%", 5)

	got := waitLines(t, sink, 2)
	want := []string{"started", "warn: battery 5%"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestLevelLoggerKeepsSeverity(t *testing.T) {
	sink := newLineSink()
	ctx, logCap := startLogger(t, levelSink{sink}, proto.LogDebug)

	if err := logclient.LogRetry(ctx, logCap, proto.LogError, "leaked window"); err != nil {
		t.Fatal(err)
	}
	if got := waitLines(t, sink, 1); got[0] != "error|leaked window" {
		t.Fatalf("line = %q", got[0])
	}
}
