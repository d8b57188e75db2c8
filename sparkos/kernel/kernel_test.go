package kernel

import (
	"testing"
	"time"
)

const testTimeout = 200 * time.Millisecond

func TestMessagePayloadClampsLen(t *testing.T) {
	var msg Message
	msg.Len = MaxMessageBytes + 10
	if got := len(msg.Payload()); got != MaxMessageBytes {
		t.Fatalf("expected payload length %d, got %d", MaxMessageBytes, got)
	}
}

func TestCapabilityRestrict(t *testing.T) {
	k := New()
	c := k.NewEndpoint(RightSend | RightRecv)

	send := c.Restrict(RightSend)
	if !send.canSend() || send.canRecv() {
		t.Fatal("expected send-only capability")
	}
	if got := send.Restrict(RightRecv); got.Valid() {
		t.Fatal("restricting to a missing right must invalidate")
	}
	if !send.SameEndpoint(c.Restrict(RightRecv)) {
		t.Fatal("restricted capabilities should name the same endpoint")
	}
}

func TestSendRights(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)

	tests := []struct {
		name string
		to   Capability
		want SendResult
	}{
		{"invalid", Capability{}, SendErrInvalidToCap},
		{"recv only", ep.Restrict(RightRecv), SendErrToNoSendRight},
		{"ok", ep.Restrict(RightSend), SendOK},
	}
	for _, tt := range tests {
		if got := ctx.SendToCapResult(tt.to, 1, nil, Capability{}); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}

	big := make([]byte, MaxMessageBytes+1)
	if got := ctx.SendToCapResult(ep, 1, big, Capability{}); got != SendErrPayloadTooLarge {
		t.Errorf("oversized payload: got %s", got)
	}
}

func TestSendTransfersCapability(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	reply := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)

	if res := ctx.SendToCapResult(ep, 7, []byte("hi"), reply.Restrict(RightSend)); res != SendOK {
		t.Fatalf("send: %s", res)
	}
	msg, ok := ctx.TryRecv(ep)
	if !ok {
		t.Fatal("expected message")
	}
	if msg.Kind != 7 || string(msg.Payload()) != "hi" {
		t.Fatalf("got kind=%d payload=%q", msg.Kind, msg.Payload())
	}
	if !msg.Cap.SameEndpoint(reply) || msg.Cap.canRecv() {
		t.Fatal("expected send-only reply capability")
	}
}

func TestClosedEndpoint(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)

	if !ctx.CloseEndpoint(ep) {
		t.Fatal("expected close to succeed")
	}
	if ctx.CloseEndpoint(ep) {
		t.Fatal("expected second close to fail")
	}
	if _, ok := ctx.Recv(ep); ok {
		t.Fatal("expected Recv to fail after close")
	}
	if _, ok := ctx.TryRecv(ep); ok {
		t.Fatal("expected TryRecv to fail after close")
	}
	if res := ctx.SendToCapResult(ep, 1, nil, Capability{}); res != SendErrNoEndpoint {
		t.Fatalf("expected SendErrNoEndpoint, got %s", res)
	}
}

func TestSendToCapRetryZeroLimitDoesNotBlock(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)
	to := ep.Restrict(RightSend)

	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}

	if res := ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 0); res != SendErrQueueFull {
		t.Fatalf("expected SendErrQueueFull, got %s", res)
	}
}

func TestSendToCapRetrySucceedsAfterDrain(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)
	to := ep.Restrict(RightSend)

	for i := 0; i < mailboxSlots; i++ {
		_ = ctx.SendToCapResult(to, 1, []byte("x"), Capability{})
	}

	resultCh := make(chan SendResult, 1)
	go func() {
		resultCh <- ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 5)
	}()

	if _, ok := ctx.Recv(ep); !ok {
		t.Fatal("expected queued message")
	}
	go func() {
		for i := uint64(1); i <= 10; i++ {
			k.TickTo(i)
			time.Sleep(1 * time.Millisecond)
		}
	}()

	select {
	case res := <-resultCh:
		if res != SendOK {
			t.Fatalf("expected SendOK after drain, got %s", res)
		}
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for send retry")
	}
}

func TestRecvWithinTimesOut(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)

	done := make(chan RecvResult, 1)
	go func() {
		_, res := ctx.RecvWithin(ep, 3)
		done <- res
	}()
	go func() {
		for i := uint64(1); i <= 30; i++ {
			k.TickTo(i)
			time.Sleep(1 * time.Millisecond)
		}
	}()

	select {
	case res := <-done:
		if res != RecvTimeout {
			t.Fatalf("expected RecvTimeout, got %d", res)
		}
	case <-time.After(testTimeout):
		t.Fatal("RecvWithin did not return")
	}
}

func TestTickToIgnoresStaleValues(t *testing.T) {
	k := New()
	k.TickTo(5)
	k.TickTo(3)
	if got := k.nowTick(); got != 5 {
		t.Fatalf("nowTick() = %d, want 5", got)
	}
	if got := k.waitTick(4); got != 5 {
		t.Fatalf("waitTick(4) = %d, want 5", got)
	}
}

type funcTask func(*Context)

func (f funcTask) Run(ctx *Context) { f(ctx) }

func TestAddTaskRunsAndWaits(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)

	got := make(chan uint16, 1)
	ids := make(chan TaskID, 1)
	id := k.AddTask(funcTask(func(ctx *Context) {
		ids <- ctx.TaskID()
		msg, ok := ctx.Recv(ep.Restrict(RightRecv))
		if ok {
			got <- msg.Kind
		}
	}))

	NewContext(k).SendTo(ep.Restrict(RightSend), 42, nil)
	k.Wait()

	select {
	case kind := <-got:
		if kind != 42 {
			t.Fatalf("kind = %d, want 42", kind)
		}
	default:
		t.Fatal("task did not receive")
	}
	if ctxID := <-ids; ctxID != id {
		t.Fatalf("ctx.TaskID() = %d, AddTask returned %d", ctxID, id)
	}
}

func TestRecvWithinReportsClose(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)
	ctx.CloseEndpoint(ep)

	if _, res := ctx.RecvWithin(ep, 10); res != RecvClosed {
		t.Fatalf("expected RecvClosed, got %d", res)
	}
}

func TestWaitTickReturnsNewTick(t *testing.T) {
	k := New()
	ctx := NewContext(k)

	got := make(chan uint64, 1)
	go func() { got <- ctx.WaitTick(0) }()
	k.TickTo(7)

	select {
	case tick := <-got:
		if tick != 7 {
			t.Fatalf("WaitTick(0) = %d, want 7", tick)
		}
	case <-time.After(testTimeout):
		t.Fatal("WaitTick did not wake")
	}
}

func TestReplyEndpointIsPerContext(t *testing.T) {
	k := New()
	a, b := NewContext(k), NewContext(k)

	ra := a.ReplyEndpoint()
	if !ra.Valid() || !ra.SameEndpoint(a.ReplyEndpoint()) {
		t.Fatal("reply endpoint should be allocated once per context")
	}
	if ra.SameEndpoint(b.ReplyEndpoint()) {
		t.Fatal("contexts share a reply endpoint")
	}
}
