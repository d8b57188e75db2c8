package battery

import (
	"sync"
	"testing"
	"time"

	"elitewatch/hal"
	"elitewatch/sparkos/client/internal/request"
	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"
	batterysvc "elitewatch/sparkos/services/battery"

	"github.com/pkg/errors"
)

type fixedBattery hal.BatteryChargeState

func (b fixedBattery) ChargeState() hal.BatteryChargeState { return hal.BatteryChargeState(b) }

// ticker advances the kernel clock until stopped.
func ticker(k *kernel.Kernel) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var seq uint64
		for {
			select {
			case <-done:
				return
			case <-time.After(time.Millisecond):
				seq++
				k.TickTo(seq)
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}

func TestPeekRoundTrip(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(batterysvc.New(fixedBattery{Percent: 64, Plugged: true}, ep.Restrict(kernel.RightRecv), 10))
	stop := ticker(k)
	defer stop()

	ctx := kernel.NewContext(k)
	for i := 0; i < 2; i++ {
		st, err := Peek(ctx, ep.Restrict(kernel.RightSend), PeekTimeout)
		if err != nil {
			t.Fatalf("Peek #%d: %v", i, err)
		}
		if want := (proto.BatteryState{Percent: 64, Plugged: true}); st != want {
			t.Fatalf("Peek #%d = %+v, want %+v", i, st, want)
		}
	}

	k.CloseEndpoint(ep)
	k.Wait()
}

func TestPeekTimesOutWithoutService(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	stop := ticker(k)
	defer stop()

	_, err := Peek(kernel.NewContext(k), ep.Restrict(kernel.RightSend), 5)
	if !errors.Is(err, request.ErrTimeout) {
		t.Fatalf("err = %v, want timeout", err)
	}
}

func TestPeekAcrossKernelsLeavesOtherInboxesAlone(t *testing.T) {
	first := kernel.New()
	firstEP := first.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	first.AddTask(batterysvc.New(fixedBattery{Percent: 30}, firstEP.Restrict(kernel.RightRecv), 10))
	stopFirst := ticker(first)
	if _, err := Peek(kernel.NewContext(first), firstEP.Restrict(kernel.RightSend), PeekTimeout); err != nil {
		t.Fatalf("first kernel: %v", err)
	}
	stopFirst()
	first.CloseEndpoint(firstEP)
	first.Wait()

	// The second kernel hands out the same endpoint numbers, and endpoint 1
	// is another task's inbox with a message waiting.
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	inbox := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := kernel.NewContext(k)
	if res := ctx.SendToCapResult(inbox, uint16(proto.MsgTick), nil, kernel.Capability{}); res != kernel.SendOK {
		t.Fatalf("queue tick: %s", res)
	}
	k.AddTask(batterysvc.New(fixedBattery{Percent: 64}, ep.Restrict(kernel.RightRecv), 10))
	stop := ticker(k)
	defer stop()

	st, err := Peek(kernel.NewContext(k), ep.Restrict(kernel.RightSend), PeekTimeout)
	if err != nil || st.Percent != 64 {
		t.Fatalf("second kernel Peek = %+v, %v; want 64%%", st, err)
	}
	msg, ok := ctx.TryRecv(inbox)
	if !ok || proto.Kind(msg.Kind) != proto.MsgTick {
		t.Fatal("queued tick was taken from the other inbox")
	}

	k.CloseEndpoint(ep)
	k.Wait()
}
