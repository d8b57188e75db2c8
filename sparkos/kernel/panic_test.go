package kernel

import (
	"testing"
	"time"
)

func TestPanicHandlerFiresOnce(t *testing.T) {
	got := make(chan PanicInfo, 2)
	SetPanicHandler(func(info PanicInfo) { got <- info })
	defer SetPanicHandler(nil)

	k := New()
	id := k.AddTask(funcTask(func(*Context) { panic("first") }))

	select {
	case info := <-got:
		if info.TaskID != id || info.Value != "first" {
			t.Fatalf("info = %+v", info)
		}
		if len(info.Stack) == 0 {
			t.Fatal("stack not captured")
		}
	case <-time.After(testTimeout):
		t.Fatal("panic handler not called")
	}
	if !InPanicMode() {
		t.Fatal("InPanicMode() = false after a panic")
	}

	k.AddTask(funcTask(func(*Context) { panic("second") }))
	k.Wait()
	select {
	case info := <-got:
		t.Fatalf("handler called again with %v", info.Value)
	default:
	}
}
