package kernel

import "sync"

// PanicInfo describes a task that panicked.
type PanicInfo struct {
	TaskID TaskID
	Value  any
	Stack  []byte
}

var panics struct {
	mu      sync.Mutex
	handler func(PanicInfo)
	fired   bool
}

// SetPanicHandler installs the process-wide handler for task panics. Only the
// first panic reaches it; later ones just end their task. With no handler the
// panic is re-raised on the task goroutine.
func SetPanicHandler(fn func(PanicInfo)) {
	panics.mu.Lock()
	panics.handler = fn
	panics.mu.Unlock()
}

// InPanicMode reports whether the panic handler has fired.
func InPanicMode() bool {
	panics.mu.Lock()
	defer panics.mu.Unlock()
	return panics.fired
}

func triggerPanic(info PanicInfo) {
	panics.mu.Lock()
	fn, fired := panics.handler, panics.fired
	if fn != nil {
		panics.fired = true
	}
	panics.mu.Unlock()

	switch {
	case fn == nil:
		panic(info.Value)
	case fired:
		return
	}
	info.Stack = captureStack()
	fn(info)
}
