//go:build !tinygo

package kernel

import "runtime"

// maxStackBytes bounds what the panic screen and logger are handed.
const maxStackBytes = 4096

// captureStack returns the calling goroutine's stack only.
func captureStack() []byte {
	buf := make([]byte, maxStackBytes)
	return buf[:runtime.Stack(buf, false)]
}
