//go:build !tinygo && !cgo

package hal

func (h *hostHAL) pollSimulator() {
	// No key input without the window backend.
}
