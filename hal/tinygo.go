//go:build tinygo && baremetal && !pinetime

package hal

import "machine"

type tinyGoHAL struct {
	logger *serialLogger
	fb     Framebuffer
	t      *tinyGoTime
}

// New returns a HAL for boards without a supported panel or fuel gauge.
//
// Logging goes to machine.Serial; display and sensors are stubs.
func New() HAL {
	return &tinyGoHAL{
		logger: &serialLogger{out: machine.Serial},
		fb:     newNullPanel(240, 240),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) Display() Display       { return tinyGoDisplay{fb: h.fb, shape: ShapeRect} }
func (h *tinyGoHAL) Time() Time             { return h.t }
func (h *tinyGoHAL) Clock() Clock           { return tinyGoClock{} }
func (h *tinyGoHAL) Battery() Battery       { return fixedBattery{Percent: 100, Plugged: true} }
func (h *tinyGoHAL) Connection() Connection { return noConnection{} }
