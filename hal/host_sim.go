//go:build !tinygo && cgo

package hal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const simBatteryStep = 5

// pollSimulator maps window keys onto the simulated sensors.
//
//	Up/Down: charge +/- 5%
//	B:       toggle the phone link
func (h *hostHAL) pollSimulator() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		st := h.bat.adjust(simBatteryStep)
		h.logger.WriteLineString(fmt.Sprintf("sim: battery %d%%", st.Percent))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		st := h.bat.adjust(-simBatteryStep)
		h.logger.WriteLineString(fmt.Sprintf("sim: battery %d%%", st.Percent))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if h.conn.toggle() {
			h.logger.WriteLineString("sim: phone connected")
		} else {
			h.logger.WriteLineString("sim: phone disconnected")
		}
	}
}
