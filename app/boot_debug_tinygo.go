//go:build tinygo && bootdebug

package app

import (
	"machine"

	"elitewatch/hal"
	"elitewatch/sparkos/gfx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// bootStep shows the current boot stage on screen and streams it to USB CDC,
// so a board that hangs early still says where.
func bootStep(h hal.HAL, msg string) {
	line := "boot: " + msg
	if usb := machine.USBCDC; usb != nil {
		_, _ = usb.Write([]byte(line + "\r\n"))
	}
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(line)
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)
	d := gfx.NewFramebufferDisplay(fb)
	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(d, font, 2, 12, "elitewatch boot", gfx.ColorWhite)
	tinyfont.WriteLine(d, font, 2, 28, msg, gfx.ColorOrange)
	_ = fb.Present()
}
