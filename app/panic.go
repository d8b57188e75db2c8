package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"elitewatch/hal"
	"elitewatch/sparkos/gfx"
	"elitewatch/sparkos/kernel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// installPanicHandler logs a task panic and paints it on the display, then
// halts the panicking task.
func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		if disp := h.Display(); disp != nil {
			if fb := disp.Framebuffer(); fb != nil {
				drawPanic(fb, lines)
			}
		}
		select {}
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"elitewatch panic",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func drawPanic(fb hal.Framebuffer, lines []string) {
	fb.ClearRGB(0, 0, 0x60)
	d := gfx.NewFramebufferDisplay(fb)
	font := &proggy.TinySZ8pt7b
	lineH := int(font.GetYAdvance())
	if lineH <= 0 {
		lineH = 10
	}

	maxW, maxH := fb.Width(), fb.Height()
	y := lineH
	for _, line := range lines {
		for line != "" {
			if y > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := fitWidth(font, line, maxW-4)
			tinyfont.WriteLine(d, font, 2, int16(y), chunk, gfx.ColorWhite)
			y += lineH
			line = rest
		}
	}
	_ = fb.Present()
}

// fitWidth splits s after the longest prefix that fits in w pixels. At least
// one rune is always taken.
func fitWidth(font tinyfont.Fonter, s string, w int) (prefix, rest string) {
	if gfx.TextWidth(font, s) <= w {
		return s, ""
	}
	end := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if end > 0 && gfx.TextWidth(font, s[:i+size]) > w {
			break
		}
		i += size
		end = i
	}
	return s[:end], s[end:]
}
