package app

import (
	"strings"
	"testing"

	"elitewatch/hal"
	"elitewatch/sparkos/gfx"
	"elitewatch/sparkos/kernel"

	"tinygo.org/x/tinyfont/proggy"
)

func TestFitWidthWraps(t *testing.T) {
	font := &proggy.TinySZ8pt7b
	s := strings.Repeat("abcdef ", 20)
	var got []string
	for rest := s; rest != ""; {
		var chunk string
		chunk, rest = fitWidth(font, rest, 60)
		if chunk == "" {
			t.Fatal("fitWidth made no progress")
		}
		if w := gfx.TextWidth(font, chunk); w > 60 && len([]rune(chunk)) > 1 {
			t.Fatalf("chunk %q is %dpx wide", chunk, w)
		}
		got = append(got, chunk)
	}
	if strings.Join(got, "") != s {
		t.Fatal("wrapped text lost characters")
	}
	if len(got) < 2 {
		t.Fatal("long line was not wrapped")
	}
}

func TestPanicLinesAndScreen(t *testing.T) {
	lines := panicLines(kernel.PanicInfo{TaskID: 3, Value: "boom", Stack: []byte("a\n\n  b\n")})
	want := []string{"elitewatch panic", "task: 3", "panic: boom", "stack:", "a", "b"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q", lines)
	}

	fb := hal.NewMemFramebuffer(144, 168)
	drawPanic(fb, lines)
	if fb.Presents != 1 {
		t.Fatalf("presents = %d", fb.Presents)
	}
	white := hal.RGB565(0xFF, 0xFF, 0xFF)
	found := false
	for y := 0; y < 40 && !found; y++ {
		for x := 0; x < 144; x++ {
			if fb.PixelRGB565(x, y) == white {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("no text drawn")
	}
}
