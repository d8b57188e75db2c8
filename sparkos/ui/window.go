package ui

import (
	"image/color"

	"elitewatch/sparkos/gfx"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
)

// WindowHandlers run when a window enters or leaves the stack.
type WindowHandlers struct {
	Load   func(w *Window)
	Unload func(w *Window)
}

// Window owns a root layer sized to the display.
type Window struct {
	root     *Layer
	bg       color.RGBA
	handlers WindowHandlers
	loaded   bool
	dirty    bool
}

func NewWindow() *Window {
	w := &Window{bg: gfx.ColorWhite}
	w.root = NewLayer(gfx.Rect{})
	w.root.window = w
	return w
}

func (w *Window) RootLayer() *Layer { return w.root }

func (w *Window) SetHandlers(h WindowHandlers) { w.handlers = h }

func (w *Window) SetBackgroundColor(c color.RGBA) {
	w.bg = c
	w.dirty = true
}

func (w *Window) Loaded() bool { return w.loaded }
func (w *Window) Dirty() bool  { return w.dirty }

// WindowStack shows the topmost pushed window on a display.
type WindowStack struct {
	d       drivers.Displayer
	windows []*Window
	renders int
}

func NewWindowStack(d drivers.Displayer) *WindowStack {
	return &WindowStack{d: d}
}

// Push sizes w to the display, runs its load handler and puts it on top.
func (s *WindowStack) Push(w *Window) {
	if w == nil {
		return
	}
	s.Remove(w)
	width, height := s.d.Size()
	w.root.frame = gfx.R(0, 0, width, height)
	s.windows = append(s.windows, w)
	if !w.loaded {
		w.loaded = true
		if w.handlers.Load != nil {
			w.handlers.Load(w)
		}
	}
	w.dirty = true
}

// Remove takes w off the stack and runs its unload handler. The window below
// becomes visible.
func (s *WindowStack) Remove(w *Window) bool {
	for i, cur := range s.windows {
		if cur != w {
			continue
		}
		s.windows = append(s.windows[:i], s.windows[i+1:]...)
		if w.loaded {
			w.loaded = false
			if w.handlers.Unload != nil {
				w.handlers.Unload(w)
			}
		}
		if top := s.Top(); top != nil {
			top.dirty = true
		}
		return true
	}
	return false
}

func (s *WindowStack) Top() *Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

func (s *WindowStack) Len() int { return len(s.windows) }

// Render redraws the top window and presents it when anything in it changed.
// It reports whether a frame was drawn.
func (s *WindowStack) Render() (bool, error) {
	w := s.Top()
	if w == nil || !w.dirty {
		return false, nil
	}
	w.dirty = false

	ctx := gfx.NewContext(s.d)
	ctx.SetFillColor(w.bg)
	ctx.FillRect(w.root.frame)
	w.root.render(ctx)
	s.renders++

	if err := s.d.Display(); err != nil {
		return true, errors.Wrap(err, "present frame")
	}
	return true, nil
}

// Renders returns how many frames have been drawn.
func (s *WindowStack) Renders() int { return s.renders }
