// Package ui is the retained layer tree drawn by the window stack.
package ui

import "elitewatch/sparkos/gfx"

// UpdateProc paints a layer. ctx is offset and clipped to the layer frame, so
// l.Bounds() is the area to paint.
type UpdateProc func(l *Layer, ctx *gfx.Context)

// Layer is a node in a window's drawing tree. Children draw after their
// parent, in insertion order.
type Layer struct {
	frame    gfx.Rect
	parent   *Layer
	children []*Layer
	update   UpdateProc
	hidden   bool

	// window is set on root layers only.
	window *Window
}

func NewLayer(frame gfx.Rect) *Layer {
	return &Layer{frame: frame}
}

func (l *Layer) Frame() gfx.Rect { return l.frame }

// Bounds is the layer's own coordinate space.
func (l *Layer) Bounds() gfx.Rect { return l.frame.Bounds() }

func (l *Layer) SetFrame(r gfx.Rect) {
	l.frame = r
	l.MarkDirty()
}

func (l *Layer) SetUpdateProc(fn UpdateProc) { l.update = fn }

func (l *Layer) Parent() *Layer     { return l.parent }
func (l *Layer) Children() []*Layer { return l.children }

// AddChild appends c on top of l's existing children, detaching it from any
// previous parent.
func (l *Layer) AddChild(c *Layer) {
	if c == nil || c == l {
		return
	}
	c.RemoveFromParent()
	c.parent = l
	l.children = append(l.children, c)
	l.MarkDirty()
}

func (l *Layer) RemoveFromParent() {
	p := l.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == l {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	l.parent = nil
	p.MarkDirty()
}

func (l *Layer) SetHidden(hidden bool) {
	if l.hidden == hidden {
		return
	}
	l.hidden = hidden
	l.MarkDirty()
}

func (l *Layer) Hidden() bool { return l.hidden }

// MarkDirty schedules a redraw of the window that contains l.
func (l *Layer) MarkDirty() {
	root := l
	for root.parent != nil {
		root = root.parent
	}
	if root.window != nil {
		root.window.dirty = true
	}
}

// Window returns the window whose tree contains l, or nil.
func (l *Layer) Window() *Window {
	root := l
	for root.parent != nil {
		root = root.parent
	}
	return root.window
}

func (l *Layer) render(ctx *gfx.Context) {
	if l.hidden {
		return
	}
	st := ctx.Enter(l.frame)
	if l.update != nil {
		l.update(l, ctx)
	}
	for _, c := range l.children {
		c.render(ctx)
	}
	ctx.Leave(st)
}
