// Package gfx is the 2D drawing layer used by watchface layers.
//
// Coordinates are int16 screen pixels. A Context draws through any
// drivers.Displayer; FramebufferDisplay adapts a hal.Framebuffer. Drawing is
// offset and clipped to the frame of the layer being rendered, so update
// procedures draw in layer-local coordinates.
//
// Angles follow the watch convention: 0 is 12 o'clock, values grow clockwise
// and TrigMaxAngle is one full turn.
package gfx
