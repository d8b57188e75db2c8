package watchface

import (
	"image/color"

	"elitewatch/hal"
	"elitewatch/sparkos/gfx"
)

// Profile holds the per-device placement of the face's layers. Offsets
// ending in FromBottom are subtracted from the window height.
type Profile struct {
	BitmapY          int16
	TimeFromBottom   int16
	DateY            int16
	TextColor        color.RGBA
	BackgroundColor  color.RGBA
	TimeLayerHeight  int16
	DateLayerHeight  int16
	TimeLayerOffsetX int16
}

// ProfileFor returns the layout for a display shape. Monochrome panels draw
// text in white.
func ProfileFor(shape hal.DisplayShape, monochrome bool) Profile {
	p := Profile{
		BitmapY:          0,
		TimeFromBottom:   60,
		DateY:            0,
		TextColor:        gfx.ColorOrange,
		BackgroundColor:  gfx.ColorBlack,
		TimeLayerHeight:  56,
		DateLayerHeight:  24,
		TimeLayerOffsetX: -2,
	}
	if shape == hal.ShapeRound {
		p.BitmapY = -4
		p.TimeFromBottom = 70
		p.DateY = 12
	}
	if monochrome {
		p.TextColor = gfx.ColorWhite
	}
	return p
}

func (p Profile) BitmapFrame(b gfx.Rect) gfx.Rect {
	return gfx.R(0, p.BitmapY, b.W, b.H-p.BitmapY)
}

func (p Profile) TimeFrame(b gfx.Rect) gfx.Rect {
	return gfx.R(p.TimeLayerOffsetX, b.H-p.TimeFromBottom, b.W, p.TimeLayerHeight)
}

func (p Profile) DateFrame(b gfx.Rect) gfx.Rect {
	return gfx.R(0, p.DateY, b.W, p.DateLayerHeight)
}

func (p Profile) BatteryFrame(b gfx.Rect) gfx.Rect {
	return gfx.R(0, 0, b.W, b.H)
}
