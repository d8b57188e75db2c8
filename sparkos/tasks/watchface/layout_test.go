package watchface

import (
	"testing"

	"elitewatch/hal"
	"elitewatch/sparkos/gfx"
)

func TestProfileFrames(t *testing.T) {
	tests := []struct {
		name    string
		shape   hal.DisplayShape
		bounds  gfx.Rect
		bitmap  gfx.Rect
		timeR   gfx.Rect
		date    gfx.Rect
		battery gfx.Rect
	}{
		{
			name:    "rect",
			shape:   hal.ShapeRect,
			bounds:  gfx.R(0, 0, 144, 168),
			bitmap:  gfx.R(0, 0, 144, 168),
			timeR:   gfx.R(-2, 108, 144, 56),
			date:    gfx.R(0, 0, 144, 24),
			battery: gfx.R(0, 0, 144, 168),
		},
		{
			name:    "round",
			shape:   hal.ShapeRound,
			bounds:  gfx.R(0, 0, 180, 180),
			bitmap:  gfx.R(0, -4, 180, 184),
			timeR:   gfx.R(-2, 110, 180, 56),
			date:    gfx.R(0, 12, 180, 24),
			battery: gfx.R(0, 0, 180, 180),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProfileFor(tt.shape, false)
			if got := p.BitmapFrame(tt.bounds); got != tt.bitmap {
				t.Errorf("bitmap = %+v, want %+v", got, tt.bitmap)
			}
			if got := p.TimeFrame(tt.bounds); got != tt.timeR {
				t.Errorf("time = %+v, want %+v", got, tt.timeR)
			}
			if got := p.DateFrame(tt.bounds); got != tt.date {
				t.Errorf("date = %+v, want %+v", got, tt.date)
			}
			if got := p.BatteryFrame(tt.bounds); got != tt.battery {
				t.Errorf("battery = %+v, want %+v", got, tt.battery)
			}
		})
	}
}

func TestProfileTextColor(t *testing.T) {
	if c := ProfileFor(hal.ShapeRect, false).TextColor; c != gfx.ColorOrange {
		t.Errorf("colour text = %v, want orange", c)
	}
	if c := ProfileFor(hal.ShapeRound, true).TextColor; c != gfx.ColorWhite {
		t.Errorf("monochrome text = %v, want white", c)
	}
}
