package watchface

import (
	"elitewatch/sparkos/gfx"
	"elitewatch/sparkos/ui"
)

// Battery arc style. Neither depends on the charge.
const ArcStrokeWidth = 4

var ArcColor = gfx.ColorBlue

// SweepAngle maps a charge percentage to the arc's end angle. p is not
// clamped.
func SweepAngle(p int) int32 {
	return int32(p * gfx.TrigMaxAngle / 100)
}

// drawBatteryArc paints the charge ring inside bounds.
func drawBatteryArc(ctx *gfx.Context, bounds gfx.Rect, percent int) {
	ctx.SetStrokeColor(ArcColor)
	ctx.SetStrokeWidth(ArcStrokeWidth)
	ctx.DrawArc(bounds, gfx.OvalScaleModeFitCircle, 0, SweepAngle(percent))
}

// OnRedraw is the battery layer's update procedure.
func (f *Face) OnRedraw(l *ui.Layer, ctx *gfx.Context) {
	drawBatteryArc(ctx, l.Bounds(), f.batteryLevel)
}
