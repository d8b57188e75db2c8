// Package watchface is the Elite watchface: time, date, a background image and
// a battery ring.
package watchface

import (
	"time"

	"elitewatch/sparkos/gfx"
	"elitewatch/sparkos/proto"
	"elitewatch/sparkos/resources"
	"elitewatch/sparkos/ui"

	"github.com/pkg/errors"
)

// InitialTimeText is shown until the first tick.
const InitialTimeText = "00:00"

// StartState is what the face shows before the first notification.
type StartState struct {
	Now       time.Time
	Battery   proto.BatteryState
	Connected bool
}

// Face holds every resource and piece of state of one running watchface.
// Handlers must be called from a single goroutine.
type Face struct {
	stack   *ui.WindowStack
	profile Profile
	is24h   bool
	ledger  *resources.Ledger

	fontBig   gfx.Font
	fontSmall gfx.Font
	bg        *gfx.Bitmap

	window       *ui.Window
	bitmapLayer  *ui.BitmapLayer
	timeLayer    *ui.TextLayer
	dateLayer    *ui.TextLayer
	batteryLayer *ui.Layer

	h handles

	loadFont   func(resources.ID) (gfx.Font, error)
	loadBitmap func(resources.ID) (*gfx.Bitmap, error)

	batteryLevel int
	connected    bool

	unloadErr error
}

type handles struct {
	fontBig      resources.Handle
	fontSmall    resources.Handle
	bitmap       resources.Handle
	window       resources.Handle
	bitmapLayer  resources.Handle
	timeLayer    resources.Handle
	dateLayer    resources.Handle
	batteryLayer resources.Handle
}

func NewFace(stack *ui.WindowStack, profile Profile, is24h bool) *Face {
	return &Face{
		stack:   stack,
		profile: profile,
		is24h:   is24h,
		ledger:  resources.NewLedger(),

		loadFont:   resources.LoadFont,
		loadBitmap: resources.LoadBitmap,
	}
}

// Ledger returns the record of resources the face acquired and released.
func (f *Face) Ledger() *resources.Ledger { return f.ledger }

func (f *Face) BatteryLevel() int  { return f.batteryLevel }
func (f *Face) Connected() bool    { return f.connected }
func (f *Face) Window() *ui.Window { return f.window }

func (f *Face) TimeText() string {
	if f.timeLayer == nil {
		return ""
	}
	return f.timeLayer.Text()
}

func (f *Face) DateText() string {
	if f.dateLayer == nil {
		return ""
	}
	return f.dateLayer.Text()
}

// OnStart loads fonts and the background, pushes the window and shows st.
// When an asset fails to load, the ones already loaded are released and
// nothing is pushed.
func (f *Face) OnStart(st StartState) error {
	if err := f.loadAssets(); err != nil {
		f.releaseAssets()
		return errors.Wrap(err, "load assets")
	}

	f.window = ui.NewWindow()
	f.h.window = f.ledger.Acquire("window", "main")
	f.window.SetHandlers(ui.WindowHandlers{
		Load:   f.windowLoad,
		Unload: f.windowUnload,
	})
	f.stack.Push(f.window)

	f.OnTick(st.Now, proto.MinuteUnit)
	f.OnBatteryChange(st.Battery)
	f.OnConnectionChange(st.Connected)
	return nil
}

func (f *Face) loadAssets() error {
	var err error
	if f.fontBig, err = f.loadFont(resources.FontEurocaps48); err != nil {
		return err
	}
	f.h.fontBig = f.ledger.Acquire("font", resources.FontEurocaps48.String())

	if f.fontSmall, err = f.loadFont(resources.FontEurocaps24); err != nil {
		return err
	}
	f.h.fontSmall = f.ledger.Acquire("font", resources.FontEurocaps24.String())

	if f.bg, err = f.loadBitmap(resources.ImageEliteDangerous); err != nil {
		return err
	}
	f.h.bitmap = f.ledger.Acquire("bitmap", resources.ImageEliteDangerous.String())
	return nil
}

// releaseAssets gives back whatever loadAssets acquired. Handles start at 1,
// so zero means never acquired.
func (f *Face) releaseAssets() {
	for _, h := range []*resources.Handle{&f.h.fontBig, &f.h.fontSmall, &f.h.bitmap} {
		if *h != 0 {
			_ = f.ledger.Release(*h)
			*h = 0
		}
	}
	f.fontBig, f.fontSmall, f.bg = nil, nil, nil
}

func (f *Face) windowLoad(w *ui.Window) {
	root := w.RootLayer()
	b := root.Bounds()
	p := f.profile

	f.bitmapLayer = ui.NewBitmapLayer(p.BitmapFrame(b))
	f.h.bitmapLayer = f.ledger.Acquire("layer", "bitmap")
	f.timeLayer = ui.NewTextLayer(p.TimeFrame(b))
	f.h.timeLayer = f.ledger.Acquire("layer", "time")
	f.dateLayer = ui.NewTextLayer(p.DateFrame(b))
	f.h.dateLayer = f.ledger.Acquire("layer", "date")
	f.batteryLayer = ui.NewLayer(p.BatteryFrame(b))
	f.h.batteryLayer = f.ledger.Acquire("layer", "battery")
	f.batteryLayer.SetUpdateProc(f.OnRedraw)

	f.bitmapLayer.SetBackgroundColor(p.BackgroundColor)
	f.bitmapLayer.SetBitmap(f.bg)

	for _, tl := range []*ui.TextLayer{f.timeLayer, f.dateLayer} {
		tl.SetBackgroundColor(gfx.ColorClear)
		tl.SetTextColor(p.TextColor)
		tl.SetAlignment(gfx.AlignCenter)
	}
	f.timeLayer.SetText(InitialTimeText)
	f.timeLayer.SetFont(f.fontBig)
	f.dateLayer.SetText("")
	f.dateLayer.SetFont(f.fontSmall)

	root.AddChild(f.bitmapLayer.Layer())
	root.AddChild(f.timeLayer.Layer())
	root.AddChild(f.dateLayer.Layer())
	root.AddChild(f.batteryLayer)
}

func (f *Face) windowUnload(*ui.Window) {
	f.unloadErr = f.releaseLayers()
}

func (f *Face) releaseLayers() error {
	var errs releaseErrors
	errs.add(f.release(f.h.batteryLayer, func() { f.batteryLayer.RemoveFromParent() }))
	errs.add(f.release(f.h.bitmapLayer, func() { f.bitmapLayer.Layer().RemoveFromParent() }))
	errs.add(f.release(f.h.timeLayer, func() { f.timeLayer.Layer().RemoveFromParent() }))
	errs.add(f.release(f.h.dateLayer, func() { f.dateLayer.Layer().RemoveFromParent() }))
	return errs.err()
}

// OnStop releases everything OnStart acquired. Resources already released are
// reported and left alone.
func (f *Face) OnStop() error {
	var errs releaseErrors
	if f.window != nil && f.stack.Remove(f.window) {
		errs.add(f.unloadErr)
		f.unloadErr = nil
	} else {
		// Not on the stack, so unload never ran for this stop.
		errs.add(f.releaseLayers())
	}
	errs.add(f.release(f.h.window, nil))
	errs.add(f.release(f.h.fontBig, nil))
	errs.add(f.release(f.h.fontSmall, nil))
	errs.add(f.release(f.h.bitmap, func() { f.bg = nil }))
	return errs.err()
}

// release records h as released and then runs free. A rejected release does
// not run free.
func (f *Face) release(h resources.Handle, free func()) error {
	if err := f.ledger.Release(h); err != nil {
		return err
	}
	if free != nil {
		free()
	}
	return nil
}

// OnTick refreshes the time and date text.
func (f *Face) OnTick(now time.Time, _ proto.TimeUnits) {
	if f.timeLayer == nil {
		return
	}
	f.timeLayer.SetText(FormatTime(now, f.is24h))
	f.dateLayer.SetText(FormatDate(now))
}

// OnBatteryChange stores the new charge and schedules an arc redraw.
func (f *Face) OnBatteryChange(st proto.BatteryState) {
	f.batteryLevel = int(st.Percent)
	if f.batteryLayer != nil {
		f.batteryLayer.MarkDirty()
	}
}

// OnConnectionChange records the phone link state. It has no visual effect.
func (f *Face) OnConnectionChange(connected bool) {
	f.connected = connected
}

type releaseErrors struct {
	first error
	n     int
}

func (r *releaseErrors) add(err error) {
	if err == nil {
		return
	}
	if r.first == nil {
		r.first = err
	}
	r.n++
}

func (r *releaseErrors) err() error {
	if r.first == nil {
		return nil
	}
	if r.n == 1 {
		return r.first
	}
	return errors.Wrapf(r.first, "%d release failures, first", r.n)
}
