package watchface

import (
	"testing"
	"time"

	"elitewatch/hal"
	"elitewatch/sparkos/gfx"
	"elitewatch/sparkos/proto"
	"elitewatch/sparkos/resources"
	"elitewatch/sparkos/ui"

	"github.com/pkg/errors"
)

var saturday = time.Date(2024, 6, 1, 14, 5, 0, 0, time.UTC)

func startedFace(t *testing.T, is24h bool) (*Face, *ui.WindowStack, *canvas) {
	t.Helper()
	cv := newCanvas(144, 168)
	stack := ui.NewWindowStack(cv)
	f := NewFace(stack, ProfileFor(hal.ShapeRect, false), is24h)
	err := f.OnStart(StartState{
		Now:       saturday,
		Battery:   proto.BatteryState{Percent: 40},
		Connected: true,
	})
	if err != nil {
		t.Fatalf("OnStart: %v", err)
	}
	return f, stack, cv
}

func TestOnStartPopulatesState(t *testing.T) {
	f, stack, _ := startedFace(t, false)

	if got := f.TimeText(); got != "02:05" {
		t.Errorf("time = %q, want 02:05", got)
	}
	if got := f.DateText(); got != "Sat 01 Jun" {
		t.Errorf("date = %q, want Sat 01 Jun", got)
	}
	if f.BatteryLevel() != 40 || !f.Connected() {
		t.Errorf("battery = %d, connected = %v", f.BatteryLevel(), f.Connected())
	}
	if stack.Top() != f.Window() {
		t.Fatal("window not pushed")
	}
	if n := len(f.Window().RootLayer().Children()); n != 4 {
		t.Fatalf("root has %d children, want 4", n)
	}
}

func TestLifecycleReleasesEachResourceOnce(t *testing.T) {
	f, stack, _ := startedFace(t, true)

	if acq, rel := f.Ledger().Counts(); acq != 8 || rel != 0 {
		t.Fatalf("after start: acquired %d, released %d", acq, rel)
	}
	if err := f.OnStop(); err != nil {
		t.Fatalf("OnStop: %v", err)
	}
	if leaks := f.Ledger().Leaks(); len(leaks) != 0 {
		t.Fatalf("leaked %v", leaks)
	}
	if acq, rel := f.Ledger().Counts(); acq != 8 || rel != 8 {
		t.Fatalf("after stop: acquired %d, released %d", acq, rel)
	}
	if stack.Len() != 0 {
		t.Fatal("window still on the stack")
	}

	err := f.OnStop()
	if !errors.Is(err, resources.ErrDoubleRelease) {
		t.Fatalf("second OnStop err = %v, want double release", err)
	}
	if acq, rel := f.Ledger().Counts(); acq != 8 || rel != 8 {
		t.Fatalf("double stop changed the ledger: %d/%d", acq, rel)
	}
}

func TestBatteryChangeMarksArcDirty(t *testing.T) {
	f, stack, cv := startedFace(t, true)
	stack.Render()
	before := cv.count(ArcColor)

	f.OnBatteryChange(proto.BatteryState{Percent: 90})
	if f.BatteryLevel() != 90 {
		t.Fatalf("level = %d, want 90", f.BatteryLevel())
	}
	if !f.Window().Dirty() {
		t.Fatal("battery change did not mark the arc dirty")
	}
	stack.Render()
	if after := cv.count(ArcColor); after <= before {
		t.Fatalf("arc pixels %d -> %d, want growth", before, after)
	}
}

func TestRedrawDoesNotMutate(t *testing.T) {
	f, stack, _ := startedFace(t, true)
	stack.Render()

	ctx := gfx.NewContext(newCanvas(144, 168))
	layer := ui.NewLayer(gfx.R(0, 0, 144, 168))
	f.OnRedraw(layer, ctx)

	if f.BatteryLevel() != 40 {
		t.Fatalf("redraw changed level to %d", f.BatteryLevel())
	}
	if f.Window().Dirty() {
		t.Fatal("redraw marked the window dirty")
	}
}

func TestConnectionChangeHasNoVisualEffect(t *testing.T) {
	f, stack, _ := startedFace(t, true)
	stack.Render()

	f.OnConnectionChange(false)
	if f.Connected() {
		t.Fatal("connection state not recorded")
	}
	if f.Window().Dirty() {
		t.Fatal("connection change dirtied the window")
	}
}

func TestHandlersBeforeStartAreSafe(t *testing.T) {
	f := NewFace(ui.NewWindowStack(newCanvas(10, 10)), ProfileFor(hal.ShapeRect, false), true)
	f.OnTick(saturday, proto.MinuteUnit)
	f.OnBatteryChange(proto.BatteryState{Percent: 5})
	if f.BatteryLevel() != 5 {
		t.Fatal("level not stored")
	}
}

func TestFailedStartReleasesLoadedAssets(t *testing.T) {
	stack := ui.NewWindowStack(newCanvas(144, 168))
	f := NewFace(stack, ProfileFor(hal.ShapeRect, false), true)
	missing := errors.New("bitmap missing")
	f.loadBitmap = func(resources.ID) (*gfx.Bitmap, error) { return nil, missing }

	if err := f.OnStart(StartState{Now: saturday}); !errors.Is(err, missing) {
		t.Fatalf("OnStart error = %v, want %v", err, missing)
	}
	if leaks := f.Ledger().Leaks(); len(leaks) != 0 {
		t.Fatalf("leaked after failed start: %v", leaks)
	}
	if acquired, released := f.Ledger().Counts(); acquired != 2 || released != 2 {
		t.Fatalf("counts = %d/%d, want both fonts acquired and released", acquired, released)
	}
	if stack.Len() != 0 {
		t.Fatal("window pushed despite failed start")
	}
}
