package resources

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLoadFonts(t *testing.T) {
	big, err := LoadFont(FontEurocaps48)
	if err != nil {
		t.Fatal(err)
	}
	small, err := LoadFont(FontEurocaps24)
	if err != nil {
		t.Fatal(err)
	}
	if big.GetYAdvance() <= small.GetYAdvance() {
		t.Fatalf("big font advance %d <= small %d", big.GetYAdvance(), small.GetYAdvance())
	}
	if _, err := LoadFont(ImageEliteDangerous); !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("LoadFont(image) err = %v", err)
	}
}

func TestLoadBitmap(t *testing.T) {
	bm, err := LoadBitmap(ImageEliteDangerous)
	if err != nil {
		t.Fatal(err)
	}
	if b := bm.Bounds(); b.W != 120 || b.H != 120 {
		t.Fatalf("bounds = %+v, want 120x120", b)
	}
	if bm.At(0, 0).A != 0 {
		t.Fatal("corner should be transparent")
	}
	if bm.At(60, 60).A == 0 {
		t.Fatal("centre should be opaque")
	}
}

func TestLedgerDoubleReleaseAndLeaks(t *testing.T) {
	l := NewLedger()
	a := l.Acquire("font", "big")
	b := l.Acquire("bitmap", "bg")
	c := l.Acquire("layer", "time")

	if err := l.Release(a); err != nil {
		t.Fatal(err)
	}
	if err := l.Release(a); !errors.Is(err, ErrDoubleRelease) {
		t.Fatalf("second release err = %v", err)
	}
	if err := l.Release(Handle(99)); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("unknown release err = %v", err)
	}
	if err := l.Release(c); err != nil {
		t.Fatal(err)
	}

	leaks := l.Leaks()
	if len(leaks) != 1 || leaks[0] != "bitmap bg" {
		t.Fatalf("Leaks() = %v", leaks)
	}
	if !l.Live(b) || l.Live(a) {
		t.Fatal("Live mismatch")
	}
	if acq, rel := l.Counts(); acq != 3 || rel != 2 {
		t.Fatalf("Counts() = %d, %d", acq, rel)
	}
}
