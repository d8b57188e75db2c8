//go:build tinygo && baremetal

package hal

// nullPanel stands in for a missing or failed panel. It has the geometry of
// the real one but no pixel memory, so drawing into it is discarded.
type nullPanel struct {
	w, h int
}

func newNullPanel(w, h int) *nullPanel { return &nullPanel{w: w, h: h} }

func (p *nullPanel) Width() int          { return p.w }
func (p *nullPanel) Height() int         { return p.h }
func (p *nullPanel) Format() PixelFormat { return PixelFormatRGB565 }
func (p *nullPanel) StrideBytes() int    { return p.w * 2 }
func (p *nullPanel) Buffer() []byte      { return nil }
func (p *nullPanel) Present() error      { return nil }

func (p *nullPanel) ClearRGB(_, _, _ uint8) {}

// fixedBattery reports a constant charge on boards without a fuel gauge.
type fixedBattery BatteryChargeState

func (b fixedBattery) ChargeState() BatteryChargeState { return BatteryChargeState(b) }

type noConnection struct{}

func (noConnection) Connected() bool { return false }
