//go:build tinygo && baremetal && pinetime

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/st7789"
)

const (
	pineTimeWidth  = 240
	pineTimeHeight = 240

	// Rows pushed per DrawRGBBitmap8 call.
	pineTimeBandRows = 16
)

type pineTimeFramebuffer struct {
	lcd    st7789.Device
	w      int
	h      int
	stride int
	buf    []byte
	band   []byte
}

func newPineTimeDisplay() (*pineTimeFramebuffer, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		SDI:       machine.SPI0_SDI_PIN,
		Mode:      3,
	}); err != nil {
		return nil, err
	}

	lcd := st7789.New(machine.SPI0, machine.LCD_RESET, machine.LCD_RS, machine.LCD_CS, machine.NoPin)
	lcd.Configure(st7789.Config{
		Width:  pineTimeWidth,
		Height: pineTimeHeight,
	})

	// The backlight transistor is driven active low.
	bl := machine.LCD_BACKLIGHT_HIGH
	bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bl.Low()

	stride := pineTimeWidth * 2
	return &pineTimeFramebuffer{
		lcd:    lcd,
		w:      pineTimeWidth,
		h:      pineTimeHeight,
		stride: stride,
		buf:    make([]byte, stride*pineTimeHeight),
		band:   make([]byte, stride*pineTimeBandRows),
	}, nil
}

func (f *pineTimeFramebuffer) Width() int          { return f.w }
func (f *pineTimeFramebuffer) Height() int         { return f.h }
func (f *pineTimeFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *pineTimeFramebuffer) StrideBytes() int    { return f.stride }
func (f *pineTimeFramebuffer) Buffer() []byte      { return f.buf }

func (f *pineTimeFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *pineTimeFramebuffer) Present() error {
	if len(f.band) < f.stride {
		return errors.New("band buffer too small")
	}
	for y := 0; y < f.h; y += pineTimeBandRows {
		rows := pineTimeBandRows
		if y+rows > f.h {
			rows = f.h - y
		}
		n := rows * f.stride
		src := f.buf[y*f.stride : y*f.stride+n]
		for i := 0; i < n; i += 2 {
			// The OS stores RGB565 little-endian. The panel expects big-endian.
			f.band[i] = src[i+1]
			f.band[i+1] = src[i]
		}
		if err := f.lcd.DrawRGBBitmap8(0, int16(y), f.band[:n], int16(f.w), int16(rows)); err != nil {
			return err
		}
	}
	return nil
}
