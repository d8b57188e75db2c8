// Package resources resolves the watchface's fonts and images by ID.
package resources

import (
	"bytes"
	_ "embed"
	"image/png"

	"elitewatch/sparkos/gfx"

	"github.com/pkg/errors"
	"tinygo.org/x/tinyfont/freesans"
)

// ID names a bundled resource.
type ID uint8

const (
	FontEurocaps48 ID = iota + 1
	FontEurocaps24
	ImageEliteDangerous
)

func (id ID) String() string {
	switch id {
	case FontEurocaps48:
		return "font_eurocaps_48"
	case FontEurocaps24:
		return "font_eurocaps_24"
	case ImageEliteDangerous:
		return "image_elitedangerous"
	default:
		return "unknown"
	}
}

//go:embed images/elite_dangerous.png
var eliteDangerousPNG []byte

var ErrUnknownResource = errors.New("unknown resource")

// LoadFont returns the typeface for a font ID. The 48 and 24 classes map to
// the bold FreeSans faces that fill the same line heights.
func LoadFont(id ID) (gfx.Font, error) {
	switch id {
	case FontEurocaps48:
		return &freesans.Bold24pt7b, nil
	case FontEurocaps24:
		return &freesans.Bold12pt7b, nil
	default:
		return nil, errors.Wrapf(ErrUnknownResource, "load font %s", id)
	}
}

// LoadBitmap decodes an image ID.
func LoadBitmap(id ID) (*gfx.Bitmap, error) {
	var data []byte
	switch id {
	case ImageEliteDangerous:
		data = eliteDangerousPNG
	default:
		return nil, errors.Wrapf(ErrUnknownResource, "load bitmap %s", id)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", id)
	}
	return gfx.NewBitmap(img), nil
}
