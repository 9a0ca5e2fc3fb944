package render

import (
	"image"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var goRegular = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

func newTitleFace(size, dpi float64) (font.Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// drawTitle centres text horizontally over the image area with its baseline
// pad points above the top edge.
func drawTitle(dst *image.Paletted, face font.Face, text string, area image.Rectangle, dpi float64) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
	}
	width := d.MeasureString(text)
	cx := fixed.I(area.Min.X + area.Dx()/2)
	baseline := area.Min.Y - int(titlePad*dpi/72)
	d.Dot = fixed.Point26_6{X: cx - width/2, Y: fixed.I(baseline)}
	d.DrawString(text)
}
