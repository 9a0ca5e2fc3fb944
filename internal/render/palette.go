package render

import (
	"image/color"

	"github.com/san-kum/fireanim/internal/colormap"
)

const (
	grayLevels  = 16
	cmapSamples = 256 - grayLevels

	indexBlack = 0
	indexWhite = grayLevels - 1
)

// buildPalette lays out grey levels first, then the mapping's samples, so
// state s is drawn with palette index grayLevels + m.Index(s).
func buildPalette(m *colormap.Mapping) color.Palette {
	p := make(color.Palette, 0, 256)
	for i := 0; i < grayLevels; i++ {
		v := uint8(i * 255 / (grayLevels - 1))
		p = append(p, color.RGBA{R: v, G: v, B: v, A: 0xff})
	}
	for _, c := range m.Samples() {
		p = append(p, c)
	}
	return p
}
