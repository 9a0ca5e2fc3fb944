// Package colormap maps integer cell states to colours on a diverging scale.
package colormap

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap is a linearly segmented colour scale over [0, 1]. Control colours
// are evenly spaced and blended in RGB.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

// New builds a colormap from hex control colours, lowest value first.
func New(name string, hexes ...string) Colormap {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("colormap: bad control colour " + h)
		}
		stops[i] = c
	}
	return Colormap{Name: name, stops: stops}
}

// Reversed returns the same scale running high to low, named with an "_r"
// suffix.
func (c Colormap) Reversed() Colormap {
	stops := make([]colorful.Color, len(c.stops))
	for i, s := range c.stops {
		stops[len(stops)-1-i] = s
	}
	return Colormap{Name: c.Name + "_r", stops: stops}
}

// At returns the colour at position t. Values outside [0, 1] are clamped.
func (c Colormap) At(t float64) color.RGBA {
	if len(c.stops) == 0 {
		return color.RGBA{A: 0xff}
	}
	if len(c.stops) == 1 || math.IsNaN(t) || t <= 0 {
		return toRGBA(c.stops[0])
	}
	if t >= 1 {
		return toRGBA(c.stops[len(c.stops)-1])
	}

	pos := t * float64(len(c.stops)-1)
	i := int(pos)
	return toRGBA(c.stops[i].BlendRgb(c.stops[i+1], pos-float64(i)))
}

// Sample returns n colours evenly spaced across the scale, ends included.
func (c Colormap) Sample(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{c.At(0)}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = c.At(float64(i) / float64(n-1))
	}
	return out
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
