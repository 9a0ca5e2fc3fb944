package render

import (
	"image"
	"math"
)

// Subplot box as fractions of the canvas, measured from the bottom left.
const (
	subplotLeft   = 0.125
	subplotRight  = 0.9
	subplotBottom = 0.11
	subplotTop    = 0.88

	// title pad in points
	titlePad = 6.0
)

type layout struct {
	side  int
	axes  image.Rectangle
	image image.Rectangle
}

func computeLayout(side, frameW, frameH int) (layout, error) {
	if side <= 0 || frameW <= 0 || frameH <= 0 {
		return layout{}, ErrCanvasSize
	}

	s := float64(side)
	axes := image.Rect(
		int(math.Round(subplotLeft*s)),
		int(math.Round((1-subplotTop)*s)),
		int(math.Round(subplotRight*s)),
		int(math.Round((1-subplotBottom)*s)),
	)

	scale := math.Min(
		float64(axes.Dx())/float64(frameW),
		float64(axes.Dy())/float64(frameH),
	)
	w := int(math.Round(float64(frameW) * scale))
	h := int(math.Round(float64(frameH) * scale))
	if w < 1 || h < 1 {
		return layout{}, ErrCanvasSize
	}

	x0 := axes.Min.X + (axes.Dx()-w)/2
	y0 := axes.Min.Y + (axes.Dy()-h)/2
	return layout{
		side:  side,
		axes:  axes,
		image: image.Rect(x0, y0, x0+w, y0+h),
	}, nil
}
