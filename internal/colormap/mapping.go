package colormap

import (
	"image/color"
	"math"
)

// Norm linearly maps states in [Min, Max] onto [0, 1].
type Norm struct {
	Min, Max uint8
}

// Scale returns the normalised position of s. A degenerate range maps every
// state to 0.
func (n Norm) Scale(s uint8) float64 {
	if n.Max <= n.Min {
		return 0
	}
	switch {
	case s <= n.Min:
		return 0
	case s >= n.Max:
		return 1
	}
	return float64(s-n.Min) / float64(n.Max-n.Min)
}

// DefaultLevels is the number of colours a Mapping samples from its scale
// unless told otherwise.
const DefaultLevels = 256

// Mapping is a fixed state-to-colour function over a finite set of evenly
// spaced samples of a colormap. It is safe for concurrent use.
type Mapping struct {
	cmap    Colormap
	norm    Norm
	samples []color.RGBA
	index   [256]uint8
}

// NewMapping samples c at DefaultLevels colours.
func NewMapping(c Colormap, n Norm) *Mapping {
	return NewSampledMapping(c, n, DefaultLevels)
}

// NewSampledMapping maps every state onto one of levels samples of c. levels
// is clamped to [1, 256].
func NewSampledMapping(c Colormap, n Norm, levels int) *Mapping {
	levels = min(max(levels, 1), 256)
	m := &Mapping{cmap: c, norm: n, samples: c.Sample(levels)}
	for s := range m.index {
		m.index[s] = uint8(math.Round(n.Scale(uint8(s)) * float64(levels-1)))
	}
	return m
}

// Color returns the colour for state s.
func (m *Mapping) Color(s uint8) color.RGBA {
	return m.samples[m.index[s]]
}

// Index returns which sample state s is drawn with.
func (m *Mapping) Index(s uint8) uint8 {
	return m.index[s]
}

// Samples returns a copy of the sampled colours, lowest first.
func (m *Mapping) Samples() []color.RGBA {
	return append([]color.RGBA(nil), m.samples...)
}

// Colormap returns the scale the mapping was built from.
func (m *Mapping) Colormap() Colormap { return m.cmap }

// Norm returns the normalisation range fixed at construction.
func (m *Mapping) Norm() Norm { return m.norm }
