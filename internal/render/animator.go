package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"

	"github.com/san-kum/fireanim/internal/colormap"
	"github.com/san-kum/fireanim/internal/trace"
)

const (
	DefaultSizeInches = 12.0
	DefaultDPI        = 300.0
	DefaultFontSize   = 18.0
	DefaultDelay      = 1
)

// Options fixes the output geometry and appearance.
type Options struct {
	SizeInches float64
	DPI        float64
	FontSize   float64
	// Delay between frames in hundredths of a second.
	Delay    int
	Colormap colormap.Colormap
}

func DefaultOptions() Options {
	return Options{
		SizeInches: DefaultSizeInches,
		DPI:        DefaultDPI,
		FontSize:   DefaultFontSize,
		Delay:      DefaultDelay,
		Colormap:   colormap.Default,
	}
}

type phase int

const (
	phaseUninitialized phase = iota
	phaseInitialized
	phaseRendering
	phaseFinalized
)

func (p phase) String() string {
	switch p {
	case phaseUninitialized:
		return "uninitialized"
	case phaseInitialized:
		return "initialized"
	case phaseRendering:
		return "rendering"
	case phaseFinalized:
		return "finalized"
	}
	return "unknown"
}

// Animator is the drawing context shared by Init, each Step and Encode. It is
// not safe for concurrent use.
type Animator struct {
	opts  Options
	phase phase

	layout  layout
	frameW  int
	frameH  int
	palette color.Palette
	mapping *colormap.Mapping
	face    font.Face

	current *image.Paletted
	frames  []*image.Paletted
}

// NewAnimator returns an uninitialized animator.
func NewAnimator(opts Options) *Animator {
	return &Animator{opts: opts}
}

// Init sizes the canvas from the first frame, fixes the colour normalisation
// to that frame's value range and displays it titled "Time Step = 0". The
// displayed image is not part of the animation until Step(0).
func (a *Animator) Init(first trace.Frame) error {
	if a.phase != phaseUninitialized {
		return renderErr("init", -1, fmt.Errorf("%w: %s", ErrState, a.phase))
	}

	side := int(math.Round(a.opts.SizeInches * a.opts.DPI))
	l, err := computeLayout(side, first.Width, first.Height)
	if err != nil {
		return renderErr("init", -1, fmt.Errorf("%w: %dpx for %dx%d frame", err, side, first.Width, first.Height))
	}

	if a.opts.FontSize > 0 {
		face, err := newTitleFace(a.opts.FontSize, a.opts.DPI)
		if err != nil {
			return renderErr("init", -1, err)
		}
		a.face = face
	}

	lo, hi := first.Bounds()
	norm := colormap.Norm{Min: lo, Max: hi}
	a.layout = l
	a.frameW, a.frameH = first.Width, first.Height
	a.mapping = colormap.NewSampledMapping(a.opts.Colormap, norm, cmapSamples)
	a.palette = buildPalette(a.mapping)

	a.current = a.draw(0, first)
	a.phase = phaseInitialized
	return nil
}

// Step draws frame i and appends it to the animation. Steps must start at 0
// and increase by one.
func (a *Animator) Step(i int, f trace.Frame) error {
	if a.phase != phaseInitialized && a.phase != phaseRendering {
		return renderErr("step", i, fmt.Errorf("%w: %s", ErrState, a.phase))
	}
	if i != len(a.frames) {
		return renderErr("step", i, fmt.Errorf("%w: expected frame %d", ErrFrameOrder, len(a.frames)))
	}
	if f.Width != a.frameW || f.Height != a.frameH {
		return renderErr("step", i, fmt.Errorf("%w: %dx%d, want %dx%d", ErrFrameShape, f.Width, f.Height, a.frameW, a.frameH))
	}

	a.current = a.draw(i, f)
	a.frames = append(a.frames, a.current)
	a.phase = phaseRendering
	return nil
}

// Encode writes the stepped frames as a looping GIF. A successful Encode
// finalizes the animator.
func (a *Animator) Encode(w io.Writer) error {
	if len(a.frames) == 0 {
		return renderErr("encode", -1, ErrNoFrames)
	}
	if a.phase != phaseRendering {
		return renderErr("encode", -1, fmt.Errorf("%w: %s", ErrState, a.phase))
	}

	delay := a.opts.Delay
	if delay < 0 {
		delay = 0
	}
	anim := gif.GIF{
		Image:     a.frames,
		Delay:     make([]int, len(a.frames)),
		LoopCount: 0,
		Config: image.Config{
			ColorModel: a.palette,
			Width:      a.layout.side,
			Height:     a.layout.side,
		},
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}

	if err := gif.EncodeAll(w, &anim); err != nil {
		return renderErr("encode", -1, err)
	}
	a.phase = phaseFinalized
	return nil
}

// Len returns the number of frames stepped so far.
func (a *Animator) Len() int { return len(a.frames) }

// Current returns the most recently displayed image, or nil before Init.
func (a *Animator) Current() *image.Paletted { return a.current }

// ImageRect returns where the heatmap sits on the canvas.
func (a *Animator) ImageRect() image.Rectangle { return a.layout.image }

// Mapping returns the state colours fixed by Init.
func (a *Animator) Mapping() *colormap.Mapping { return a.mapping }

// Finalized reports whether the animation has been encoded.
func (a *Animator) Finalized() bool { return a.phase == phaseFinalized }

func (a *Animator) draw(i int, f trace.Frame) *image.Paletted {
	side := a.layout.side
	img := image.NewPaletted(image.Rect(0, 0, side, side), a.palette)
	for p := range img.Pix {
		img.Pix[p] = indexWhite
	}

	// sample indices are ordered along the colour scale, so scaling them
	// as grey levels blends in data space before colouring
	src := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for r := 0; r < f.Height; r++ {
		row := f.Row(r)
		dst := src.Pix[r*src.Stride : r*src.Stride+f.Width]
		for c, s := range row {
			dst[c] = a.mapping.Index(s)
		}
	}

	dr := a.layout.image
	scaled := resize.Resize(uint(dr.Dx()), uint(dr.Dy()), src, resize.NearestNeighbor)
	sb := scaled.Bounds()
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			k := grayIndex(scaled, sb.Min.X+x, sb.Min.Y+y)
			img.Pix[img.PixOffset(dr.Min.X+x, dr.Min.Y+y)] = grayLevels + k
		}
	}

	if a.face != nil {
		drawTitle(img, a.face, fmt.Sprintf("Time Step = %d", i), dr, a.opts.DPI)
	}
	return img
}

func grayIndex(img image.Image, x, y int) uint8 {
	var v uint8
	if g, ok := img.(*image.Gray); ok {
		v = g.Pix[g.PixOffset(x, y)]
	} else {
		v = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
	}
	if v > cmapSamples-1 {
		v = cmapSamples - 1
	}
	return v
}
