// Package render turns trace frames into a looping animated GIF.
//
// An [Animator] owns the drawing canvas and moves through a fixed lifecycle:
//
//	Uninitialized -> Init -> Step(0) ... Step(n-1) -> Encode (Finalized)
//
// Init fixes the canvas size, the image placement and the colour
// normalisation from the first frame; every later Step reuses them. Steps
// must arrive in ascending index order without gaps.
//
// # Layout
//
// The canvas is a square of SizeInches*DPI pixels. The heatmap is drawn with
// equal aspect inside the subplot box (left 0.125, right 0.9, bottom 0.11,
// top 0.88) and titled "Time Step = i" above it.
//
// # Palette
//
// Frames are paletted: 16 grey levels for background and title followed by
// 240 evenly spaced samples of the colormap.
package render
