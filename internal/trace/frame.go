package trace

import (
	"fmt"
	"iter"
)

// Frame is one time step: a view of Height consecutive rows of a StateMatrix.
// It shares storage with the matrix.
type Frame struct {
	Index  int
	Height int
	Width  int
	cells  []uint8
}

// Frame returns the view of time step i. The view covers rows
// [i*height, (i+1)*height).
func (m *StateMatrix) Frame(i, height int) (Frame, error) {
	if height <= 0 {
		return Frame{}, fmt.Errorf("%w: height %d", ErrParameterBounds, height)
	}
	n := m.NumStates(height)
	if i < 0 || i >= n {
		return Frame{}, &OutOfRangeError{Index: i, NumStates: n}
	}
	lo := i * height * m.width
	hi := lo + height*m.width
	return Frame{Index: i, Height: height, Width: m.width, cells: m.cells[lo:hi:hi]}, nil
}

// Frames yields every complete frame in ascending index order.
func (m *StateMatrix) Frames(height int) iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		n := m.NumStates(height)
		for i := 0; i < n; i++ {
			f, err := m.Frame(i, height)
			if err != nil {
				return
			}
			if !yield(i, f) {
				return
			}
		}
	}
}

// At returns the state at (row, col) within the frame.
func (f Frame) At(row, col int) uint8 {
	return f.cells[row*f.Width+col]
}

// Row returns row r of the frame. The slice aliases the matrix and must not be
// modified.
func (f Frame) Row(r int) []uint8 {
	lo := r * f.Width
	return f.cells[lo : lo+f.Width : lo+f.Width]
}

// Cells returns the frame's cells in row-major order. The slice aliases the
// matrix and must not be modified.
func (f Frame) Cells() []uint8 { return f.cells }

// Bounds returns the smallest and largest state present in the frame.
func (f Frame) Bounds() (lo, hi uint8) {
	if len(f.cells) == 0 {
		return 0, 0
	}
	lo, hi = f.cells[0], f.cells[0]
	for _, c := range f.cells[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return lo, hi
}
