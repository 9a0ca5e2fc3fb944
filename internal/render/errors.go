package render

import (
	"errors"
	"fmt"
)

// Domain errors for rendering and encoding.
var (
	// ErrRender is matched by every error returned from this package.
	ErrRender = errors.New("render: rendering failed")

	// ErrNoFrames indicates an attempt to write an animation without frames.
	ErrNoFrames = errors.New("render: no frames to encode")

	// ErrCanvasSize indicates a canvas or image area smaller than one pixel.
	ErrCanvasSize = errors.New("render: canvas too small")

	// ErrFrameOrder indicates a step index that skips or repeats a frame.
	ErrFrameOrder = errors.New("render: frame out of order")

	// ErrFrameShape indicates a frame whose dimensions differ from the first.
	ErrFrameShape = errors.New("render: frame shape mismatch")

	// ErrState indicates an operation invalid in the animator's current state.
	ErrState = errors.New("render: invalid animator state")
)

// RenderError wraps a failure with the operation and frame it occurred in.
// Frame is -1 when no frame is involved.
type RenderError struct {
	Op    string
	Frame int
	Err   error
}

func (e *RenderError) Error() string {
	if e.Frame < 0 {
		return fmt.Sprintf("render: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render: %s frame %d: %v", e.Op, e.Frame, e.Err)
}

func (e *RenderError) Unwrap() []error {
	return []error{ErrRender, e.Err}
}

func renderErr(op string, frame int, err error) error {
	return &RenderError{Op: op, Frame: frame, Err: err}
}
