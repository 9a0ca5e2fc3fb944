// Package pipeline wires loading, frame indexing and rendering into a single
// run that produces the animation file.
package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/fireanim/internal/config"
	"github.com/san-kum/fireanim/internal/render"
	"github.com/san-kum/fireanim/internal/trace"
	"github.com/san-kum/fireanim/internal/viz"
)

// Report summarises a completed run.
type Report struct {
	Rows    int
	Frames  int
	Dropped int
	Output  string
	Bytes   int64
	Elapsed time.Duration
}

// Run renders cfg.Input to cfg.Output. Any error aborts the run before the
// output file is created.
func Run(cfg *config.Config, rep *viz.Reporter) (*Report, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rep.Info("loading %s", cfg.Input)
	m, err := trace.Load(cfg.Input, cfg.WidthPerState)
	if err != nil {
		return nil, err
	}

	anim, err := Animate(m, cfg.HeightPerState, cfg.RenderOptions(), rep)
	if err != nil {
		return nil, err
	}

	if err := render.WriteFile(cfg.Output, anim); err != nil {
		return nil, err
	}

	report := &Report{
		Rows:    m.Rows(),
		Frames:  anim.Len(),
		Dropped: m.Remainder(cfg.HeightPerState),
		Output:  cfg.Output,
		Elapsed: time.Since(start),
	}
	if info, err := os.Stat(cfg.Output); err == nil {
		report.Bytes = info.Size()
	}
	return report, nil
}

// Animate steps every complete frame of m through a new animator in order.
// A matrix without a complete frame yields an animator with no frames.
func Animate(m *trace.StateMatrix, height int, opts render.Options, rep *viz.Reporter) (*render.Animator, error) {
	n := m.NumStates(height)
	if dropped := m.Remainder(height); dropped > 0 {
		rep.Warn("%d trailing rows do not fill a frame of %d and are skipped", dropped, height)
	}

	anim := render.NewAnimator(opts)
	if n == 0 {
		return anim, nil
	}

	first, err := m.Frame(0, height)
	if err != nil {
		return nil, err
	}
	if err := anim.Init(first); err != nil {
		return nil, err
	}

	rep.Info("rendering %d frames of %dx%d", n, m.Width(), height)
	every := max(n/10, 1)
	for i, f := range m.Frames(height) {
		if err := anim.Step(i, f); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if (i+1)%every == 0 || i+1 == n {
			rep.Progress(i+1, n)
		}
	}
	return anim, nil
}
