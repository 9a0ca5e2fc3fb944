// Package census counts cell states per frame of a forest-fire trace.
package census

import (
	"strconv"

	"github.com/san-kum/fireanim/internal/trace"
)

// Cell states written by the forest-fire simulator.
const (
	Empty   uint8 = 0
	Tree    uint8 = 1
	Fire    uint8 = 2
	Charred uint8 = 3
)

var names = map[uint8]string{
	Empty:   "empty",
	Tree:    "tree",
	Fire:    "fire",
	Charred: "charred",
}

// StateName returns the simulator's name for s, or "stateN" for states it
// does not define.
func StateName(s uint8) string {
	if n, ok := names[s]; ok {
		return n
	}
	return "state" + strconv.Itoa(int(s))
}

// Counts is a histogram of cell states.
type Counts [256]int

// Count tallies every cell of f.
func Count(f trace.Frame) Counts {
	var c Counts
	for _, s := range f.Cells() {
		c[s]++
	}
	return c
}

// Present returns the states with a non-zero count in ascending order.
func (c *Counts) Present() []uint8 {
	var out []uint8
	for s, n := range c {
		if n > 0 {
			out = append(out, uint8(s))
		}
	}
	return out
}

// Total returns the number of cells counted.
func (c *Counts) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}
	return t
}

// Series returns the count of state in every complete frame of m.
func Series(m *trace.StateMatrix, height int, state uint8) []float64 {
	out := make([]float64, 0, m.NumStates(height))
	for _, f := range m.Frames(height) {
		n := 0
		for _, s := range f.Cells() {
			if s == state {
				n++
			}
		}
		out = append(out, float64(n))
	}
	return out
}

// Summary totals all complete frames of m.
func Summary(m *trace.StateMatrix, height int) Counts {
	var total Counts
	for _, f := range m.Frames(height) {
		c := Count(f)
		for s, n := range c {
			total[s] += n
		}
	}
	return total
}
