// Package trace loads precomputed cellular-automaton traces.
//
// A trace is a single comma-delimited file in which every simulation time
// step is written as a block of rows, one block after another:
//
//   - [StateMatrix]: the whole file as a rows x width grid of uint8 states
//   - [Frame]: a bounded, zero-copy view of one time step
//
// # Truncation
//
// The number of time steps is rows / height using floor division. Rows that
// do not complete a final block are left out of the frame sequence; this is
// not an error.
//
// # Example
//
//	m, err := trace.Load("data/output.csv", 300)
//	if err != nil {
//		return err
//	}
//	for i, f := range m.Frames(300) {
//		fmt.Println(i, f.At(0, 0))
//	}
package trace
