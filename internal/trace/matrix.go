package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// StateMatrix holds every time step of a trace stacked vertically. Cells are
// stored row-major and never modified after loading.
type StateMatrix struct {
	rows  int
	width int
	cells []uint8
}

// NewStateMatrix wraps cells as a rows x width matrix. It takes ownership of
// cells; callers must not modify the slice afterwards.
func NewStateMatrix(cells []uint8, width int) (*StateMatrix, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrParameterBounds, width)
	}
	if len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not fill rows of width %d", ErrDataFormat, len(cells), width)
	}
	return &StateMatrix{rows: len(cells) / width, width: width, cells: cells}, nil
}

// Load reads the trace at path, keeping the first width columns of each row.
func Load(path string, width int) (*StateMatrix, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notFoundError{Path: path, Wrapped: err}
		}
		return nil, err
	}
	defer file.Close()

	return Parse(file, width)
}

// Parse reads comma-delimited rows from r. Blank or whitespace-only lines and
// lines starting with '#' are skipped. Columns past width are ignored, which
// also absorbs the trailing comma the simulator writes at the end of each row.
func Parse(r io.Reader, width int) (*StateMatrix, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrParameterBounds, width)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.ReuseRecord = true

	cells := make([]uint8, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &DataFormatError{Line: perr.Line, Column: perr.Column, Reason: perr.Err.Error()}
			}
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		line, _ := cr.FieldPos(0)

		if len(record) < width {
			return nil, &DataFormatError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, got %d", width, len(record)),
			}
		}

		for j := 0; j < width; j++ {
			tok := strings.TrimSpace(record[j])
			v, err := strconv.ParseUint(tok, 10, 8)
			if err != nil {
				reason := "not an unsigned integer"
				if errors.Is(err, strconv.ErrRange) {
					reason = "value outside 0..255"
				}
				return nil, &DataFormatError{Line: line, Column: j + 1, Token: tok, Reason: reason}
			}
			cells = append(cells, uint8(v))
		}
	}

	return &StateMatrix{rows: len(cells) / width, width: width, cells: cells}, nil
}

// Rows returns the total number of loaded rows across all time steps.
func (m *StateMatrix) Rows() int { return m.rows }

// Width returns the number of columns per row.
func (m *StateMatrix) Width() int { return m.width }

// At returns the state at (row, col) of the full matrix.
func (m *StateMatrix) At(row, col int) uint8 {
	return m.cells[row*m.width+col]
}

// NumStates returns how many complete frames of the given height the matrix
// holds. Trailing rows that do not fill a frame are not counted.
func (m *StateMatrix) NumStates(height int) int {
	if height <= 0 {
		return 0
	}
	return m.rows / height
}

// Remainder returns the number of trailing rows dropped by NumStates.
func (m *StateMatrix) Remainder(height int) int {
	if height <= 0 {
		return m.rows
	}
	return m.rows % height
}
