package census

import (
	"encoding/json"
	"io"

	"github.com/san-kum/fireanim/internal/trace"
)

type ExportData struct {
	Rows    int                  `json:"rows"`
	Width   int                  `json:"width"`
	Height  int                  `json:"height"`
	Frames  int                  `json:"frames"`
	Dropped int                  `json:"dropped_rows"`
	Totals  map[string]int       `json:"totals"`
	Series  map[string][]float64 `json:"series"`
}

// Export collects per-state totals and per-frame series for every state
// present in the complete frames of m.
func Export(m *trace.StateMatrix, height int) ExportData {
	total := Summary(m, height)
	data := ExportData{
		Rows:    m.Rows(),
		Width:   m.Width(),
		Height:  height,
		Frames:  m.NumStates(height),
		Dropped: m.Remainder(height),
		Totals:  make(map[string]int),
		Series:  make(map[string][]float64),
	}
	for _, s := range total.Present() {
		name := StateName(s)
		data.Totals[name] = total[s]
		data.Series[name] = Series(m, height, s)
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
