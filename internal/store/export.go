package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/diffeq/internal/deq"
)

type exportPayload struct {
	Meta   RunMetadata `json:"meta"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// ExportJSON writes a run's metadata and trajectory as a single JSON
// document.
func ExportJSON(w io.Writer, meta RunMetadata, sol *deq.Solution) error {
	states := make([][]float64, sol.Len())
	for i, y := range sol.States {
		states[i] = y
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportPayload{Meta: meta, Times: sol.Times, States: states})
}
