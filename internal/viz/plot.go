package viz

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/diffeq/internal/deq"
)

// PlotComponents renders up to maxPlots state components of a solution as
// asciigraph line charts.
func PlotComponents(w io.Writer, sol *deq.Solution, captions []string, maxPlots int) error {
	if sol.Len() == 0 {
		return fmt.Errorf("viz: no data to plot")
	}

	numVars := len(sol.States[0])
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for idx := 0; idx < numVars; idx++ {
		data, err := sol.Component(idx)
		if err != nil {
			return err
		}

		caption := fmt.Sprintf("y%d vs time", idx)
		if idx < len(captions) && captions[idx] != "" {
			caption = captions[idx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Fprintln(w, graph)
		fmt.Fprintln(w)
	}

	return nil
}

// PlotSeries renders one float series.
func PlotSeries(w io.Writer, data []float64, caption string, height int) {
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)
}
