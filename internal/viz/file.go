package viz

import (
	"fmt"

	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveTimeSeries writes a solution's components as a line plot. The output
// format follows the file extension (.png, .svg, .pdf).
func SaveTimeSeries(path, title string, sol *deq.Solution, maxLines int) error {
	if sol.Len() == 0 {
		return fmt.Errorf("viz: no data to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "y"

	numVars := len(sol.States[0])
	if numVars > maxLines {
		numVars = maxLines
	}

	args := make([]interface{}, 0, 2*numVars)
	for idx := 0; idx < numVars; idx++ {
		xys := make(plotter.XYs, sol.Len())
		for i := range sol.Times {
			xys[i].X = sol.Times[i]
			xys[i].Y = sol.States[i][idx]
		}
		args = append(args, fmt.Sprintf("y%d", idx), xys)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SavePhasePortrait writes an x-y phase plot of two state components.
func SavePhasePortrait(path, title string, sol *deq.Solution, xIdx, yIdx int) error {
	if sol.Len() == 0 {
		return fmt.Errorf("viz: no data to plot")
	}
	n := len(sol.States[0])
	if xIdx >= n || yIdx >= n {
		return fmt.Errorf("viz: axes (%d,%d) out of range for %d components", xIdx, yIdx, n)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("y%d", xIdx)
	p.Y.Label.Text = fmt.Sprintf("y%d", yIdx)

	xys := make(plotter.XYs, sol.Len())
	for i := range sol.Times {
		xys[i].X = sol.States[i][xIdx]
		xys[i].Y = sol.States[i][yIdx]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
