package viz

import (
	"fmt"
	"io"
	"strings"
)

// PhaseScatter renders an ASCII phase-plane scatter of two series, marking
// early, middle and late points with different glyphs.
func PhaseScatter(w io.Writer, xData, yData []float64, width, height int) error {
	if len(xData) == 0 || len(xData) != len(yData) {
		return fmt.Errorf("viz: phase plot needs matching nonempty series")
	}

	xMin, xMax := xData[0], xData[0]
	yMin, yMax := yData[0], yData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if yData[i] < yMin {
			yMin = yData[i]
		}
		if yData[i] > yMax {
			yMax = yData[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			if i < len(xData)/3 {
				canvas[py][px] = '.'
			} else if i < 2*len(xData)/3 {
				canvas[py][px] = 'o'
			} else {
				canvas[py][px] = '●'
			}
		}
	}

	fmt.Fprintf(w, "  %.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(w, "  %.2f │", (yMax+yMin)/2)
		} else {
			fmt.Fprint(w, "       │")
		}
		fmt.Fprint(w, string(canvas[i]))
		fmt.Fprintln(w, "│")
	}
	fmt.Fprintf(w, "  %.2f └%s┘\n", yMin, strings.Repeat("─", width))

	padding := width - 20
	if padding < 1 {
		padding = 1
	}
	fmt.Fprintf(w, "       %.2f%s%.2f\n", xMin, strings.Repeat(" ", padding), xMax)
	fmt.Fprintf(w, "\nLegend: . = early, o = middle, ● = late\n")

	return nil
}
