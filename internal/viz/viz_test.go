package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
)

func trajectory() *deq.Solution {
	sol := deq.NewSolution(50)
	for i := 0; i < 50; i++ {
		t := float64(i) * 0.1
		sol.Push(t, deq.State{t, -t})
	}
	return sol
}

func TestPlotComponents(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotComponents(&buf, trajectory(), []string{"x", "v"}, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "x") || !strings.Contains(out, "v") {
		t.Error("expected captions in output")
	}
}

func TestPlotComponentsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotComponents(&buf, deq.NewSolution(0), nil, 2); err == nil {
		t.Error("expected error for empty solution")
	}
}

func TestPlotComponentsCapsAtMaxPlots(t *testing.T) {
	sol := deq.NewSolution(10)
	for i := 0; i < 10; i++ {
		sol.Push(float64(i), deq.State{1, 2, 3, 4, 5})
	}

	var buf bytes.Buffer
	if err := PlotComponents(&buf, sol, nil, 2); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "y2 vs time") {
		t.Error("components beyond maxPlots should not be drawn")
	}
}

func TestPhaseScatter(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 0, -1}

	var buf bytes.Buffer
	if err := PhaseScatter(&buf, x, y, 40, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Legend") {
		t.Error("expected legend in output")
	}
}

func TestPhaseScatterMismatched(t *testing.T) {
	var buf bytes.Buffer
	if err := PhaseScatter(&buf, []float64{1, 2}, []float64{1}, 40, 10); err == nil {
		t.Error("expected error for mismatched series")
	}
}
