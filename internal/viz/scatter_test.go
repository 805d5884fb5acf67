package viz

import (
	"strings"
	"testing"
)

func TestScatterChart(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 2, 4, 6}

	chart := ScatterChart(xs, ys, 20, 8)
	if chart == "" {
		t.Fatal("expected output")
	}

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 8+3 {
		t.Errorf("expected %d lines, got %d", 8+3, len(lines))
	}
	if !strings.Contains(lines[0], "┌") || !strings.Contains(lines[len(lines)-2], "└") {
		t.Error("missing frame")
	}

	lit := false
	for _, r := range chart {
		if r > 0x2800 && r <= 0x28FF {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("no dots plotted")
	}
}

func TestScatterChart_BadInput(t *testing.T) {
	if ScatterChart([]float64{1}, []float64{1, 2}, 10, 4) != "" {
		t.Error("expected empty output for mismatched series")
	}
	if ScatterChart(nil, nil, 10, 4) != "" {
		t.Error("expected empty output for empty series")
	}
}

func TestScatterChart_ConstantSeries(t *testing.T) {
	xs := []float64{5, 5, 5}
	ys := []float64{1, 2, 3}
	if ScatterChart(xs, ys, 10, 4) == "" {
		t.Error("constant x series should still plot")
	}
}

func TestBrailleGridBounds(t *testing.T) {
	g := newBrailleGrid(2, 2)
	g.set(-1, 0)
	g.set(0, -5)
	g.set(100, 100)
	for _, row := range g.cells {
		for _, r := range row {
			if r != 0x2800 {
				t.Error("out-of-range set should not light dots")
			}
		}
	}

	g.set(3, 7)
	if g.cells[1][1] == 0x2800 {
		t.Error("expected bottom-right dot lit")
	}
}
