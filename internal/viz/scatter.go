package viz

import (
	"fmt"
	"strings"
)

// Braille patterns pack 2x4 dots per cell, unicode offset 0x2800.
var brailleDots = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type brailleGrid struct {
	width, height int
	cells         [][]rune
}

func newBrailleGrid(w, h int) *brailleGrid {
	g := &brailleGrid{width: w, height: h, cells: make([][]rune, h)}
	for i := range g.cells {
		g.cells[i] = make([]rune, w)
		for j := range g.cells[i] {
			g.cells[i][j] = 0x2800
		}
	}
	return g
}

// set lights the dot at sub-pixel (x, y). The grid spans width*2 by height*4
// sub-pixels.
func (g *brailleGrid) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= g.width || row >= g.height {
		return
	}
	g.cells[row][col] |= brailleDots[y%4][x%2]
}

// ScatterChart plots ys against xs as a framed braille scatter. Both series
// must have the same length.
func ScatterChart(xs, ys []float64, width, height int) string {
	if len(xs) == 0 || len(xs) != len(ys) {
		return ""
	}

	minX, maxX := seriesRange(xs)
	minY, maxY := seriesRange(ys)

	grid := newBrailleGrid(width, height)
	subW, subH := width*2, height*4
	for i := range xs {
		px := int(float64(subW-1) * (xs[i] - minX) / (maxX - minX))
		py := int(float64(subH-1) * (ys[i] - minY) / (maxY - minY))
		grid.set(px, subH-1-py)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%8.1f ┌%s┐\n", maxY, strings.Repeat("─", width)))
	for i, row := range grid.cells {
		if i == height/2 {
			b.WriteString(fmt.Sprintf("%8.1f │", (maxY+minY)/2))
		} else {
			b.WriteString("         │")
		}
		b.WriteString(string(row))
		b.WriteString("│\n")
	}
	b.WriteString(fmt.Sprintf("%8.1f └%s┘\n", minY, strings.Repeat("─", width)))

	padding := width - 20
	if padding < 0 {
		padding = 0
	}
	b.WriteString(fmt.Sprintf("          %-10.1f%s%10.1f\n", minX, strings.Repeat(" ", padding), maxX))
	return b.String()
}

func seriesRange(vs []float64) (float64, float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}
