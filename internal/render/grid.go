// Package render turns automaton histories into text, paletted frames,
// and animated GIFs. The engine itself knows nothing about display.
package render

import "wolfram-ca/internal/automaton"

// Display values for grid cells. CellUnborn marks lattice positions a
// configuration has not grown into yet; it is distinct from both real
// cell states so renderers can tell "off" from "not there".
const (
	CellOff    uint8 = 0
	CellOn     uint8 = 1
	CellUnborn uint8 = 2
)

// Grid stores a 2D grid of display values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid of the given dimensions, all cells unborn.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, data: make([]uint8, w*h)}
	g.Fill(CellUnborn)
	return g
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Fill sets every cell to the provided value.
func (g *Grid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// blitRow centers row y of the grid on the given configuration. Growth
// is symmetric, so the margin is exact on both sides.
func (g *Grid) blitRow(y int, row automaton.Row) {
	off := (g.W - len(row)) / 2
	base := g.Index(off, y)
	copy(g.data[base:base+len(row)], row)
}

// Layout arranges a history into a rectangle as wide as the final
// configuration and one row per generation, each row centered with
// unborn cells filling the margins.
func Layout(hist automaton.History) *Grid {
	if len(hist) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(hist.Final()), len(hist))
	for y, row := range hist {
		g.blitRow(y, row)
	}
	return g
}

// Frames builds the progressive-reveal sequence: frame t shows
// generations 0..t in their final centered positions, with every later
// row still unborn.
func Frames(hist automaton.History) []*Grid {
	frames := make([]*Grid, len(hist))
	for t := range hist {
		g := NewGrid(len(hist.Final()), len(hist))
		for y := 0; y <= t; y++ {
			g.blitRow(y, hist[y])
		}
		frames[t] = g
	}
	return frames
}
