//go:build ebiten

package app

import (
	"time"

	"wolfram-ca/internal/automaton"
	"wolfram-ca/internal/core"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/rule"
	"wolfram-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the automaton engine to the ebiten.Game interface. The
// window shows the most recent generations, each centered and clipped
// to the view width as the lattice outgrows it.
type Game struct {
	table  rule.Table
	seeder automaton.Seeder

	hist    automaton.History
	painter *render.GridPainter
	hud     *ui.HUD
	ticker  *core.FixedStep
	cells   []uint8

	width    int
	rows     int
	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	err error
}

// New constructs a Game for the provided rule table and seeder.
func New(table rule.Table, seeder automaton.Seeder, cfg *Config) *Game {
	g := &Game{
		table:   table,
		seeder:  seeder,
		painter: render.NewGridPainter(cfg.Width, cfg.Rows),
		hud:     ui.NewHUD(),
		ticker:  core.NewFixedStep(cfg.TPS),
		cells:   make([]uint8, cfg.Width*cfg.Rows),
		width:   cfg.Width,
		rows:    cfg.Rows,
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset reinitializes the evolution with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.tickOnce = false
	initial, err := g.seeder(g.width, core.NewRNG(seed))
	if err != nil {
		g.err = err
		return
	}
	g.hist = automaton.History{initial}
}

// Update handles per-frame logic and advances the evolution.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce {
		g.step()
		g.tickOnce = false
	} else if !g.paused && g.ticker.ShouldStep() {
		g.step()
	}
	return nil
}

func (g *Game) step() {
	g.hist = append(g.hist, automaton.Next(g.table, g.hist.Final()))
}

// Draw renders the visible slice of the evolution.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fillCells()
	g.painter.Blit(screen, g.cells, g.scale)
	g.hud.Draw(screen, ui.Status{
		Rule:       g.table.Number(),
		Generation: len(g.hist) - 1,
		Width:      len(g.hist.Final()),
		Paused:     g.paused,
	})
}

// fillCells copies the newest generations into the fixed view buffer,
// centering narrow rows and clipping rows wider than the view.
func (g *Game) fillCells() {
	for i := range g.cells {
		g.cells[i] = render.CellUnborn
	}
	first := 0
	if len(g.hist) > g.rows {
		first = len(g.hist) - g.rows
	}
	for y, gen := 0, first; gen < len(g.hist); y, gen = y+1, gen+1 {
		row := g.hist[gen]
		dst := g.cells[y*g.width : (y+1)*g.width]
		if len(row) <= g.width {
			off := (g.width - len(row)) / 2
			copy(dst[off:], row)
			continue
		}
		start := (len(row) - g.width) / 2
		copy(dst, row[start:start+g.width])
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * g.scale, g.rows * g.scale
}
