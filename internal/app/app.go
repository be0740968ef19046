//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wormlife/internal/render"
	"wormlife/pkg/engine"
)

// Game adapts a wormlife simulation to the ebiten.Game interface.
type Game struct {
	sim     *engine.Simulation
	painter *render.GridPainter
	palette []color.RGBA

	display   []uint8
	endpoints []int

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. Wormhole endpoints are
// precomputed once; the registry is static during a run.
func New(sim *engine.Simulation, scale int) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		palette: render.DefaultPalette(),
		display: make([]uint8, size.Area()),
		scale:   scale,
	}
	for _, c := range sim.Wormholes().Endpoints() {
		g.endpoints = append(g.endpoints, c.Row*size.W+c.Col)
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation with wormhole endpoints tinted.
func (g *Game) Draw(screen *ebiten.Image) {
	copy(g.display, g.sim.Cells())
	for _, idx := range g.endpoints {
		g.display[idx] += render.CellHoleDead
	}
	g.painter.Blit(screen, g.display, g.palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W * g.scale, size.H * g.scale
}
