//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status describes the evolution state shown by the HUD.
type Status struct {
	Rule       uint8
	Generation int
	Width      int
	Paused     bool
}

// HUD draws a single status line over the simulation view.
type HUD struct {
	face   *basicfont.Face
	shadow color.Color
	ink    color.Color
}

// NewHUD constructs a HUD instance.
func NewHUD() *HUD {
	return &HUD{
		face:   basicfont.Face7x13,
		shadow: color.RGBA{R: 255, G: 255, B: 255, A: 200},
		ink:    color.RGBA{R: 32, G: 32, B: 32, A: 255},
	}
}

// Draw renders the status line in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	line := fmt.Sprintf("rule %d  gen %d  width %d", s.Rule, s.Generation, s.Width)
	if s.Paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, h.face, 7, 17, h.shadow)
	text.Draw(screen, line, h.face, 6, 16, h.ink)
}
