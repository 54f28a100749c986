//go:build !ebiten

package ui

// Status describes the evolution state shown by the HUD.
type Status struct {
	Rule       uint8
	Generation int
	Width      int
	Paused     bool
}

// HUD is a no-op placeholder used when the ebiten build tag is absent.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Status) {}
