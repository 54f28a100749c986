package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"

	"wolfram-ca/internal/automaton"
)

// GIFOptions controls animated GIF encoding.
type GIFOptions struct {
	// Scale is the pixel size of one cell. Values below 1 are treated as 1.
	Scale int
	// Delay is the per-frame delay in 100ths of a second.
	Delay int
	// FinalDelay holds the completed picture on screen before the loop
	// restarts. Zero means Delay.
	FinalDelay int
}

// DefaultGIFOptions returns sensible encoding defaults.
func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Scale: 4, Delay: 5, FinalDelay: 200}
}

// EncodeGIF writes a history as a looping animated GIF with one frame
// per generation, revealed progressively.
func EncodeGIF(w io.Writer, hist automaton.History, opts GIFOptions) error {
	if len(hist) == 0 {
		return fmt.Errorf("empty history")
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	delay := opts.Delay
	if delay < 0 {
		delay = 0
	}
	finalDelay := opts.FinalDelay
	if finalDelay <= 0 {
		finalDelay = delay
	}

	palette := make(color.Palette, 0, 3)
	for _, c := range Palette() {
		palette = append(palette, c)
	}

	frames := Frames(hist)
	anim := gif.GIF{LoopCount: 0}
	for t, frame := range frames {
		img := paletteImage(frame, palette, scale)
		anim.Image = append(anim.Image, img)
		if t == len(frames)-1 {
			anim.Delay = append(anim.Delay, finalDelay)
		} else {
			anim.Delay = append(anim.Delay, delay)
		}
	}
	return gif.EncodeAll(w, &anim)
}

func paletteImage(g *Grid, palette color.Palette, scale int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.W*scale, g.H*scale), palette)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := cells[g.Index(x, y)]
			for dy := 0; dy < scale; dy++ {
				row := (y*scale + dy) * img.Stride
				for dx := 0; dx < scale; dx++ {
					img.Pix[row+x*scale+dx] = v
				}
			}
		}
	}
	return img
}
