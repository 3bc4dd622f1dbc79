package screen

import (
	"github.com/beanboi7/chyp8/emu/cpu"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

// Render draws every lit pixel of display as a scale x scale square. The
// frame becomes visible on the next Update.
func (w *Window) Render(display cpu.Display) {
	w.imd.Clear()
	w.imd.Color = colornames.White

	for y, row := range display {
		// pixel's origin is the bottom left corner
		top := float64(cpu.DisplayHeight-y) * w.scale
		for x, lit := range row {
			if !lit {
				continue
			}
			left := float64(x) * w.scale
			w.imd.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			w.imd.Rectangle(0)
		}
	}

	w.Clear(colornames.Black)
	w.imd.Draw(w.Window)
}
