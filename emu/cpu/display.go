package cpu

import "strings"

const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome framebuffer, row-major, true = pixel lit.
// It is an array, so assigning or returning it copies every pixel.
type Display [DisplayHeight][DisplayWidth]bool

// drawSprite XORs each sprite row onto the display at (x, y), wrapping at the
// edges. It reports whether any lit pixel was switched off.
func (d *Display) drawSprite(x, y int, sprite []uint8) bool {
	erased := false
	for row, bits := range sprite {
		py := (y + row) % DisplayHeight
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (x + col) % DisplayWidth
			if d[py][px] {
				erased = true
			}
			d[py][px] = !d[py][px]
		}
	}
	return erased
}

// Lit returns the number of lit pixels.
func (d Display) Lit() int {
	n := 0
	for _, row := range d {
		for _, px := range row {
			if px {
				n++
			}
		}
	}
	return n
}

// String renders the display as text, '#' for lit pixels and '.' otherwise.
func (d Display) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for _, row := range d {
		for _, px := range row {
			if px {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
