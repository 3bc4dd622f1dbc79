package cpu

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayString(t *testing.T) {
	var d Display
	d.drawSprite(0, 0, []uint8{0xA0})
	d.drawSprite(63, 31, []uint8{0x80})

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Equal(t, DisplayHeight, len(lines))
	assert.Equal(t, "#.#"+strings.Repeat(".", DisplayWidth-3), lines[0])
	assert.Equal(t, strings.Repeat(".", DisplayWidth-1)+"#", lines[DisplayHeight-1])
	assert.Equal(t, 3, d.Lit())
}

func TestDrawSpriteReportsErase(t *testing.T) {
	var d Display
	assert.False(t, d.drawSprite(10, 10, []uint8{0xFF}))
	assert.False(t, d.drawSprite(18, 10, []uint8{0xFF}))
	assert.True(t, d.drawSprite(17, 10, []uint8{0x80}))
	assert.False(t, d[10][17])
	assert.Equal(t, 15, d.Lit())
}
