package audio

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestToneIsSquareWave(t *testing.T) {
	// 8 samples per period
	tone := Tone(800, 100, 0.5)

	samples := make([][2]float64, 20)
	n, ok := tone.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, len(samples), n)

	want := []float64{0.5, 0.5, 0.5, 0.5, -0.5, -0.5, -0.5, -0.5}
	for i, s := range samples {
		assert.Equal(t, want[i%len(want)], s[0])
		assert.Equal(t, s[0], s[1])
	}
}

func TestToneContinuesAcrossCalls(t *testing.T) {
	tone := Tone(800, 100, 1)

	first := make([][2]float64, 3)
	tone.Stream(first)
	second := make([][2]float64, 3)
	tone.Stream(second)

	assert.Equal(t, 1.0, second[0][0])
	assert.Equal(t, -1.0, second[1][0])
}

func TestSilent(t *testing.T) {
	var s Silent
	s.SetActive(true)
	s.SetActive(false)
}
