// Package audio generates the buzzer tone played while the sound timer runs.
package audio

import (
	"github.com/faiface/beep"
)

const (
	SampleRate = beep.SampleRate(44100)
	Volume     = 0.15
)

// Tone returns an endless square wave at freq Hz.
func Tone(sr beep.SampleRate, freq, volume float64) beep.Streamer {
	period := float64(sr) / freq
	var pos float64

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := volume
			if pos >= period/2 {
				v = -volume
			}
			samples[i][0] = v
			samples[i][1] = v

			pos++
			if pos >= period {
				pos -= period
			}
		}
		return len(samples), true
	})
}

// Silent is a buzzer that never makes a sound.
type Silent struct{}

func (Silent) SetActive(bool) {}
