// Package beeper plays the buzzer tone on the default audio device.
package beeper

import (
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/audio"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

type Beeper struct {
	ctrl *beep.Ctrl
}

// New initializes the speaker and starts a paused tone of freq Hz.
func New(freq float64) (*Beeper, error) {
	sr := audio.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	ctrl := &beep.Ctrl{
		Streamer: audio.Tone(sr, freq, audio.Volume),
		Paused:   true,
	}
	speaker.Play(ctrl)

	return &Beeper{ctrl: ctrl}, nil
}

// SetActive starts or pauses the tone.
func (b *Beeper) SetActive(active bool) {
	speaker.Lock()
	b.ctrl.Paused = !active
	speaker.Unlock()
}
