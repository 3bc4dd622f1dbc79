// Package config holds the emulator settings read through viper and builds
// the logger.
package config

import (
	"errors"
	"fmt"

	"github.com/beanboi7/chyp8/emu/keypad"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

// Configuration keys, shared by flags, the config file and CHYP8_* variables.
const (
	KeyClock   = "clock"
	KeyRefresh = "refresh"
	KeyScale   = "scale"
	KeyTone    = "tone"
	KeyMute    = "mute"
	KeyKeys    = "keys"
	KeySeed    = "seed"
	KeyDebug   = "debug"
	KeyQuiet   = "quiet"
	KeyTrace   = "trace"
)

var ErrInvalid = errors.New("invalid configuration")

// MaxRefresh bounds the frame rate so the frame interval stays well above zero.
const MaxRefresh = 1000

type Settings struct {
	Clock   int     // instructions per second
	Refresh int     // frames per second
	Scale   float64 // window pixels per display pixel
	Tone    float64 // buzzer frequency in Hz
	Mute    bool
	Keys    keypad.Layout
	Seed    uint64 // random seed for CXKK, 0 picks one
	Debug   bool
	Quiet   bool
	Trace   bool
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyClock, 60)
	v.SetDefault(KeyRefresh, 60)
	v.SetDefault(KeyScale, 10.0)
	v.SetDefault(KeyTone, 440.0)
	v.SetDefault(KeyMute, false)
	v.SetDefault(KeyKeys, keypad.DefaultLayout)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyTrace, false)
}

// Load reads and validates the settings from v.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Clock:   v.GetInt(KeyClock),
		Refresh: v.GetInt(KeyRefresh),
		Scale:   v.GetFloat64(KeyScale),
		Tone:    v.GetFloat64(KeyTone),
		Mute:    v.GetBool(KeyMute),
		Seed:    v.GetUint64(KeySeed),
		Debug:   v.GetBool(KeyDebug),
		Quiet:   v.GetBool(KeyQuiet),
		Trace:   v.GetBool(KeyTrace),
	}

	layout, err := keypad.Parse(v.GetString(KeyKeys))
	if err != nil {
		return s, err
	}
	s.Keys = layout

	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Clock <= 0 {
		return fmt.Errorf("%w: clock must be positive, got %d", ErrInvalid, s.Clock)
	}
	if s.Refresh <= 0 || s.Refresh > MaxRefresh {
		return fmt.Errorf("%w: refresh rate must be between 1 and %d, got %d", ErrInvalid, MaxRefresh, s.Refresh)
	}
	if s.Scale < 1 {
		return fmt.Errorf("%w: scale must be at least 1, got %g", ErrInvalid, s.Scale)
	}
	if s.Tone <= 0 {
		return fmt.Errorf("%w: tone must be positive, got %g", ErrInvalid, s.Tone)
	}
	return nil
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
