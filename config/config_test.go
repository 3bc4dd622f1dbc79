package config

import (
	"errors"
	"testing"

	"github.com/beanboi7/chyp8/emu/keypad"

	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, 60, s.Clock)
	assert.Equal(t, 60, s.Refresh)
	assert.Equal(t, 10.0, s.Scale)
	assert.Equal(t, 440.0, s.Tone)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, keypad.Default(), s.Keys)
	assert.False(t, s.Mute)
	assert.False(t, s.Debug)
	assert.False(t, s.Trace)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyClock, 700)
	v.Set(KeyScale, 4)
	v.Set(KeyKeys, "0123456789ABCDEF")
	v.Set(KeySeed, 1234)
	v.Set(KeyMute, true)

	s, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, 700, s.Clock)
	assert.Equal(t, 4.0, s.Scale)
	assert.Equal(t, uint64(1234), s.Seed)
	assert.True(t, s.Mute)

	index, ok := s.Keys.Index('b')
	assert.True(t, ok)
	assert.Equal(t, 0xB, index)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{"zero clock", KeyClock, 0, ErrInvalid},
		{"negative refresh", KeyRefresh, -1, ErrInvalid},
		{"refresh too high", KeyRefresh, MaxRefresh + 1, ErrInvalid},
		{"refresh beyond ticker resolution", KeyRefresh, 2_000_000_000, ErrInvalid},
		{"tiny scale", KeyScale, 0.5, ErrInvalid},
		{"no tone", KeyTone, 0, ErrInvalid},
		{"short layout", KeyKeys, "123", keypad.ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestLoadMaxRefresh(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyRefresh, MaxRefresh)

	s, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, MaxRefresh, s.Refresh)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
