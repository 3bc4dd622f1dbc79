// Package keypad maps physical keyboard keys to CHIP-8 key indexes.
//
// A layout is written as 16 characters; the character at position i is the
// keyboard key for CHIP-8 key i. The default places the COSMAC VIP pad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// on the left block of a QWERTY keyboard (1234 / QWER / ASDF / ZXCV).
package keypad

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/beanboi7/chyp8/emu/cpu"
)

const DefaultLayout = "x123qweasdzc4rfv"

var ErrInvalidLayout = errors.New("invalid keypad layout")

// Layout holds the keyboard character for each key index.
type Layout [cpu.KeyCount]rune

// Default returns the QWERTY layout.
func Default() Layout {
	l, _ := Parse(DefaultLayout)
	return l
}

// Parse reads a layout of 16 distinct characters from a-z and 0-9.
// Upper case letters are accepted.
func Parse(s string) (Layout, error) {
	var l Layout

	runes := []rune(strings.ToLower(s))
	if len(runes) != cpu.KeyCount {
		return l, fmt.Errorf("%w: %q has %d keys, want %d", ErrInvalidLayout, s, len(runes), cpu.KeyCount)
	}

	seen := make(map[rune]bool, cpu.KeyCount)
	for i, r := range runes {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return l, fmt.Errorf("%w: unsupported key %q", ErrInvalidLayout, r)
		}
		if seen[r] {
			return l, fmt.Errorf("%w: key %q is used twice", ErrInvalidLayout, r)
		}
		seen[r] = true
		l[i] = r
	}
	return l, nil
}

// Index returns the key index bound to r.
func (l Layout) Index(r rune) (int, bool) {
	lower := unicode.ToLower(r)
	for i, key := range l {
		if key == lower {
			return i, true
		}
	}
	return 0, false
}

func (l Layout) String() string {
	return string(l[:])
}
