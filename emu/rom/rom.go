// Package rom reads CHIP-8 program images from disk.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/emu/cpu"

	homedir "github.com/mitchellh/go-homedir"
)

var ErrEmpty = errors.New("ROM is empty")

// Load reads the ROM at path. A leading ~ is expanded to the home directory.
// Images that do not fit between 0x200 and the end of memory are rejected
// with an error wrapping cpu.ErrProgramTooLarge.
func Load(path string) ([]byte, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding ROM path %q: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("ROM %q: %w", expanded, err)
	}
	return data, nil
}

// Validate checks that data is a loadable program image.
func Validate(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	if len(data) > cpu.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d", cpu.ErrProgramTooLarge, len(data), cpu.MaxProgramSize)
	}
	return nil
}
