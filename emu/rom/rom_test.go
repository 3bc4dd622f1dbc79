package rom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beanboi7/chyp8/emu/cpu"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func writeROM(t *testing.T, size int) string {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = uint8(i)
	}
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"small", 2, nil},
		{"maximum", cpu.MaxProgramSize, nil},
		{"too large", cpu.MaxProgramSize + 1, cpu.ErrProgramTooLarge},
		{"empty", 0, ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeROM(t, tt.size)

			data, err := Load(path)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, 0, len(data))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.size, len(data))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadIntoEMU(t *testing.T) {
	path := writeROM(t, 64)

	data, err := Load(path)
	assert.NoError(t, err)

	emu := cpu.NewEMU()
	assert.NoError(t, emu.LoadProgram(data))

	got := make([]byte, len(data))
	for i := range got {
		got[i] = emu.Memory(cpu.ProgramStart + uint16(i))
	}
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("memory: (-want, +got)\n%s", diff)
	}
}
