// Package driver paces a CHIP-8 machine: it forwards key state, calls Step
// at the configured clock rate, renders the display when it changed and keeps
// the buzzer in sync with the sound timer.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"

	"github.com/retroenv/retrogolib/log"
)

// Frontend is the window the machine is presented in.
type Frontend interface {
	// Update processes pending window and input events.
	Update()
	Closed() bool
	// Keys returns the pressed state of the 16 keypad keys.
	Keys() [cpu.KeyCount]bool
	Render(display cpu.Display)
}

// Buzzer plays a tone while active.
type Buzzer interface {
	SetActive(active bool)
}

// MaxRefreshHz caps the frame rate so the frame interval is never zero.
const MaxRefreshHz = 1000

type Options struct {
	ClockHz   int // instructions per second
	RefreshHz int // frames per second
}

// Stats counts what the driver has executed so far.
type Stats struct {
	Steps          uint64
	UnknownOpcodes uint64
	Frames         uint64
}

type Driver struct {
	emu      *cpu.EMU
	frontend Frontend
	buzzer   Buzzer
	logger   *log.Logger
	opts     Options

	keys    [cpu.KeyCount]bool
	buzzing bool
	seen    map[uint16]struct{} // unknown opcodes already reported
	stats   Stats
}

func New(emu *cpu.EMU, frontend Frontend, buzzer Buzzer, logger *log.Logger, opts Options) *Driver {
	if opts.RefreshHz <= 0 {
		opts.RefreshHz = 60
	}
	if opts.RefreshHz > MaxRefreshHz {
		opts.RefreshHz = MaxRefreshHz
	}
	if opts.ClockHz <= 0 {
		opts.ClockHz = opts.RefreshHz
	}

	return &Driver{
		emu:      emu,
		frontend: frontend,
		buzzer:   buzzer,
		logger:   logger,
		opts:     opts,
		seen:     map[uint16]struct{}{},
	}
}

// Run executes frames at the refresh rate until the context is cancelled,
// the window is closed or the machine hits a fatal error.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.opts.RefreshHz))
	defer ticker.Stop()
	defer d.setBuzzer(false)

	d.logger.Info("Emulation started",
		log.String("clock", fmt.Sprintf("%d Hz", d.opts.ClockHz)),
		log.String("refresh", fmt.Sprintf("%d Hz", d.opts.RefreshHz)))

	for {
		if err := d.Frame(); err != nil {
			d.logger.Error("Emulation stopped", log.Err(err))
			return err
		}
		if d.frontend.Closed() {
			d.logger.Info("Window closed")
			return nil
		}

		select {
		case <-ctx.Done():
			d.logger.Info("Emulation cancelled")
			return nil
		case <-ticker.C:
		}
	}
}

// Frame runs one frame: input, ClockHz/RefreshHz instructions, output.
func (d *Driver) Frame() error {
	d.frontend.Update()
	if err := d.forwardKeys(); err != nil {
		return err
	}

	for i := 0; i < d.StepsPerFrame(); i++ {
		if err := d.step(); err != nil {
			return err
		}
	}

	if d.emu.DrawPending() {
		d.frontend.Render(d.emu.DisplaySnapshot())
		d.emu.ClearDrawPending()
	}
	d.setBuzzer(d.emu.SoundTimer() > 0)

	d.stats.Frames++
	return nil
}

// StepsPerFrame returns how many instructions run per frame, at least one.
func (d *Driver) StepsPerFrame() int {
	n := d.opts.ClockHz / d.opts.RefreshHz
	if n < 1 {
		return 1
	}
	return n
}

func (d *Driver) Stats() Stats {
	return d.stats
}

func (d *Driver) step() error {
	pc := d.emu.PC()
	err := d.emu.Step()
	if cpu.IsFatal(err) {
		return fmt.Errorf("executing instruction at 0x%03X: %w", pc, err)
	}
	d.stats.Steps++

	var opErr *cpu.OpcodeError
	if errors.As(err, &opErr) {
		d.stats.UnknownOpcodes++
		if _, ok := d.seen[opErr.Opcode]; !ok {
			d.seen[opErr.Opcode] = struct{}{}
			d.logger.Info("Skipping unrecognized opcode",
				log.Hex("opcode", opErr.Opcode),
				log.Hex("address", opErr.PC))
		}
	}
	return nil
}

// forwardKeys passes key state changes since the last frame to the machine.
func (d *Driver) forwardKeys() error {
	keys := d.frontend.Keys()
	for index, pressed := range keys {
		if pressed == d.keys[index] {
			continue
		}
		if err := d.emu.SetKey(index, pressed); err != nil {
			return err
		}
	}
	d.keys = keys
	return nil
}

func (d *Driver) setBuzzer(active bool) {
	if active == d.buzzing {
		return
	}
	d.buzzing = active
	d.buzzer.SetActive(active)
}
