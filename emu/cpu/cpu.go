// Package cpu implements the CHIP-8 interpreter core: memory, registers,
// call stack, timers, keypad state and the 64x32 display, advanced one
// instruction at a time by Step.
package cpu

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

const (
	MemorySize    = 4096
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	ProgramStart   = uint16(0x200)
	MaxProgramSize = MemorySize - int(ProgramStart) // 0xE00

	flag = 0xF // VF
)

var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// glyphSize is the number of bytes per font glyph.
const glyphSize = 5

type EMU struct {
	memory     [MemorySize]uint8
	v          [RegisterCount]uint8
	index      uint16 //address register I
	pc         uint16
	display    Display
	delayTimer uint8 //counts down once per Step
	soundTimer uint8 //same as above
	stack      [StackSize]uint16
	sp         int
	keyState   [KeyCount]bool //tells whether key is pressed or not

	updateScreen bool  //set by CLS and DRW until the driver clears it
	fault        error //latched fatal error

	rng    *rand.Rand
	logger *log.Logger
	trace  bool
}

// Option configures an EMU.
type Option func(*EMU)

// WithLogger sets the logger used for instruction tracing.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) {
		emu.logger = logger
	}
}

// WithTrace enables a debug log line per executed instruction.
// It has no effect without a logger.
func WithTrace(trace bool) Option {
	return func(emu *EMU) {
		emu.trace = trace
	}
}

// WithRand sets the random source used by CXKK.
func WithRand(rng *rand.Rand) Option {
	return func(emu *EMU) {
		emu.rng = rng
	}
}

// NewEMU returns an initialized machine with the font loaded and PC at 0x200.
func NewEMU(opts ...Option) *EMU {
	emu := &EMU{}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.rng == nil {
		emu.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	emu.Initialize()
	return emu
}

// Initialize zeroes all machine state, sets PC to 0x200 and writes the
// font into memory[0:80]. A latched fatal error is cleared.
func (emu *EMU) Initialize() {
	emu.memory = [MemorySize]uint8{}
	emu.v = [RegisterCount]uint8{}
	emu.index = 0
	emu.pc = ProgramStart
	emu.display = Display{}
	emu.delayTimer = 0
	emu.soundTimer = 0
	emu.stack = [StackSize]uint16{}
	emu.sp = 0
	emu.keyState = [KeyCount]bool{}
	emu.updateScreen = false
	emu.fault = nil

	emu.loadFont()
}

func (emu *EMU) loadFont() {
	copy(emu.memory[:], FontSet[:])
}

// LoadProgram copies program into memory starting at 0x200. Programs larger
// than 0xE00 bytes are refused and memory is left untouched.
func (emu *EMU) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	copy(emu.memory[ProgramStart:], program)
	return nil
}

// SetKey records the pressed state of key index 0x0-0xF.
func (emu *EMU) SetKey(index int, pressed bool) error {
	if index < 0 || index >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKeyIndex, index)
	}

	emu.keyState[index] = pressed
	return nil
}

// Step ticks both timers and executes one instruction.
//
// An unrecognized opcode is skipped and reported as a non-fatal *OpcodeError.
// Any other error is fatal: it is latched and returned by every following
// Step until Initialize is called.
func (emu *EMU) Step() error {
	if emu.fault != nil {
		return emu.fault
	}

	emu.tickTimers()

	opcode, err := emu.fetch()
	if err != nil {
		emu.fault = err
		return err
	}

	if emu.trace && emu.logger != nil {
		emu.logger.Debug("exec",
			log.Hex("pc", emu.pc),
			log.Hex("opcode", opcode),
			log.String("instr", Mnemonic(opcode)))
	}

	next, err := emu.execute(opcode)
	if err != nil && IsFatal(err) {
		emu.fault = err
		return err
	}

	emu.pc = next
	return err
}

func (emu *EMU) tickTimers() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

func (emu *EMU) fetch() (uint16, error) {
	if int(emu.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("%w: fetching opcode at 0x%04X", ErrMemoryOutOfRange, emu.pc)
	}
	return uint16(emu.memory[emu.pc])<<8 | uint16(emu.memory[emu.pc+1]), nil
}

// DisplaySnapshot returns a copy of the display.
func (emu *EMU) DisplaySnapshot() Display {
	return emu.display
}

// SoundTimer returns the sound timer. The driver plays a tone while it is nonzero.
func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

func (emu *EMU) PC() uint16 {
	return emu.pc
}

// Register returns the value of register Vx. x is taken modulo 16.
func (emu *EMU) Register(x int) uint8 {
	return emu.v[x&0xF]
}

// Index returns the address register I.
func (emu *EMU) Index() uint16 {
	return emu.index
}

// StackDepth returns the number of return addresses on the call stack.
func (emu *EMU) StackDepth() int {
	return emu.sp
}

// Memory returns the byte at addr, or 0 for addresses past the end of memory.
func (emu *EMU) Memory(addr uint16) uint8 {
	if int(addr) >= MemorySize {
		return 0
	}
	return emu.memory[addr]
}

// Key reports whether key index is pressed. Out of range indexes report false.
func (emu *EMU) Key(index int) bool {
	if index < 0 || index >= KeyCount {
		return false
	}
	return emu.keyState[index]
}

// DrawPending reports whether the display changed since the last ClearDrawPending.
func (emu *EMU) DrawPending() bool {
	return emu.updateScreen
}

func (emu *EMU) ClearDrawPending() {
	emu.updateScreen = false
}
