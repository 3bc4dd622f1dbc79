package cpu

import "fmt"

// execute runs one decoded instruction and returns the address of the next
// one. Control transfers return their target directly. A fatal error leaves
// the machine state as it was before the instruction.
func (emu *EMU) execute(opcode uint16) (uint16, error) {
	x := int(opcode&0x0F00) >> 8
	y := int(opcode&0x00F0) >> 4
	n := int(opcode & 0x000F)
	kk := uint8(opcode & 0x00FF)
	addr := opcode & 0x0FFF

	next := emu.pc + 2
	skip := emu.pc + 4

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			emu.display = Display{}
			emu.updateScreen = true
		case 0x00EE:
			if emu.sp == 0 {
				return 0, fmt.Errorf("%w: return at 0x%03X", ErrCallStackUnderflow, emu.pc)
			}
			emu.sp--
			return emu.stack[emu.sp], nil
		default:
			// 0NNN: machine code routine, ignored
		}

	case 0x1000:
		return addr, nil

	case 0x2000:
		if emu.sp == StackSize {
			return 0, fmt.Errorf("%w: call to 0x%03X at 0x%03X", ErrCallStackOverflow, addr, emu.pc)
		}
		emu.stack[emu.sp] = next
		emu.sp++
		return addr, nil

	case 0x3000:
		if emu.v[x] == kk {
			return skip, nil
		}

	case 0x4000:
		if emu.v[x] != kk {
			return skip, nil
		}

	case 0x5000:
		if n != 0 {
			return next, emu.opcodeError(opcode)
		}
		if emu.v[x] == emu.v[y] {
			return skip, nil
		}

	case 0x6000:
		emu.v[x] = kk

	case 0x7000:
		emu.v[x] += kk

	case 0x8000:
		if !emu.alu(x, y, n) {
			return next, emu.opcodeError(opcode)
		}

	case 0x9000:
		if n != 0 {
			return next, emu.opcodeError(opcode)
		}
		if emu.v[x] != emu.v[y] {
			return skip, nil
		}

	case 0xA000:
		emu.index = addr

	case 0xB000:
		return addr + uint16(emu.v[0]), nil

	case 0xC000:
		emu.v[x] = uint8(emu.rng.UintN(256)) & kk

	case 0xD000:
		if err := emu.checkRange(emu.index, n); err != nil {
			return 0, fmt.Errorf("drawing sprite: %w", err)
		}
		sprite := emu.memory[emu.index : int(emu.index)+n]
		erased := emu.display.drawSprite(int(emu.v[x]), int(emu.v[y]), sprite)
		emu.v[flag] = flagValue(erased)
		emu.updateScreen = true

	case 0xE000:
		key := int(emu.v[x])
		switch kk {
		case 0x9E:
			if key >= KeyCount {
				return 0, fmt.Errorf("%w: V%X holds 0x%02X", ErrInvalidKeyIndex, x, key)
			}
			if emu.keyState[key] {
				return skip, nil
			}
		case 0xA1:
			if key >= KeyCount {
				return 0, fmt.Errorf("%w: V%X holds 0x%02X", ErrInvalidKeyIndex, x, key)
			}
			if !emu.keyState[key] {
				return skip, nil
			}
		default:
			return next, emu.opcodeError(opcode)
		}

	case 0xF000:
		return emu.misc(opcode, x, kk)
	}

	return next, nil
}

// alu runs the 8XYN register-to-register forms. Operands are captured before
// any write so that VF as an operand sees its old value, and VF is written
// last. It reports false for an unknown N.
func (emu *EMU) alu(x, y, n int) bool {
	vx, vy := emu.v[x], emu.v[y]

	switch n {
	case 0x0:
		emu.v[x] = vy
	case 0x1:
		emu.v[x] = vx | vy
	case 0x2:
		emu.v[x] = vx & vy
	case 0x3:
		emu.v[x] = vx ^ vy
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		emu.v[x] = uint8(sum)
		emu.v[flag] = flagValue(sum > 0xFF)
	case 0x5:
		emu.v[x] = vx - vy
		emu.v[flag] = flagValue(vx >= vy)
	case 0x6:
		emu.v[x] = vx >> 1
		emu.v[flag] = vx & 0x01
	case 0x7:
		emu.v[x] = vy - vx
		emu.v[flag] = flagValue(vy >= vx)
	case 0xE:
		emu.v[x] = vx << 1
		emu.v[flag] = vx >> 7
	default:
		return false
	}
	return true
}

// misc runs the FXKK forms.
func (emu *EMU) misc(opcode uint16, x int, kk uint8) (uint16, error) {
	next := emu.pc + 2

	switch kk {
	case 0x07:
		emu.v[x] = emu.delayTimer

	case 0x0A:
		for key, pressed := range emu.keyState {
			if pressed {
				emu.v[x] = uint8(key)
				return next, nil
			}
		}
		// poll again on the next step
		return emu.pc, nil

	case 0x15:
		emu.delayTimer = emu.v[x]

	case 0x18:
		emu.soundTimer = emu.v[x]

	case 0x1E:
		sum := int(emu.index) + int(emu.v[x])
		if sum > 0xFFFF {
			return 0, fmt.Errorf("%w: I = 0x%04X + 0x%02X", ErrMemoryOutOfRange, emu.index, emu.v[x])
		}
		emu.index = uint16(sum)

	case 0x29:
		emu.index = uint16(emu.v[x]&0x0F) * glyphSize

	case 0x33:
		if err := emu.checkRange(emu.index, 3); err != nil {
			return 0, fmt.Errorf("storing BCD: %w", err)
		}
		value := emu.v[x]
		emu.memory[emu.index] = value / 100
		emu.memory[emu.index+1] = value / 10 % 10
		emu.memory[emu.index+2] = value % 10

	case 0x55:
		if err := emu.checkRange(emu.index, x+1); err != nil {
			return 0, fmt.Errorf("storing registers: %w", err)
		}
		copy(emu.memory[emu.index:], emu.v[:x+1])

	case 0x65:
		if err := emu.checkRange(emu.index, x+1); err != nil {
			return 0, fmt.Errorf("loading registers: %w", err)
		}
		copy(emu.v[:x+1], emu.memory[emu.index:])

	default:
		return next, emu.opcodeError(opcode)
	}

	return next, nil
}

// checkRange fails if any byte of [addr, addr+n) lies past the end of memory.
func (emu *EMU) checkRange(addr uint16, n int) error {
	if int(addr)+n > MemorySize {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrMemoryOutOfRange, n, addr)
	}
	return nil
}

func (emu *EMU) opcodeError(opcode uint16) error {
	return &OpcodeError{PC: emu.pc, Opcode: opcode}
}

func flagValue(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
